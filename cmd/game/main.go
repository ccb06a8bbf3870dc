package main

import (
	"flag"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/lionheart/internal/application/game"
	"github.com/younwookim/lionheart/internal/application/scene/playing"
	"github.com/younwookim/lionheart/internal/infrastructure/config"
)

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back recorded input from file")
	stageFlag := flag.String("stage", "demo", "Stage to load")
	configsFlag := flag.String("configs", "", "Load configs from this directory instead of the embedded ones")
	watchFlag := flag.Bool("watch", false, "Reload the stage when config files change (requires -configs)")
	debugFlag := flag.Bool("debug", false, "Log every state switch")
	flag.Parse()

	loader, err := newLoader(*configsFlag)
	if err != nil {
		log.Fatalf("Failed to open configs: %v", err)
	}

	opts, err := playingOptions(*stageFlag, *replayFlag)
	if err != nil {
		log.Fatalf("Failed to load replay: %v", err)
	}
	opts.RecordPath = *recordFlag
	opts.Trace = *debugFlag

	scene, err := playing.New(loader, opts)
	if err != nil {
		log.Fatalf("Failed to start stage %s: %v", opts.Stage, err)
	}

	display := scene.Display()
	g := game.New(scene, display.ScreenWidth, display.ScreenHeight, display.Framerate)

	if *watchFlag {
		if *configsFlag == "" {
			log.Fatal("-watch requires -configs")
		}
		watcher, err := config.NewWatcher(*configsFlag, *configsFlag+"/stages")
		if err != nil {
			log.Fatalf("Failed to watch configs: %v", err)
		}
		defer func() { _ = watcher.Close() }()
		go logWatchErrors(watcher.Errors)
		g.WatchChanges(watcher.Events)
		log.Printf("Watching %s for changes", *configsFlag)
	}

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle("Lionheart Locomotion")
	ebiten.SetTPS(display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
	scene.OnExit()
}

// newLoader reads configs from dir, or from the embedded configs when dir
// is empty
func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, err
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func logWatchErrors(errs <-chan error) {
	for err := range errs {
		log.Printf("Config watcher: %v", err)
	}
}
