package entity

import (
	"errors"
	"fmt"
	"math"
)

// AnimState is the playback state of an animator
type AnimState int

const (
	AnimStopped AnimState = iota
	AnimPlaying
	AnimFinished
)

// String returns the string representation of the anim state
func (s AnimState) String() string {
	switch s {
	case AnimStopped:
		return "Stopped"
	case AnimPlaying:
		return "Playing"
	case AnimFinished:
		return "Finished"
	default:
		return "Unknown"
	}
}

// Animation describes a frame range played at a given speed
type Animation struct {
	Name   string
	First  int
	Last   int
	Speed  float64 // frames advanced per game frame
	Repeat bool
}

// ErrInvalidAnimation is returned for a frame range or speed that cannot be played
var ErrInvalidAnimation = errors.New("invalid animation")

// Validate checks the frame range and speed
func (a Animation) Validate() error {
	if a.First < 0 || a.Last < a.First {
		return fmt.Errorf("%w: %s frames %d..%d", ErrInvalidAnimation, a.Name, a.First, a.Last)
	}
	if a.Speed < 0 {
		return fmt.Errorf("%w: %s speed %v", ErrInvalidAnimation, a.Name, a.Speed)
	}
	return nil
}

// Animator plays animations for an entity
type Animator interface {
	Play(anim Animation)
	Is(state AnimState) bool
	Frame() int
	SetAnimSpeed(speed float64)
	Update(extrp float64)
}

// AnimationPlayer is the frame-counting Animator
type AnimationPlayer struct {
	anim  Animation
	frame float64
	speed float64
	state AnimState
}

// NewAnimationPlayer creates a stopped player
func NewAnimationPlayer() *AnimationPlayer {
	return &AnimationPlayer{}
}

// Play starts anim from its first frame
func (p *AnimationPlayer) Play(anim Animation) {
	p.anim = anim
	p.frame = float64(anim.First)
	p.speed = anim.Speed
	p.state = AnimPlaying
}

// Is reports whether the player is in the given state
func (p *AnimationPlayer) Is(state AnimState) bool {
	return p.state == state
}

// Frame returns the current frame index
func (p *AnimationPlayer) Frame() int {
	return int(p.frame)
}

// SetAnimSpeed overrides the speed of the current animation
func (p *AnimationPlayer) SetAnimSpeed(speed float64) {
	p.speed = speed
}

// Current returns the animation being played
func (p *AnimationPlayer) Current() Animation {
	return p.anim
}

// Update advances the current animation
func (p *AnimationPlayer) Update(extrp float64) {
	if p.state != AnimPlaying {
		return
	}
	p.frame += p.speed * extrp
	if int(p.frame) <= p.anim.Last {
		return
	}
	if p.anim.Repeat {
		length := float64(p.anim.Last - p.anim.First + 1)
		if length <= 0 {
			p.frame = float64(p.anim.First)
			return
		}
		first := float64(p.anim.First)
		p.frame = first + math.Mod(p.frame-first, length)
		return
	}
	p.frame = float64(p.anim.Last)
	p.state = AnimFinished
}
