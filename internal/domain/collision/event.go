package collision

// Category is a named collision probe attached to an entity.
// The probe point sits at (OffsetX, OffsetY) from the entity origin
// (bottom center, Y up).
type Category struct {
	Name    string
	Axis    Axis
	Zone    Zone
	OffsetX float64
	OffsetY float64
}

// Result describes one resolved tile collision.
// X and Y hold the entity position that would put the probe on the
// surface; only the coordinate of Axis is meaningful.
type Result struct {
	Axis    Axis
	Profile Profile
	Name    string // profile name as found in the map data
	TileX   int
	TileY   int
	X, Y    float64
}

// Capability marks features an entity exposes to the entities it touches
type Capability uint8

const (
	// CapGlue makes riders count as grounded through contact
	CapGlue Capability = 1 << iota
	// CapHurtable lets attack zones hit the entity
	CapHurtable
)

// Has reports whether all bits of other are set
func (c Capability) Has(other Capability) bool {
	return c&other == other
}

// Box is a named contact rectangle relative to the entity origin
type Box struct {
	Name    string
	Zone    Zone
	OffsetX float64
	OffsetY float64
	Width   float64
	Height  float64
}

// Contact describes an entity-vs-entity overlap from the receiver's side.
// With is the receiver's own box, By the box of the other entity.
type Contact struct {
	OtherID uint32
	Other   Capability
	With    Box
	By      Box
	Top     float64 // world Y of the top edge of By
}

// TileListener receives tile collision results
type TileListener interface {
	NotifyTileCollided(result Result, category Category)
}

// TileListenerFunc adapts a function to TileListener
type TileListenerFunc func(result Result, category Category)

// NotifyTileCollided calls f
func (f TileListenerFunc) NotifyTileCollided(result Result, category Category) {
	f(result, category)
}

// ContactListener receives entity contacts
type ContactListener interface {
	NotifyCollided(contact Contact)
}

// ContactListenerFunc adapts a function to ContactListener
type ContactListenerFunc func(contact Contact)

// NotifyCollided calls f
func (f ContactListenerFunc) NotifyCollided(contact Contact) {
	f(contact)
}
