package collision

type tileEntry struct {
	listener TileListener
	removed  bool
}

type contactEntry struct {
	listener ContactListener
	removed  bool
}

// Router delivers collision events of one entity to its registered listeners.
//
// Listeners added during a dispatch do not receive the event being
// dispatched. Listeners removed during a dispatch stop receiving events
// immediately and are compacted once the dispatch returns.
type Router struct {
	tiles       []*tileEntry
	contacts    []*contactEntry
	dispatching int
	dirty       bool
}

// NewRouter creates an empty router
func NewRouter() *Router {
	return &Router{}
}

// AddTileListener registers l and returns its registration
func (r *Router) AddTileListener(l TileListener) *Registration {
	e := &tileEntry{listener: l}
	r.tiles = append(r.tiles, e)
	return &Registration{remove: func() {
		e.removed = true
		r.markDirty()
	}}
}

// AddContactListener registers l and returns its registration
func (r *Router) AddContactListener(l ContactListener) *Registration {
	e := &contactEntry{listener: l}
	r.contacts = append(r.contacts, e)
	return &Registration{remove: func() {
		e.removed = true
		r.markDirty()
	}}
}

// NotifyTile dispatches a tile collision to the registered listeners
func (r *Router) NotifyTile(result Result, category Category) {
	r.dispatching++
	n := len(r.tiles)
	for i := 0; i < n; i++ {
		if e := r.tiles[i]; !e.removed {
			e.listener.NotifyTileCollided(result, category)
		}
	}
	r.dispatching--
	r.compact()
}

// NotifyContact dispatches an entity contact to the registered listeners
func (r *Router) NotifyContact(contact Contact) {
	r.dispatching++
	n := len(r.contacts)
	for i := 0; i < n; i++ {
		if e := r.contacts[i]; !e.removed {
			e.listener.NotifyCollided(contact)
		}
	}
	r.dispatching--
	r.compact()
}

// TileListeners returns the number of live tile listeners
func (r *Router) TileListeners() int {
	n := 0
	for _, e := range r.tiles {
		if !e.removed {
			n++
		}
	}
	return n
}

// ContactListeners returns the number of live contact listeners
func (r *Router) ContactListeners() int {
	n := 0
	for _, e := range r.contacts {
		if !e.removed {
			n++
		}
	}
	return n
}

// Clear drops every listener
func (r *Router) Clear() {
	for _, e := range r.tiles {
		e.removed = true
	}
	for _, e := range r.contacts {
		e.removed = true
	}
	r.markDirty()
}

func (r *Router) markDirty() {
	r.dirty = true
	r.compact()
}

func (r *Router) compact() {
	if r.dispatching > 0 || !r.dirty {
		return
	}
	tiles := r.tiles[:0]
	for _, e := range r.tiles {
		if !e.removed {
			tiles = append(tiles, e)
		}
	}
	clear(r.tiles[len(tiles):])
	r.tiles = tiles

	contacts := r.contacts[:0]
	for _, e := range r.contacts {
		if !e.removed {
			contacts = append(contacts, e)
		}
	}
	clear(r.contacts[len(contacts):])
	r.contacts = contacts
	r.dirty = false
}

// Registration is the handle of one registered listener
type Registration struct {
	remove func()
}

// Remove unregisters the listener. Calling it more than once is a no-op.
func (g *Registration) Remove() {
	if g == nil || g.remove == nil {
		return
	}
	g.remove()
	g.remove = nil
}

// Scope collects the registrations of one state activation so they can be
// released together on exit.
type Scope struct {
	regs []*Registration
}

// Hold adds a registration to the scope
func (s *Scope) Hold(reg *Registration) {
	s.regs = append(s.regs, reg)
}

// Release removes every held registration and empties the scope
func (s *Scope) Release() {
	for _, reg := range s.regs {
		reg.Remove()
	}
	clear(s.regs)
	s.regs = s.regs[:0]
}

// Len returns the number of held registrations
func (s *Scope) Len() int {
	return len(s.regs)
}
