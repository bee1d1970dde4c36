package sprite

// Group is a non-owning collection of entities.
// An entity may belong to several groups at once; killing it removes it
// from all of them. Iteration order is insertion order.
type Group struct {
	members map[*Sprite]Entity
	order   []*Sprite

	// OnRemove is called for every entity leaving the group, before the
	// group drops its reference.
	OnRemove func(e Entity)
}

// NewGroup creates a group holding the given entities
func NewGroup(entities ...Entity) *Group {
	g := &Group{members: make(map[*Sprite]Entity)}
	g.Add(entities...)
	return g
}

// Add inserts entities. Dead entities and existing members are ignored.
func (g *Group) Add(entities ...Entity) {
	if g.members == nil {
		g.members = make(map[*Sprite]Entity)
	}
	for _, e := range entities {
		if e == nil {
			continue
		}
		b := e.base()
		if b.dead {
			continue
		}
		if _, ok := g.members[b]; ok {
			continue
		}
		g.members[b] = e
		g.order = append(g.order, b)
		b.join(g)
	}
}

// Remove drops e from the group. Removing a non-member is a no-op.
func (g *Group) Remove(e Entity) {
	if e == nil {
		return
	}
	g.removeBase(e.base())
}

func (g *Group) removeBase(b *Sprite) {
	e, ok := g.members[b]
	if !ok {
		return
	}
	if g.OnRemove != nil {
		g.OnRemove(e)
	}
	delete(g.members, b)
	for i, o := range g.order {
		if o == b {
			g.order = append(g.order[:i], g.order[i+1:]...)
			break
		}
	}
	b.leave(g)
}

// Has reports whether e is a member
func (g *Group) Has(e Entity) bool {
	if e == nil {
		return false
	}
	_, ok := g.members[e.base()]
	return ok
}

// Len returns the number of members
func (g *Group) Len() int { return len(g.order) }

// Entities returns a snapshot of the members in insertion order
func (g *Group) Entities() []Entity {
	out := make([]Entity, 0, len(g.order))
	for _, b := range g.order {
		out = append(out, g.members[b])
	}
	return out
}

// Last returns the most recently added member, or nil
func (g *Group) Last() Entity {
	if len(g.order) == 0 {
		return nil
	}
	return g.members[g.order[len(g.order)-1]]
}

// Each calls fn for every member of a snapshot taken before the pass.
// Members removed before their turn are skipped; members added during the
// pass are first visited on the next pass.
func (g *Group) Each(fn func(e Entity)) {
	for _, e := range g.Entities() {
		if !g.Has(e) {
			continue
		}
		fn(e)
	}
}

// Update dispatches Update(t) to every member implementing Updater.
// Members without the capability are skipped.
func (g *Group) Update(t *Tick) {
	g.Each(func(e Entity) {
		if u, ok := e.(Updater); ok {
			u.Update(t)
		}
	})
}

// Clear removes every member, firing OnRemove for each
func (g *Group) Clear() {
	for _, e := range g.Entities() {
		g.Remove(e)
	}
}

// KillAll kills every member. Killed entities leave all their groups.
func (g *Group) KillAll() {
	for _, e := range g.Entities() {
		e.Kill()
	}
}
