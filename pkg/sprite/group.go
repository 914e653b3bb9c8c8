// pkg/sprite/group.go
package sprite

// Group is an ordered, non-owning list of sprite references. Iteration always
// follows insertion order; adding the same sprite twice yields two iteration
// slots. A Group never controls its members' lifetime.
type Group struct {
	members []*Sprite
}

// NewGroup creates a group containing the given sprites in order.
func NewGroup(sprites ...*Sprite) *Group {
	g := &Group{}
	for _, s := range sprites {
		g.Add(s)
	}
	return g
}

// Add appends a sprite to the group. Duplicates are not filtered.
func (g *Group) Add(s *Sprite) {
	if s == nil {
		return
	}
	g.members = append(g.members, s)
}

// Remove deletes the first occurrence of the sprite, preserving the order of
// the remaining members. Returns whether anything was removed.
func (g *Group) Remove(s *Sprite) bool {
	for i, m := range g.members {
		if m == s {
			g.members = append(g.members[:i], g.members[i+1:]...)
			return true
		}
	}
	return false
}

// Contains reports whether the sprite is a member of the group.
func (g *Group) Contains(s *Sprite) bool {
	for _, m := range g.members {
		if m == s {
			return true
		}
	}
	return false
}

// Len returns the number of iteration slots in the group.
func (g *Group) Len() int {
	return len(g.members)
}

// Each calls fn for every member in insertion order. Mutating the group's
// membership from inside fn has undefined ordering effects and is
// unsupported.
func (g *Group) Each(fn func(*Sprite)) {
	for _, m := range g.members {
		fn(m)
	}
}

// Sprites returns a copy of the member list in insertion order.
func (g *Group) Sprites() []*Sprite {
	out := make([]*Sprite, len(g.members))
	copy(out, g.members)
	return out
}

// Clear removes all members without touching the sprites themselves.
func (g *Group) Clear() {
	g.members = g.members[:0]
}
