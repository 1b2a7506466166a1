package scene

// Node is an element of the scene graph: a *Group or a *Shape.
type Node interface {
	Parent() *Group
	setParent(*Group)
	contains(x, y float64) bool
}

// Group is an ordered container of scene nodes. Groups provide layering
// (later children draw on top) and event delegation: a handler
// registered on a group fires for events targeting any descendant.
type Group struct {
	name     string
	parent   *Group
	children []Node
	handlers map[EventType][]Handler
	data     any
	origin   any
}

// Name returns the delegation tag the group was created with.
func (g *Group) Name() string { return g.name }

// Parent returns the enclosing group, or nil for the root.
func (g *Group) Parent() *Group { return g.parent }

func (g *Group) setParent(p *Group) { g.parent = p }

// AddGroup appends a new child group tagged with name and returns it.
func (g *Group) AddGroup(name string) *Group {
	child := &Group{name: name, parent: g}
	g.children = append(g.children, child)
	return child
}

// AddShape appends s as the last child and returns it.
func (g *Group) AddShape(s *Shape) *Shape {
	s.setParent(g)
	g.children = append(g.children, s)
	return s
}

// Children returns the child nodes in draw order. The returned slice is
// the group's own backing store and must not be mutated.
func (g *Group) Children() []Node { return g.children }

// First returns the first child shape, or nil if the group holds none.
func (g *Group) First() *Shape {
	for _, n := range g.children {
		if s, ok := n.(*Shape); ok {
			return s
		}
	}
	return nil
}

// Clear detaches and drops all children. Event handlers registered on
// the group itself survive.
func (g *Group) Clear() {
	for _, n := range g.children {
		n.setParent(nil)
	}
	g.children = nil
}

// Remove detaches the group from its parent. The group keeps its
// children and can not be re-attached.
func (g *Group) Remove() {
	p := g.parent
	if p == nil {
		return
	}
	for i, n := range p.children {
		if n == Node(g) {
			p.children = append(p.children[:i], p.children[i+1:]...)
			break
		}
	}
	g.parent = nil
}

// On subscribes h to events of type t that target the group or any of
// its descendants.
func (g *Group) On(t EventType, h Handler) {
	if g.handlers == nil {
		g.handlers = make(map[EventType][]Handler)
	}
	g.handlers[t] = append(g.handlers[t], h)
}

// Data returns the caller-attached data record.
func (g *Group) Data() any { return g.data }

// SetData attaches an arbitrary data record to the group.
func (g *Group) SetData(v any) { g.data = v }

// Origin returns the caller-attached origin record.
func (g *Group) Origin() any { return g.origin }

// SetOrigin attaches an arbitrary origin record to the group.
func (g *Group) SetOrigin(v any) { g.origin = v }

func (g *Group) emit(ev *Event) {
	for _, h := range g.handlers[ev.Type] {
		h(ev)
	}
}

func (g *Group) contains(x, y float64) bool {
	for _, n := range g.children {
		if n.contains(x, y) {
			return true
		}
	}
	return false
}

// hit returns the deepest shape under (x, y), preferring later
// (topmost) children.
func (g *Group) hit(x, y float64) *Shape {
	for i := len(g.children) - 1; i >= 0; i-- {
		switch n := g.children[i].(type) {
		case *Group:
			if s := n.hit(x, y); s != nil {
				return s
			}
		case *Shape:
			if n.contains(x, y) {
				return n
			}
		}
	}
	return nil
}
