package scene

// Canvas owns the scene-graph root and the explicit draw cycle.
//
// Draw does not rasterize anything by itself: it bumps the draw
// generation and invokes the registered flush hook, which embedders use
// to re-encode the tree through a sink. Components must call Draw after
// mutating the tree; nothing is flushed implicitly.
type Canvas struct {
	width, height float64
	root          *Group
	draws         int
	onFlush       func()
	handlers      map[EventType][]canvasSub
	nextSubID     int
}

type canvasSub struct {
	id int
	h  Handler
}

// New creates an empty canvas of the given pixel size.
func New(width, height float64) *Canvas {
	return &Canvas{
		width:  width,
		height: height,
		root:   &Group{name: "root"},
	}
}

// Root returns the root group.
func (c *Canvas) Root() *Group { return c.root }

// Size returns the canvas dimensions in pixels.
func (c *Canvas) Size() (width, height float64) { return c.width, c.height }

// Draw flushes the canvas: the draw generation is incremented and the
// flush hook, if any, is invoked.
func (c *Canvas) Draw() {
	c.draws++
	if c.onFlush != nil {
		c.onFlush()
	}
}

// Draws returns the number of completed draw cycles.
func (c *Canvas) Draws() int { return c.draws }

// OnFlush registers fn to run on every Draw. Passing nil removes the
// hook. Only one hook is held at a time.
func (c *Canvas) OnFlush(fn func()) { c.onFlush = fn }

// On subscribes a canvas-level handler. Canvas-level handlers fire for
// every dispatched event of type t, after group handlers, regardless of
// what was hit. This is the view-level click stream used for
// outside-click handling. The returned function cancels the
// subscription.
func (c *Canvas) On(t EventType, h Handler) (cancel func()) {
	if c.handlers == nil {
		c.handlers = make(map[EventType][]canvasSub)
	}
	c.nextSubID++
	id := c.nextSubID
	c.handlers[t] = append(c.handlers[t], canvasSub{id: id, h: h})
	return func() {
		subs := c.handlers[t]
		for i, s := range subs {
			if s.id == id {
				c.handlers[t] = append(subs[:i], subs[i+1:]...)
				return
			}
		}
	}
}

// Dispatch hit-tests (x, y), then delivers the event by bubbling from
// the target's owning group up to the root, followed by canvas-level
// handlers. The dispatched event is returned for inspection.
func (c *Canvas) Dispatch(t EventType, x, y float64) *Event {
	var target Node
	if s := c.root.hit(x, y); s != nil {
		target = s
	}
	ev := &Event{Type: t, X: x, Y: y, Target: target}
	c.deliver(ev)
	return ev
}

// DispatchTo delivers an event directly to target, bypassing hit
// testing. Coordinates are taken from the target when it is a shape.
// Interaction drivers (TUIs, tests) use this to synthesize pointer
// events on known shapes.
func (c *Canvas) DispatchTo(t EventType, target Node) *Event {
	ev := &Event{Type: t, Target: target}
	if s, ok := target.(*Shape); ok && s != nil {
		ev.X, ev.Y = s.X, s.Y
	}
	c.deliver(ev)
	return ev
}

func (c *Canvas) deliver(ev *Event) {
	for g := owningGroup(ev.Target); g != nil; g = g.Parent() {
		g.emit(ev)
	}
	for _, s := range append([]canvasSub(nil), c.handlers[ev.Type]...) {
		s.h(ev)
	}
}

// owningGroup resolves the group a bubble walk starts from: the node
// itself if it is a group, otherwise its parent.
func owningGroup(n Node) *Group {
	switch v := n.(type) {
	case *Group:
		return v
	case *Shape:
		return v.Parent()
	}
	return nil
}
