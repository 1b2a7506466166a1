package markerpoint

import (
	"github.com/plotmark/plotmark/pkg/observability"
	"github.com/plotmark/plotmark/pkg/scene"
)

// wire registers the interaction handlers. Handlers are delegated from
// the container group, so they survive marker rebuilds and are
// registered exactly once per overlay — including the view-level
// outside-click handler, regardless of how many callbacks are
// configured.
func (o *Overlay) wire() {
	if o.wired {
		return
	}
	o.wired = true

	o.container.On(scene.MouseEnter, o.onMouseEnter)
	o.container.On(scene.MouseLeave, o.onMouseLeave)
	o.container.On(scene.Click, o.onClick)
	o.cancelClick = o.view.OnClick(o.onViewClick)
}

// markerFor resolves the marker a delegated event refers to: walk up
// from the event target to its owning tagged group, then take that
// group's first child shape. Events on a marker's label therefore
// resolve to the marker itself.
func (o *Overlay) markerFor(ev *scene.Event) *scene.Shape {
	s, ok := ev.Target.(*scene.Shape)
	if !ok || s == nil {
		return nil
	}
	g := s.Parent()
	if g == nil || g == o.container || g.Name() != o.tag {
		return nil
	}
	return g.First()
}

// ownsTarget reports whether the event target lives under the
// overlay's container.
func (o *Overlay) ownsTarget(n scene.Node) bool {
	if n == nil {
		return false
	}
	for g := n.Parent(); g != nil; g = g.Parent() {
		if g == o.container {
			return true
		}
	}
	return false
}

// onMouseEnter paints the hovered marker active and resets every other
// non-selected marker to normal. A marker that is currently selected
// keeps its selected paint.
func (o *Overlay) onMouseEnter(ev *scene.Event) {
	if o.events.MouseEnter != nil {
		o.events.MouseEnter(ev)
	}
	m := o.markerFor(ev)
	if m == nil {
		return
	}
	if m != o.selection {
		m.SetStyle(o.active)
		observability.Overlay().OnStateChange(o.tag, m.Name, "active")
	}
	o.eachMarker(func(s *scene.Shape) {
		if s != m && s != o.selection {
			s.SetStyle(o.normal)
		}
	})
	o.view.Canvas().Draw()
}

// onMouseLeave resets every non-selected marker to normal paint.
func (o *Overlay) onMouseLeave(ev *scene.Event) {
	if o.events.MouseLeave != nil {
		o.events.MouseLeave(ev)
	}
	o.resetUnselected()
	o.view.Canvas().Draw()
}

// onClick toggles selection: clicking the selected marker deselects
// it; clicking any other marker selects it and demotes the previous
// selection to normal paint.
func (o *Overlay) onClick(ev *scene.Event) {
	if o.events.Click != nil {
		o.events.Click(ev)
	}
	m := o.markerFor(ev)
	if m == nil {
		return
	}

	if m == o.selection {
		o.selection = nil
		o.resetUnselected()
		observability.Overlay().OnStateChange(o.tag, m.Name, "normal")
	} else {
		o.selection = m
		m.SetStyle(o.selected)
		o.resetUnselected()
		observability.Overlay().OnStateChange(o.tag, m.Name, "selected")
	}
	o.view.Canvas().Draw()
}

// onViewClick clears the selection when the view is clicked anywhere
// outside the overlay's markers.
func (o *Overlay) onViewClick(ev *scene.Event) {
	if o.ownsTarget(ev.Target) {
		return
	}
	if o.selection == nil {
		return
	}
	name := o.selection.Name
	o.selection = nil
	o.resetUnselected()
	observability.Overlay().OnStateChange(o.tag, name, "normal")
	o.view.Canvas().Draw()
}

// resetUnselected repaints every marker except the current selection
// to normal.
func (o *Overlay) resetUnselected() {
	o.eachMarker(func(s *scene.Shape) {
		if s != o.selection {
			s.SetStyle(o.normal)
		}
	})
}
