package observability

import (
	"context"
	"testing"
	"time"
)

func TestNoopHooksDoNotPanic(t *testing.T) {
	ctx := context.Background()

	r := NoopRenderHooks{}
	r.OnEncodeStart(ctx, "svg")
	r.OnEncodeComplete(ctx, "svg", 1024, time.Second, nil)

	o := NoopOverlayHooks{}
	o.OnRender("marker-point-ab12cd34", 2, 3)
	o.OnStateChange("marker-point-ab12cd34", "point-0", "selected")
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()

	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("Render() should return NoopRenderHooks by default")
	}
	if _, ok := Overlay().(NoopOverlayHooks); !ok {
		t.Error("Overlay() should return NoopOverlayHooks by default")
	}

	customRender := &testRenderHooks{}
	SetRenderHooks(customRender)
	if Render() != RenderHooks(customRender) {
		t.Error("SetRenderHooks should set custom hooks")
	}

	customOverlay := &testOverlayHooks{}
	SetOverlayHooks(customOverlay)
	if Overlay() != OverlayHooks(customOverlay) {
		t.Error("SetOverlayHooks should set custom hooks")
	}

	// Nil restores defaults
	SetRenderHooks(nil)
	if _, ok := Render().(NoopRenderHooks); !ok {
		t.Error("SetRenderHooks(nil) should restore NoopRenderHooks")
	}

	Reset()
	if _, ok := Overlay().(NoopOverlayHooks); !ok {
		t.Error("Reset should restore NoopOverlayHooks")
	}
}

func TestOverlayHooksReceiveEvents(t *testing.T) {
	Reset()
	defer Reset()

	h := &testOverlayHooks{}
	SetOverlayHooks(h)

	Overlay().OnRender("ov", 1, 2)
	Overlay().OnStateChange("ov", "point-1", "active")

	if h.renders != 1 || h.states != 1 {
		t.Errorf("hooks received renders=%d states=%d, want 1/1", h.renders, h.states)
	}
}

type testRenderHooks struct{}

func (*testRenderHooks) OnEncodeStart(context.Context, string) {}
func (*testRenderHooks) OnEncodeComplete(context.Context, string, int, time.Duration, error) {
}

type testOverlayHooks struct {
	renders int
	states  int
}

func (h *testOverlayHooks) OnRender(string, int, int)            { h.renders++ }
func (h *testOverlayHooks) OnStateChange(string, string, string) { h.states++ }
