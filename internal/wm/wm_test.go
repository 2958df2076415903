package wm

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/mj1618/zwm/internal/model"
	"github.com/mj1618/zwm/internal/platform"
)

func TestNew_RequiresScreens(t *testing.T) {
	d := newFakeDisplay()
	d.screens = nil
	if _, err := New(d, Options{}); err == nil {
		t.Fatal("expected error with no screens")
	}
}

func TestNew_StartState(t *testing.T) {
	d := newFakeDisplay(screenA, screenB)
	w := newTestWM(t, d)

	ws, sc := w.slots.Current()
	if ws != 1 || sc != 0 {
		t.Errorf("current slot = (%d,%d), want (1,0)", ws, sc)
	}
	if w.slots.Last() != 1 {
		t.Errorf("last = %d, want 1", w.slots.Last())
	}
	center := screenA.Center()
	for i := 0; i < Workspaces; i++ {
		if got := w.slots.Remembered(i); got != center {
			t.Errorf("workspace %d pointer = %v, want %v", i, got, center)
		}
		if got := w.slots.Screen(i); got != 0 {
			t.Errorf("workspace %d screen = %d, want 0", i, got)
		}
	}
}

func TestMapRequest_PlacesInCurrentSlot(t *testing.T) {
	d := newFakeDisplay(screenA, screenB)
	w := newTestWM(t, d)

	w.Dispatch(platform.MapRequest{Window: 7})

	c, ok := w.registry.Find(7)
	if !ok {
		t.Fatal("window 7 not managed")
	}
	if c.Workspace != 1 || c.Screen != 0 {
		t.Errorf("placed in (%d,%d), want (1,0)", c.Workspace, c.Screen)
	}
	want := []string{
		"moveresize 7 0,0 1920x1080",
		"select 7",
		"map 7",
		"raise 7",
		"focus 7",
		"sync",
	}
	if !reflect.DeepEqual(d.cmds, want) {
		t.Errorf("commands = %q\nwant %q", d.cmds, want)
	}
}

func TestMapRequest_SecondWindowJoinsSlot(t *testing.T) {
	d := newFakeDisplay(screenA, screenB)
	w := newTestWM(t, d)

	w.Dispatch(platform.MapRequest{Window: 7})
	w.Dispatch(platform.MapRequest{Window: 9})

	slot := w.registry.Slot(1, 0)
	if got := windows(slot); !reflect.DeepEqual(got, []platform.Window{9, 7}) {
		t.Errorf("slot = %v, want [9 7]", got)
	}
	cur, _ := w.registry.Current(1, 0)
	if cur.Window != 9 {
		t.Errorf("current = %d, want 9", cur.Window)
	}
	mustValidate(t, w.registry)
}

func TestMapRequest_KnownWindowNotDuplicated(t *testing.T) {
	d := newFakeDisplay()
	w := newTestWM(t, d)

	w.Dispatch(platform.MapRequest{Window: 7})
	w.Dispatch(platform.MapRequest{Window: 7})

	if w.registry.Len() != 1 {
		t.Errorf("Len = %d, want 1", w.registry.Len())
	}
	if got := d.count("map 7"); got != 2 {
		t.Errorf("map issued %d times, want 2", got)
	}
	if got := d.count("focus 7"); got != 1 {
		t.Errorf("focus issued %d times, want 1", got)
	}
}

func TestMapRequest_UsesClientScreenGeometry(t *testing.T) {
	d := newFakeDisplay(screenA, screenB)
	w := newTestWM(t, d)
	w.AdvanceScreen()
	d.reset()

	w.Dispatch(platform.MapRequest{Window: 5})

	if d.cmds[0] != "moveresize 5 1920,0 1280x1024" {
		t.Errorf("first command = %q", d.cmds[0])
	}
}

func TestFocus_Idempotent(t *testing.T) {
	d := newFakeDisplay()
	w := newTestWM(t, d)
	w.Dispatch(platform.MapRequest{Window: 7})
	d.reset()

	w.focus()
	w.focus()

	if len(d.cmds) != 0 {
		t.Errorf("expected no commands, got %q", d.cmds)
	}
}

func TestFocus_EmptySlotIssuesNothing(t *testing.T) {
	d := newFakeDisplay()
	w := newTestWM(t, d)

	w.focus()
	if len(d.cmds) != 0 {
		t.Errorf("expected no commands, got %q", d.cmds)
	}
}

func TestDestroyNotify_FocusesSuccessor(t *testing.T) {
	d := newFakeDisplay()
	w := newTestWM(t, d)
	w.Dispatch(platform.MapRequest{Window: 7})
	w.Dispatch(platform.MapRequest{Window: 9})
	d.reset()

	w.Dispatch(platform.DestroyNotify{Window: 9})

	if _, ok := w.registry.Find(9); ok {
		t.Error("destroyed window still managed")
	}
	want := []string{"raise 7", "focus 7", "sync"}
	if !reflect.DeepEqual(d.cmds, want) {
		t.Errorf("commands = %q, want %q", d.cmds, want)
	}
}

func TestDestroyNotify_UnknownWindow(t *testing.T) {
	d := newFakeDisplay()
	w := newTestWM(t, d)
	w.Dispatch(platform.MapRequest{Window: 7})
	d.reset()

	w.Dispatch(platform.DestroyNotify{Window: 42})

	if len(d.cmds) != 0 || w.registry.Len() != 1 {
		t.Errorf("unknown destroy changed state: cmds=%q len=%d", d.cmds, w.registry.Len())
	}
}

func TestDestroyNotify_ClearsLastFocused(t *testing.T) {
	d := newFakeDisplay()
	w := newTestWM(t, d)
	w.Dispatch(platform.MapRequest{Window: 7})
	w.Dispatch(platform.DestroyNotify{Window: 7})

	if w.lastFocused != noClient {
		t.Errorf("lastFocused = %d, want none", w.lastFocused)
	}
}

func TestEnterNotify_SwitchesAddressing(t *testing.T) {
	d := newFakeDisplay(screenA, screenB)
	w := newTestWM(t, d)
	w.Dispatch(platform.MapRequest{Window: 7})
	w.AdvanceScreen()
	w.Dispatch(platform.MapRequest{Window: 9})
	d.reset()

	w.Dispatch(platform.EnterNotify{Window: 7})

	ws, sc := w.slots.Current()
	if ws != 1 || sc != 0 {
		t.Errorf("current slot = (%d,%d), want (1,0)", ws, sc)
	}
	want := []string{"raise 7", "focus 7", "sync"}
	if !reflect.DeepEqual(d.cmds, want) {
		t.Errorf("commands = %q, want %q", d.cmds, want)
	}
}

func TestEnterNotify_UnknownWindow(t *testing.T) {
	d := newFakeDisplay()
	w := newTestWM(t, d)
	w.Dispatch(platform.EnterNotify{Window: 42})
	if len(d.cmds) != 0 {
		t.Errorf("expected no commands, got %q", d.cmds)
	}
}

func TestDispatch_IgnoredAndUnsupported(t *testing.T) {
	d := newFakeDisplay()
	w := newTestWM(t, d)
	w.Dispatch(platform.MapRequest{Window: 7})
	d.reset()
	before := w.Layout()

	w.Dispatch(platform.Ignored{Kind: "ConfigureNotify"})
	w.Dispatch(platform.Unsupported{Code: 4})

	if len(d.cmds) != 0 {
		t.Errorf("expected no commands, got %q", d.cmds)
	}
	if !reflect.DeepEqual(before, w.Layout()) {
		t.Error("layout changed")
	}
}

func TestSwitchTo_Sequence(t *testing.T) {
	d := newFakeDisplay(screenA, screenB)
	w := newTestWM(t, d)
	w.SwitchTo(3)
	w.Dispatch(platform.MapRequest{Window: 30})
	w.AdvanceScreen()
	w.Dispatch(platform.MapRequest{Window: 31})
	w.SwitchTo(1)
	w.Dispatch(platform.MapRequest{Window: 10})
	d.pointer = platform.Point{X: 100, Y: 200}
	d.reset()

	w.SwitchTo(3)

	if w.slots.Workspace() != 3 || w.slots.Last() != 1 {
		t.Errorf("workspace=%d last=%d, want 3 and 1", w.slots.Workspace(), w.slots.Last())
	}
	if got := w.slots.Remembered(1); got != (platform.Point{X: 100, Y: 200}) {
		t.Errorf("remembered pointer for 1 = %v", got)
	}
	center := screenB.Center()
	want := []string{
		"raise placeholder",
		"sync",
		"raise 30",
		"raise 31",
		fmt.Sprintf("warp %d,%d", center.X, center.Y),
		"raise 31",
		"focus 31",
		"sync",
	}
	if !reflect.DeepEqual(d.cmds, want) {
		t.Errorf("commands = %q\nwant %q", d.cmds, want)
	}
}

func TestSwitchTo_SameWorkspaceIsNoop(t *testing.T) {
	d := newFakeDisplay()
	w := newTestWM(t, d)
	w.SwitchTo(4)
	d.reset()

	w.SwitchTo(4)

	if len(d.cmds) != 0 {
		t.Errorf("expected no commands, got %q", d.cmds)
	}
	if w.slots.Last() != 1 {
		t.Errorf("last = %d, want 1", w.slots.Last())
	}
}

func TestSwitchBack_Returns(t *testing.T) {
	d := newFakeDisplay()
	w := newTestWM(t, d)
	w.SwitchTo(6)
	w.SwitchTo(2)

	w.SwitchBack()
	if w.slots.Workspace() != 6 {
		t.Errorf("workspace = %d, want 6", w.slots.Workspace())
	}
	w.SwitchBack()
	if w.slots.Workspace() != 2 {
		t.Errorf("workspace = %d, want 2", w.slots.Workspace())
	}
}

func TestSwitchTo_OutOfRangeIgnored(t *testing.T) {
	d := newFakeDisplay()
	w := newTestWM(t, d)
	w.SwitchTo(Workspaces)
	w.SwitchTo(-1)
	if w.slots.Workspace() != 1 || len(d.cmds) != 0 {
		t.Errorf("workspace=%d cmds=%q", w.slots.Workspace(), d.cmds)
	}
}

func TestAdvanceScreen_SingleScreenNoop(t *testing.T) {
	d := newFakeDisplay()
	w := newTestWM(t, d)
	w.Dispatch(platform.MapRequest{Window: 7})
	d.reset()

	w.AdvanceScreen()

	if _, sc := w.slots.Current(); sc != 0 {
		t.Errorf("screen = %d, want 0", sc)
	}
	if len(d.cmds) != 0 {
		t.Errorf("expected no commands, got %q", d.cmds)
	}
}

func TestAdvanceScreen_WarpsToCenterAndWraps(t *testing.T) {
	d := newFakeDisplay(screenA, screenB)
	w := newTestWM(t, d)

	w.AdvanceScreen()
	if _, sc := w.slots.Current(); sc != 1 {
		t.Errorf("screen = %d, want 1", sc)
	}
	if d.pointer != screenB.Center() {
		t.Errorf("pointer = %v, want %v", d.pointer, screenB.Center())
	}

	w.AdvanceScreen()
	if _, sc := w.slots.Current(); sc != 0 {
		t.Errorf("screen = %d, want 0 after wrap", sc)
	}
	if d.pointer != screenA.Center() {
		t.Errorf("pointer = %v, want %v", d.pointer, screenA.Center())
	}
}

func TestAdvanceScreen_PerWorkspace(t *testing.T) {
	d := newFakeDisplay(screenA, screenB)
	w := newTestWM(t, d)
	w.AdvanceScreen()
	w.SwitchTo(2)

	if _, sc := w.slots.Current(); sc != 0 {
		t.Errorf("workspace 2 screen = %d, want 0", sc)
	}
	if w.slots.Screen(1) != 1 {
		t.Errorf("workspace 1 screen = %d, want 1", w.slots.Screen(1))
	}
}

func TestLayout_Snapshot(t *testing.T) {
	d := newFakeDisplay(screenA, screenB)
	w := newTestWM(t, d)
	w.Dispatch(platform.MapRequest{Window: 7})
	w.Dispatch(platform.MapRequest{Window: 9})
	w.SwitchTo(4)
	w.AdvanceScreen()
	w.Dispatch(platform.MapRequest{Window: 11})

	want := model.Layout{
		Workspace: 4, Screen: 1, Current: 11,
		Workspaces: []model.WorkspaceLayout{
			{Index: 1, Screens: []model.ScreenLayout{{Index: 0, Windows: []uint32{9, 7}}}},
			{Index: 4, Screens: []model.ScreenLayout{{Index: 1, Windows: []uint32{11}}}},
		},
	}
	if got := w.Layout(); !reflect.DeepEqual(got, want) {
		t.Errorf("Layout = %+v\nwant %+v", got, want)
	}
}

func TestRun_StopsOnConnectionClosed(t *testing.T) {
	d := newFakeDisplay()
	w := newTestWM(t, d)
	d.queue(platform.MapRequest{Window: 7})

	err := w.Run()
	if !errors.Is(err, platform.ErrConnectionClosed) {
		t.Fatalf("Run = %v, want ErrConnectionClosed", err)
	}
	if w.registry.Len() != 1 {
		t.Errorf("Len = %d, want 1", w.registry.Len())
	}
}

func TestRun_ContinuesAfterProtocolError(t *testing.T) {
	d := newFakeDisplay()
	w := newTestWM(t, d, model.Binding{Key: "Shift-q", Action: model.ActionQuit})
	d.errs = []error{&platform.ProtocolError{Sequence: 3, BadID: 7, Message: "BadWindow"}}
	d.queue(
		platform.MapRequest{Window: 7},
		platform.KeyPress{Code: d.keycodes["q"], State: 1<<3 | 1<<0},
		platform.MapRequest{Window: 8},
	)

	if err := w.Run(); err != nil {
		t.Fatalf("Run = %v, want nil after quit", err)
	}
	if _, ok := w.registry.Find(7); !ok {
		t.Error("event after protocol error was not handled")
	}
	if _, ok := w.registry.Find(8); ok {
		t.Error("event after quit was handled")
	}
}

func TestRun_OtherErrorsAreFatal(t *testing.T) {
	d := newFakeDisplay()
	w := newTestWM(t, d)
	boom := errors.New("boom")
	d.errs = []error{boom}
	if err := w.Run(); !errors.Is(err, boom) {
		t.Errorf("Run = %v, want boom", err)
	}
}
