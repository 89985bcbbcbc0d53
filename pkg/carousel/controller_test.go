package carousel

import "testing"

// mustController builds a controller with a measured item width of 100.
func mustController(t *testing.T, length int, opts Options) *Controller {
	t.Helper()
	ctrl, err := NewController(length, opts)
	if err != nil {
		t.Fatalf("NewController(%d, %+v): %v", length, opts, err)
	}
	ctrl.SetItemWidth(100)
	return ctrl
}

func TestController_PreviousItemAtLeftBoundary(t *testing.T) {
	// length=10, itemsPerView=4, no looping: previous at index 0 is a no-op.
	ctrl := mustController(t, 10, Options{ItemsPerView: 4})

	ctrl.PreviousItem()

	if got := ctrl.CurrentIndex(); got != 0 {
		t.Errorf("index after previous at boundary = %d, want 0", got)
	}
}

func TestController_NextItemProgression(t *testing.T) {
	// length=10, itemsPerView=4: four advances walk 1,2,3,4 without wrapping.
	ctrl := mustController(t, 10, Options{ItemsPerView: 4})

	want := []int{1, 2, 3, 4}
	for i, expected := range want {
		ctrl.NextItem()
		if got := ctrl.CurrentIndex(); got != expected {
			t.Fatalf("advance %d: index = %d, want %d", i+1, got, expected)
		}
	}
}

func TestController_NextItemClampsWithoutLoop(t *testing.T) {
	ctrl := mustController(t, 10, Options{ItemsPerView: 4})

	// Drive to the right boundary and past it.
	for i := 0; i < 20; i++ {
		ctrl.NextItem()
	}

	if got := ctrl.CurrentIndex(); got != 6 {
		t.Errorf("index after saturating next = %d, want last window start 6", got)
	}
	if got := ctrl.ScrollOffset(); got != 600 {
		t.Errorf("offset = %v, want 600", got)
	}
}

func TestController_NextItemWrapsWhenRepeating(t *testing.T) {
	// length=5, itemsPerView=4, looping: from the last index next wraps to 0.
	ctrl := mustController(t, 5, Options{ItemsPerView: 4, InfiniteLoop: true})
	if !ctrl.IsRepeating() {
		t.Fatal("5 items with 4 per view and looping should repeat")
	}

	ctrl.SnapToOffset(400) // land on index 4
	if got := ctrl.CurrentIndex(); got != 4 {
		t.Fatalf("setup index = %d, want 4", got)
	}

	ctrl.NextItem()

	if got := ctrl.CurrentIndex(); got != 0 {
		t.Errorf("index after wrap = %d, want 0", got)
	}
}

func TestController_RepeatingCyclesAllIndices(t *testing.T) {
	// With one item per view, length advances return to the start after a
	// full cycle, visiting every index once.
	const length = 7
	ctrl := mustController(t, length, Options{ItemsPerView: 1, InfiniteLoop: true})

	seen := make(map[int]bool)
	for i := 0; i < length; i++ {
		ctrl.NextItem()
		seen[ctrl.CurrentIndex()] = true
	}

	if got := ctrl.CurrentIndex(); got != 0 {
		t.Errorf("index after %d advances = %d, want 0", length, got)
	}
	if len(seen) != length {
		t.Errorf("visited %d distinct indices, want %d", len(seen), length)
	}
}

func TestController_PreviousItemWrapsWhenRepeating(t *testing.T) {
	ctrl := mustController(t, 7, Options{ItemsPerView: 1, InfiniteLoop: true})

	ctrl.PreviousItem()

	if got := ctrl.CurrentIndex(); got != 6 {
		t.Errorf("index after previous at 0 = %d, want 6", got)
	}
}

func TestController_NextPage(t *testing.T) {
	// length=10, itemsPerView=4, remainder 2: strides run until the guard
	// index+2 < 10 fails, and each landing stays in range.
	ctrl := mustController(t, 10, Options{ItemsPerView: 4})

	ctrl.NextPage()
	if got := ctrl.CurrentIndex(); got != 4 {
		t.Fatalf("first page advance = %d, want 4", got)
	}

	ctrl.NextPage()
	if got := ctrl.CurrentIndex(); got != 8 {
		t.Fatalf("second page advance = %d, want 8", got)
	}

	// 8+2 < 10 fails: without looping this is a no-op.
	ctrl.NextPage()
	if got := ctrl.CurrentIndex(); got != 8 {
		t.Errorf("page advance past remainder window = %d, want 8", got)
	}
}

func TestController_NextPageClampsStride(t *testing.T) {
	// length=9, itemsPerView=4, remainder 1: from index 7 the guard holds
	// but a full stride would overshoot; the landing clamps to 8.
	ctrl := mustController(t, 9, Options{ItemsPerView: 4})

	ctrl.SnapToOffset(700)
	if got := ctrl.CurrentIndex(); got != 7 {
		t.Fatalf("setup index = %d, want 7", got)
	}

	ctrl.NextPage()

	if got := ctrl.CurrentIndex(); got != 8 {
		t.Errorf("clamped page advance = %d, want 8", got)
	}
}

func TestController_NextPageWrapsWhenRepeating(t *testing.T) {
	ctrl := mustController(t, 10, Options{ItemsPerView: 4, InfiniteLoop: true})

	ctrl.NextPage()
	ctrl.NextPage()
	if got := ctrl.CurrentIndex(); got != 8 {
		t.Fatalf("setup index = %d, want 8", got)
	}

	ctrl.NextPage()

	if got := ctrl.CurrentIndex(); got != 0 {
		t.Errorf("page wrap landed on %d, want 0", got)
	}
}

func TestController_PreviousPage(t *testing.T) {
	ctrl := mustController(t, 10, Options{ItemsPerView: 4})
	ctrl.SnapToOffset(800)

	ctrl.PreviousPage()
	if got := ctrl.CurrentIndex(); got != 4 {
		t.Fatalf("first page retreat = %d, want 4", got)
	}

	ctrl.PreviousPage()
	if got := ctrl.CurrentIndex(); got != 0 {
		t.Fatalf("second page retreat = %d, want 0", got)
	}

	// Below a full stride without looping: no-op.
	ctrl.PreviousPage()
	if got := ctrl.CurrentIndex(); got != 0 {
		t.Errorf("page retreat at 0 = %d, want 0", got)
	}
}

func TestController_PreviousPageWrapsToLastItem(t *testing.T) {
	// The wrap target is the single last item, not the last full page.
	ctrl := mustController(t, 10, Options{ItemsPerView: 4, InfiniteLoop: true})

	ctrl.PreviousPage()

	if got := ctrl.CurrentIndex(); got != 9 {
		t.Errorf("page wrap landed on %d, want 9", got)
	}
}

func TestController_IndexStaysInRange(t *testing.T) {
	// Exhaustive sweep: no command sequence moves the index out of range.
	for _, loop := range []bool{false, true} {
		ctrl := mustController(t, 10, Options{ItemsPerView: 3, InfiniteLoop: loop})
		commands := []func(){ctrl.NextItem, ctrl.NextPage, ctrl.PreviousItem, ctrl.PreviousPage}
		for i := 0; i < 200; i++ {
			commands[i%len(commands)]()
			if idx := ctrl.CurrentIndex(); idx < 0 || idx > 9 {
				t.Fatalf("loop=%v: command %d produced out-of-range index %d", loop, i, idx)
			}
		}
	}
}

func TestController_SnapToOffset(t *testing.T) {
	ctrl := mustController(t, 10, Options{ItemsPerView: 4})

	cases := []struct {
		raw  float64
		want int
	}{
		{0, 0},
		{49, 0},
		{50, 0},  // exact midpoint favors the left slot
		{51, 1},  // right half of slot 0
		{149, 1}, // left half of slot 1
		{151, 2},
		{-30, 0},   // before the first slot clamps to 0
		{5000, 9},  // past the last slot clamps to the last index
		{949, 9},   // right half of the final slot still clamps
	}
	for _, tc := range cases {
		ctrl.SnapToOffset(tc.raw)
		if got := ctrl.CurrentIndex(); got != tc.want {
			t.Errorf("SnapToOffset(%v) = %d, want %d", tc.raw, got, tc.want)
		}
		if got, want := ctrl.ScrollOffset(), float64(tc.want)*100; got != want {
			t.Errorf("SnapToOffset(%v) offset = %v, want %v", tc.raw, got, want)
		}
	}
}

func TestController_SnapIsIdempotent(t *testing.T) {
	ctrl := mustController(t, 10, Options{ItemsPerView: 4})

	ctrl.SnapToOffset(437)
	first := ctrl.CurrentIndex()
	ctrl.SnapToOffset(437)
	second := ctrl.CurrentIndex()

	if first != second {
		t.Errorf("snap resolved %d then %d for the same offset", first, second)
	}
}

func TestController_ZeroWidthMakesCommandsNoOps(t *testing.T) {
	ctrl, err := NewController(10, Options{ItemsPerView: 4})
	if err != nil {
		t.Fatal(err)
	}

	ctrl.NextItem()
	ctrl.NextPage()
	ctrl.PreviousItem()
	ctrl.PreviousPage()
	ctrl.SnapToOffset(250)

	if got := ctrl.CurrentIndex(); got != 0 {
		t.Errorf("commands before geometry measured moved index to %d", got)
	}
	if got := ctrl.ScrollOffset(); got != 0 {
		t.Errorf("offset = %v, want 0", got)
	}
}

func TestController_SetItemWidthRecomputesOffset(t *testing.T) {
	ctrl := mustController(t, 10, Options{ItemsPerView: 4})
	ctrl.NextItem()
	ctrl.NextItem()

	ctrl.SetItemWidth(50)

	if got := ctrl.ScrollOffset(); got != 100 {
		t.Errorf("offset after remeasure = %v, want index 2 * width 50 = 100", got)
	}
}

func TestController_Listeners(t *testing.T) {
	ctrl := mustController(t, 10, Options{ItemsPerView: 4})

	var fired int
	unsubscribe := ctrl.AddListener(func() { fired++ })

	ctrl.NextItem()
	if fired != 1 {
		t.Errorf("listener fired %d times after one change, want 1", fired)
	}

	// A boundary no-op must not notify.
	ctrl.PreviousPage()
	if fired != 1 {
		t.Errorf("listener fired on a no-op, count = %d", fired)
	}

	unsubscribe()
	ctrl.NextItem()
	if fired != 1 {
		t.Errorf("listener fired after unsubscribe, count = %d", fired)
	}
}

func TestController_DragLifecycle(t *testing.T) {
	ctrl := mustController(t, 10, Options{ItemsPerView: 4})
	tracker := ctrl.NewDragTracker()

	tracker.PressStart(500)
	if ctrl.IsDragging() {
		t.Error("an uncommitted press must not mark the controller dragging")
	}
	if !ctrl.IsInteracting() {
		t.Error("an open session must mark the controller interacting")
	}

	tracker.Move(430) // walk 70 left-to-right: content scrolls forward
	if !ctrl.IsDragging() {
		t.Fatal("controller should report the committed drag")
	}
	if got := ctrl.ScrollOffset(); got != 70 {
		t.Errorf("live offset = %v, want baseline 0 + walk 70", got)
	}
	if got := ctrl.CurrentIndex(); got != 0 {
		t.Errorf("index must not change mid-drag, got %d", got)
	}

	tracker.Release()
	if ctrl.IsDragging() {
		t.Error("release must end the drag")
	}
	if ctrl.IsInteracting() {
		t.Error("release must end the interaction")
	}
	if got := ctrl.CurrentIndex(); got != 1 {
		t.Errorf("release snapped to %d, want 1 (offset 70 is right of midpoint 50)", got)
	}
	if got := ctrl.ScrollOffset(); got != 100 {
		t.Errorf("offset after snap = %v, want 100", got)
	}
}

func TestController_TapDoesNotSnap(t *testing.T) {
	ctrl := mustController(t, 10, Options{ItemsPerView: 4})
	ctrl.SnapToOffset(300)
	tracker := ctrl.NewDragTracker()

	var fired int
	ctrl.AddListener(func() { fired++ })

	tracker.PressStart(500)
	tracker.Move(501) // within the 2px threshold
	tracker.Release()

	if fired != 0 {
		t.Errorf("a tap must not touch controller state, %d notifications", fired)
	}
	if got := ctrl.CurrentIndex(); got != 3 {
		t.Errorf("index = %d, want unchanged 3", got)
	}
}

func TestController_FreeScrollKeepsOffset(t *testing.T) {
	ctrl := mustController(t, 10, Options{ItemsPerView: 4, FreeScroll: true})
	tracker := ctrl.NewDragTracker()

	tracker.PressStart(500)
	tracker.Move(360) // walk 140, live offset 140
	tracker.Release()

	if ctrl.IsDragging() {
		t.Error("release must end the drag")
	}
	if got := ctrl.ScrollOffset(); got != 140 {
		t.Errorf("free scroll offset = %v, want 140 (no snapping)", got)
	}
	if got := ctrl.CurrentIndex(); got != 0 {
		t.Errorf("free scroll must not move the index, got %d", got)
	}
}

func TestController_RTLTrackerInvertsWalk(t *testing.T) {
	ctrl := mustController(t, 10, Options{ItemsPerView: 4, Direction: DirectionRTL})
	ctrl.SnapToOffset(300)
	tracker := ctrl.NewDragTracker()

	tracker.PressStart(100)
	tracker.Move(150) // walk +50; RTL adds instead of subtracting

	if got := ctrl.ScrollOffset(); got != 350 {
		t.Errorf("RTL live offset = %v, want 350", got)
	}
}

func TestNewController_RejectsBadOptions(t *testing.T) {
	cases := []struct {
		name   string
		length int
		opts   Options
	}{
		{"zero itemsPerView", 10, Options{}},
		{"negative itemsPerView", 10, Options{ItemsPerView: -1}},
		{"itemsPerView beyond length", 3, Options{ItemsPerView: 4}},
		{"negative sensitivity", 10, Options{ItemsPerView: 2, ScrollSensitivity: -1}},
		{"negative drag distance", 10, Options{ItemsPerView: 2, MinDragDistance: -3}},
		{"negative autoplay interval", 10, Options{ItemsPerView: 2, AutoplayInterval: -1}},
		{"negative length", -1, Options{ItemsPerView: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := NewController(tc.length, tc.opts); err == nil {
				t.Errorf("NewController(%d, %+v) accepted invalid options", tc.length, tc.opts)
			}
		})
	}
}
