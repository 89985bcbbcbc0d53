package cli

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/go-drift/carousel/pkg/autoplay"
	"github.com/go-drift/carousel/pkg/carousel"
)

func newDemoModel(t *testing.T, labels []string, opts carousel.Options) demoModel {
	t.Helper()
	ctrl, err := carousel.NewController(len(labels), opts)
	if err != nil {
		t.Fatal(err)
	}
	sess := &session{}
	driver := autoplay.New(ctrl)
	driver.Hovering = func() bool { return sess.hovering }
	t.Cleanup(driver.Stop)
	return demoModel{
		ctrl:    ctrl,
		tracker: ctrl.NewDragTracker(),
		driver:  driver,
		sess:    sess,
		labels:  labels,
	}
}

func TestDemoModel_MeasureReportsSlotWidth(t *testing.T) {
	m := newDemoModel(t, []string{"a", "b", "c", "d", "e", "f"}, carousel.Options{ItemsPerView: 3})

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 90, Height: 24})
	m = updated.(demoModel)

	if got := m.ctrl.ItemWidth(); got != 30 {
		t.Errorf("item width = %v, want 90/3 = 30", got)
	}
}

func TestDemoModel_KeysDriveNavigation(t *testing.T) {
	m := newDemoModel(t, []string{"a", "b", "c", "d", "e", "f"}, carousel.Options{ItemsPerView: 2})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(demoModel)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(demoModel)
	if got := m.ctrl.CurrentIndex(); got != 1 {
		t.Errorf("index after right key = %d, want 1", got)
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(demoModel)
	if got := m.ctrl.CurrentIndex(); got != 0 {
		t.Errorf("index after left key = %d, want 0", got)
	}
}

func TestDemoModel_MouseDragSwipes(t *testing.T) {
	m := newDemoModel(t, []string{"a", "b", "c", "d", "e", "f"}, carousel.Options{ItemsPerView: 2})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(demoModel)
	// Slot width is 40 cells; a 25-cell leftward drag crosses the midpoint.

	press := tea.MouseMsg{X: 60, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	updated, _ = m.Update(press)
	m = updated.(demoModel)

	move := tea.MouseMsg{X: 35, Y: 1, Action: tea.MouseActionMotion}
	updated, _ = m.Update(move)
	m = updated.(demoModel)
	if !m.ctrl.IsDragging() {
		t.Fatal("motion past the threshold should commit a drag")
	}

	release := tea.MouseMsg{X: 35, Y: 1, Action: tea.MouseActionRelease}
	updated, _ = m.Update(release)
	m = updated.(demoModel)

	if got := m.ctrl.CurrentIndex(); got != 1 {
		t.Errorf("index after swipe = %d, want 1", got)
	}
}

func TestDemoModel_ViewShowsVisibleWindow(t *testing.T) {
	labels := []string{"alpha", "bravo", "charlie", "delta", "echo", "foxtrot"}
	m := newDemoModel(t, labels, carousel.Options{ItemsPerView: 2})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = updated.(demoModel)

	m.ctrl.NextPage()
	view := m.View()

	if !strings.Contains(view, "charlie") || !strings.Contains(view, "delta") {
		t.Errorf("view should show the second page, got:\n%s", view)
	}
	if strings.Contains(view, "alpha") {
		t.Errorf("view should not show the first page, got:\n%s", view)
	}
}
