package cli

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/go-drift/carousel/pkg/autoplay"
	"github.com/go-drift/carousel/pkg/carousel"
	"github.com/go-drift/carousel/pkg/gestures"
	"github.com/go-drift/carousel/pkg/indicator"
)

// Demo styles
var (
	itemStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1).
			Foreground(lipgloss.Color("252"))
	activeItemStyle = itemStyle.
			BorderForeground(lipgloss.Color("212")).
			Foreground(lipgloss.Color("212")).
			Bold(true)
	dotActiveStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true)
	dotCloseStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dotFarStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// pumpInterval is how often the event loop steps autoplay tickers.
const pumpInterval = 100 * time.Millisecond

// itemStripHeight is the number of terminal rows the item boxes occupy,
// used to decide whether the mouse is hovering the carousel.
const itemStripHeight = 3

// tickMsg pumps the autoplay tickers.
type tickMsg time.Time

// session holds interaction state shared with autoplay's hover guard; the
// bubbletea model is copied on every update, so this lives behind a
// pointer.
type session struct {
	hovering bool
}

// demoModel is the bubbletea model hosting the carousel engine.
type demoModel struct {
	ctrl    *carousel.Controller
	tracker *gestures.DragTracker
	driver  *autoplay.Autoplay
	sess    *session
	labels  []string
	width   int
}

// runDemo mounts the carousel in a bubbletea program with mouse reporting
// enabled and blocks until the user quits.
func runDemo(ctx context.Context, labels []string, opts carousel.Options) error {
	ctrl, err := carousel.NewController(len(labels), opts)
	if err != nil {
		return err
	}
	sess := &session{}
	driver := autoplay.New(ctrl)
	driver.Hovering = func() bool { return sess.hovering }

	m := demoModel{
		ctrl:    ctrl,
		tracker: ctrl.NewDragTracker(),
		driver:  driver,
		sess:    sess,
		labels:  labels,
	}

	prog := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, err = prog.Run()
	driver.Stop()
	return err
}

func pumpCmd() tea.Cmd {
	return tea.Tick(pumpInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m demoModel) Init() tea.Cmd {
	if m.ctrl.Options().Autoplay {
		m.driver.Start()
		return pumpCmd()
	}
	return nil
}

func (m demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.measure()

	case tickMsg:
		autoplay.StepTickers()
		return m, pumpCmd()

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			m.driver.Stop()
			return m, tea.Quit
		case "left", "h":
			m.ctrl.PreviousItem()
		case "right", "l":
			m.ctrl.NextItem()
		case "pgup", "[":
			m.ctrl.PreviousPage()
		case "pgdown", "]":
			m.ctrl.NextPage()
		}

	case tea.MouseMsg:
		m.handleMouse(msg)
	}
	return m, nil
}

// handleMouse projects terminal mouse events onto the carousel's scroll
// axis and feeds them to the drag tracker.
func (m demoModel) handleMouse(msg tea.MouseMsg) {
	m.sess.hovering = msg.Y < itemStripHeight

	pos := float64(msg.X)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft && m.sess.hovering {
			m.tracker.HandlePointer(gestures.PointerEvent{Position: pos, Phase: gestures.PointerPhaseDown})
		}
	case tea.MouseActionMotion:
		if m.tracker.IsActive() && !m.sess.hovering {
			// Dragging off the strip commits the drag.
			m.tracker.Leave()
			return
		}
		m.tracker.HandlePointer(gestures.PointerEvent{Position: pos, Phase: gestures.PointerPhaseMove})
	case tea.MouseActionRelease:
		m.tracker.HandlePointer(gestures.PointerEvent{Position: pos, Phase: gestures.PointerPhaseUp})
	}
}

// measure reports the per-slot width in terminal cells to the controller.
func (m demoModel) measure() {
	perView := m.ctrl.Options().ItemsPerView
	if m.width <= 0 || perView <= 0 {
		return
	}
	slot := m.width / perView
	if slot < 1 {
		slot = 1
	}
	m.ctrl.SetItemWidth(float64(slot))
}

func (m demoModel) View() string {
	state := m.ctrl.State()

	var b strings.Builder
	b.WriteString(m.viewItems(state))
	b.WriteString("\n")
	b.WriteString(m.viewDots(state))
	b.WriteString("\n\n")
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"index %d/%d  offset %.0f  dragging %v  repeating %v",
		state.CurrentIndex, len(m.labels)-1, state.ScrollOffset, state.Dragging, state.Repeating,
	)))
	b.WriteString("\n")
	b.WriteString(statusStyle.Render("←/→ item  [/] page  drag to swipe  q quit"))
	return b.String()
}

// viewItems renders the window of visible items, derived from the live
// scroll offset so mid-drag positions show the in-between window.
func (m demoModel) viewItems(state carousel.State) string {
	perView := m.ctrl.Options().ItemsPerView
	width := m.ctrl.ItemWidth()

	first := 0
	if width > 0 {
		first = int(math.Round(state.ScrollOffset / width))
	}
	if max := len(m.labels) - perView; first > max {
		first = max
	}
	if first < 0 {
		first = 0
	}

	boxes := make([]string, 0, perView)
	for i := first; i < first+perView && i < len(m.labels); i++ {
		style := itemStyle
		if i == state.CurrentIndex {
			style = activeItemStyle
		}
		boxes = append(boxes, style.Render(m.labels[i]))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
}

// viewDots renders one dot per window the view can occupy.
func (m demoModel) viewDots(state carousel.State) string {
	count := indicator.Count(len(m.labels), m.ctrl.Options().ItemsPerView)
	if count == 0 {
		return ""
	}
	active := state.CurrentIndex
	if active > count-1 {
		active = count - 1
	}

	var b strings.Builder
	for i := 0; i < count; i++ {
		switch indicator.Classify(i, active, count) {
		case indicator.Active:
			b.WriteString(dotActiveStyle.Render("●"))
		case indicator.Close:
			b.WriteString(dotCloseStyle.Render("●"))
		default:
			b.WriteString(dotFarStyle.Render("·"))
		}
		b.WriteString(" ")
	}
	return b.String()
}
