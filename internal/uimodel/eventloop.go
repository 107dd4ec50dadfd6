// ABOUTME: Root bubbletea model: the single-threaded cooperative loop that
// ABOUTME: multiplexes terminal input, daemon push events, and work results (C9)

package uimodel

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"mpctui/internal/action"
	"mpctui/internal/keyseq"
	"mpctui/internal/mpd"
	"mpctui/internal/workerpool"
)

// daemonEventMsg wraps one pushed subsystem-change notification.
type daemonEventMsg mpd.Subsystem

// daemonErrMsg wraps an idle-connection error (reconnect in progress).
type daemonErrMsg error

// workResultMsg wraps one completed background job.
type workResultMsg workerpool.Result

// renderTickMsg drives the capped-FPS repaint.
type renderTickMsg time.Time

// seqTimeoutMsg fires when the key-sequence inactivity timer expires.
type seqTimeoutMsg struct{}

// Model is the bubbletea root model: it owns the Ctx and one key
// Sequencer over every scope map (modals and panes share it), and
// implements tea.Model by delegating actual drawing/state changes to the
// active tab's panes and the open modal stack.
type Model struct {
	ctx *Ctx

	sequencer *keyseq.Sequencer

	daemonEvents <-chan mpd.Subsystem
	daemonErrs   <-chan error
	stopDaemon   chan struct{}

	width, height int

	quitRequested bool
}

// NewModel builds the root model. address/password are used to open the
// dedicated idle connection; the command connection is already present on
// ctx.Client.
func NewModel(ctx *Ctx, address, password string) *Model {
	stop := make(chan struct{})
	events, errs := mpd.KeepAlive(address, password, stop, nil)

	scopeOrder := []string{"logs", "queue", "navigation", "global"}

	var maps []*keyseq.Map
	for _, name := range scopeOrder {
		if m, ok := ctx.Scopes[name]; ok {
			maps = append(maps, m)
		}
	}

	return &Model{
		ctx:          ctx,
		sequencer:    keyseq.NewSequencer(maps...),
		daemonEvents: events,
		daemonErrs:   errs,
		stopDaemon:   stop,
	}
}

// Init starts the daemon-event listener, the work-queue listener, and the
// render timer.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		waitDaemonEvent(m.daemonEvents),
		waitDaemonErr(m.daemonErrs),
		waitWorkResult(m.ctx.Pool.Results),
		renderTick(m.ctx.Config.EffectiveFPS()),
	)
}

func waitDaemonEvent(ch <-chan mpd.Subsystem) tea.Cmd {
	return func() tea.Msg {
		sub, ok := <-ch
		if !ok {
			return nil
		}

		return daemonEventMsg(sub)
	}
}

func waitDaemonErr(ch <-chan error) tea.Cmd {
	return func() tea.Msg {
		err, ok := <-ch
		if !ok {
			return nil
		}

		return daemonErrMsg(err)
	}
}

func waitWorkResult(ch <-chan workerpool.Result) tea.Cmd {
	return func() tea.Msg {
		r, ok := <-ch
		if !ok {
			return nil
		}

		return workResultMsg(r)
	}
}

func renderTick(fps int) tea.Cmd {
	period := time.Second / time.Duration(fps)

	return tea.Tick(period, func(t time.Time) tea.Msg {
		return renderTickMsg(t)
	})
}

// Update implements tea.Model, dispatching each message kind to its own
// handler and always re-arming the channel reads it just drained.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.relayout()

		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

		return m, nil

	case daemonEventMsg:
		m.handleDaemonEvent(mpd.Subsystem(msg))

		return m, waitDaemonEvent(m.daemonEvents)

	case daemonErrMsg:
		return m, waitDaemonErr(m.daemonErrs)

	case workResultMsg:
		m.handleWorkResult(workerpool.Result(msg))

		return m, waitWorkResult(m.ctx.Pool.Results)

	case renderTickMsg:
		m.ctx.Frame++
		m.ctx.PropertyCtx.Frame = m.ctx.Frame

		return m, renderTick(m.ctx.Config.EffectiveFPS())

	case seqTimeoutMsg:
		m.fireSequencer(m.sequencer.Timeout())

		if m.quitRequested {
			return m, tea.Quit
		}

		return m, nil

	case tea.QuitMsg:
		return m, tea.Quit
	}

	return m, nil
}

func (m *Model) relayout() {
	area := Area{X: 0, Y: 0, W: m.width, H: m.height}

	for _, leaf := range m.ctx.ActiveTabLayout(area) {
		if p, ok := m.ctx.Tabs[m.ctx.ActiveTab].Panes[leaf.Ref]; ok {
			p.Resize(leaf.Area)
		}
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if top := m.ctx.ModalStack.Top(); top != nil {
		if top.HandleKey(msg) {
			return nil
		}
	}

	k, err := keyFromTea(msg)
	if err != nil {
		return nil
	}

	result, waiting := m.sequencer.Feed(k)
	if waiting {
		return tea.Tick(keyseq.DefaultTimeout, func(time.Time) tea.Msg { return seqTimeoutMsg{} })
	}

	m.fireSequencer(result)

	if m.quitRequested {
		return tea.Quit
	}

	return nil
}

func (m *Model) fireSequencer(r *keyseq.FireResult) {
	if r == nil {
		return
	}

	var e *action.Event

	switch r.Scope {
	case "queue":
		e = action.NewQueueEvent(r.Action.(action.QueueAction))
	case "logs":
		e = action.NewLogsEvent(r.Action.(action.LogsAction))
	case "navigation":
		e = action.NewCommonEvent(action.CommonEvent{Action: r.Action.(action.CommonAction)})
	default:
		e = action.NewGlobalEvent(action.GlobalEvent{Action: r.Action.(action.GlobalAction)})
	}

	m.routeAction(e)
}

// routeAction implements the claim/abandon dispatch order: modal stack top,
// then the active tab's panes, then the global handler for an action that
// is still unclaimed.
func (m *Model) routeAction(e *action.Event) {
	m.ctx.ModalStack.HandleAction(e)
	if e.Handled() {
		return
	}

	if m.ctx.ActiveTab < 0 || m.ctx.ActiveTab >= len(m.ctx.Tabs) {
		return
	}

	for _, p := range m.ctx.Tabs[m.ctx.ActiveTab].Panes {
		p.HandleAction(e)

		if e.Handled() {
			return
		}
	}

	m.handleGlobal(e)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if m.ctx.ActiveTab < 0 || m.ctx.ActiveTab >= len(m.ctx.Tabs) {
		return
	}

	for _, p := range m.ctx.Tabs[m.ctx.ActiveTab].Panes {
		if p.HandleMouseEvent(msg) {
			return
		}
	}
}

func (m *Model) handleDaemonEvent(sub mpd.Subsystem) {
	switch sub {
	case mpd.SubsystemPlayer, mpd.SubsystemMixer, mpd.SubsystemOptions:
		if st, err := m.ctx.Client.Status(); err == nil {
			m.ctx.Status = st
		}

		if song, ok, err := m.ctx.Client.CurrentSong(); err == nil && ok {
			m.ctx.CurrentSong = song
		}
	}

	for _, tab := range m.ctx.Tabs {
		for _, p := range tab.Panes {
			p.OnEvent(sub)
		}
	}
}

func (m *Model) handleWorkResult(r workerpool.Result) {
	qr, ok := m.ctx.Queries.Dispatch(r)
	if !ok {
		return
	}

	for _, tab := range m.ctx.Tabs {
		if p, ok := tab.Panes[qr.Key.Originator]; ok {
			p.OnQueryFinished(qr)
		}
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.ctx.ActiveTab < 0 || m.ctx.ActiveTab >= len(m.ctx.Tabs) {
		return ""
	}

	out := renderTab(m.ctx, m.width, m.height)

	if top := m.ctx.ModalStack.Top(); top != nil {
		return overlay(out, top.Render(Area{X: 0, Y: 0, W: m.width, H: m.height}))
	}

	return out
}
