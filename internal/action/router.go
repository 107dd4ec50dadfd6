// ABOUTME: ActionEvent envelope implementing the "at most one handler
// ABOUTME: claims it" dispatch protocol across modals, panes, and globals

package action

// Event is an immutable bundle of resolved actions (usually exactly one,
// but kept as a slice so a single key resolution can in principle yield
// more than one typed action) plus the claim flag every consumer shares.
//
// Event values are always used through a pointer so every consumer sees
// the same already_handled flag (Dispatch order: modal stack top -> pane's
// direct handler -> pane's common handler -> global handler; any claim
// terminates dispatch).
type Event struct {
	globals []GlobalEvent
	commons []CommonEvent
	queues  []QueueAction
	logs    []LogsAction

	handled bool
}

// NewGlobalEvent wraps a single resolved GlobalEvent.
func NewGlobalEvent(e GlobalEvent) *Event { return &Event{globals: []GlobalEvent{e}} }

// NewCommonEvent wraps a single resolved CommonEvent.
func NewCommonEvent(e CommonEvent) *Event { return &Event{commons: []CommonEvent{e}} }

// NewQueueEvent wraps a single resolved QueueAction.
func NewQueueEvent(a QueueAction) *Event { return &Event{queues: []QueueAction{a}} }

// NewLogsEvent wraps a single resolved LogsAction.
func NewLogsEvent(a LogsAction) *Event { return &Event{logs: []LogsAction{a}} }

// Handled reports whether some consumer has already claimed this event.
func (e *Event) Handled() bool { return e.handled }

// ClaimGlobal returns the event's GlobalEvent and marks it handled, unless
// already claimed, in which case it returns (zero, false).
func (e *Event) ClaimGlobal() (GlobalEvent, bool) {
	if e.handled || len(e.globals) == 0 {
		return GlobalEvent{}, false
	}

	e.handled = true

	return e.globals[0], true
}

// ClaimCommon returns the event's CommonEvent and marks it handled, unless
// already claimed.
func (e *Event) ClaimCommon() (CommonEvent, bool) {
	if e.handled || len(e.commons) == 0 {
		return CommonEvent{}, false
	}

	e.handled = true

	return e.commons[0], true
}

// ClaimQueue returns the event's QueueAction and marks it handled, unless
// already claimed.
func (e *Event) ClaimQueue() (QueueAction, bool) {
	if e.handled || len(e.queues) == 0 {
		return 0, false
	}

	e.handled = true

	return e.queues[0], true
}

// ClaimLogs returns the event's LogsAction and marks it handled, unless
// already claimed.
func (e *Event) ClaimLogs() (LogsAction, bool) {
	if e.handled || len(e.logs) == 0 {
		return 0, false
	}

	e.handled = true

	return e.logs[0], true
}

// Abandon resets the handled flag, letting a later consumer claim this
// event after all. Used by a consumer that provisionally claimed an
// action but decided it can't actually act on it.
func (e *Event) Abandon() {
	e.handled = false
}

// Consumer is implemented by anything that can attempt to claim and act on
// an Event: panes, modals, and the global handler all satisfy this with
// their own internal claim-then-switch logic. Dispatch stops at the first
// consumer whose Handle call leaves the event Handled.
type Consumer interface {
	Handle(e *Event) error
}

// Dispatch runs consumers in order (modal stack top, pane direct, pane
// common, global, or whatever order the caller supplies) and stops as soon
// as one of them claims the event.
func Dispatch(e *Event, consumers ...Consumer) error {
	for _, c := range consumers {
		if err := c.Handle(e); err != nil {
			return err
		}

		if e.Handled() {
			return nil
		}
	}

	return nil
}
