// Package events provides dialog interaction event types.
package events

// Verbs carried by dialog state events.
const (
	VerbOpened = "OPENED"
	VerbClosed = "CLOSED"
)

// DialogStateEvent describes a requested dialog state transition. It is the
// action descriptor attached to backdrop nodes and dispatched through the
// state endpoint; renderers treat it as opaque.
type DialogStateEvent struct {
	DialogID string
	Verb     string
}

// Close builds the close action for a dialog.
func Close(dialogID string) DialogStateEvent {
	return DialogStateEvent{DialogID: dialogID, Verb: VerbClosed}
}

// Open builds the open action for a dialog.
func Open(dialogID string) DialogStateEvent {
	return DialogStateEvent{DialogID: dialogID, Verb: VerbOpened}
}

// IsOpen reports whether the event requests the open state.
func (e DialogStateEvent) IsOpen() bool {
	return e.Verb == VerbOpened
}
