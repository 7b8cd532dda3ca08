package templates

import (
	"encoding/json"
	"fmt"

	"github.com/pullpane/pullpane-go/internal/domain/entities/markup"
	"github.com/pullpane/pullpane-go/internal/domain/events"
)

// DefaultStatePath is the endpoint dialog state events are dispatched to.
const DefaultStatePath = "/api/v1/state"

// HxActionEncoder encodes dialog state events as HTMX attributes: activating
// the node posts the event to the state endpoint and swaps the re-rendered
// dialog fragment in place.
type HxActionEncoder struct {
	StatePath string
}

// NewHxActionEncoder creates an encoder targeting the default state endpoint.
func NewHxActionEncoder() *HxActionEncoder {
	return &HxActionEncoder{StatePath: DefaultStatePath}
}

// EncodeAction implements ActionEncoder for events.DialogStateEvent. Other
// action values encode to no attributes.
func (e *HxActionEncoder) EncodeAction(action any) []markup.Attr {
	event, ok := action.(events.DialogStateEvent)
	if !ok {
		return nil
	}

	vals, err := json.Marshal(map[string]string{
		"dialogId": event.DialogID,
		"verb":     event.Verb,
	})
	if err != nil {
		return nil
	}

	return []markup.Attr{
		{Key: "hx-post", Value: e.StatePath},
		{Key: "hx-vals", Value: string(vals)},
		{Key: "hx-target", Value: fmt.Sprintf("#dialog-%s", event.DialogID)},
		{Key: "hx-swap", Value: "outerHTML"},
	}
}
