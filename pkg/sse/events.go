package sse

// EventType names the events sent on the navbar stream.
type EventType string

const (
	// EventMenu carries a freshly rendered navbar menu.
	EventMenu EventType = "menu"

	// EventError is emitted when the stream cannot continue.
	EventError EventType = "error"
)

// MenuEvent carries the menu fragment rendered for a connection status.
type MenuEvent struct {
	Type   string `json:"type"`
	Status string `json:"status"`
	HTML   string `json:"html"`
}

func NewMenuEvent(status, html string) MenuEvent {
	return MenuEvent{
		Type:   string(EventMenu),
		Status: status,
		HTML:   html,
	}
}

// ErrorEvent is emitted when an error occurs during streaming.
type ErrorEvent struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func NewErrorEvent(errMsg string) ErrorEvent {
	return ErrorEvent{
		Type:  string(EventError),
		Error: errMsg,
	}
}
