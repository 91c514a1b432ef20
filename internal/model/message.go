package model

// Message is a queued controller message as served by GET /api/messages.
type Message struct {
	Text  string `json:"text"`
	Style string `json:"style"`
}
