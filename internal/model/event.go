package model

const (
	ToastEventCreated = "created"
	ToastEventRemoved = "removed"

	RemoveReasonExpired   = "expired"
	RemoveReasonDismissed = "dismissed"
)

type ToastEvent struct {
	Type   string `json:"type"`
	Reason string `json:"reason,omitempty"`
	Toast  Toast  `json:"toast"`
}
