package model

import "time"

type HistoryEntry struct {
	Seq       int64     `json:"seq"`
	ToastID   string    `json:"toast_id"`
	Text      string    `json:"text"`
	Style     string    `json:"style"`
	TimeoutMS *int64    `json:"timeout,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func HistoryEntryFromToast(t Toast) HistoryEntry {
	return HistoryEntry{
		ToastID:   t.ID,
		Text:      t.Text,
		Style:     t.Style,
		TimeoutMS: t.TimeoutMS,
		CreatedAt: t.CreatedAt,
	}
}
