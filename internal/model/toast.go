package model

import (
	"math"
	"time"
)

// ToastInfo is what callers supply when creating a toast. TimeoutMS is nil for
// toasts that stay until dismissed.
type ToastInfo struct {
	Text      string `json:"text"`
	Style     string `json:"style,omitempty"`
	TimeoutMS *int64 `json:"timeout,omitempty"`
}

const maxTimeoutMS = int64(math.MaxInt64 / int64(time.Millisecond))

// Timeout reports the auto-dismiss delay and whether one is set. Timeouts too
// large for a time.Duration saturate at the largest representable delay.
func (i ToastInfo) Timeout() (time.Duration, bool) {
	if i.TimeoutMS == nil {
		return 0, false
	}
	ms := *i.TimeoutMS
	switch {
	case ms > maxTimeoutMS:
		return time.Duration(math.MaxInt64), true
	case ms < -maxTimeoutMS:
		return time.Duration(math.MinInt64), true
	}
	return time.Duration(ms) * time.Millisecond, true
}

type Toast struct {
	ToastInfo
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// Millis converts d to the optional millisecond timeout used by ToastInfo.
func Millis(d time.Duration) *int64 {
	ms := d.Milliseconds()
	return &ms
}
