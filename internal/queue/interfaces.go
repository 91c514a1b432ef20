package queue

import "context"

// Consumer feeds toast payloads from the broker until ctx ends.
type Consumer interface {
	Start(ctx context.Context) error
}

type Publisher interface {
	Publish(ctx context.Context, payload []byte, routingKey string) error
}

// RoutingKey builds "<prefix>.<style>", with "neutral" standing in for the
// empty style so topic bindings like "toast.*" still match.
func RoutingKey(prefix, style string) string {
	if prefix == "" {
		prefix = "toast"
	}
	if style == "" {
		style = "neutral"
	}
	return prefix + "." + style
}
