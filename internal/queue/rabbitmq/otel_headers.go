package rabbitmq

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel/propagation"
)

// amqpHeaderCarrier carries trace context in AMQP message headers. Brokers and
// other clients may hand header values back as []byte, so Get accepts both.
type amqpHeaderCarrier amqp.Table

var _ propagation.TextMapCarrier = amqpHeaderCarrier(nil)

func (c amqpHeaderCarrier) Get(key string) string {
	switch v := c[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	default:
		return fmt.Sprint(v)
	}
}

func (c amqpHeaderCarrier) Set(key, value string) {
	c[key] = value
}

func (c amqpHeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	return keys
}
