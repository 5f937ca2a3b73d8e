package messaging

import (
	"context"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

type kafkaHeaderCarrier struct {
	headers []kafka.Header
}

var _ propagation.TextMapCarrier = (*kafkaHeaderCarrier)(nil)

func (c *kafkaHeaderCarrier) Get(key string) string {
	return headerValue(c.headers, key)
}

func (c *kafkaHeaderCarrier) Keys() []string {
	keys := make([]string, 0, len(c.headers))
	for _, h := range c.headers {
		keys = append(keys, h.Key)
	}
	return keys
}

func (c *kafkaHeaderCarrier) Set(key, value string) {
	for i := range c.headers {
		if c.headers[i].Key == key {
			c.headers[i].Value = []byte(value)
			return
		}
	}
	c.headers = append(c.headers, kafka.Header{Key: key, Value: []byte(value)})
}

// injectTraceHeaders appends W3C trace context from ctx to headers.
func injectTraceHeaders(ctx context.Context, headers []kafka.Header) []kafka.Header {
	carrier := &kafkaHeaderCarrier{headers: headers}
	otel.GetTextMapPropagator().Inject(ctx, carrier)
	return carrier.headers
}

// ExtractTraceContext returns ctx carrying the trace context found in msg headers.
func ExtractTraceContext(ctx context.Context, msg Message) context.Context {
	return otel.GetTextMapPropagator().Extract(ctx, propagation.MapCarrier(msg.Headers))
}

func headerValue(headers []kafka.Header, key string) string {
	for _, h := range headers {
		if h.Key == key {
			return string(h.Value)
		}
	}
	return ""
}

// toKafkaMessage builds the wire message. The key pins all events of one order
// to one partition.
func toKafkaMessage(ctx context.Context, topic string, msg Message) kafka.Message {
	contentType := msg.ContentType
	if contentType == "" {
		contentType = ContentTypeJSON
	}

	headers := make([]kafka.Header, 0, len(msg.Headers)+6)
	for k, v := range msg.Headers {
		headers = append(headers, kafka.Header{Key: k, Value: []byte(v)})
	}
	carrier := &kafkaHeaderCarrier{headers: headers}
	carrier.Set(HeaderEventType, msg.EventType)
	carrier.Set(HeaderCorrelationID, msg.CorrelationID)
	carrier.Set(HeaderMessageID, msg.ID)
	carrier.Set(HeaderContentType, contentType)

	return kafka.Message{
		Topic:   topic,
		Key:     []byte(msg.Key),
		Value:   msg.Payload,
		Headers: injectTraceHeaders(ctx, carrier.headers),
	}
}

func fromKafkaMessage(km kafka.Message) Message {
	headers := make(map[string]string, len(km.Headers))
	for _, h := range km.Headers {
		headers[h.Key] = string(h.Value)
	}

	return Message{
		ID:            headers[HeaderMessageID],
		Key:           string(km.Key),
		EventType:     headers[HeaderEventType],
		CorrelationID: headers[HeaderCorrelationID],
		ContentType:   headers[HeaderContentType],
		Payload:       km.Value,
		Headers:       headers,
		Topic:         km.Topic,
		Partition:     km.Partition,
		Offset:        km.Offset,
	}
}
