package notify

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Sink accepts notifications.
type Sink interface {
	Append(Message)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Message)

// Append calls f.
func (f SinkFunc) Append(m Message) {
	f(m)
}

// Transformer modifies a message in place before it is forwarded.
type Transformer func(*Message)

// TransformSink applies transformers to each message and forwards it.
type TransformSink struct {
	fx   []Transformer
	next Sink
}

// NewTransformSink constructor.
func NewTransformSink(next Sink, fx ...Transformer) *TransformSink {
	return &TransformSink{
		fx:   fx,
		next: next,
	}
}

// Append to sink.
func (sink *TransformSink) Append(m Message) {
	// apply all transforms
	for _, tr := range sink.fx {
		tr(&m)
	}
	sink.next.Append(m)
}

// MultiSink forwards each message to every sink in order.
type MultiSink []Sink

// Append to all sinks.
func (sinks MultiSink) Append(m Message) {
	for _, s := range sinks {
		s.Append(m)
	}
}

// QueueSink buffers messages until drained.
type QueueSink struct {
	mu  sync.Mutex
	out []Message
}

// NewQueueSink constructor.
func NewQueueSink() *QueueSink {
	return &QueueSink{}
}

// Append to sink.
func (sink *QueueSink) Append(m Message) {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	sink.out = append(sink.out, m)
}

// Drain returns and clears the buffered messages.
func (sink *QueueSink) Drain() []Message {
	sink.mu.Lock()
	defer sink.mu.Unlock()
	out := sink.out
	sink.out = nil
	return out
}

// LogSink logs translated messages.
type LogSink struct {
	log  logrus.FieldLogger
	lang Lang
}

// NewLogSink constructor.
func NewLogSink(log logrus.FieldLogger, lang Lang) *LogSink {
	return &LogSink{
		log:  log,
		lang: lang,
	}
}

// Append to sink.
func (sink *LogSink) Append(m Message) {
	sink.log.WithField("key", m.Key).Info(sink.lang.Translate(m))
}
