// Package bus is a thin JSON publish/subscribe layer over a core NATS
// connection. Messages are fanned out to every subscriber of a subject, which
// is what broadcast notifications such as halt events need.
package bus

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"scanguard/pkg/logger"
	"sync"

	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

var (
	// ErrNilBus is returned by methods called on a nil *Bus.
	ErrNilBus = errors.New("nil bus")
	// ErrNilHandler is returned by Subscribe when no handler is given.
	ErrNilHandler = errors.New("nil handler")
)

// Bus wraps a NATS connection for publishing and consuming JSON events.
type Bus struct {
	conn *nats.Conn
}

// New creates a Bus connected to the provided NATS endpoint.
func New(url string, opts ...nats.Option) (*Bus, error) {
	nc, err := nats.Connect(url, opts...)
	if err != nil {
		return nil, fmt.Errorf("could not connect to nats: %w", err)
	}

	return &Bus{conn: nc}, nil
}

// Close drains the underlying NATS connection, falling back to a hard close.
func (b *Bus) Close() {
	if b == nil {
		return
	}
	if err := b.conn.Drain(); err != nil {
		b.conn.Close()
	}
}

// Publish encodes v as JSON and publishes it to the given subject. Core NATS
// publishes are fire-and-forget; the flush makes sure the message left the
// client before ctx expires.
func (b *Bus) Publish(ctx context.Context, subj string, v any) error {
	if b == nil {
		return ErrNilBus
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not marshal event: %w", err)
	}

	if err := b.conn.Publish(subj, data); err != nil {
		return fmt.Errorf("could not publish to %s: %w", subj, err)
	}
	if err := b.conn.FlushWithContext(ctx); err != nil {
		return fmt.Errorf("could not flush nats connection: %w", err)
	}

	return nil
}

type subscription struct {
	sub    *nats.Subscription
	mu     sync.Mutex
	closed bool
}

func (s *subscription) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	return s.sub.Drain() //nolint: wrapcheck
}

// Subscribe invokes fn for each message published on subj until ctx is done or
// the returned closer is closed. Handler errors are logged; core NATS has no
// redelivery.
func (b *Bus) Subscribe(ctx context.Context,
	subj string,
	fn func(ctx context.Context, data []byte) error) (io.Closer, error) {
	if b == nil {
		return nil, ErrNilBus
	}
	if fn == nil {
		return nil, ErrNilHandler
	}

	handler := func(msg *nats.Msg) {
		handlerCtx, cancel := context.WithCancel(ctx)
		defer cancel()

		if err := fn(handlerCtx, msg.Data); err != nil {
			logger.Warn(handlerCtx, "could not handle bus message", zap.String("subject", subj), zap.Error(err))
		}
	}

	sub, err := b.conn.Subscribe(subj, handler)
	if err != nil {
		return nil, fmt.Errorf("could not subscribe to %s: %w", subj, err)
	}

	s := &subscription{sub: sub}

	go func() {
		<-ctx.Done()
		_ = s.Close()
	}()

	return s, nil
}
