package broker

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"sync"
	"time"

	"cowork-booking/internal/pkg/config"
	"cowork-booking/internal/pkg/errs"
	"cowork-booking/internal/usecase/shared"

	amqp "github.com/rabbitmq/amqp091-go"
)

const exchangeKind = "topic"

var (
	errNacked          = errs.New("broker rejected the event")
	errNotConfirmMode  = errs.New("amqp channel is not in confirm mode")
	errPublisherClosed = errs.New("publisher is closed")
)

// Channel is a confirm-mode AMQP channel.
type Channel interface {
	Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (Confirmation, error)
	IsClosed() bool
	Close() error
}

// Confirmation resolves once the broker acks or nacks a publish.
type Confirmation interface {
	WaitContext(ctx context.Context) (bool, error)
}

// Dialer opens a fresh channel with the exchange declared.
type Dialer func() (Channel, error)

// AMQPPublisher publishes reservation events to a durable topic exchange,
// routed by event type, and waits for the broker's publisher confirm.
// A closed channel is redialed on the next publish.
type AMQPPublisher struct {
	mu       sync.Mutex // amqp channels are not safe for concurrent publishes
	dial     Dialer
	ch       Channel
	closed   bool
	exchange string
	timeout  time.Duration
	now      func() time.Time
}

// NewAMQPPublisher takes an optional already-open channel; dial replaces it
// whenever it is closed.
func NewAMQPPublisher(ch Channel, dial Dialer, exchange string, timeout time.Duration) *AMQPPublisher {
	return &AMQPPublisher{
		ch:       ch,
		dial:     dial,
		exchange: exchange,
		timeout:  timeout,
		now:      time.Now,
	}
}

// Dial connects, declares the exchange and returns a ready publisher.
func Dial(cfg config.BrokerConfig) (*AMQPPublisher, func(), error) {
	dial := func() (Channel, error) {
		s, err := dialSession(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	ch, err := dial()
	if err != nil {
		return nil, nil, err
	}

	p := NewAMQPPublisher(ch, dial, cfg.Exchange, cfg.PublishTimeout)
	return p, p.Close, nil
}

func (p *AMQPPublisher) Publish(ctx context.Context, event shared.ReservationEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return errs.Wrap(err, "marshal reservation event")
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now().UTC(),
		Type:         string(event.Type),
		MessageId:    event.ReservationID.String() + ":" + string(event.Type),
		Body:         body,
	}

	conf, err := p.send(ctx, string(event.Type), msg)
	if err != nil {
		return errs.Wrapf(err, "publish %s", event.Type)
	}

	acked, err := conf.WaitContext(ctx)
	if err != nil {
		return errs.Wrapf(err, "confirm %s", event.Type)
	}
	if !acked {
		return errs.Wrapf(errNacked, "publish %s", event.Type)
	}
	return nil
}

// send publishes on the current channel, redialing once if it turns out closed.
func (p *AMQPPublisher) send(ctx context.Context, key string, msg amqp.Publishing) (Confirmation, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	for attempt := 0; ; attempt++ {
		ch, err := p.channel()
		if err != nil {
			return nil, err
		}

		conf, err := ch.Publish(ctx, p.exchange, key, msg)
		if err == nil {
			return conf, nil
		}
		if attempt > 0 || !(errors.Is(err, amqp.ErrClosed) || ch.IsClosed()) {
			return nil, err
		}

		slog.WarnContext(ctx, "amqp channel closed, reconnecting", "error", err.Error())
		p.drop()
	}
}

func (p *AMQPPublisher) channel() (Channel, error) {
	if p.closed {
		return nil, errPublisherClosed
	}
	if p.ch != nil && !p.ch.IsClosed() {
		return p.ch, nil
	}
	p.drop()
	if p.dial == nil {
		return nil, amqp.ErrClosed
	}

	ch, err := p.dial()
	if err != nil {
		return nil, errs.Wrap(err, "amqp reconnect failed")
	}
	p.ch = ch
	return ch, nil
}

func (p *AMQPPublisher) drop() {
	if p.ch == nil {
		return
	}
	if err := p.ch.Close(); err != nil && !errors.Is(err, amqp.ErrClosed) {
		slog.Warn("amqp channel close failed", "error", err.Error())
	}
	p.ch = nil
}

// Close releases the channel; later publishes fail.
func (p *AMQPPublisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.drop()
	p.closed = true
}

// session owns one connection and its confirm-mode channel.
type session struct {
	conn *amqp.Connection
	ch   *amqp.Channel
}

func dialSession(cfg config.BrokerConfig) (*session, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "amqp dial failed")
	}

	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return nil, errs.Wrap(err, "amqp channel open failed")
	}

	if err := ch.Confirm(false); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrap(err, "amqp confirm mode failed")
	}

	if err := ch.ExchangeDeclare(
		cfg.Exchange,
		exchangeKind,
		true,  // durable
		false, // autoDelete
		false, // internal
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return nil, errs.Wrapf(err, "amqp exchange declare failed for %s", cfg.Exchange)
	}

	return &session{conn: conn, ch: ch}, nil
}

func (s *session) Publish(ctx context.Context, exchange, key string, msg amqp.Publishing) (Confirmation, error) {
	dc, err := s.ch.PublishWithDeferredConfirmWithContext(ctx, exchange, key, false, false, msg)
	if err != nil {
		return nil, err
	}
	if dc == nil {
		return nil, errNotConfirmMode
	}
	return dc, nil
}

func (s *session) IsClosed() bool {
	return s.ch.IsClosed() || s.conn.IsClosed()
}

func (s *session) Close() error {
	chErr := s.ch.Close()
	connErr := s.conn.Close()
	if chErr != nil && !errors.Is(chErr, amqp.ErrClosed) {
		return chErr
	}
	if connErr != nil && !errors.Is(connErr, amqp.ErrClosed) {
		return connErr
	}
	return nil
}

// NoopPublisher is used when no broker URL is configured.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, shared.ReservationEvent) error { return nil }
