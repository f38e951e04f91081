package amqpnotifier

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// Channel подмножество *amqp.Channel
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// Connection подмножество *amqp.Connection
type Connection interface {
	Channel() (Channel, error)
	Close() error
}

// Dialer открывает соединение с брокером
type Dialer func(url string) (Connection, error)

// Publisher публикует событие new_booking в очередь RabbitMQ
// Соединение открывается на каждую публикацию: записей мало, держать канал незачем
type Publisher struct {
	url   string
	queue string
	dial  Dialer
	log   Logger
	now   func() time.Time
}

func NewPublisher(url, queue string, log Logger) *Publisher {
	return &Publisher{
		url:   url,
		queue: queue,
		dial:  dialAMQP,
		log:   log,
		now:   time.Now,
	}
}

func (p *Publisher) Name() string {
	return "amqp"
}

// NotifyNewBooking публикует то же событие, что уходит на вебхук
func (p *Publisher) NotifyNewBooking(ctx context.Context, booking *domain.Booking) error {
	body, err := json.Marshal(domain.NewBookingEvent(booking, p.now()))
	if err != nil {
		return fmt.Errorf("%w: marshal event: %v", ErrPublish, err)
	}

	conn, err := p.dial(p.url)
	if err != nil {
		return fmt.Errorf("%w: dial: %v", ErrConnect, err)
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("%w: open channel: %v", ErrConnect, err)
	}
	defer func() { _ = ch.Close() }()

	// Очередь durable, объявление идемпотентно
	if _, err := ch.QueueDeclare(p.queue, true, false, false, false, nil); err != nil {
		return fmt.Errorf("%w: declare queue %s: %v", ErrPublish, p.queue, err)
	}

	msg := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		Timestamp:    p.now().UTC(),
		Type:         domain.EventNewBooking,
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx, "", p.queue, false, false, msg); err != nil {
		return fmt.Errorf("%w: publish to %s: %v", ErrPublish, p.queue, err)
	}

	p.log.Info("Booking published to queue: booking_id=%d, queue=%s", booking.ID, p.queue)

	return nil
}

type amqpConnection struct {
	conn *amqp.Connection
}

func (c *amqpConnection) Channel() (Channel, error) {
	ch, err := c.conn.Channel()
	if err != nil {
		return nil, err
	}
	return ch, nil
}

func (c *amqpConnection) Close() error {
	return c.conn.Close()
}

func dialAMQP(url string) (Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}
	return &amqpConnection{conn: conn}, nil
}
