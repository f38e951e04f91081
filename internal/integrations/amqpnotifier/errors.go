package amqpnotifier

import "errors"

var (
	ErrConnect = errors.New("amqp notifier: failed to connect")
	ErrPublish = errors.New("amqp notifier: failed to publish")
)
