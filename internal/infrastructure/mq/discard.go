package mq

import "go.uber.org/zap"

// Discard stands in for RabbitMQ when no broker is configured.
type Discard struct {
	log *zap.Logger
}

func NewDiscard(logger *zap.Logger) *Discard { return &Discard{log: logger} }

func (d *Discard) Publish(e Event) {
	d.log.Debug("mq disabled, event discarded",
		zap.String("event_action", e.Method),
		zap.Uint64("user_id", e.UserID),
	)
}
