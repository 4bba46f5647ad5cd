package rmqconsumer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"user-directory-api/config"
)

// can scale depends on a parallel worker count
const preFetchCount = 1

var ErrUnknownAction = errors.New("unknown event action")

// actions maps routing keys to the audit name of the lifecycle change.
var actions = []struct {
	routingKey string
	name       string
}{
	{http.MethodPost, "UserCreated"},
	{http.MethodPut, "UserUpdated"},
	{http.MethodPatch, "UserPatched"},
	{http.MethodDelete, "UserDeleted"},
}

type (
	Consumer struct {
		cfg        config.MQ
		log        *zap.Logger
		conn       *amqp091.Connection
		ownsConn   bool
		chConsume  *amqp091.Channel
		chDelivery <-chan amqp091.Delivery
	}

	// envelope is the part of a lifecycle event the audit log cares about.
	envelope struct {
		ID     string `json:"event_id"`
		Action string `json:"event_action"`
		UserID uint64 `json:"user_id"`
	}
)

// New reuses conn when it is not nil; otherwise Connect dials its own.
func New(cfg config.MQ, logger *zap.Logger, conn *amqp091.Connection) *Consumer {
	return &Consumer{
		cfg:  cfg,
		log:  logger,
		conn: conn,
	}
}

func (c *Consumer) Connect(dsn string) error {
	if c.conn == nil || c.conn.IsClosed() {
		conn, err := amqp091.Dial(dsn)
		if err != nil {
			return fmt.Errorf("amqp dial: %w", err)
		}
		c.conn, c.ownsConn = conn, true
	}

	ch, err := c.conn.Channel()
	if err != nil {
		if c.ownsConn {
			_ = c.conn.Close()
		}
		return fmt.Errorf("amqp channel: %w", err)
	}
	c.chConsume = ch

	c.log.Info("rabbitmq consumer connected successfully")

	return nil
}

func (c *Consumer) Init() error {
	if err := c.chConsume.ExchangeDeclare(
		c.cfg.Exchange,
		c.cfg.ExchangeType,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("exchange declare: %w", err)
	}
	if _, err := c.chConsume.QueueDeclare(
		c.cfg.QueueName,
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	for _, a := range actions {
		if err := c.chConsume.QueueBind(
			c.cfg.QueueName,
			a.routingKey,
			c.cfg.Exchange,
			false,
			nil,
		); err != nil {
			return fmt.Errorf("queue bind %s: %w", a.routingKey, err)
		}
	}

	if err := c.chConsume.Qos(preFetchCount, 0, false); err != nil {
		return fmt.Errorf("qos: %w", err)
	}

	deliveries, err := c.chConsume.Consume(
		c.cfg.QueueName,
		"",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("consume: %w", err)
	}
	c.chDelivery = deliveries

	return nil
}

func (c *Consumer) DeliveryWorker(ctx context.Context) {
	c.log.Info("starting delivery worker")

	defer func() {
		c.log.Info("delivery worker gracefully stopped")
	}()

	for {
		select {
		case msg, ok := <-c.chDelivery:
			if !ok {
				c.log.Warn("delivery channel closed")
				return
			}
			if err := c.delivery(msg); err != nil {
				// alert
				c.log.Error("mq read message error", zap.Error(err))
			}
		case <-ctx.Done():
			if c.chConsume != nil {
				_ = c.chConsume.Close()
			}
			if c.ownsConn && c.conn != nil {
				_ = c.conn.Close()
			}
			return
		}
	}
}

// delivery writes one audit record per lifecycle event.
func (c *Consumer) delivery(msg amqp091.Delivery) error {
	name, ok := actionName(msg.RoutingKey)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownAction, msg.RoutingKey)
	}

	var e envelope
	if err := json.Unmarshal(msg.Body, &e); err != nil {
		return fmt.Errorf("decode %s event: %w", name, err)
	}

	c.log.Info("user lifecycle event",
		zap.String("action", name),
		zap.String("event_id", e.ID),
		zap.Uint64("user_id", e.UserID),
		zap.ByteString("body", msg.Body),
	)

	return nil
}

func actionName(routingKey string) (string, bool) {
	for _, a := range actions {
		if a.routingKey == routingKey {
			return a.name, true
		}
	}
	return "", false
}
