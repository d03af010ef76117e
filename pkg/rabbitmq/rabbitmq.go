package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	amqp "github.com/streadway/amqp"
)

// productQueue receives one message per product lifecycle change
// (created, updated, deleted).
const productQueue = "product_events"

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL string
}

// Event is the wire format of a product lifecycle event.
type Event struct {
	EventID    string      `json:"event_id"`
	Event      string      `json:"event"`
	Data       interface{} `json:"data"`
	OccurredAt time.Time   `json:"occurred_at"`
}

// NewClient creates a new RabbitMQ client.
// It connects to RabbitMQ, sets up a channel and declares the product
// events queue.
func NewClient(cfg Config) (*Client, error) {
	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close() // Close connection if channel creation fails
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = ch.QueueDeclare(
		productQueue, // name
		true,         // durable (persists messages across broker restarts)
		false,        // delete when unused
		false,        // exclusive
		false,        // no-wait
		nil,          // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s queue: %w", productQueue, err)
	}

	log.Printf("RabbitMQ client connected and %s queue declared.", productQueue)

	return &Client{
		conn:    conn,
		channel: ch,
	}, nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishProductEvent publishes a product lifecycle event to the product
// events queue. The event name should be one of "product.created",
// "product.updated" or "product.deleted"; data is the affected product.
func (c *Client) PublishProductEvent(event string, data interface{}) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(Event{
		EventID:    uuid.New().String(),
		Event:      event,
		Data:       data,
		OccurredAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal product event to JSON: %w", err)
	}

	err = c.channel.Publish(
		"",           // exchange: default exchange routes by queue name
		productQueue, // routing key
		false,        // mandatory
		false,        // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Make message persistent
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}

	log.Printf(" [x] Sent product event: %s", body)
	return nil
}
