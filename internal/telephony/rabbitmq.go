// Package telephony hands call jobs to the IVR worker over RabbitMQ. Placing
// the call and reporting back through the webhook is the worker's job.
package telephony

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stpnv0/SitterMatch/internal/domain"
)

const routingKey = "telephony.call.request"

var ErrClosed = errors.New("rabbitmq connection is closed")

type RabbitDispatcher struct {
	url      string
	exchange string

	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
}

func NewRabbitDispatcher(url, exchange string) (*RabbitDispatcher, error) {
	d := &RabbitDispatcher{url: url, exchange: exchange}
	if err := d.connect(); err != nil {
		return nil, fmt.Errorf("connect to rabbitmq: %w", err)
	}
	return d, nil
}

func (d *RabbitDispatcher) EnqueueCall(ctx context.Context, job domain.CallJob) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal call job: %w", err)
	}

	ch, err := d.channel()
	if err != nil {
		return err
	}

	return ch.PublishWithContext(ctx, d.exchange, routingKey, false, false, amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent,
		MessageId:    job.CandidateID,
		Body:         body,
	})
}

func (d *RabbitDispatcher) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ch != nil && !d.ch.IsClosed() {
		if err := d.ch.Close(); err != nil {
			return fmt.Errorf("close rabbitmq channel: %w", err)
		}
	}
	if d.conn != nil && !d.conn.IsClosed() {
		if err := d.conn.Close(); err != nil {
			return fmt.Errorf("close rabbitmq connection: %w", err)
		}
	}
	return nil
}

// channel returns the open channel, redialing once if the broker dropped us.
func (d *RabbitDispatcher) channel() (*amqp.Channel, error) {
	d.mu.Lock()
	alive := d.conn != nil && !d.conn.IsClosed() && d.ch != nil && !d.ch.IsClosed()
	ch := d.ch
	d.mu.Unlock()

	if alive {
		return ch, nil
	}
	if err := d.connect(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClosed, err)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	return d.ch, nil
}

func (d *RabbitDispatcher) connect() error {
	conn, err := amqp.Dial(d.url)
	if err != nil {
		return err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}

	if err = ch.ExchangeDeclare(d.exchange, "topic", true, false, false, false, nil); err != nil {
		conn.Close()
		return fmt.Errorf("declare exchange: %w", err)
	}

	d.mu.Lock()
	d.conn = conn
	d.ch = ch
	d.mu.Unlock()
	return nil
}
