package communication

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

type RabbitMQ struct {
	connection *amqp.Connection
	channel    *amqp.Channel
}

// NewRabbitMQ constructor for RabbitMQ. This function returns a RabbitMQ
// with connections already established.
func NewRabbitMQ(url string) (*RabbitMQ, error) {
	connection, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	channel, err := connection.Channel()
	if err != nil {
		_ = connection.Close()
		return nil, err
	}

	return &RabbitMQ{
		connection: connection,
		channel:    channel,
	}, nil
}

// DeclareNonAnonymousQueues declares non-anonymous queues based on the slice of configs
func (r *RabbitMQ) DeclareNonAnonymousQueues(queuesConfig []QueueDeclarationConfig) error {
	for idx := range queuesConfig {
		queueName := queuesConfig[idx].Name
		_, err := r.channel.QueueDeclare(
			queueName,
			queuesConfig[idx].Durable,
			queuesConfig[idx].DeleteWhenUnused,
			queuesConfig[idx].Exclusive,
			queuesConfig[idx].NoWait,
			nil,
		)

		if err != nil {
			return fmt.Errorf("error declaring queue %s: %w", queueName, err)
		}
	}
	return nil
}

// Publish publishes a message following the publishing config. An empty exchange
// means the routing key is the name of the target queue.
func (r *RabbitMQ) Publish(ctx context.Context, publishingConfig PublishingConfig, message []byte) error {
	return r.channel.PublishWithContext(ctx,
		publishingConfig.Exchange,
		publishingConfig.RoutingKey,
		publishingConfig.Mandatory,
		publishingConfig.Immediate,
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  publishingConfig.ContentType,
			Body:         message,
		},
	)
}

// Kill closes the channel and the connection
func (r *RabbitMQ) Kill() error {
	if err := r.channel.Close(); err != nil {
		_ = r.connection.Close()
		return fmt.Errorf("error closing channel: %w", err)
	}
	if err := r.connection.Close(); err != nil {
		return fmt.Errorf("error closing connection: %w", err)
	}
	return nil
}
