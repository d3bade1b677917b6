package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"blogpost/pkg/config"
	"blogpost/pkg/logger"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	NotificationQueueName = "notification_queue"
	NotificationExchange  = "notifications"
	maxPriority           = 10
)

type TaskType string

const (
	TaskLike    TaskType = "like"
	TaskComment TaskType = "comment"
	TaskReply   TaskType = "reply"
)

// NotificationTask asks the notification worker to tell RecipientID that
// ActorID interacted with their content.
type NotificationTask struct {
	Type        TaskType  `json:"type"`
	RecipientID string    `json:"recipient_id"`
	ActorID     string    `json:"actor_id"`
	PostID      string    `json:"post_id"`
	CommentID   string    `json:"comment_id,omitempty"`
	Priority    int       `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
}

// ErrDiscard marks a task that can never be processed. Consume drops such
// deliveries instead of requeueing them.
var ErrDiscard = errors.New("discard task")

// Handler processes one decoded task.
type Handler func(ctx context.Context, task NotificationTask) error

// Publisher is what use cases depend on; *Client satisfies it.
type Publisher interface {
	PublishNotification(ctx context.Context, task NotificationTask) error
}

type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  *logger.Logger
}

func NewRabbitMQClient(cfg *config.Config, log *logger.Logger) (*Client, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/",
		cfg.RabbitMQUser,
		cfg.RabbitMQPassword,
		cfg.RabbitMQHost,
		cfg.RabbitMQPort,
	)

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if err := declareTopology(channel); err != nil {
		channel.Close()
		conn.Close()
		return nil, err
	}

	log.Info("Connected to RabbitMQ at %s:%s", cfg.RabbitMQHost, cfg.RabbitMQPort)

	return &Client{
		conn:    conn,
		channel: channel,
		logger:  log,
	}, nil
}

func declareTopology(channel *amqp.Channel) error {
	err := channel.ExchangeDeclare(
		NotificationExchange, // name
		"direct",             // type
		true,                 // durable
		false,                // auto-deleted
		false,                // internal
		false,                // no-wait
		nil,                  // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to declare exchange: %w", err)
	}

	_, err = channel.QueueDeclare(
		NotificationQueueName, // name
		true,                  // durable
		false,                 // delete when unused
		false,                 // exclusive
		false,                 // no-wait
		amqp.Table{"x-max-priority": maxPriority},
	)
	if err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	for _, key := range []TaskType{TaskLike, TaskComment, TaskReply} {
		if err := channel.QueueBind(NotificationQueueName, string(key), NotificationExchange, false, nil); err != nil {
			return fmt.Errorf("failed to bind queue to %s: %w", key, err)
		}
	}
	return nil
}

func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// PublishNotification routes the task by its type.
func (c *Client) PublishNotification(ctx context.Context, task NotificationTask) error {
	msg, err := encodeTask(task)
	if err != nil {
		return err
	}

	err = c.channel.PublishWithContext(ctx,
		NotificationExchange, // exchange
		string(task.Type),    // routing key
		false,                // mandatory
		false,                // immediate
		msg,
	)
	if err != nil {
		c.logger.Error("[RABBITMQ] Failed to publish %s task for recipient=%s: %v", task.Type, task.RecipientID, err)
		return fmt.Errorf("failed to publish message: %w", err)
	}

	c.logger.Debug("[RABBITMQ] Published %s task for recipient=%s post=%s", task.Type, task.RecipientID, task.PostID)
	return nil
}

func encodeTask(task NotificationTask) (amqp.Publishing, error) {
	if task.Priority < 0 {
		task.Priority = 0
	}
	if task.Priority > maxPriority {
		task.Priority = maxPriority
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now().UTC()
	}

	body, err := json.Marshal(task)
	if err != nil {
		return amqp.Publishing{}, fmt.Errorf("failed to marshal task: %w", err)
	}

	return amqp.Publishing{
		ContentType:  "application/json",
		Body:         body,
		Priority:     uint8(task.Priority),
		DeliveryMode: amqp.Persistent,
		Timestamp:    task.CreatedAt,
	}, nil
}

// Consume delivers tasks from the notification queue to handler until ctx is
// done or the channel closes. Deliveries are acked after handler succeeds;
// undecodable ones and ErrDiscard failures are dropped, other failures are
// requeued.
func (c *Client) Consume(ctx context.Context, handler Handler) error {
	msgs, err := c.channel.Consume(
		NotificationQueueName, // queue
		"",                    // consumer
		false,                 // auto-ack
		false,                 // exclusive
		false,                 // no-local
		false,                 // no-wait
		nil,                   // args
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	c.logger.Info("[RABBITMQ] Started consuming from notification queue: %s", NotificationQueueName)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-msgs:
			if !ok {
				return nil
			}
			c.deliver(ctx, msg, handler)
		}
	}
}

func (c *Client) deliver(ctx context.Context, msg amqp.Delivery, handler Handler) {
	task, err := decodeTask(msg.Body)
	if err != nil {
		c.logger.Error("[RABBITMQ] Dropping undecodable task: %v", err)
		_ = msg.Nack(false, false)
		return
	}

	if err := handler(ctx, task); err != nil {
		requeue := !errors.Is(err, ErrDiscard)
		c.logger.Error("[RABBITMQ] Handler failed on %s task for recipient=%s (requeue=%t): %v", task.Type, task.RecipientID, requeue, err)
		_ = msg.Nack(false, requeue)
		return
	}

	_ = msg.Ack(false)
}

func decodeTask(body []byte) (NotificationTask, error) {
	var task NotificationTask
	if err := json.Unmarshal(body, &task); err != nil {
		return NotificationTask{}, fmt.Errorf("failed to unmarshal task: %w", err)
	}
	if task.Type == "" {
		return NotificationTask{}, errors.New("task has no type")
	}
	return task, nil
}
