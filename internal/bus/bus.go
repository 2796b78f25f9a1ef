// Package bus is the chat message bus: the API publishes every stored chat
// to a Redis pub/sub channel, and the consumer binary logs whatever
// arrives. Sends are fire-and-forget; the broker client owns delivery.
package bus

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/smokequit/smokequit-api/internal/models"
)

// Envelope is the wire shape published for each chat.
type Envelope struct {
	MessageID   string       `json:"messageId"`
	PublishedAt time.Time    `json:"publishedAt"`
	Chat        *models.Chat `json:"chat"`
}

// NewClient builds the shared Redis client and verifies the connection.
func NewClient(addr, password string) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{Addr: addr, Password: password, DB: 0})
	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}
	return client, nil
}

// Publisher sends chats to the configured channel.
type Publisher struct {
	client  *redis.Client
	channel string
}

func NewPublisher(client *redis.Client, channel string) *Publisher {
	return &Publisher{client: client, channel: channel}
}

// Publish wraps the chat in an envelope and fires it at the channel.
func (p *Publisher) Publish(chat *models.Chat) error {
	env := Envelope{
		MessageID:   uuid.NewString(),
		PublishedAt: time.Now().UTC(),
		Chat:        chat,
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshaling chat envelope: %w", err)
	}
	if err := p.client.Publish(context.Background(), p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publishing chat: %w", err)
	}
	log.Printf("PUBLISH data to %s: %s", p.channel, payload)
	return nil
}

// Consumer subscribes to the channel and logs every received envelope.
type Consumer struct {
	client  *redis.Client
	channel string
	logPath string
}

func NewConsumer(client *redis.Client, channel string) *Consumer {
	return &Consumer{client: client, channel: channel, logPath: "DataLog.txt"}
}

// Run blocks until ctx is canceled, logging each message as it arrives.
func (c *Consumer) Run(ctx context.Context) error {
	sub := c.client.Subscribe(ctx, c.channel)
	defer sub.Close()

	log.Printf("Consumer subscribed to %s", c.channel)
	for {
		msg, err := sub.ReceiveMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("receiving from %s: %w", c.channel, err)
		}
		line := fmt.Sprintf("[%s] RECEIVE data from %s: %s", time.Now().Format(time.RFC3339), c.channel, msg.Payload)
		log.Println(line)
		c.appendLog(line)
	}
}

// appendLog mirrors each message into the data log file, best effort.
func (c *Consumer) appendLog(line string) {
	file, err := os.OpenFile(c.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer file.Close()
	fmt.Fprintln(file, line)
}
