// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package pubsub

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/parkwatch/shared"
	"github.com/lib/pq"
)

// envelope is the wire format of a broadcast. The sender id lets an instance
// skip its own notifications when several replicas share the database.
type envelope struct {
	ID        string               `json:"id"`
	Channel   shared.PubSubChannel `json:"channel"`
	Payload   map[string]any       `json:"payload"`
	Timestamp time.Time            `json:"timestamp"`
	SenderID  string               `json:"senderId,omitempty"`
}

// PostgreSQLBroker broadcasts lifecycle events over PostgreSQL LISTEN/NOTIFY.
// There is no persistence and no delivery guarantee - exactly what an
// ephemeral dashboard feed needs, without running a separate message broker.
type PostgreSQLBroker struct {
	db           *sql.DB
	listener     *pq.Listener
	subscribers  map[shared.PubSubChannel][]chan map[string]any
	subscribeMux sync.RWMutex
	ctx          context.Context
	cancel       context.CancelFunc
	wg           sync.WaitGroup
	isListening  bool
	listeningMux sync.RWMutex
	id           string
	receiveOwn   bool
}

func BrokerFactory() (shared.PubSubBroker, error) {
	broker, err := NewPostgreSQLBroker(
		os.Getenv("POSTGRES_USER"),
		os.Getenv("POSTGRES_PASSWORD"),
		os.Getenv("POSTGRES_HOST"),
		os.Getenv("POSTGRES_PORT"),
		os.Getenv("POSTGRES_DB"),
	)
	if err != nil {
		return nil, err
	}
	// a single instance still wants its own dashboard feed
	broker.SetReceiveOwnMessages(true)
	return broker, nil
}

func NewPostgreSQLBroker(user, password, host, port, dbname string) (*PostgreSQLBroker, error) {
	connectionString := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, dbname)

	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	listener := pq.NewListener(connectionString, 10*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		if err != nil {
			slog.Error("PostgreSQL listener error", "error", err)
		}
	})

	ctx, cancel := context.WithCancel(context.Background())

	return &PostgreSQLBroker{
		db:          db,
		listener:    listener,
		subscribers: make(map[shared.PubSubChannel][]chan map[string]any),
		ctx:         ctx,
		cancel:      cancel,
		id:          uuid.New().String(),
	}, nil
}

// SetReceiveOwnMessages makes the broker deliver its own broadcasts to local
// subscribers as well.
func (b *PostgreSQLBroker) SetReceiveOwnMessages(receive bool) {
	b.receiveOwn = receive
}

func (b *PostgreSQLBroker) Publish(ctx context.Context, message shared.PubSubMessage) error {
	channel := message.GetChannel()

	messageJSON, err := json.Marshal(envelope{
		ID:        uuid.New().String(),
		Channel:   channel,
		Payload:   message.GetPayload(),
		Timestamp: time.Now(),
		SenderID:  b.id,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	// NOTIFY takes no bind parameters, the payload has to be inlined
	query := fmt.Sprintf("SELECT pg_notify(%s, %s)", pq.QuoteLiteral(string(channel)), pq.QuoteLiteral(string(messageJSON)))
	if _, err := b.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to send notification: %w", err)
	}

	slog.Debug("message published", "channel", channel)
	return nil
}

func (b *PostgreSQLBroker) Subscribe(channel shared.PubSubChannel) (<-chan map[string]any, error) {
	b.subscribeMux.Lock()
	defer b.subscribeMux.Unlock()

	ch := make(chan map[string]any, 100)

	if _, exists := b.subscribers[channel]; !exists {
		b.subscribers[channel] = []chan map[string]any{}

		if err := b.listener.Listen(string(channel)); err != nil {
			close(ch)
			return nil, fmt.Errorf("failed to listen on channel %s: %w", channel, err)
		}
		slog.Info("started listening on channel", "channel", channel)
	}

	b.subscribers[channel] = append(b.subscribers[channel], ch)

	b.listeningMux.Lock()
	if !b.isListening {
		b.isListening = true
		b.wg.Add(1)
		go b.processMessages()
	}
	b.listeningMux.Unlock()

	return ch, nil
}

func (b *PostgreSQLBroker) processMessages() {
	defer b.wg.Done()
	defer func() {
		b.listeningMux.Lock()
		b.isListening = false
		b.listeningMux.Unlock()
	}()

	for {
		select {
		case <-b.ctx.Done():
			slog.Info("message processing stopped")
			return
		case notification := <-b.listener.Notify:
			if notification != nil {
				b.handleNotification(notification)
			}
		case <-time.After(time.Second):
			// keep the listener connection alive
			if err := b.listener.Ping(); err != nil {
				slog.Error("failed to ping listener", "error", err)
			}
		}
	}
}

func (b *PostgreSQLBroker) handleNotification(notification *pq.Notification) {
	var message envelope
	if err := json.Unmarshal([]byte(notification.Extra), &message); err != nil {
		slog.Error("failed to unmarshal message", "error", err, "payload", notification.Extra)
		return
	}

	if message.SenderID == b.id && !b.receiveOwn {
		slog.Debug("ignoring message sent by self", "messageID", message.ID, "channel", message.Channel)
		return
	}

	channel := shared.PubSubChannel(notification.Channel)

	b.subscribeMux.RLock()
	subscribers, exists := b.subscribers[channel]
	b.subscribeMux.RUnlock()

	if !exists {
		slog.Warn("no subscribers for channel", "channel", channel)
		return
	}

	for _, subscriber := range subscribers {
		select {
		case subscriber <- message.Payload:
		default:
			// slow consumer, the feed is lossy on purpose
			slog.Warn("subscriber channel full, dropping message", "channel", channel, "messageID", message.ID)
		}
	}
}

// Close stops the broker and cleans up resources.
func (b *PostgreSQLBroker) Close() error {
	b.cancel()
	b.wg.Wait()

	b.subscribeMux.Lock()
	for channel, subscribers := range b.subscribers {
		for _, ch := range subscribers {
			close(ch)
		}
		delete(b.subscribers, channel)
	}
	b.subscribeMux.Unlock()

	if err := b.listener.Close(); err != nil {
		return fmt.Errorf("failed to close listener: %w", err)
	}
	if b.db != nil {
		if err := b.db.Close(); err != nil {
			return fmt.Errorf("failed to close database connection: %w", err)
		}
	}
	return nil
}

// IsHealthy checks both the publish connection and the listener.
func (b *PostgreSQLBroker) IsHealthy() bool {
	if b.db == nil {
		return false
	}
	if err := b.db.Ping(); err != nil {
		return false
	}
	return b.listener.Ping() == nil
}

var _ shared.PubSubBroker = (*PostgreSQLBroker)(nil)
