package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"giramae/internal/domain/entities"
	"giramae/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
)

const channelPrefix = "giramae:changes:"

// ConnectRedis parses a redis:// URL and checks the server answers.
func ConnectRedis(ctx context.Context, url string) (*redis.Client, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opt)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	log.Printf("[realtime][redis] connected addr=%s", opt.Addr)
	return client, nil
}

// RedisBroker fans change events out through Redis pub/sub, one channel per user,
// so every API replica sees the events of the sessions it holds.
type RedisBroker struct {
	client *redis.Client
}

var _ interfaces.IChangeBroker = (*RedisBroker)(nil)

func NewRedisBroker(client *redis.Client) *RedisBroker {
	return &RedisBroker{client: client}
}

func userChannel(userID string) string {
	return channelPrefix + userID
}

func (b *RedisBroker) Publish(ctx context.Context, event entities.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := b.client.Publish(ctx, userChannel(event.UserID), payload).Err(); err != nil {
		log.Printf("[realtime][redis] publish failed user_id=%s table=%s err=%v", event.UserID, event.Table, err)
		return err
	}
	return nil
}

func (b *RedisBroker) Subscribe(ctx context.Context, userID string) (interfaces.ISubscription, error) {
	ps := b.client.Subscribe(ctx, userChannel(userID))
	// Wait for the subscription confirmation so no event published afterwards is lost.
	if _, err := ps.Receive(ctx); err != nil {
		_ = ps.Close()
		return nil, fmt.Errorf("subscribe %s: %w", userChannel(userID), err)
	}

	sub := &redisSubscription{
		ps:   ps,
		out:  make(chan entities.ChangeEvent, subscriptionBuffer),
		done: make(chan struct{}),
	}
	go sub.pump(userID)
	return sub, nil
}

type redisSubscription struct {
	ps   *redis.PubSub
	out  chan entities.ChangeEvent
	done chan struct{}
	once sync.Once
}

func (s *redisSubscription) pump(userID string) {
	defer close(s.out)
	msgs := s.ps.Channel()
	for {
		select {
		case <-s.done:
			return
		case msg, ok := <-msgs:
			if !ok {
				log.Printf("[realtime][redis] subscription channel closed user_id=%s", userID)
				return
			}
			var event entities.ChangeEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("[realtime][redis] invalid event user_id=%s err=%v", userID, err)
				continue
			}
			select {
			case s.out <- event:
			case <-s.done:
				return
			}
		}
	}
}

func (s *redisSubscription) Events() <-chan entities.ChangeEvent { return s.out }

func (s *redisSubscription) Close() error {
	var err error
	s.once.Do(func() {
		close(s.done)
		err = s.ps.Close()
	})
	return err
}
