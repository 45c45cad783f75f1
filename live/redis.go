package live

import (
	"context"
	"encoding/json"
	"strings"
	"volley/utils"

	"github.com/redis/go-redis/v9"
)

const channelPrefix = "games:"

// RedisRelay routes updates through a Redis pub/sub channel per game so that
// every server instance fans out to its own local subscribers. Local delivery
// happens when the published message comes back on the subscription, keeping
// single-instance and multi-instance behavior identical.
type RedisRelay struct {
	rdb *redis.Client
	hub *Hub
}

func NewRedisRelay(rdb *redis.Client, hub *Hub) *RedisRelay {
	return &RedisRelay{rdb: rdb, hub: hub}
}

// Publish implements Publisher.
func (r *RedisRelay) Publish(gameID string, update Update) {
	payload, err := json.Marshal(update)
	if err != nil {
		utils.LogError("Failed to marshal update for game %s: %v", gameID, err)
		return
	}
	if err := r.rdb.Publish(context.Background(), channelPrefix+gameID, payload).Err(); err != nil {
		utils.LogError("Failed to publish update for game %s: %v", gameID, err)
	}
}

// Run subscribes to every game channel and pipes incoming messages into the
// local hub. It blocks until the context is canceled.
func (r *RedisRelay) Run(ctx context.Context) error {
	pubsub := r.rdb.PSubscribe(ctx, channelPrefix+"*")
	defer pubsub.Close()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				return nil
			}
			gameID := strings.TrimPrefix(msg.Channel, channelPrefix)
			r.hub.BroadcastRaw(gameID, []byte(msg.Payload))
		}
	}
}
