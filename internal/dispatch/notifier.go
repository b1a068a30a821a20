package dispatch

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/dcarehealth/transport-api/internal/models"
)

// UrgentChannel carries every URGENT_DISPATCH booking as a JSON
// payload; the dispatch desk subscribes to it.
const UrgentChannel = "dispatch:urgent"

// Notifier announces urgent bookings. Implementations are
// fire-and-forget: they log failures and never fail the request.
type Notifier interface {
	NotifyUrgent(ctx context.Context, b *models.Booking)
}

type RedisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

func (n *RedisNotifier) NotifyUrgent(ctx context.Context, b *models.Booking) {
	payload, err := json.Marshal(b)
	if err != nil {
		log.Println("dispatch marshal error:", err)
		return
	}

	if err := n.client.Publish(ctx, UrgentChannel, payload).Err(); err != nil {
		log.Println("dispatch publish error:", err)
	}
}

// NoopNotifier is used when no Redis is configured.
type NoopNotifier struct{}

func (NoopNotifier) NotifyUrgent(ctx context.Context, b *models.Booking) {}
