package device

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"time"

	"AssistantGolang/internal/entity"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const actionTTL = 24 * time.Hour

// IActionQueue is the per-user queue of side-effect directives the mobile
// client drains and executes.
type IActionQueue interface {
	Enqueue(ctx context.Context, action entity.DeviceAction) error
	Drain(ctx context.Context, userID string) ([]entity.DeviceAction, error)
}

type actionQueue struct {
	client *redis.Client
}

func New() IActionQueue {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &actionQueue{client: client}
}

func queueKey(userID string) string {
	return "device_actions:" + userID
}

func (q *actionQueue) Enqueue(ctx context.Context, action entity.DeviceAction) error {
	payload, err := json.Marshal(action)
	if err != nil {
		logrus.Error(fmt.Sprintf("Error marshaling device action for user %s: %v", action.UserID, err))
		return err
	}

	key := queueKey(action.UserID)
	if err := q.client.RPush(ctx, key, payload).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error enqueueing device action for user %s: %v", action.UserID, err))
		return err
	}

	if err := q.client.Expire(ctx, key, actionTTL).Err(); err != nil {
		logrus.Warn(fmt.Sprintf("Error refreshing TTL on action queue for user %s: %v", action.UserID, err))
	}

	logrus.Debug(fmt.Sprintf("Enqueued %s action for user %s", action.Type, action.UserID))
	return nil
}

// Drain pops every queued action atomically, oldest first.
func (q *actionQueue) Drain(ctx context.Context, userID string) ([]entity.DeviceAction, error) {
	key := queueKey(userID)

	pipe := q.client.TxPipeline()
	itemsCmd := pipe.LRange(ctx, key, 0, -1)
	pipe.Del(ctx, key)
	if _, err := pipe.Exec(ctx); err != nil {
		logrus.Error(fmt.Sprintf("Error draining action queue for user %s: %v", userID, err))
		return nil, err
	}

	raw := itemsCmd.Val()
	actions := make([]entity.DeviceAction, 0, len(raw))
	for _, item := range raw {
		var action entity.DeviceAction
		if err := json.Unmarshal([]byte(item), &action); err != nil {
			logrus.Warn(fmt.Sprintf("Skipping malformed device action for user %s: %v", userID, err))
			continue
		}
		actions = append(actions, action)
	}

	return actions, nil
}
