package cache

import (
	"Rately/pkg/log"
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// 通知频道，websocket 网关订阅后推给在线用户
const notifyChannel = "rately:notify"

// 通知事件类型
const (
	EventChallengeCompleted = "challenge_completed"
	EventNewFollower        = "new_follower"
	EventReviewLiked        = "review_liked"
)

// NotifyEvent 跨节点通知事件
type NotifyEvent struct {
	Type   string          `json:"type"`
	UserID uint64          `json:"user_id"` // 接收人
	Body   json.RawMessage `json:"body"`
}

type NotifyStorage struct {
	redis *redis.Client
}

func NewNotifyStorage(rds *redis.Client) *NotifyStorage {
	return &NotifyStorage{redis: rds}
}

// Publish 发布通知事件，失败只记日志不影响主流程
func (n *NotifyStorage) Publish(ctx context.Context, event *NotifyEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		log.L.Error("通知事件序列化失败", zap.Error(err))
		return
	}
	if err := n.redis.Publish(ctx, notifyChannel, data).Err(); err != nil {
		log.L.Error("通知事件发布失败",
			zap.String("type", event.Type),
			zap.Uint64("user_id", event.UserID),
			zap.Error(err))
	}
}

// Subscribe 订阅通知频道
func (n *NotifyStorage) Subscribe(ctx context.Context) *redis.PubSub {
	return n.redis.Subscribe(ctx, notifyChannel)
}

// online 在线状态，网关节点注册连接时写入
func (n *NotifyStorage) onlineKey(uid uint64) string {
	return fmt.Sprintf("rately:online:%d", uid)
}

// MarkOnline 标记用户在某个网关节点在线
func (n *NotifyStorage) MarkOnline(ctx context.Context, uid uint64, sid string) error {
	return n.redis.SAdd(ctx, n.onlineKey(uid), sid).Err()
}

// MarkOffline 移除在线标记
func (n *NotifyStorage) MarkOffline(ctx context.Context, uid uint64, sid string) error {
	return n.redis.SRem(ctx, n.onlineKey(uid), sid).Err()
}

// IsOnline 判断用户是否在任一节点在线
func (n *NotifyStorage) IsOnline(ctx context.Context, uid uint64) bool {
	val, err := n.redis.SCard(ctx, n.onlineKey(uid)).Result()
	return err == nil && val > 0
}
