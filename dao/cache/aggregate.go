package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// 聚合缓存过期时间，避免失效通知丢失后长期脏读
const aggregateExpireAt = 10 * time.Minute

// 聚合缓存分组，写评分时按组失效
const (
	GroupRatings    = "ratings"    // 评分列表、分布直方图
	GroupChallenges = "challenges" // 年度挑战进度
	GroupFeed       = "feed"       // 动态榜、热门榜、推荐
)

// AggregateStorage 按「用户+分组」管理聚合查询的缓存。
// 每个分组维护一个成员集合，失效时整组删除，避免逐 key 追踪。
type AggregateStorage struct {
	redis *redis.Client
}

func NewAggregateStorage(rds *redis.Client) *AggregateStorage {
	return &AggregateStorage{redis: rds}
}

// Get 读取缓存值，未命中返回 ("", false)
func (a *AggregateStorage) Get(ctx context.Context, uid uint64, group, name string) (string, bool) {
	val, err := a.redis.Get(ctx, a.valueKey(uid, group, name)).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

// Set 写入缓存值并登记到分组集合
func (a *AggregateStorage) Set(ctx context.Context, uid uint64, group, name, value string) {
	key := a.valueKey(uid, group, name)
	_, _ = a.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, key, value, aggregateExpireAt)
		pipe.SAdd(ctx, a.groupKey(uid, group), key)
		pipe.Expire(ctx, a.groupKey(uid, group), aggregateExpireAt)
		return nil
	})
}

// Invalidate 按分组整组失效
func (a *AggregateStorage) Invalidate(ctx context.Context, uid uint64, groups ...string) {
	for _, group := range groups {
		gk := a.groupKey(uid, group)
		keys, err := a.redis.SMembers(ctx, gk).Result()
		if err != nil {
			continue
		}
		_, _ = a.redis.Pipelined(ctx, func(pipe redis.Pipeliner) error {
			if len(keys) > 0 {
				pipe.Del(ctx, keys...)
			}
			pipe.Del(ctx, gk)
			return nil
		})
	}
}

// rately:agg:{uid}:{group}:{name}
func (a *AggregateStorage) valueKey(uid uint64, group, name string) string {
	return fmt.Sprintf("rately:agg:%d:%s:%s", uid, group, name)
}

// rately:agg-group:{uid}:{group}
func (a *AggregateStorage) groupKey(uid uint64, group string) string {
	return fmt.Sprintf("rately:agg-group:%d:%s", uid, group)
}
