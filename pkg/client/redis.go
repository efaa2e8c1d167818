package client

import (
	"Rately/config"
	"Rately/pkg/log"
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func NewRedisClient(conf *config.Config) *redis.Client {
	addr := fmt.Sprintf("%s:%d", conf.Redis.Address, conf.Redis.Port)
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     conf.Redis.Password,
		Username:     conf.Redis.Username,
		DB:           conf.Redis.Database,
		MinIdleConns: 4,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.L.Fatal("redis 连接失败", zap.String("addr", addr), zap.Error(err))
	}
	log.L.Info("redis 已连接", zap.String("addr", addr))
	return client
}
