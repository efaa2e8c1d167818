//go:build wireinject
// +build wireinject

package main

import (
	"Rately/config"
	"Rately/dao"
	"Rately/dao/cache"
	"Rately/handler"
	"Rately/pkg/client"
	"Rately/pkg/database"
	"Rately/pkg/llm"
	"Rately/pkg/metadata"
	"Rately/pkg/rocketmq"
	"Rately/pkg/server"
	"Rately/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		config.ProvideRocketMQConfig,
		config.ProvideMetadataConfig,
		rocketmq.InitProducer,
		metadata.NewRegistry,
		llm.NewTagger,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Rating), "*"),
		wire.Struct(new(handler.Form), "*"),
		wire.Struct(new(handler.Stats), "*"),
		wire.Struct(new(handler.Challenge), "*"),
		wire.Struct(new(handler.Feed), "*"),
		wire.Struct(new(handler.Pin), "*"),
		wire.Struct(new(handler.Bookmark), "*"),
		wire.Struct(new(handler.Follow), "*"),
		wire.Struct(new(handler.Like), "*"),
		wire.Struct(new(handler.Anything), "*"),
		wire.Struct(new(handler.User), "*"),
		handler.NewNotificationHandler,

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
