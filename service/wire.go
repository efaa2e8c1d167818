package service

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(AuthService), "*"),
	wire.Bind(new(IAuthService), new(*AuthService)),

	wire.Struct(new(RatingService), "*"),
	wire.Bind(new(IRatingService), new(*RatingService)),

	wire.Struct(new(StatsService), "*"),
	wire.Bind(new(IStatsService), new(*StatsService)),

	NewChallengeService,
	wire.Bind(new(IChallengeService), new(*ChallengeService)),

	wire.Struct(new(FeedService), "*"),
	wire.Bind(new(IFeedService), new(*FeedService)),

	wire.Struct(new(FormService), "*"),
	wire.Bind(new(IFormService), new(*FormService)),

	wire.Struct(new(PinService), "*"),
	wire.Bind(new(IPinService), new(*PinService)),

	wire.Struct(new(BookmarkService), "*"),
	wire.Bind(new(IBookmarkService), new(*BookmarkService)),

	wire.Struct(new(FollowService), "*"),
	wire.Bind(new(IFollowService), new(*FollowService)),

	wire.Struct(new(LikeService), "*"),
	wire.Bind(new(ILikeService), new(*LikeService)),

	wire.Struct(new(AnythingService), "*"),
	wire.Bind(new(IAnythingService), new(*AnythingService)),

	NewOssService,
)
