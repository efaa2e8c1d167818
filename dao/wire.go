//go:build wireinject

package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewRatingDAO,
	NewContentStatusDAO,
	NewChallengeDAO,
	NewPinnedItemDAO,
	NewBookmarkDAO,
	NewUserFollowDAO,
	NewUserStatsDAO,
	NewReviewLikeDAO,
	NewAnythingItemDAO,
	NewImage,
)
