package service

import (
	"Rately/dao"
	"Rately/dao/cache"
	"Rately/models"
	"Rately/pkg/snowflake"
	"Rately/types"
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	cmap "github.com/orcaman/concurrent-map/v2"
	"github.com/sourcegraph/conc/pool"
)

var _ IChallengeService = (*ChallengeService)(nil)

type IChallengeService interface {
	CreateChallenge(ctx context.Context, userID uint64, req *types.CreateChallengeRequest) (*types.ChallengeProgress, error)
	ListChallenges(ctx context.Context, userID uint64) (*types.ListChallengesResponse, error)
	DeleteChallenge(ctx context.Context, userID uint64, challengeID uint64) error
}

type ChallengeService struct {
	ChallengeDAO *dao.ChallengeDAO
	RatingDAO    *dao.RatingDAO
	Cache        *cache.AggregateStorage
	Notify       *cache.NotifyStorage

	// celebrated 完成庆祝的一次性门闩，同一个挑战只触发一次
	celebrated cmap.ConcurrentMap[string, struct{}]
}

func NewChallengeService(
	challengeDAO *dao.ChallengeDAO,
	ratingDAO *dao.RatingDAO,
	aggCache *cache.AggregateStorage,
	notify *cache.NotifyStorage,
) *ChallengeService {
	return &ChallengeService{
		ChallengeDAO: challengeDAO,
		RatingDAO:    ratingDAO,
		Cache:        aggCache,
		Notify:       notify,
		celebrated:   cmap.New[struct{}](),
	}
}

const challengesCacheName = "challenge_list"

// CreateChallenge 创建年度挑战，同一年同一类别只能有一个
func (s *ChallengeService) CreateChallenge(ctx context.Context, userID uint64, req *types.CreateChallengeRequest) (*types.ChallengeProgress, error) {
	if !types.IsValidCategoryFilter(req.CategoryFilter) {
		return nil, types.ErrInvalidContentType
	}

	exists, err := s.ChallengeDAO.ExistsForFilter(ctx, userID, req.Year, req.CategoryFilter)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, types.ErrDuplicateChallenge
	}

	now := time.Now()
	challenge := &models.AnnualChallenge{
		ID:             uint64(snowflake.GenID()),
		UserID:         userID,
		Year:           req.Year,
		CategoryFilter: req.CategoryFilter,
		TargetCount:    req.TargetCount,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.ChallengeDAO.Create(ctx, challenge); err != nil {
		return nil, err
	}

	s.Cache.Invalidate(ctx, userID, cache.GroupChallenges)

	progress, err := s.challengeProgress(ctx, challenge)
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// ListChallenges 挑战列表 + 实时进度
// 进度查询逐个挑战并行执行，庆祝门闩在缓存读取之后再判定，保证只触发一次
func (s *ChallengeService) ListChallenges(ctx context.Context, userID uint64) (*types.ListChallengesResponse, error) {
	resp, err := s.loadChallenges(ctx, userID)
	if err != nil {
		return nil, err
	}

	for _, p := range resp.Challenges {
		if !p.IsCompleted {
			continue
		}
		if s.markCelebrated(userID, p.ID) {
			p.JustCompleted = true
			s.publishCompleted(ctx, userID, p)
		}
	}
	return resp, nil
}

func (s *ChallengeService) loadChallenges(ctx context.Context, userID uint64) (*types.ListChallengesResponse, error) {
	if val, ok := s.Cache.Get(ctx, userID, cache.GroupChallenges, challengesCacheName); ok {
		var resp types.ListChallengesResponse
		if err := json.Unmarshal([]byte(val), &resp); err == nil {
			return &resp, nil
		}
	}

	challenges, err := s.ChallengeDAO.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	results := make([]*types.ChallengeProgress, len(challenges))
	p := pool.New().WithErrors().WithContext(ctx)
	for i, ch := range challenges {
		i, ch := i, ch
		p.Go(func(ctx context.Context) error {
			progress, err := s.challengeProgress(ctx, ch)
			if err != nil {
				return err
			}
			results[i] = progress
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}

	resp := &types.ListChallengesResponse{Challenges: results}
	if data, err := json.Marshal(resp); err == nil {
		s.Cache.Set(ctx, userID, cache.GroupChallenges, challengesCacheName, string(data))
	}
	return resp, nil
}

// DeleteChallenge 删除挑战，不存在按空操作处理
func (s *ChallengeService) DeleteChallenge(ctx context.Context, userID uint64, challengeID uint64) error {
	if _, err := s.ChallengeDAO.DeleteByID(ctx, userID, challengeID); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, userID, cache.GroupChallenges)
	return nil
}

// challengeProgress 统计单个挑战的实时进度，年份窗口按 UTC 计算
func (s *ChallengeService) challengeProgress(ctx context.Context, ch *models.AnnualChallenge) (*types.ChallengeProgress, error) {
	start, end := YearWindow(ch.Year)
	count, err := s.RatingDAO.CountInRange(ctx, ch.UserID, ch.CategoryFilter, start, end)
	if err != nil {
		return nil, err
	}

	return &types.ChallengeProgress{
		ID:             ch.ID,
		Year:           ch.Year,
		CategoryFilter: ch.CategoryFilter,
		TargetCount:    ch.TargetCount,
		Progress:       count,
		Percentage:     ProgressPercentage(count, ch.TargetCount),
		IsCompleted:    count >= int64(ch.TargetCount),
		CreatedAt:      ch.CreatedAt,
	}, nil
}

// markCelebrated 首次观察到完成时返回 true，之后永远返回 false
func (s *ChallengeService) markCelebrated(userID, challengeID uint64) bool {
	key := fmt.Sprintf("%d:%d", userID, challengeID)
	return s.celebrated.SetIfAbsent(key, struct{}{})
}

func (s *ChallengeService) publishCompleted(ctx context.Context, userID uint64, p *types.ChallengeProgress) {
	body, err := json.Marshal(p)
	if err != nil {
		return
	}
	s.Notify.Publish(ctx, &cache.NotifyEvent{
		Type:   cache.EventChallengeCompleted,
		UserID: userID,
		Body:   body,
	})
}

// YearWindow 某年的 UTC 时间窗口 [start, end)
func YearWindow(year int) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(1, 0, 0)
}

// ProgressPercentage 进度百分比，封顶 100
func ProgressPercentage(progress int64, target int) int {
	if target <= 0 {
		return 0
	}
	pct := int(math.Round(float64(progress) * 100 / float64(target)))
	if pct > 100 {
		return 100
	}
	return pct
}
