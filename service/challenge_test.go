package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYearWindow(t *testing.T) {
	start, end := YearWindow(2025)

	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC), end)

	// 跨年瞬间归属：12-31 23:59:59 UTC 算今年，次年 00:00:00 算明年
	lastSecond := time.Date(2025, 12, 31, 23, 59, 59, 0, time.UTC)
	assert.True(t, lastSecond.After(start) && lastSecond.Before(end))
	assert.False(t, end.Before(end))
}

func TestProgressPercentage(t *testing.T) {
	assert.Equal(t, 0, ProgressPercentage(0, 50))
	assert.Equal(t, 50, ProgressPercentage(25, 50))
	assert.Equal(t, 100, ProgressPercentage(50, 50))
	// 超额完成封顶 100
	assert.Equal(t, 100, ProgressPercentage(80, 50))
	// 四舍五入
	assert.Equal(t, 33, ProgressPercentage(1, 3))
	assert.Equal(t, 67, ProgressPercentage(2, 3))
	// 非法目标兜底
	assert.Equal(t, 0, ProgressPercentage(10, 0))
}

func TestMarkCelebrated_OneShot(t *testing.T) {
	s := NewChallengeService(nil, nil, nil, nil)

	// 首次完成触发一次，之后不再触发
	assert.True(t, s.markCelebrated(1, 100))
	assert.False(t, s.markCelebrated(1, 100))
	assert.False(t, s.markCelebrated(1, 100))

	// 不同挑战、不同用户互不影响
	assert.True(t, s.markCelebrated(1, 101))
	assert.True(t, s.markCelebrated(2, 100))
}

func TestMarkCelebrated_Concurrent(t *testing.T) {
	s := NewChallengeService(nil, nil, nil, nil)

	const workers = 32
	results := make(chan bool, workers)
	for i := 0; i < workers; i++ {
		go func() {
			results <- s.markCelebrated(7, 700)
		}()
	}

	var fired int
	for i := 0; i < workers; i++ {
		if <-results {
			fired++
		}
	}
	// 并发下也只允许一个赢家
	assert.Equal(t, 1, fired)
}
