package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenShareCode(t *testing.T) {
	code := GenShareCode("rately-salt", 1024)
	assert.GreaterOrEqual(t, len(code), 12)

	// 同一 id 同一 salt 结果稳定
	assert.Equal(t, code, GenShareCode("rately-salt", 1024))

	// 不同 id 不碰撞
	assert.NotEqual(t, code, GenShareCode("rately-salt", 1025))
}

func TestMtRand(t *testing.T) {
	for i := 0; i < 100; i++ {
		v := MtRand(1, 5)
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 5)
	}
}
