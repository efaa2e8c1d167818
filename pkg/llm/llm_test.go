package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseTags(t *testing.T) {
	tags := ParseTags("#科幻 #太空歌剧 #三部曲 #硬核 #神作")
	assert.Equal(t, []string{"科幻", "太空歌剧", "三部曲", "硬核", "神作"}, tags)
}

func TestParseTags_Empty(t *testing.T) {
	assert.Empty(t, ParseTags("没有任何标签的输出"))
}

func TestParseTags_Mixed(t *testing.T) {
	tags := ParseTags("以下是标签：#独立游戏 其他文字 #像素风")
	assert.Equal(t, []string{"独立游戏", "像素风"}, tags)
}
