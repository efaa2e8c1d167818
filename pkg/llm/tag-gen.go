package llm

import (
	"Rately/config"
	"Rately/pkg/log"
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"go.uber.org/zap"
)

type Tagger struct {
	client openai.Client
	model  string
}

func NewTagger(cfg *config.Config) *Tagger {
	if cfg.LLM == nil || cfg.LLM.ApiKey == "" {
		return &Tagger{}
	}
	return &Tagger{
		client: openai.NewClient(
			option.WithAPIKey(cfg.LLM.ApiKey),
			option.WithBaseURL(cfg.LLM.BaseURL),
		),
		model: cfg.LLM.Model,
	}
}

// GenItemTags 为自建条目生成话题标签，失败时返回空列表不影响主流程
func (t *Tagger) GenItemTags(ctx context.Context, title, description string) []string {
	if t.model == "" {
		return make([]string, 0)
	}

	promptText := fmt.Sprintf(
		"你是一个内容打标专家。用户自建了一个可评分条目，请只输出5个话题标签，用#开头，用空格分隔，不要任何其他内容。\n\n"+
			"【名称】：%s\n"+
			"【简介】：%s",
		title, description,
	)
	startTime := time.Now()
	userMessage := openai.ChatCompletionUserMessageParam{
		Content: openai.ChatCompletionUserMessageParamContentUnion{
			OfString: openai.String(promptText),
		},
	}
	params := openai.ChatCompletionNewParams{
		Model: t.model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			{OfUser: &userMessage},
		},
	}
	completion, err := t.client.Chat.Completions.New(ctx, params)
	if err != nil {
		log.L.Error("failed to gen tag", zap.Error(err))
		return make([]string, 0)
	}
	content := completion.Choices[0].Message.Content
	log.L.Info("gen tag", zap.String("tag", content), zap.Duration("gen time", time.Since(startTime)))
	return ParseTags(content)
}

func ParseTags(input string) []string {
	re := regexp.MustCompile(`#[^\s#]+`)
	matches := re.FindAllString(input, -1)

	var tags []string
	for _, tag := range matches {
		cleanTag := strings.TrimPrefix(tag, "#")
		tags = append(tags, cleanTag)
	}
	return tags
}
