package rocketmq

import (
	"Rately/config"
	"Rately/pkg/log"
	"context"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

func init() {
	rlog.SetLogLevel("error")
}

// InitProducer 初始化评分事件生产者
// 连接失败只记日志不阻塞启动，事件投递本身就是尽力而为
func InitProducer(cfg *config.RocketMQConfig) rocketmq.Producer {
	if cfg == nil || len(cfg.NameServer) == 0 {
		log.L.Warn("rocketmq not configured, rating events disabled")
		return nil
	}
	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.GroupName),
		producer.WithRetry(2),
	)
	if err != nil {
		log.L.Error("init producer error", zap.Error(err))
		return nil
	}
	if err = p.Start(); err != nil {
		log.L.Error("start producer error", zap.Error(err))
		return nil
	}
	log.L.Info("init producer success")
	return p
}

// SendMsg 发送同步消息
func SendMsg(p rocketmq.Producer, topic string, body []byte) error {
	if p == nil {
		return nil
	}
	msg := &primitive.Message{
		Topic: topic,
		Body:  body,
	}

	res, err := p.SendSync(context.Background(), msg)
	if err != nil {
		return err
	}
	log.L.Info("send message success", zap.Any("msg", res.MsgID))
	return nil
}
