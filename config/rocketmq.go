package config

type RocketMQConfig struct {
	NameServer []string `json:"name_server" yaml:"name_server"`
	GroupName  string   `json:"group_name" yaml:"group_name"`
	// 评分事件主题
	RatingTopic string `json:"rating_topic" yaml:"rating_topic"`
}
