package config

type Jwt struct {
	Secret string `json:"secret" yaml:"secret"`
	// 访问令牌有效期（秒）
	ExpiresTime int64 `json:"expires_time" yaml:"expires_time"`
}
