package config

type App struct {
	Env   string `json:"env" yaml:"env"`
	Debug bool   `json:"debug" yaml:"debug"`
	// AuthBypass 本地调试跳过鉴权，只在非 prod 环境生效
	AuthBypass       bool   `json:"auth_bypass" yaml:"auth_bypass"`
	AuthBypassUserID uint64 `json:"auth_bypass_user_id" yaml:"auth_bypass_user_id"`
	HashSalt         string `json:"hash_salt" yaml:"hash_salt"`
}
