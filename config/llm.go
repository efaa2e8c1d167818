package config

type LLM struct {
	BaseURL string `json:"base_url" yaml:"base_url"`
	ApiKey  string `json:"api_key" yaml:"api_key"`
	Model   string `json:"model" yaml:"model"`
}
