package config

// Metadata 第三方内容元数据服务配置
// 每类内容对应一个外部服务，key 由各服务的控制台申请
type Metadata struct {
	Movie   *MetadataService `json:"movie" yaml:"movie"`
	Book    *MetadataService `json:"book" yaml:"book"`
	Game    *MetadataService `json:"game" yaml:"game"`
	Music   *MetadataService `json:"music" yaml:"music"`
	Podcast *MetadataService `json:"podcast" yaml:"podcast"`
}

type MetadataService struct {
	BaseURL string `json:"base_url" yaml:"base_url"`
	ApiKey  string `json:"api_key" yaml:"api_key"`
}
