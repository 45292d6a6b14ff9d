package config

// Config 配置主体
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Upstream UpstreamConfig `mapstructure:"upstream"`
	Logstash LogstashConfig `mapstructure:"logstash"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// UpstreamConfig 上游存款接口配置
type UpstreamConfig struct {
	BaseURL  string `mapstructure:"base_url"`
	APIToken string `mapstructure:"api_token"`
	// PageSize 全量拉取时的固定分页大小，与前端请求的分页无关
	PageSize int `mapstructure:"page_size"`
	// MaxPages 拉取循环的安全页数上限
	MaxPages int `mapstructure:"max_pages"`
	// FetchTimeout 单页透传查询超时（秒）
	FetchTimeout int `mapstructure:"fetch_timeout"`
	// CollateTimeout 全量拉取时单次请求超时（秒）
	CollateTimeout int `mapstructure:"collate_timeout"`
}

// LogstashConfig 日志远程上报配置
type LogstashConfig struct {
	Address string `mapstructure:"address"`
	Index   string `mapstructure:"index"`
	Token   string `mapstructure:"token"`
}
