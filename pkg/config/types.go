package config

// ==================== 基础配置 (所有服务都需要) ====================

// AppConfig 应用基础配置
type AppConfig struct {
	Env         string `yaml:"env" mapstructure:"env"`
	ServiceName string `yaml:"service_name" mapstructure:"service_name"`
}

// LogConfig 日志配置
type LogConfig struct {
	Format       string         `yaml:"format" mapstructure:"format"`
	Level        string         `yaml:"level" mapstructure:"level"`
	ReportCaller bool           `yaml:"report_caller" mapstructure:"report_caller"`
	File         *LogFileConfig `yaml:"file" mapstructure:"file"`
}

// LogFileConfig 日志文件输出配置，nil 则只输出到 stdout
type LogFileConfig struct {
	Enabled      bool   `yaml:"enabled" mapstructure:"enabled"`
	Dir          string `yaml:"dir" mapstructure:"dir"`
	Filename     string `yaml:"filename" mapstructure:"filename"`
	MaxAgeDays   int    `yaml:"max_age_days" mapstructure:"max_age_days"`
	RotationDays int    `yaml:"rotation_days" mapstructure:"rotation_days"`
}

// ==================== 错误响应配置 ====================

// ProblemConfig RFC7807 错误响应配置
type ProblemConfig struct {
	// DocumentationURL 填入响应 type 字段，空则使用 "about:blank"
	DocumentationURL string `yaml:"documentation_url" mapstructure:"documentation_url"`
}

// ResolverConfig 消息解析器配置
type ResolverConfig struct {
	// Source 支持: "none" | "static" | "redis"（默认 none，直接使用静态文案）
	Source      string   `yaml:"source" mapstructure:"source"`
	Locale      string   `yaml:"locale" mapstructure:"locale"`
	RedisPrefix string   `yaml:"redis_prefix" mapstructure:"redis_prefix"`
	CacheTTL    Duration `yaml:"cache_ttl" mapstructure:"cache_ttl"`
	Timeout     Duration `yaml:"timeout" mapstructure:"timeout"`
}

// ==================== 基础设施配置 ====================

// RedisConfig Redis 连接配置
type RedisConfig struct {
	Addr     string `yaml:"addr" mapstructure:"addr"`
	Username string `yaml:"username" mapstructure:"username"`
	Password string `yaml:"password" mapstructure:"password"`
	Db       int    `yaml:"db" mapstructure:"db"`
}

// ReporterConfig 错误事件上报配置 (Kafka)
type ReporterConfig struct {
	Enabled       bool     `yaml:"enabled" mapstructure:"enabled"`
	Brokers       []string `yaml:"brokers" mapstructure:"brokers"`
	Topic         string   `yaml:"topic" mapstructure:"topic"`
	ClientID      string   `yaml:"client_id" mapstructure:"client_id"`
	Username      string   `yaml:"username" mapstructure:"username"`
	Password      string   `yaml:"password" mapstructure:"password"`
	SASLMechanism string   `yaml:"sasl_mechanism" mapstructure:"sasl_mechanism"`
	TLSEnabled    bool     `yaml:"tls_enabled" mapstructure:"tls_enabled"`
	RequiredAcks  string   `yaml:"required_acks" mapstructure:"required_acks"`
	MaxAttempts   int      `yaml:"max_attempts" mapstructure:"max_attempts"`
}

// ==================== 可观测性配置 ====================

// TracingConfig 分布式追踪配置
type TracingConfig struct {
	Exporter     string            `yaml:"exporter" mapstructure:"exporter"`
	Endpoint     string            `yaml:"endpoint" mapstructure:"endpoint"`
	ServiceName  string            `yaml:"service_name" mapstructure:"service_name"`
	Insecure     bool              `yaml:"insecure" mapstructure:"insecure"`
	Headers      map[string]string `yaml:"headers" mapstructure:"headers"`
	SampleRatio  float64           `yaml:"sample_ratio" mapstructure:"sample_ratio"`
	ResourceTags map[string]string `yaml:"resource_tags" mapstructure:"resource_tags"`
}
