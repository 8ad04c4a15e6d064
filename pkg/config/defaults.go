package config

// ==================== ResolverConfig 默认值 ====================

// ApplyDefaults 应用消息解析器配置默认值
func (r *ResolverConfig) ApplyDefaults() {
	if r.Source == "" {
		r.Source = "none"
	}
	if r.Locale == "" {
		r.Locale = "en"
	}
	if r.RedisPrefix == "" {
		r.RedisPrefix = "fault:messages"
	}
	if r.CacheTTL <= 0 {
		r.CacheTTL = 300
	}
	if r.Timeout <= 0 {
		r.Timeout = 1
	}
}

// ==================== ReporterConfig 默认值 ====================

// ApplyDefaults 应用错误事件上报配置默认值
func (r *ReporterConfig) ApplyDefaults() {
	if r.Topic == "" {
		r.Topic = "platform.fault-events"
	}
	if r.RequiredAcks == "" {
		r.RequiredAcks = "all"
	}
	if r.MaxAttempts <= 0 {
		r.MaxAttempts = 3
	}
}

// ==================== TracingConfig 默认值 ====================

// ApplyDefaults 应用 Tracing 配置默认值
func (t *TracingConfig) ApplyDefaults() {
	if t.Exporter == "" {
		t.Exporter = "stdout"
	}
	if t.SampleRatio <= 0 {
		t.SampleRatio = 1.0
	}
}
