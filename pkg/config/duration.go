package config

import "time"

// Duration 配置中的时长字段，YAML/JSON 里写秒数
type Duration int64

// Duration 转换为 time.Duration
func (d Duration) Duration() time.Duration {
	return time.Duration(d) * time.Second
}

// Seconds 返回秒数
func (d Duration) Seconds() int64 {
	return int64(d)
}

// DurationOr 小于等于零时返回兜底时长
func (d Duration) DurationOr(fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d.Duration()
}
