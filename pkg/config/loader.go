package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// LoadOptions 加载配置选项
type LoadOptions struct {
	ConfigPath    string // 配置文件目录，默认 "./configs"
	EnvPrefix     string // 环境变量前缀，用于 viper.AutomaticEnv
	AllowNoConfig bool   // 允许没有配置文件，纯环境变量配置
}

// Defaulter 可自动补全默认值的配置结构
// LoadConfig 反序列化后会调用 ApplyDefaults
type Defaulter interface {
	ApplyDefaults()
}

// loadDotEnv 加载 .env 文件，文件不存在不算错误
func loadDotEnv() error {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("load %s failed: %w", envFile, err)
	}
	return nil
}

// LoadConfig 通用配置加载函数，按 APP_ENV 选择 config_{env}.yaml
// cfg 必须是指向配置结构体的指针
func LoadConfig(cfg interface{}, opts ...LoadOptions) error {
	opt := LoadOptions{ConfigPath: "./configs"}
	if len(opts) > 0 {
		opt = opts[0]
	}

	if err := loadDotEnv(); err != nil {
		return err
	}

	viper.SetConfigName(fmt.Sprintf("config_%s", GetEnv()))
	viper.SetConfigType("yaml")
	viper.AddConfigPath(opt.ConfigPath)

	if opt.EnvPrefix != "" {
		viper.SetEnvPrefix(opt.EnvPrefix)
		viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		viper.AutomaticEnv()
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || !opt.AllowNoConfig {
			return fmt.Errorf("read config failed: %w", err)
		}
		// 没有配置文件时继续，靠环境变量和默认值
	}

	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unmarshal config failed: %w", err)
	}

	if d, ok := cfg.(Defaulter); ok {
		d.ApplyDefaults()
	}

	return nil
}

// GetEnv 获取当前环境，默认为 "dev"
func GetEnv() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		return "dev"
	}
	return env
}
