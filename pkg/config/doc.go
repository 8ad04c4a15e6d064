// Package config provides common configuration types and utilities
// for services consuming fault-lib.
//
// Usage:
//
//	import "github.com/Goden-Gun/fault-lib/pkg/config"
//
//	type MyConfig struct {
//	    App      config.AppConfig      `yaml:"app" mapstructure:"app"`
//	    Log      config.LogConfig      `yaml:"log" mapstructure:"log"`
//	    Problem  config.ProblemConfig  `yaml:"problem" mapstructure:"problem"`
//	    Resolver config.ResolverConfig `yaml:"resolver" mapstructure:"resolver"`
//	    // ... service-specific configs
//	}
//
//	func LoadMyConfig() (*MyConfig, error) {
//	    cfg := &MyConfig{}
//	    if err := config.LoadConfig(cfg); err != nil {
//	        return nil, err
//	    }
//	    cfg.App.Env = config.GetEnv()
//	    return cfg, nil
//	}
package config
