package bootstrap

import (
	"io"
	"os"
	"strings"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	log "github.com/sirupsen/logrus"

	"github.com/Goden-Gun/fault-lib/pkg/config"
)

// originHook 给每条日志附加服务名和实例标识
// 多服务共用一个故障日志管道时靠这两个字段区分来源
type originHook struct {
	service  string
	instance string
}

func (h *originHook) Levels() []log.Level {
	return log.AllLevels
}

func (h *originHook) Fire(entry *log.Entry) error {
	if h.service != "" {
		entry.Data["service"] = h.service
	}
	entry.Data["instance"] = h.instance
	return nil
}

// detectInstance 探测实例标识，容器环境下即容器ID
func detectInstance() string {
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		return hostname
	}

	if data, err := os.ReadFile("/etc/hostname"); err == nil {
		if hostname := strings.TrimSpace(string(data)); hostname != "" {
			return hostname
		}
	}

	return "unknown"
}

// InitLogger 初始化日志格式与级别
// 级别不合法时降级到 info，不让日志配置阻断启动
func InitLogger(cfg config.LogConfig) error {
	switch cfg.Format {
	case "text":
		log.SetFormatter(&log.TextFormatter{})
	default:
		log.SetFormatter(&log.JSONFormatter{})
	}

	if lvl, err := log.ParseLevel(cfg.Level); err == nil {
		log.SetLevel(lvl)
	} else {
		log.SetLevel(log.InfoLevel)
		log.Warnf("invalid log level %q, fallback to info", cfg.Level)
	}

	log.SetReportCaller(cfg.ReportCaller)

	if cfg.File != nil && cfg.File.Enabled {
		return setupFileOutput(cfg.File, "")
	}
	return nil
}

// InitServiceLogger 初始化日志并附加服务来源字段，日志文件按服务名滚动
func InitServiceLogger(cfg config.LogConfig, serviceName string) error {
	if err := InitLogger(cfg); err != nil {
		return err
	}

	log.AddHook(&originHook{service: serviceName, instance: detectInstance()})

	if cfg.File == nil || !cfg.File.Enabled {
		return setupFileOutput(&config.LogFileConfig{Enabled: true}, serviceName)
	}
	return nil
}

// setupFileOutput 设置日志文件输出，按天滚动并保留软链接指向当前文件
func setupFileOutput(fileCfg *config.LogFileConfig, serviceName string) error {
	logDir := fileCfg.Dir
	if logDir == "" {
		logDir = "./logs"
	}

	if err := os.MkdirAll(logDir, 0755); err != nil {
		log.Errorf("创建日志目录失败: %v", err)
		return err
	}

	filename := fileCfg.Filename
	if filename == "" {
		filename = serviceName
	}
	if filename == "" {
		filename = "app"
	}

	maxAge := fileCfg.MaxAgeDays
	if maxAge <= 0 {
		maxAge = 7
	}

	rotationDays := fileCfg.RotationDays
	if rotationDays <= 0 {
		rotationDays = 1
	}

	writer, err := rotatelogs.New(
		logDir+"/"+filename+".%Y%m%d.log",
		rotatelogs.WithLinkName(logDir+"/"+filename+".log"),
		rotatelogs.WithMaxAge(time.Duration(maxAge)*24*time.Hour),
		rotatelogs.WithRotationTime(time.Duration(rotationDays)*24*time.Hour),
	)
	if err != nil {
		log.Errorf("设置日志输出失败: %v", err)
		return err
	}

	log.SetOutput(io.MultiWriter(os.Stdout, writer))
	return nil
}
