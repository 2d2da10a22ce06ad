package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultLogLevel   = "info"
	defaultLogMaxSize = 10 // MB
)

// Config 程序配置
type Config struct {
	Log    LogConfig    `yaml:"log"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
}

// LogConfig 日志配置
type LogConfig struct {
	Dir       string `yaml:"dir"`         // 日志目录，为空时使用 ~/.hanabi
	Level     string `yaml:"level"`       // debug / info / warn / error
	MaxSizeMB int    `yaml:"max_size_mb"` // 日志轮转阈值（MB）
}

// InputConfig 命令来源配置
type InputConfig struct {
	Path string `yaml:"path"` // 命令脚本路径，为空时读标准输入
}

// OutputConfig 汇总输出配置
type OutputConfig struct {
	Path string `yaml:"path"` // 汇总文件路径，为空时写标准输出
}

// MaxSizeBytes 返回日志轮转阈值（字节）
func (c *LogConfig) MaxSizeBytes() int64 {
	return int64(c.MaxSizeMB) * 1024 * 1024
}

// Load 加载配置文件，然后应用 .env 与环境变量覆盖
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	if err := loadDotEnv(); err != nil {
		return nil, err
	}
	applyEnv(&cfg)
	applyDefaults(&cfg)

	return &cfg, nil
}

// Default 返回默认配置（仍应用环境变量覆盖）
func Default() *Config {
	cfg := &Config{}
	_ = loadDotEnv()
	applyEnv(cfg)
	applyDefaults(cfg)
	return cfg
}

// loadDotEnv 读取当前目录的 .env，文件不存在不算错误
func loadDotEnv() error {
	err := godotenv.Load()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func applyDefaults(cfg *Config) {
	if cfg.Log.Level == "" {
		cfg.Log.Level = defaultLogLevel
	}
	if cfg.Log.MaxSizeMB == 0 {
		cfg.Log.MaxSizeMB = defaultLogMaxSize
	}
}

// applyEnv 环境变量优先于配置文件
func applyEnv(cfg *Config) {
	if v := os.Getenv("HANABI_LOG_DIR"); v != "" {
		cfg.Log.Dir = v
	}
	if v := os.Getenv("HANABI_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("HANABI_LOG_MAX_SIZE_MB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Log.MaxSizeMB = n
		}
	}
	if v := os.Getenv("HANABI_INPUT"); v != "" {
		cfg.Input.Path = v
	}
	if v := os.Getenv("HANABI_OUTPUT"); v != "" {
		cfg.Output.Path = v
	}
}
