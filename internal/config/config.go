package config

import (
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"gopkg.in/yaml.v3"
)

// Config 引擎宿主配置。规则本身不可配置，这里只有持久化与日志
type Config struct {
	Redis RedisConfig `yaml:"redis"`
	Store StoreConfig `yaml:"store"`
	Log   LogConfig   `yaml:"log"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

// Options 转换为 go-redis 客户端选项
func (c *RedisConfig) Options() *redis.Options {
	return &redis.Options{
		Addr:     c.Addr,
		Password: c.Password,
		DB:       c.DB,
	}
}

// StoreConfig 对局存储配置
type StoreConfig struct {
	GameExpiration int `yaml:"game_expiration"` // 对局过期时间（小时）
	UpdateRetries  int `yaml:"update_retries"`  // 写冲突重试次数
}

// GameExpirationDuration 返回对局过期时长
func (c *StoreConfig) GameExpirationDuration() time.Duration {
	return time.Duration(c.GameExpiration) * time.Hour
}

// LogConfig 日志配置
type LogConfig struct {
	Dir string `yaml:"dir"` // 留空则写入 ~/.uno-engine
}

// Load 加载配置文件
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// 设置默认值
	if cfg.Redis.Addr == "" {
		cfg.Redis.Addr = "localhost:6379"
	}
	if cfg.Store.GameExpiration == 0 {
		cfg.Store.GameExpiration = 2
	}
	if cfg.Store.UpdateRetries == 0 {
		cfg.Store.UpdateRetries = 5
	}

	return &cfg, nil
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		Redis: RedisConfig{
			Addr: "localhost:6379",
		},
		Store: StoreConfig{
			GameExpiration: 2,
			UpdateRetries:  5,
		},
	}
}
