package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port          int           `yaml:"port"`
	TopicsPerPage int           `yaml:"topics_per_page"`
	JwtTTL        time.Duration `yaml:"jwt_ttl"`
	LogLevel      string        `yaml:"log_level"`
	LogJSON       bool          `yaml:"log_json"`
	Redis         Redis         `yaml:"redis"`
}

type Redis struct {
	Addr     string        `yaml:"addr"` // empty addr disables the cache
	CacheTTL time.Duration `yaml:"cache_ttl"`
}

type Pg struct {
	Host           string `yaml:"host"`
	Port           int    `yaml:"port"`
	User           string `yaml:"user"`
	Password       string `yaml:"password"`
	Dbname         string `yaml:"dbname"`
	MigrationsPath string `yaml:"migrations_path"`
}

type Private struct {
	Pg     Pg     `yaml:"pg"`
	JwtKey string `yaml:"jwt_key"`
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	cfg.mustValidate()
	return cfg
}

func (c *Config) mustValidate() {
	if c.Public.TopicsPerPage <= 0 {
		panic("config: topics_per_page must be positive")
	}
	if c.Public.JwtTTL <= 0 {
		panic("config: jwt_ttl must be positive")
	}
	if c.Private.JwtKey == "" {
		panic("config: jwt_key is required")
	}
}
