package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"mymultichain/adapters/myredis"
	"mymultichain/domain"

	"github.com/go-kit/log/level"
	"github.com/labstack/gommon/bytes"
	"gopkg.in/yaml.v3"
)

// Env variable names.
const (
	envHTTPPort           = "SERVICE_PORT_HTTP"
	envGRPCHealthPort     = "SERVICE_PORT_GRPC_HEALTH"
	envConcurrentRequests = "CONCURRENT_REQUESTS"
	envRequestTimeoutMs   = "REQUEST_TIMEOUT_MS"
	envInstancesSource    = "INSTANCES_SOURCE"
	envConfigPath         = "CONFIG_PATH"
	envRedisAddr          = "REDIS_ADDR"
	envRedisPrefix        = "REDIS_PREFIX"
	envMaxBodySize        = "MAX_BODY_SIZE"
	envLogLevel           = "LOG_LEVEL"
)

// Instance sources.
const (
	sourceYAML  = "yaml"
	sourceRedis = "redis"
)

const (
	defaultRedisPrefix = "instance"
	defaultMaxBodySize = "2M"
	defaultLogLevel    = "info"
)

// Config holds the proxy configuration loaded by LoadConfig from environment variables and, for the yaml
// source, the instance file at CONFIG_PATH. Instances is filled only for the yaml source; the redis source
// is read by main after the client is connected.
type Config struct {
	HTTPPort           int
	GRPCHealthPort     int
	ConcurrentRequests int
	RequestTimeout     time.Duration
	InstancesSource    string
	Instances          []domain.Instance
	Redis              myredis.RedisConfig
	MaxBodySize        string
	LogLevel           string
}

// yamlConfig is the root struct for YAML unmarshalling.
type yamlConfig struct {
	Instances []yamlInstance `yaml:"instances"`
}

// yamlInstance is one instance entry: id, title (optional) and base url.
type yamlInstance struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// loadYAMLConfig reads the YAML file at path and unmarshals it into yamlConfig.
func loadYAMLConfig(path string) (*yamlConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var out yamlConfig
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LoadConfig builds the proxy config from environment variables. SERVICE_PORT_HTTP, CONCURRENT_REQUESTS and
// REQUEST_TIMEOUT_MS are required. INSTANCES_SOURCE selects yaml (default, needs CONFIG_PATH) or redis
// (needs REDIS_ADDR). Every yaml entry goes through domain.NewInstance and the whole list through
// domain.ValidateInstances, so a Config with the yaml source always carries a usable instance list.
//
// Returns: (*Config, nil) on success; (nil, error) on the first invalid or missing value.
//
// Called only from main at startup.
func LoadConfig() (*Config, error) {
	httpPort, err := parsePort(envHTTPPort, true)
	if err != nil {
		return nil, err
	}
	grpcHealthPort, err := parsePort(envGRPCHealthPort, false)
	if err != nil {
		return nil, err
	}
	concurrent, err := parsePositiveInt(envConcurrentRequests)
	if err != nil {
		return nil, err
	}
	timeoutMs, err := parsePositiveInt(envRequestTimeoutMs)
	if err != nil {
		return nil, err
	}

	maxBodySize := strings.TrimSpace(os.Getenv(envMaxBodySize))
	if maxBodySize == "" {
		maxBodySize = defaultMaxBodySize
	}
	if _, err := bytes.Parse(maxBodySize); err != nil {
		return nil, fmt.Errorf("invalid %s %q: %w", envMaxBodySize, maxBodySize, err)
	}

	logLevel := strings.ToLower(strings.TrimSpace(os.Getenv(envLogLevel)))
	if logLevel == "" {
		logLevel = defaultLogLevel
	}
	if _, err := levelOption(logLevel); err != nil {
		return nil, err
	}

	cfg := &Config{
		HTTPPort:           httpPort,
		GRPCHealthPort:     grpcHealthPort,
		ConcurrentRequests: concurrent,
		RequestTimeout:     time.Duration(timeoutMs) * time.Millisecond,
		MaxBodySize:        maxBodySize,
		LogLevel:           logLevel,
	}

	source := strings.ToLower(strings.TrimSpace(os.Getenv(envInstancesSource)))
	switch source {
	case "", sourceYAML:
		cfg.InstancesSource = sourceYAML
		cfg.Instances, err = loadInstancesFromYAML()
		if err != nil {
			return nil, err
		}
	case sourceRedis:
		cfg.InstancesSource = sourceRedis
		cfg.Redis.Addr = strings.TrimSpace(os.Getenv(envRedisAddr))
		if cfg.Redis.Addr == "" {
			return nil, fmt.Errorf("%s is required when %s=%s", envRedisAddr, envInstancesSource, sourceRedis)
		}
		cfg.Redis.Prefix = strings.TrimSpace(os.Getenv(envRedisPrefix))
		if cfg.Redis.Prefix == "" {
			cfg.Redis.Prefix = defaultRedisPrefix
		}
	default:
		return nil, fmt.Errorf("%s must be %s|%s, got %q", envInstancesSource, sourceYAML, sourceRedis, source)
	}

	return cfg, nil
}

// loadInstancesFromYAML reads CONFIG_PATH (made absolute) and converts its entries to validated instances.
func loadInstancesFromYAML() ([]domain.Instance, error) {
	configPath := strings.TrimSpace(os.Getenv(envConfigPath))
	if configPath == "" {
		return nil, fmt.Errorf("%s is required", envConfigPath)
	}
	if !filepath.IsAbs(configPath) {
		abs, absErr := filepath.Abs(configPath)
		if absErr != nil {
			return nil, absErr
		}
		configPath = abs
	}
	raw, err := loadYAMLConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", configPath, err)
	}

	instances := make([]domain.Instance, 0, len(raw.Instances))
	for i, entry := range raw.Instances {
		inst, err := domain.NewInstance(entry.ID, entry.Title, entry.URL)
		if err != nil {
			var cfgErr *domain.InstanceConfigError
			if errors.As(err, &cfgErr) {
				cfgErr.Index = i
			}
			return nil, fmt.Errorf("config %s: %w", configPath, err)
		}
		instances = append(instances, inst)
	}
	if err := domain.ValidateInstances(instances); err != nil {
		return nil, fmt.Errorf("config %s: %w", configPath, err)
	}
	return instances, nil
}

// parsePort reads a 1-65535 port from env. An optional port that is unset or "0" is returned as 0 (disabled).
func parsePort(env string, required bool) (int, error) {
	s := strings.TrimSpace(os.Getenv(env))
	if s == "" || (!required && s == "0") {
		if required {
			return 0, fmt.Errorf("%s is required", env)
		}
		return 0, nil
	}
	port, err := strconv.Atoi(s)
	if err != nil || port <= 0 || port > 65535 {
		return 0, fmt.Errorf("%s must be a valid port (1-65535), got %q", env, s)
	}
	return port, nil
}

func parsePositiveInt(env string) (int, error) {
	s := strings.TrimSpace(os.Getenv(env))
	if s == "" {
		return 0, fmt.Errorf("%s is required", env)
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%s must be a positive integer, got %q", env, s)
	}
	return n, nil
}

// levelOption maps LOG_LEVEL to a go-kit level filter.
func levelOption(name string) (level.Option, error) {
	switch name {
	case "debug":
		return level.AllowDebug(), nil
	case "info":
		return level.AllowInfo(), nil
	case "warn":
		return level.AllowWarn(), nil
	case "error":
		return level.AllowError(), nil
	default:
		return nil, fmt.Errorf("%s must be debug|info|warn|error, got %q", envLogLevel, name)
	}
}
