package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	CORS       CORSConfig
	Metrics    MetricsConfig

	// Selection assistant specifics
	Gemini     GeminiConfig
	Invoker    InvokerConfig
	Credential CredentialConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	ClientToken     string // when set, API calls must send X-Client-Token
	ShutdownTimeout time.Duration
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type CORSConfig struct {
	AllowedOrigins []string
}

type MetricsConfig struct {
	Enabled bool
}

type GeminiConfig struct {
	APIURL  string
	Model   string
	APIKey  string // seed key used until one is saved through the API
	Timeout time.Duration
}

// InvokerConfig is the retry policy for model calls. It is validated by invoker.New.
type InvokerConfig struct {
	MaxAttempts       int
	BaseDelay         time.Duration
	BackoffMultiplier float64
	RetryMalformed    bool
}

type CredentialConfig struct {
	Driver   string // file | redis | memory
	Key      string
	FilePath string
	Redis    RedisConfig
}

type RedisConfig struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.ClientToken = expandEnvVar(viper.GetString("http_server.client_token"))
	cfg.HTTPServer.ShutdownTimeout = viper.GetDuration("http_server.shutdown_timeout")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.CORS.AllowedOrigins = splitList(viper.Get("cors.allowed_origins"))
	cfg.Metrics.Enabled = viper.GetBool("metrics.enabled")

	// Gemini
	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.Model = viper.GetString("gemini.model")
	cfg.Gemini.APIKey = expandEnvVar(viper.GetString("gemini.api_key"))
	cfg.Gemini.Timeout = viper.GetDuration("gemini.timeout")
	if geminiKey := viper.GetString("gemini_api_key"); geminiKey != "" {
		cfg.Gemini.APIKey = geminiKey
	}

	// Invoker
	cfg.Invoker.MaxAttempts = viper.GetInt("invoker.max_attempts")
	cfg.Invoker.BaseDelay = viper.GetDuration("invoker.base_delay")
	cfg.Invoker.BackoffMultiplier = viper.GetFloat64("invoker.backoff_multiplier")
	cfg.Invoker.RetryMalformed = viper.GetBool("invoker.retry_malformed")

	// Credential store
	cfg.Credential.Driver = viper.GetString("credential.driver")
	cfg.Credential.Key = viper.GetString("credential.key")
	cfg.Credential.FilePath = viper.GetString("credential.file_path")
	cfg.Credential.Redis.Addr = viper.GetString("credential.redis.addr")
	cfg.Credential.Redis.Password = expandEnvVar(viper.GetString("credential.redis.password"))
	cfg.Credential.Redis.DB = viper.GetInt("credential.redis.db")
	cfg.Credential.Redis.KeyPrefix = viper.GetString("credential.redis.key_prefix")
	if redisAddr := viper.GetString("redis_addr"); redisAddr != "" {
		cfg.Credential.Redis.Addr = redisAddr
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.shutdown_timeout", "10s")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("cors.allowed_origins", []string{"chrome-extension://*", "moz-extension://*"})
	viper.SetDefault("metrics.enabled", true)

	// Gemini defaults
	viper.SetDefault("gemini.api_url", "https://generativelanguage.googleapis.com/v1beta")
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("gemini.timeout", "30s")

	// Retry defaults: 3 attempts, waits of 1s then 2s
	viper.SetDefault("invoker.max_attempts", 3)
	viper.SetDefault("invoker.base_delay", "1s")
	viper.SetDefault("invoker.backoff_multiplier", 2.0)
	viper.SetDefault("invoker.retry_malformed", true)

	viper.SetDefault("credential.driver", "file")
	viper.SetDefault("credential.key", "gemini_api_key")
	viper.SetDefault("credential.file_path", "data/credential.yaml")
	viper.SetDefault("credential.redis.addr", "localhost:6379")
	viper.SetDefault("credential.redis.key_prefix", "selection-assistant:")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
		// Unresolved placeholders must not be used as real secrets.
		return ""
	}

	return value
}

// splitList accepts a YAML list or a comma-separated env value.
func splitList(raw interface{}) []string {
	var items []string
	switch v := raw.(type) {
	case []string:
		items = v
	case []interface{}:
		for _, item := range v {
			if s, ok := item.(string); ok {
				items = append(items, s)
			}
		}
	case string:
		items = strings.Split(v, ",")
	}

	out := make([]string, 0, len(items))
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
