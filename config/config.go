package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Skill
	Skill       SkillConfig
	Security    SecurityConfig
	ScaleHelper ScaleHelperConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SkillConfig controls which application ids the skill answers.
// VerifyApplicationID=false is the only way to accept any caller.
type SkillConfig struct {
	ApplicationID       string
	VerifyApplicationID bool
}

// SecurityConfig guards the skill route. Client IPs are read from
// X-Forwarded-For only when the peer is one of TrustedProxies.
type SecurityConfig struct {
	AllowedIPs      []string
	TrustedProxies  []string
	RateLimitPerMin int
}

type ScaleHelperConfig struct {
	Scales map[string]string // "<root> <pattern>" -> spoken notes
}

// ErrMissingApplicationID is returned when verification is on without an id.
var ErrMissingApplicationID = errors.New("skill.application_id is required when skill.verify_application_id is true")

// Load loads configuration using Viper.
// A .env file in the working directory is loaded first when present.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	if err := loadDotEnv(".env"); err != nil {
		return nil, fmt.Errorf("error reading .env: %w", err)
	}

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

	return build()
}

// build reads the already-loaded viper state into a Config.
func build() (*Config, error) {
	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Skill
	cfg.Skill.ApplicationID = expandEnvVar(viper.GetString("skill.application_id"))
	cfg.Skill.VerifyApplicationID = viper.GetBool("skill.verify_application_id")
	if cfg.Skill.VerifyApplicationID && cfg.Skill.ApplicationID == "" {
		return nil, ErrMissingApplicationID
	}

	// Security
	cfg.Security.RateLimitPerMin = viper.GetInt("security.rate_limit_per_min")
	cfg.Security.AllowedIPs = splitList(viper.GetString("security.allowed_ips"))
	if len(cfg.Security.AllowedIPs) == 0 {
		cfg.Security.AllowedIPs = viper.GetStringSlice("security.allowed_ips")
	}
	cfg.Security.TrustedProxies = splitList(viper.GetString("security.trusted_proxies"))
	if len(cfg.Security.TrustedProxies) == 0 {
		cfg.Security.TrustedProxies = viper.GetStringSlice("security.trusted_proxies")
	}

	// Scale Helper catalog
	cfg.ScaleHelper.Scales = viper.GetStringMapString("scale_helper.scales")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("skill.verify_application_id", true)
	viper.SetDefault("security.rate_limit_per_min", 600)
}

// loadDotEnv loads environment variables from path. Missing files are ignored.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// splitList splits a comma separated env value, since viper does not parse
// arrays from env seamlessly.
func splitList(raw string) []string {
	var out []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}
