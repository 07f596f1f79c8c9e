package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"meeting-assistant/internal/model"
)

// Config holds all service configuration. Operator credentials are NOT here:
// they live in the runtime-mutable settings file managed by internal/settings.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Gemini   GeminiConfig
	Notion   NotionConfig
	Settings SettingsConfig
	Limits   LimitsConfig
}

type EnvironmentConfig struct {
	Name model.Environment
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

type GeminiConfig struct {
	APIURL    string
	UploadURL string
	Model     string
}

type NotionConfig struct {
	BaseURL string
}

type SettingsConfig struct {
	Path string
}

type LimitsConfig struct {
	RequestsPerMin int
	MaxSessions    int
	MaxAudioBytes  int64
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

	cfg.Environment.Name = model.Environment(viper.GetString("environment.name"))
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Gemini.APIURL = viper.GetString("gemini.api_url")
	cfg.Gemini.UploadURL = viper.GetString("gemini.upload_url")
	cfg.Gemini.Model = viper.GetString("gemini.model")

	cfg.Notion.BaseURL = viper.GetString("notion.base_url")

	cfg.Settings.Path = viper.GetString("settings.path")
	if settingsPath := viper.GetString("settings_path"); settingsPath != "" {
		cfg.Settings.Path = settingsPath
	}

	cfg.Limits.RequestsPerMin = viper.GetInt("limits.requests_per_min")
	cfg.Limits.MaxSessions = viper.GetInt("limits.max_sessions")
	cfg.Limits.MaxAudioBytes = viper.GetInt64("limits.max_audio_bytes")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", string(model.EnvironmentDevelopment))
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("gemini.model", "gemini-2.5-flash")
	viper.SetDefault("settings.path", "user_config.json")
	viper.SetDefault("limits.requests_per_min", 30)
	viper.SetDefault("limits.max_sessions", 128)
	// Roughly one hour of 16-bit 44.1kHz stereo WAV.
	viper.SetDefault("limits.max_audio_bytes", int64(640*1024*1024))
}
