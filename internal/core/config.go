package core

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
	"github.com/valter-silva-au/bookmark-brain/pkg/models"
)

// ConfigurationManager defines the interface for loading and validating
// configuration from the .bkbrc file.
type ConfigurationManager interface {
	LoadConfig() (*models.GlobalConfig, error)
	ValidateConfig(cfg *models.GlobalConfig) error
}

// viperConfigManager implements ConfigurationManager using Viper for
// reading the YAML configuration file.
type viperConfigManager struct {
	// basePath is the directory where .bkbrc resides.
	basePath string
}

// NewConfigurationManager creates a new ConfigurationManager that reads
// configuration files relative to basePath.
func NewConfigurationManager(basePath string) ConfigurationManager {
	return &viperConfigManager{basePath: basePath}
}

// defaultGlobalConfig returns a GlobalConfig populated with sensible defaults.
func defaultGlobalConfig() *models.GlobalConfig {
	return &models.GlobalConfig{
		TopicRulesPath:       "",
		ShapeRulesPath:       "",
		FooterVersion:        "0.2.0",
		ObservabilityEnabled: true,
	}
}

// LoadConfig reads the .bkbrc file from the base path using Viper.
// If the file does not exist, sensible defaults are returned.
func (cm *viperConfigManager) LoadConfig() (*models.GlobalConfig, error) {
	cfg := defaultGlobalConfig()

	v := viper.New()
	v.SetConfigName(".bkbrc")
	v.SetConfigType("yaml")
	v.AddConfigPath(cm.basePath)

	// Set Viper defaults so missing keys fall back gracefully.
	v.SetDefault("rules.topics", cfg.TopicRulesPath)
	v.SetDefault("rules.shapes", cfg.ShapeRulesPath)
	v.SetDefault("footer.version", cfg.FooterVersion)
	v.SetDefault("observability.enabled", cfg.ObservabilityEnabled)
	v.SetDefault("notifications.slack.webhook_url", cfg.SlackWebhookURL)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading .bkbrc: %w", err)
	}

	// Map nested YAML keys to flat GlobalConfig fields.
	cfg.TopicRulesPath = v.GetString("rules.topics")
	cfg.ShapeRulesPath = v.GetString("rules.shapes")
	cfg.FooterVersion = v.GetString("footer.version")
	cfg.ObservabilityEnabled = v.GetBool("observability.enabled")
	cfg.SlackWebhookURL = v.GetString("notifications.slack.webhook_url")

	return cfg, nil
}

// ValidateConfig checks the provided configuration for invalid values and
// returns a clear error message identifying the problem.
func (cm *viperConfigManager) ValidateConfig(cfg *models.GlobalConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	var errs []string

	if cfg.FooterVersion == "" {
		errs = append(errs, "footer.version must not be empty")
	}
	if strings.ContainsAny(cfg.FooterVersion, "*\n") {
		errs = append(errs, fmt.Sprintf(
			"footer.version %q must not contain markdown markers or newlines",
			cfg.FooterVersion,
		))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}
