package models

// GlobalConfig holds system-wide settings read from .bkbrc via Viper.
// Rule paths are optional; empty paths mean the built-in rule tables are used.
type GlobalConfig struct {
	// TopicRulesPath points at a YAML rule file overriding the built-in
	// topic registry and people aliases.
	TopicRulesPath string `yaml:"topic_rules" mapstructure:"topic_rules"`
	// ShapeRulesPath points at a YAML rule file overriding the built-in
	// content-shape cascade.
	ShapeRulesPath string `yaml:"shape_rules" mapstructure:"shape_rules"`
	// FooterVersion is the version stamped into the processor footer.
	FooterVersion string `yaml:"footer_version" mapstructure:"footer_version"`
	// ObservabilityEnabled controls whether enrichment events are appended
	// to the JSONL event log.
	ObservabilityEnabled bool `yaml:"observability" mapstructure:"observability"`
	// SlackWebhookURL enables alert notifications when set.
	SlackWebhookURL string `yaml:"slack_webhook_url" mapstructure:"slack_webhook_url"`
}
