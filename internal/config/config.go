package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"

	"prdgen/internal/models"
)

// Config represents the application configuration
type Config struct {
	Project models.ProjectInfo `yaml:"project"`
	Jira    JiraConfig         `yaml:"jira"`
	Output  OutputConfig       `yaml:"output"`
}

// JiraConfig represents JIRA API configuration for story import
type JiraConfig struct {
	BaseURL           string `yaml:"base_url"`
	Username          string `yaml:"username"`
	APIToken          string `yaml:"api_token"`
	ProjectKey        string `yaml:"project_key"`
	JQL               string `yaml:"jql"`
	Timeout           int    `yaml:"timeout_seconds"`
	MaxResults        int    `yaml:"max_results"`
	RetryCount        int    `yaml:"retry_count"`
	RetryDelaySeconds int    `yaml:"retry_delay_seconds"`
}

// OutputConfig represents output configuration
type OutputConfig struct {
	Dir          string `yaml:"dir"`
	SaveJSON     bool   `yaml:"save_json"`
	SaveMarkdown bool   `yaml:"save_markdown"`
}

// LoadConfig loads configuration from a YAML file and applies defaults
func LoadConfig(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	config.applyDefaults()
	return &config, nil
}

// Default returns a configuration with all defaults applied, used when no
// config file is present
func Default() *Config {
	config := &Config{}
	config.applyDefaults()
	return config
}

func (c *Config) applyDefaults() {
	if c.Output.Dir == "" {
		c.Output.Dir = "./output"
	}
	if c.Jira.Timeout == 0 {
		c.Jira.Timeout = 30
	}
	if c.Jira.MaxResults == 0 {
		c.Jira.MaxResults = 100
	}
	if c.Jira.RetryCount == 0 {
		c.Jira.RetryCount = 3
	}
	if c.Jira.RetryDelaySeconds == 0 {
		c.Jira.RetryDelaySeconds = 2
	}
}

// ValidateJira validates the fields required for JIRA story import.
// Generation itself does not need JIRA access, so this is checked only by
// the fetch command.
func (c *Config) ValidateJira() error {
	if c.Jira.BaseURL == "" {
		return fmt.Errorf("JIRA base URL is required")
	}

	if c.Jira.Username == "" {
		return fmt.Errorf("JIRA username is required")
	}

	if c.Jira.APIToken == "" {
		return fmt.Errorf("JIRA API token is required")
	}

	if c.Jira.ProjectKey == "" {
		return fmt.Errorf("JIRA project key is required")
	}

	return nil
}
