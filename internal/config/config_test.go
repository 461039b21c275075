package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
project:
  title: Demo Project
  author: Dana
  vision: Ship faster
jira:
  base_url: https://example.atlassian.net
  username: dana@example.com
  api_token: secret
  project_key: DEMO
output:
  dir: ./artifacts
  save_json: true
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Project.Title != "Demo Project" {
		t.Errorf("Project.Title = %q", cfg.Project.Title)
	}
	if cfg.Project.Vision != "Ship faster" {
		t.Errorf("Project.Vision = %q", cfg.Project.Vision)
	}
	if cfg.Jira.ProjectKey != "DEMO" {
		t.Errorf("Jira.ProjectKey = %q", cfg.Jira.ProjectKey)
	}
	if cfg.Output.Dir != "./artifacts" {
		t.Errorf("Output.Dir = %q", cfg.Output.Dir)
	}
	if !cfg.Output.SaveJSON {
		t.Error("Output.SaveJSON = false")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, "project:\n  title: Minimal\n"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.Output.Dir != "./output" {
		t.Errorf("Output.Dir = %q, want ./output", cfg.Output.Dir)
	}
	if cfg.Jira.Timeout != 30 {
		t.Errorf("Jira.Timeout = %d, want 30", cfg.Jira.Timeout)
	}
	if cfg.Jira.MaxResults != 100 {
		t.Errorf("Jira.MaxResults = %d, want 100", cfg.Jira.MaxResults)
	}
	if cfg.Jira.RetryCount != 3 {
		t.Errorf("Jira.RetryCount = %d, want 3", cfg.Jira.RetryCount)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing config file")
	}
}

func TestValidateJira(t *testing.T) {
	valid := JiraConfig{
		BaseURL:    "https://example.atlassian.net",
		Username:   "dana@example.com",
		APIToken:   "secret",
		ProjectKey: "DEMO",
	}

	tests := []struct {
		name    string
		mutate  func(*JiraConfig)
		wantErr bool
	}{
		{name: "valid", mutate: func(*JiraConfig) {}, wantErr: false},
		{name: "missing base url", mutate: func(j *JiraConfig) { j.BaseURL = "" }, wantErr: true},
		{name: "missing username", mutate: func(j *JiraConfig) { j.Username = "" }, wantErr: true},
		{name: "missing token", mutate: func(j *JiraConfig) { j.APIToken = "" }, wantErr: true},
		{name: "missing project key", mutate: func(j *JiraConfig) { j.ProjectKey = "" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jira := valid
			tt.mutate(&jira)
			cfg := &Config{Jira: jira}

			err := cfg.ValidateJira()
			if tt.wantErr && err == nil {
				t.Error("expected validation error")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}
