package services

import (
	"fmt"
	"strings"
	"time"

	"prdgen/internal/config"
	"prdgen/internal/helpers"
	"prdgen/internal/models"
	"prdgen/internal/repositories"
)

// JiraService fetches issues from JIRA and flattens them into labeled
// story text that the parser can consume like any other input.
type JiraService struct {
	repo   *repositories.JiraRepository
	config *config.JiraConfig
}

// NewJiraService creates a new JIRA service
func NewJiraService(jiraConfig *config.JiraConfig) *JiraService {
	return &JiraService{
		repo:   repositories.NewJiraRepository(jiraConfig),
		config: jiraConfig,
	}
}

// TestConnection tests the JIRA connection and validates project access
func (s *JiraService) TestConnection() error {
	helpers.PrintInfo("Testing JIRA authentication and listing accessible projects...")

	projects, err := s.repo.TestConnection()
	if err != nil {
		return fmt.Errorf("authentication failed: %w", err)
	}

	helpers.PrintSuccess("Authentication successful! Found %d accessible projects:", len(projects))

	projectFound := false
	for _, project := range projects {
		marker := "📋"
		if project.Key == s.config.ProjectKey {
			marker = "✅"
			projectFound = true
		}
		helpers.PrintInfo("  %s %s (%s)", marker, project.Key, project.Name)
	}

	if !projectFound {
		helpers.PrintWarning("Project key '%s' not found in accessible projects!", s.config.ProjectKey)
		return fmt.Errorf("project key '%s' not found in accessible projects", s.config.ProjectKey)
	}

	if _, err := s.repo.GetProjectInfo(s.config.ProjectKey); err != nil {
		return fmt.Errorf("failed to access project: %w", err)
	}

	helpers.PrintSuccess("JIRA connection successful")
	return nil
}

// FetchStories searches for story-bearing issues and returns them as raw
// story text, one blank-line-separated block per issue
func (s *JiraService) FetchStories() (string, error) {
	jql := s.config.JQL
	if jql == "" {
		jql = fmt.Sprintf(`project = "%s" AND issuetype in ("Story", "Epic", "Task")`, s.config.ProjectKey)
	}

	helpers.PrintInfo("Searching JIRA: %s", jql)

	issues, err := s.searchWithRetry(jql)
	if err != nil {
		return "", fmt.Errorf("failed to fetch issues: %w", err)
	}

	helpers.PrintSuccess("Fetched %d issues from JIRA", len(issues))
	return StoriesText(issues), nil
}

// searchWithRetry runs the search with the configured retry policy
func (s *JiraService) searchWithRetry(jql string) ([]models.JiraIssue, error) {
	var lastErr error

	for attempt := 1; attempt <= s.config.RetryCount; attempt++ {
		issues, err := s.repo.SearchIssues(jql, s.config.MaxResults)
		if err == nil {
			return issues, nil
		}

		lastErr = err
		helpers.PrintWarning("Attempt %d failed: %v", attempt, err)

		if attempt < s.config.RetryCount {
			time.Sleep(time.Duration(s.config.RetryDelaySeconds) * time.Second)
		}
	}

	return nil, fmt.Errorf("failed after %d attempts: %w", s.config.RetryCount, lastErr)
}

// StoriesText flattens issues into parser input, one block per issue
func StoriesText(issues []models.JiraIssue) string {
	blocks := make([]string, 0, len(issues))
	for _, issue := range issues {
		blocks = append(blocks, StoryText(issue))
	}
	return strings.Join(blocks, "\n\n")
}

// StoryText renders one issue as a labeled story block. The labels match
// what the parser's extraction rules look for, so priority and story
// points survive the round trip through plain text.
func StoryText(issue models.JiraIssue) string {
	var b strings.Builder

	summary := issue.Fields.Summary
	if summary == "" {
		summary = "No title"
	}
	b.WriteString(fmt.Sprintf("Title: %s\n", summary))

	if issue.Fields.Description != "" {
		b.WriteString(fmt.Sprintf("Description: %s\n", issue.Fields.Description))
	}

	if issue.Fields.Priority != nil && issue.Fields.Priority.Name != "" {
		b.WriteString(fmt.Sprintf("Priority: %s\n", issue.Fields.Priority.Name))
	}

	if issue.Fields.StoryPoints != nil {
		b.WriteString(fmt.Sprintf("Story Points: %d\n", int(*issue.Fields.StoryPoints)))
	}

	return strings.TrimSpace(b.String())
}
