package repositories

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"prdgen/internal/config"
	"prdgen/internal/models"
)

// storyFields are the issue fields requested from the search API
const storyFields = "summary,description,priority,issuetype,customfield_10016"

// JiraRepository handles JIRA API interactions
type JiraRepository struct {
	config *config.JiraConfig
	client *http.Client
}

// NewJiraRepository creates a new JIRA repository
func NewJiraRepository(jiraConfig *config.JiraConfig) *JiraRepository {
	return &JiraRepository{
		config: jiraConfig,
		client: &http.Client{
			Timeout: time.Duration(jiraConfig.Timeout) * time.Second,
		},
	}
}

// TestConnection tests the JIRA connection and returns accessible projects
func (r *JiraRepository) TestConnection() ([]models.JiraProjectInfo, error) {
	endpoint := fmt.Sprintf("%s/rest/api/2/project", r.config.BaseURL)

	var projects []models.JiraProjectInfo
	if err := r.get(endpoint, &projects); err != nil {
		return nil, err
	}
	return projects, nil
}

// GetProjectInfo gets information about a specific project
func (r *JiraRepository) GetProjectInfo(projectKey string) (*models.JiraProjectInfo, error) {
	endpoint := fmt.Sprintf("%s/rest/api/2/project/%s", r.config.BaseURL, projectKey)

	var project models.JiraProjectInfo
	if err := r.get(endpoint, &project); err != nil {
		return nil, err
	}
	return &project, nil
}

// SearchIssues runs a JQL search and returns the matching issues with the
// fields needed for story extraction
func (r *JiraRepository) SearchIssues(jql string, maxResults int) ([]models.JiraIssue, error) {
	params := url.Values{}
	params.Set("jql", jql)
	params.Set("fields", storyFields)
	params.Set("maxResults", fmt.Sprintf("%d", maxResults))

	endpoint := fmt.Sprintf("%s/rest/api/2/search?%s", r.config.BaseURL, params.Encode())

	var result models.JiraSearchResult
	if err := r.get(endpoint, &result); err != nil {
		return nil, err
	}
	return result.Issues, nil
}

func (r *JiraRepository) get(endpoint string, target interface{}) error {
	req, err := http.NewRequest("GET", endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.SetBasicAuth(r.config.Username, r.config.APIToken)

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("JIRA API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}
