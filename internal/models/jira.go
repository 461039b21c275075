package models

// JiraSearchResult represents a JIRA issue search response
type JiraSearchResult struct {
	StartAt    int         `json:"startAt"`
	MaxResults int         `json:"maxResults"`
	Total      int         `json:"total"`
	Issues     []JiraIssue `json:"issues"`
}

// JiraIssue represents a JIRA issue
type JiraIssue struct {
	ID     string     `json:"id"`
	Key    string     `json:"key"`
	Fields JiraFields `json:"fields"`
}

// JiraFields represents the issue fields used for story extraction
type JiraFields struct {
	Summary     string        `json:"summary"`
	Description string        `json:"description"`
	Priority    *JiraPriority `json:"priority,omitempty"`
	IssueType   JiraIssueType `json:"issuetype"`
	StoryPoints *float64      `json:"customfield_10016,omitempty"`
}

// JiraPriority represents a JIRA priority field
type JiraPriority struct {
	Name string `json:"name"`
}

// JiraIssueType represents a JIRA issue type
type JiraIssueType struct {
	Name string `json:"name"`
}

// JiraProjectInfo represents JIRA project information
type JiraProjectInfo struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}
