package models

// UserStory represents a single parsed user story
type UserStory struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
	Priority           string   `json:"priority"`
	StoryPoints        *int     `json:"story_points,omitempty"`
}

// HasCriteria reports whether the story carries any acceptance criteria
func (s UserStory) HasCriteria() bool {
	return len(s.AcceptanceCriteria) > 0
}

// PRDSection represents a titled section of a generated PRD
type PRDSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
