package models

import "time"

// Default values applied when project metadata is missing
const (
	DefaultProjectTitle  = "Untitled Project"
	DefaultAuthor        = "Unknown"
	DefaultVersion       = "1.0"
	DefaultStatus        = "Draft"
	DefaultTargetRelease = "TBD"
	DefaultVision        = "To be defined based on user requirements"
)

// ProjectInfo represents project metadata supplied by the caller.
// Empty fields fall back to fixed defaults when resolved.
type ProjectInfo struct {
	Title         string `json:"title" yaml:"title"`
	Author        string `json:"author" yaml:"author"`
	Date          string `json:"date" yaml:"date"`
	Version       string `json:"version" yaml:"version"`
	Status        string `json:"status" yaml:"status"`
	TargetRelease string `json:"target_release" yaml:"target_release"`
	Vision        string `json:"vision" yaml:"vision"`
}

// WithDefaults returns a copy with every empty field replaced by its default.
// The date default is the current date, so callers needing deterministic
// output must set Date explicitly.
func (p ProjectInfo) WithDefaults() ProjectInfo {
	if p.Title == "" {
		p.Title = DefaultProjectTitle
	}
	if p.Author == "" {
		p.Author = DefaultAuthor
	}
	if p.Date == "" {
		p.Date = time.Now().Format("2006-01-02")
	}
	if p.Version == "" {
		p.Version = DefaultVersion
	}
	if p.Status == "" {
		p.Status = DefaultStatus
	}
	if p.TargetRelease == "" {
		p.TargetRelease = DefaultTargetRelease
	}
	if p.Vision == "" {
		p.Vision = DefaultVision
	}
	return p
}

// PRDDocument represents a complete generated PRD with its inputs
type PRDDocument struct {
	ProjectInfo  ProjectInfo  `json:"project_info"`
	Stories      []UserStory  `json:"stories"`
	Sections     []PRDSection `json:"sections"`
	TotalStories int          `json:"total_stories"`
	GeneratedAt  time.Time    `json:"generated_at"`
}
