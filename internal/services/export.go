package services

import (
	"fmt"
	"strings"

	"prdgen/internal/config"
	"prdgen/internal/helpers"
	"prdgen/internal/models"
)

// sectionDelimiter frames each section title in the text rendering
var sectionDelimiter = strings.Repeat("=", 60)

// ExportService writes generated PRDs to the output directory
type ExportService struct {
	config *config.OutputConfig
}

// NewExportService creates a new export service
func NewExportService(outputConfig *config.OutputConfig) *ExportService {
	return &ExportService{config: outputConfig}
}

// RenderText renders PRD sections as plain text, with each upper-cased
// section title framed by delimiter lines
func RenderText(sections []models.PRDSection) string {
	var b strings.Builder

	for _, section := range sections {
		b.WriteString(sectionDelimiter + "\n")
		b.WriteString(strings.ToUpper(section.Title) + "\n")
		b.WriteString(sectionDelimiter + "\n\n")
		b.WriteString(section.Content + "\n\n")
	}

	return b.String()
}

// SavePRD writes the rendered PRD text and, depending on configuration,
// the JSON document and a markdown story summary. It returns the path of
// the text file.
func (s *ExportService) SavePRD(doc *models.PRDDocument) (string, error) {
	if err := helpers.EnsureDir(s.config.Dir); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	textPath := helpers.GetOutputPath(s.config.Dir, helpers.GenerateOutputFilename("prd", "txt"))
	if err := helpers.SaveText(RenderText(doc.Sections), textPath); err != nil {
		return "", fmt.Errorf("failed to save PRD text: %w", err)
	}
	helpers.PrintSuccess("Saved PRD to: %s", textPath)

	if s.config.SaveJSON {
		jsonPath := helpers.GetOutputPath(s.config.Dir, helpers.GenerateOutputFilename("prd", "json"))
		if err := helpers.SaveJSON(doc, jsonPath); err != nil {
			return "", fmt.Errorf("failed to save PRD document: %w", err)
		}
		helpers.PrintSuccess("Saved document to: %s", jsonPath)
	}

	if s.config.SaveMarkdown {
		mdPath := helpers.GetOutputPath(s.config.Dir, helpers.GenerateOutputFilename("stories", "md"))
		if err := helpers.SaveText(RenderStoriesMarkdown(doc.Stories), mdPath); err != nil {
			return "", fmt.Errorf("failed to save story summary: %w", err)
		}
		helpers.PrintSuccess("Saved story summary to: %s", mdPath)
	}

	return textPath, nil
}

// SaveStories writes parsed stories as JSON and returns the path
func (s *ExportService) SaveStories(stories []models.UserStory) (string, error) {
	if err := helpers.EnsureDir(s.config.Dir); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := helpers.GetOutputPath(s.config.Dir, helpers.GenerateOutputFilename("stories", "json"))
	if err := helpers.SaveJSON(stories, path); err != nil {
		return "", fmt.Errorf("failed to save stories: %w", err)
	}

	return path, nil
}

// SaveStoriesText writes raw story text (for example from a JIRA fetch)
// and returns the path
func (s *ExportService) SaveStoriesText(text string) (string, error) {
	if err := helpers.EnsureDir(s.config.Dir); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	path := helpers.GetOutputPath(s.config.Dir, helpers.GenerateOutputFilename("stories", "txt"))
	if err := helpers.SaveText(text, path); err != nil {
		return "", fmt.Errorf("failed to save story text: %w", err)
	}

	return path, nil
}

// RenderStoriesMarkdown renders a markdown summary of parsed stories
func RenderStoriesMarkdown(stories []models.UserStory) string {
	var b strings.Builder

	b.WriteString("# Parsed User Stories\n\n")
	b.WriteString(fmt.Sprintf("**Total Stories:** %d\n\n", len(stories)))

	for i, story := range stories {
		b.WriteString(fmt.Sprintf("## US%03d: %s\n\n", i+1, story.Title))
		b.WriteString(fmt.Sprintf("**Priority:** %s", story.Priority))
		if story.StoryPoints != nil {
			b.WriteString(fmt.Sprintf(" | **Points:** %d", *story.StoryPoints))
		}
		b.WriteString("\n\n")
		b.WriteString(story.Description + "\n\n")

		if story.HasCriteria() {
			b.WriteString("**Acceptance Criteria:**\n")
			for _, criterion := range story.AcceptanceCriteria {
				b.WriteString(fmt.Sprintf("- %s\n", criterion))
			}
			b.WriteString("\n")
		}
	}

	return b.String()
}

// DisplayStories prints parsed stories to the terminal
func DisplayStories(stories []models.UserStory) {
	helpers.PrintTitle("Parsed %d user stories", len(stories))

	for i, story := range stories {
		helpers.PrintInfo("Story %d: %s", i+1, story.Title)
		helpers.PrintInfo("  Priority: %s", story.Priority)
		if story.StoryPoints != nil {
			helpers.PrintInfo("  Points: %d", *story.StoryPoints)
		}
		helpers.PrintInfo("  Description: %s", story.Description)

		if story.HasCriteria() {
			helpers.PrintInfo("  Acceptance Criteria:")
			for _, criterion := range story.AcceptanceCriteria {
				helpers.PrintInfo("    • %s", criterion)
			}
		}
		fmt.Println()
	}
}
