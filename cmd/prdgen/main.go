package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"prdgen/internal/config"
	"prdgen/internal/generator"
	"prdgen/internal/helpers"
	"prdgen/internal/models"
	"prdgen/internal/parser"
	"prdgen/internal/services"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v2"
)

var (
	configFile  string
	projectInfo models.ProjectInfo
)

func main() {
	var rootCmd = &cobra.Command{
		Use:   "prdgen",
		Short: "PRD Forge - turn user stories into Product Requirements Documents",
		Long: `PRD Forge parses freeform user stories (Gherkin or plain text, with
acceptance criteria, priorities, and story points) and assembles them
into a structured Product Requirements Document.`,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "config.yaml", "Configuration file path")

	// Generate command
	var generateCmd = &cobra.Command{
		Use:   "generate <stories-file>",
		Short: "Generate a PRD from a user stories file",
		Long: `Parse a text file of user stories and assemble the full PRD, exporting
it to the output directory. A .json file saved by the parse command is
loaded directly instead of being re-parsed.`,
		Args: cobra.ExactArgs(1),
		RunE: runGenerate,
	}
	addProjectFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)

	// Parse command
	var parseCmd = &cobra.Command{
		Use:   "parse <stories-file>",
		Short: "Parse user stories without generating a PRD",
		Long:  "Extract structured stories from a text file, display them, and save them as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  runParse,
	}
	rootCmd.AddCommand(parseCmd)

	// Fetch command
	var fetchCmd = &cobra.Command{
		Use:   "fetch",
		Short: "Fetch user stories from JIRA",
		Long:  "Search the configured JIRA project for stories and save them as parseable story text",
		RunE:  runFetch,
	}
	rootCmd.AddCommand(fetchCmd)

	// Analyze command
	var analyzeCmd = &cobra.Command{
		Use:   "analyze <stories-file>",
		Short: "Score the quality of user stories",
		Long:  "Check each story block for format, completeness, and ambiguous wording",
		Args:  cobra.ExactArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().StringP("project-type", "t", "", "Project type for targeted suggestions (mobile, web, api)")
	rootCmd.AddCommand(analyzeCmd)

	// Init command
	var initCmd = &cobra.Command{
		Use:   "init",
		Short: "Initialize a configuration file",
		RunE:  runInit,
	}
	rootCmd.AddCommand(initCmd)

	if err := rootCmd.Execute(); err != nil {
		helpers.PrintError("Error: %v", err)
		os.Exit(1)
	}
}

func addProjectFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&projectInfo.Title, "title", "", "Project title")
	cmd.Flags().StringVar(&projectInfo.Author, "author", "", "Author name")
	cmd.Flags().StringVar(&projectInfo.Date, "date", "", "Document date (defaults to today)")
	cmd.Flags().StringVar(&projectInfo.Version, "version", "", "Document version")
	cmd.Flags().StringVar(&projectInfo.Status, "status", "", "Document status")
	cmd.Flags().StringVar(&projectInfo.TargetRelease, "target-release", "", "Target release")
	cmd.Flags().StringVar(&projectInfo.Vision, "vision", "", "Product vision statement")
}

// loadConfig loads the config file, falling back to defaults when the
// file does not exist and was not explicitly requested
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if !helpers.FileExists(configFile) && !cmd.Flags().Changed("config") {
		return config.Default(), nil
	}
	return config.LoadConfig(configFile)
}

// mergeProjectInfo overlays CLI flags onto the configured project metadata
func mergeProjectInfo(base models.ProjectInfo) models.ProjectInfo {
	if projectInfo.Title != "" {
		base.Title = projectInfo.Title
	}
	if projectInfo.Author != "" {
		base.Author = projectInfo.Author
	}
	if projectInfo.Date != "" {
		base.Date = projectInfo.Date
	}
	if projectInfo.Version != "" {
		base.Version = projectInfo.Version
	}
	if projectInfo.Status != "" {
		base.Status = projectInfo.Status
	}
	if projectInfo.TargetRelease != "" {
		base.TargetRelease = projectInfo.TargetRelease
	}
	if projectInfo.Vision != "" {
		base.Vision = projectInfo.Vision
	}
	return base
}

// loadStories reads stories from a text file, or directly from a JSON
// file previously saved by the parse command
func loadStories(inputFile string) ([]models.UserStory, error) {
	if filepath.Ext(inputFile) == ".json" {
		var stories []models.UserStory
		if err := helpers.LoadJSON(inputFile, &stories); err != nil {
			return nil, fmt.Errorf("failed to load stories file: %w", err)
		}
		return stories, nil
	}

	content, err := helpers.ReadFile(inputFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}
	return parser.Parse(content), nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inputFile := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	helpers.PrintTitle("Generating PRD")
	helpers.PrintInfo("Input file: %s", inputFile)

	stories, err := loadStories(inputFile)
	if err != nil {
		return err
	}
	if len(stories) == 0 {
		helpers.PrintWarning("No valid user stories found in input")
	} else {
		helpers.PrintSuccess("Loaded %d user stories", len(stories))
	}

	info := mergeProjectInfo(cfg.Project).WithDefaults()
	sections := generator.Generate(stories, info)

	doc := &models.PRDDocument{
		ProjectInfo:  info,
		Stories:      stories,
		Sections:     sections,
		TotalStories: len(stories),
		GeneratedAt:  time.Now(),
	}

	exporter := services.NewExportService(&cfg.Output)
	if _, err := exporter.SavePRD(doc); err != nil {
		return fmt.Errorf("failed to export PRD: %w", err)
	}

	helpers.PrintSuccess("PRD generated successfully!")
	return nil
}

func runParse(cmd *cobra.Command, args []string) error {
	inputFile := args[0]

	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	helpers.PrintTitle("Parsing User Stories")
	helpers.PrintInfo("Input file: %s", inputFile)

	content, err := helpers.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	stories := parser.Parse(content)
	if len(stories) == 0 {
		helpers.PrintWarning("No valid user stories found in input")
		return nil
	}

	services.DisplayStories(stories)

	exporter := services.NewExportService(&cfg.Output)
	path, err := exporter.SaveStories(stories)
	if err != nil {
		return fmt.Errorf("failed to save stories: %w", err)
	}

	helpers.PrintSuccess("Saved %d stories to: %s", len(stories), path)
	return nil
}

func runFetch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.ValidateJira(); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	helpers.PrintTitle("Fetching Stories from JIRA")

	jiraService := services.NewJiraService(&cfg.Jira)
	if err := jiraService.TestConnection(); err != nil {
		return fmt.Errorf("JIRA connection test failed: %w", err)
	}

	text, err := jiraService.FetchStories()
	if err != nil {
		return fmt.Errorf("failed to fetch stories: %w", err)
	}
	if text == "" {
		helpers.PrintWarning("No issues found for the configured search")
		return nil
	}

	exporter := services.NewExportService(&cfg.Output)
	path, err := exporter.SaveStoriesText(text)
	if err != nil {
		return fmt.Errorf("failed to save story text: %w", err)
	}

	helpers.PrintSuccess("Saved story text to: %s", path)
	helpers.PrintInfo("Run 'prdgen generate %s' to build the PRD", path)
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	inputFile := args[0]
	projectType, _ := cmd.Flags().GetString("project-type")

	helpers.PrintTitle("Analyzing Story Quality")
	helpers.PrintInfo("Input file: %s", inputFile)

	content, err := helpers.ReadFile(inputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	blocks := parser.SplitBlocks(content)
	if len(blocks) == 0 {
		helpers.PrintWarning("No story blocks found in input")
		return nil
	}

	totalScore := 0
	for i, block := range blocks {
		report := services.AnalyzeStoryQuality(block)
		services.DisplayQualityReport(i+1, block, report)
		totalScore += report.Score

		if projectType != "" {
			for _, suggestion := range services.SuggestImprovements(block, projectType) {
				helpers.PrintInfo("  💡 %s", suggestion)
			}
		}
		fmt.Println()
	}

	helpers.PrintSuccess("Analyzed %d stories, average score %d/100", len(blocks), totalScore/len(blocks))
	return nil
}

func runInit(cmd *cobra.Command, args []string) error {
	helpers.PrintTitle("Initializing Configuration")

	if helpers.FileExists(configFile) {
		return fmt.Errorf("configuration file already exists at %s", configFile)
	}

	cfg := config.Default()
	cfg.Jira.BaseURL = "https://your-domain.atlassian.net"
	cfg.Jira.Username = "your-email@example.com"
	cfg.Jira.APIToken = "your-jira-api-token"
	cfg.Jira.ProjectKey = "PROJ"
	cfg.Output.SaveJSON = true
	cfg.Output.SaveMarkdown = true

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configFile, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	helpers.PrintSuccess("Configuration file created at %s", configFile)
	helpers.PrintWarning("Edit the configuration and add JIRA credentials before running the fetch command.")
	return nil
}
