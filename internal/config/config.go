package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultQueries are the search terms the scanner was built around. A
// config file can replace them.
var DefaultQueries = []string{
	"gaussian splatting",
	"3dgs",
	"gsplat viewer",
	"splat viewer",
	"3d gaussian splat",
	"gaussian splat viewer",
}

type Config struct {
	GitHubToken string

	LLMBaseURL string
	LLMAPIKey  string
	LLMModel   string

	Queries     []string
	FindingsDir string
	LatestFile  string
}

// fileConfig is the optional YAML overlay. Anything left unset keeps the
// built-in value.
type fileConfig struct {
	Queries     []string `yaml:"queries"`
	FindingsDir string   `yaml:"findings_dir"`
	LatestFile  string   `yaml:"latest_file"`
	LLMModel    string   `yaml:"llm_model"`
}

func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		GitHubToken: os.Getenv("GITHUB_TOKEN"),

		LLMBaseURL: os.Getenv("LLM_BASE_URL"),
		LLMAPIKey:  os.Getenv("LLM_API_KEY"),
		LLMModel:   os.Getenv("LLM_MODEL"),

		Queries:     append([]string(nil), DefaultQueries...),
		FindingsDir: "findings",
		LatestFile:  "latest_report.md",
	}

	if cfg.LLMBaseURL == "" {
		cfg.LLMBaseURL = "https://api.openai.com/v1"
	}
	if cfg.LLMModel == "" {
		cfg.LLMModel = "gpt-4o-mini"
	}

	return cfg
}

// ApplyFile overlays settings from a YAML config file.
func (c *Config) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse config yaml: %w", err)
	}
	if len(fc.Queries) > 0 {
		c.Queries = fc.Queries
	}
	if fc.FindingsDir != "" {
		c.FindingsDir = fc.FindingsDir
	}
	if fc.LatestFile != "" {
		c.LatestFile = fc.LatestFile
	}
	if fc.LLMModel != "" {
		c.LLMModel = fc.LLMModel
	}
	return nil
}

// RequireGitHubToken reports a configuration error if the search
// credential is unset. Checked before any network activity.
func (c *Config) RequireGitHubToken() error {
	if c.GitHubToken == "" {
		return fmt.Errorf("GITHUB_TOKEN environment variable is required")
	}
	return nil
}

// RequireLLMKey reports a configuration error if the LLM credential is
// unset.
func (c *Config) RequireLLMKey() error {
	if c.LLMAPIKey == "" {
		return fmt.Errorf("LLM_API_KEY environment variable is required")
	}
	return nil
}
