package pipeline

import (
	"context"
	"time"

	"go.uber.org/zap"

	"splatradar/internal/config"
	"splatradar/internal/github"
	"splatradar/internal/llm"
	"splatradar/internal/models"
	"splatradar/internal/report"
)

// Searcher issues one page of a repository search.
type Searcher interface {
	SearchRepos(ctx context.Context, query, createdAfter string) ([]github.SearchItem, error)
}

// Analyzer turns the normalized repo list into markdown commentary.
type Analyzer interface {
	Analyze(ctx context.Context, repos []models.Repo) string
}

type Options struct {
	SkipAnalysis bool
}

const skippedAnalysisNote = "Analysis skipped."

// Run executes one full scan: search every configured query in order,
// dedupe, normalize, analyze, render, persist. Credential checks happen
// before any network activity; everything after that degrades rather
// than aborting.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger, opts Options) error {
	if err := cfg.RequireGitHubToken(); err != nil {
		return err
	}

	var analyzer Analyzer
	if !opts.SkipAnalysis {
		if err := cfg.RequireLLMKey(); err != nil {
			return err
		}
		analyzer = llm.NewClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMModel)
	}

	return run(ctx, cfg, logger, github.NewClient(cfg.GitHubToken), analyzer, time.Now().UTC())
}

func run(ctx context.Context, cfg *config.Config, logger *zap.Logger, searcher Searcher, analyzer Analyzer, now time.Time) error {
	createdAfter := now.Add(-24 * time.Hour).Format("2006-01-02")
	dateStr := now.Format("2006-01-02")

	logger.Info("Starting scan",
		zap.String("created_after", createdAfter),
		zap.Int("queries", len(cfg.Queries)))

	var all []github.SearchItem
	for _, query := range cfg.Queries {
		items, err := searcher.SearchRepos(ctx, query, createdAfter)
		if err != nil {
			// A failed query yields zero results; the run continues.
			logger.Warn("Search failed", zap.String("query", query), zap.Error(err))
			continue
		}
		logger.Info("Search complete", zap.String("query", query), zap.Int("found", len(items)))
		all = append(all, items...)
	}

	unique := Dedupe(all)
	logger.Info("Deduplicated", zap.Int("total", len(all)), zap.Int("unique", len(unique)))

	repos := make([]models.Repo, 0, len(unique))
	for _, item := range unique {
		repos = append(repos, github.ItemToRepo(item))
	}

	analysis := skippedAnalysisNote
	if analyzer != nil {
		logger.Info("Analyzing repos", zap.Int("count", len(repos)))
		analysis = analyzer.Analyze(ctx, repos)
	}

	content := report.Build(repos, analysis, dateStr, cfg.Queries, now)

	path, err := report.Save(content, dateStr, cfg.FindingsDir, cfg.LatestFile)
	if err != nil {
		return err
	}

	logger.Info("Scan complete",
		zap.String("date", dateStr),
		zap.Int("repos", len(repos)),
		zap.String("report", path),
		zap.String("latest", cfg.LatestFile))
	return nil
}

// Dedupe returns the subsequence of items whose full name has not
// appeared earlier in the list. First occurrence wins, relative order
// preserved. Items without a full name are dropped.
func Dedupe(items []github.SearchItem) []github.SearchItem {
	seen := make(map[string]bool, len(items))
	unique := make([]github.SearchItem, 0, len(items))
	for _, item := range items {
		if item.FullName == "" || seen[item.FullName] {
			continue
		}
		seen[item.FullName] = true
		unique = append(unique, item)
	}
	return unique
}
