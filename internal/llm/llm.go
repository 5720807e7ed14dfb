package llm

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"splatradar/internal/models"
)

// NoReposMessage is returned without any API call when the scan found
// nothing to analyze.
const NoReposMessage = "No new repositories found in the last 24 hours."

const maxTokens = 2048

// chatAPI is the slice of the OpenAI client the analyzer needs. Tests
// substitute a fake.
type chatAPI interface {
	CreateChatCompletion(ctx context.Context, req openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type Client struct {
	client chatAPI
	model  string
}

func NewClient(baseURL, apiKey, model string) *Client {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = strings.TrimSuffix(baseURL, "/")
	return &Client{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Analyze asks the model which of the scanned repos look like interactive
// viewers and returns its markdown commentary verbatim. Call failures
// degrade to an error-message string so the report is always produced.
func (c *Client) Analyze(ctx context.Context, repos []models.Repo) string {
	if len(repos) == 0 {
		return NoReposMessage
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:     c.model,
		MaxTokens: maxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: BuildPrompt(repos)},
		},
	})
	if err != nil {
		return fmt.Sprintf("Error analyzing repositories: %v", err)
	}
	if len(resp.Choices) == 0 {
		return "Error analyzing repositories: no choices returned"
	}
	return resp.Choices[0].Message.Content
}

// BuildPrompt embeds every record into one instructional prompt with the
// exclusion criteria and the expected output shape.
func BuildPrompt(repos []models.Repo) string {
	var b strings.Builder
	b.WriteString("Here are GitHub repos found in the last 24 hours related to 3D Gaussian Splatting:\n\n")
	for _, r := range repos {
		topics := "None"
		if len(r.Topics) > 0 {
			topics = strings.Join(r.Topics, ", ")
		}
		fmt.Fprintf(&b, "- **%s** (%s, %d stars)\n  Description: %s\n  URL: %s\n  Topics: %s\n",
			r.Name, r.Language, r.Stars, r.Description, r.URL, topics)
	}
	b.WriteString(`
Which of these appear to be INTERACTIVE VIEWERS or creative presentation tools (web-based, with UI, playable experiences)?

Exclude:
- Training/research code (CUDA kernels, model training scripts)
- Raw data/datasets
- Python-only tools with no viewer component
- Forks of existing projects (should already be filtered out)
- Academic paper implementations without viewer
- Purely backend/API projects

For each interesting viewer project, provide:
1. The repo name and URL
2. What makes it interesting (unique features, novel approach, etc.)
3. Technology stack if discernible

If none of the repos appear to be interactive viewers, say so clearly.

Format your response as markdown suitable for a daily report.`)
	return b.String()
}
