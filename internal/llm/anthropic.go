package llm

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/bedrock"
	"github.com/anthropics/anthropic-sdk-go/option"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"

	"github.com/strataai/strata/internal/config"
)

// ErrNoAnthropicKey is returned when no Anthropic API key is configured.
var ErrNoAnthropicKey = errors.New("no Anthropic API key configured")

// AnthropicClient invokes Claude models directly or through AWS Bedrock.
type AnthropicClient struct {
	inner anthropic.Client
}

// NewAnthropicClient creates an invoker from the given settings. With
// use_bedrock enabled, credentials come from the AWS default chain; otherwise
// the API key is taken from config or the ANTHROPIC_API_KEY env var.
func NewAnthropicClient(cfg config.AnthropicConfig) (*AnthropicClient, error) {
	var opts []option.RequestOption

	if cfg.UseBedrock {
		ctx := context.Background()

		var loadOpts []func(*awsconfig.LoadOptions) error
		if cfg.AWSRegion != "" {
			loadOpts = append(loadOpts, awsconfig.WithRegion(cfg.AWSRegion))
		}
		if cfg.AWSProfile != "" {
			loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(cfg.AWSProfile))
		}

		opts = append(opts, bedrock.WithLoadDefaultConfig(ctx, loadOpts...))
	} else {
		apiKey := cfg.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if apiKey == "" {
			return nil, ErrNoAnthropicKey
		}
		opts = append(opts, option.WithAPIKey(apiKey))
	}

	return &AnthropicClient{inner: anthropic.NewClient(opts...)}, nil
}

// Invoke sends one message request and returns the concatenated text blocks.
func (c *AnthropicClient) Invoke(ctx context.Context, modelID, prompt string, maxOutputTokens int) (string, error) {
	resp, err := c.inner.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(modelID),
		MaxTokens: int64(maxOutputTokens),
		System: []anthropic.TextBlockParam{
			{Text: SystemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", fmt.Errorf("API call failed: %w", err)
	}

	var result strings.Builder
	for _, block := range resp.Content {
		if variant, ok := block.AsAny().(anthropic.TextBlock); ok {
			result.WriteString(variant.Text)
		}
	}

	return result.String(), nil
}
