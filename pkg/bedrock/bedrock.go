package bedrock

import (
	"context"
	"encoding/json"
	"fmt"
	appConfig "riftrewind/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/bedrockruntime"
)

// Model selects which Claude model handles a invocation.
type Model string

const (
	// ModelSonnet is the most capable model, used for the deep analysis.
	ModelSonnet Model = "SONNET"
	// ModelHaiku is faster and cheaper, used for single match analysis.
	ModelHaiku Model = "HAIKU"
)

const anthropicVersion = "bedrock-2023-05-31"

// InvokeParams holds everything needed for one model invocation.
type InvokeParams struct {
	Model       Model
	MaxTokens   int
	Temperature float64
	System      string
	UserPrompt  string
}

// claudeRequest is the anthropic messages payload accepted by Bedrock.
type claudeRequest struct {
	AnthropicVersion string          `json:"anthropic_version"`
	MaxTokens        int             `json:"max_tokens"`
	Temperature      float64         `json:"temperature"`
	System           string          `json:"system,omitempty"`
	Messages         []claudeMessage `json:"messages"`
}

type claudeMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// claudeResponse is the content block shape returned by the model.
type claudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

// Client wraps the Bedrock runtime with the configured model ids.
type Client struct {
	runtime       *bedrockruntime.Client
	sonnetModelId string
	haikuModelId  string
}

// NewClient creates the Bedrock client from the loaded configuration.
func NewClient() *Client {
	cfg := aws.Config{
		Region: appConfig.Aws.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				appConfig.Aws.AccessKey,
				appConfig.Aws.AccessSecret,
				"",
			),
		),
	}

	return &Client{
		runtime:       bedrockruntime.NewFromConfig(cfg),
		sonnetModelId: appConfig.Bedrock.SonnetModelId,
		haikuModelId:  appConfig.Bedrock.HaikuModelId,
	}
}

// Invoke sends one prompt to the selected model and returns the text reply.
func (c *Client) Invoke(ctx context.Context, params InvokeParams) (string, error) {
	modelId := c.sonnetModelId
	if params.Model == ModelHaiku {
		modelId = c.haikuModelId
	}

	if params.MaxTokens == 0 {
		params.MaxTokens = 4000
	}

	payload := claudeRequest{
		AnthropicVersion: anthropicVersion,
		MaxTokens:        params.MaxTokens,
		Temperature:      params.Temperature,
		System:           params.System,
		Messages: []claudeMessage{
			{Role: "user", Content: params.UserPrompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal bedrock payload: %w", err)
	}

	output, err := c.runtime.InvokeModel(ctx, &bedrockruntime.InvokeModelInput{
		ModelId:     aws.String(modelId),
		Body:        body,
		ContentType: aws.String("application/json"),
		Accept:      aws.String("application/json"),
	})
	if err != nil {
		return "", fmt.Errorf("bedrock invocation failed: %w", err)
	}

	var response claudeResponse
	if err := json.Unmarshal(output.Body, &response); err != nil {
		return "", fmt.Errorf("failed to parse bedrock response: %w", err)
	}

	if len(response.Content) == 0 {
		return "", fmt.Errorf("invalid response format from the model")
	}

	return response.Content[0].Text, nil
}
