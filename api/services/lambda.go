package services

import (
	"context"
	"encoding/json"
	"fmt"
	"riftrewind/api/dto"
	appConfig "riftrewind/pkg/config"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/lambda"
)

// SummaryLambda offloads a full summary generation to a dedicated function.
type SummaryLambda interface {
	GenerateSummary(ctx context.Context, puuid string) (*dto.LambdaGenerationResult, error)
}

type summaryLambda struct {
	client       *lambda.Client
	functionName string
}

// NewSummaryLambda creates the lambda client from the loaded configuration.
func NewSummaryLambda() SummaryLambda {
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

	return &summaryLambda{
		client:       lambda.NewFromConfig(cfg),
		functionName: appConfig.Lambda.SummaryFunction,
	}
}

// GenerateSummary invokes the function synchronously and relays its response.
func (sl *summaryLambda) GenerateSummary(ctx context.Context, puuid string) (*dto.LambdaGenerationResult, error) {
	payload, err := json.Marshal(map[string]string{"puuid": puuid})
	if err != nil {
		return nil, err
	}

	output, err := sl.client.Invoke(ctx, &lambda.InvokeInput{
		FunctionName: aws.String(sl.functionName),
		Payload:      payload,
	})
	if err != nil {
		return nil, fmt.Errorf("couldn't invoke %s: %w", sl.functionName, err)
	}

	if output.FunctionError != nil {
		return nil, fmt.Errorf("%s failed: %s", sl.functionName, *output.FunctionError)
	}

	var result dto.LambdaGenerationResult
	if err := json.Unmarshal(output.Payload, &result); err != nil {
		return nil, fmt.Errorf("couldn't parse the lambda response: %w", err)
	}

	return &result, nil
}
