package datalake

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	appConfig "riftrewind/pkg/config"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ErrObjectNotFound is returned when a key does not exist on the lake.
var ErrObjectNotFound = errors.New("object not found")

// Client wraps the S3 access to the raw match dataset and the summaries
// bucket.
type Client struct {
	s3              *s3.Client
	datasetBucket   string
	summariesBucket string
}

// NewClient creates the lake client from the loaded configuration.
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

	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		if appConfig.Aws.Endpoint != "" {
			o.BaseEndpoint = aws.String(appConfig.Aws.Endpoint)
		}
	})

	return &Client{
		s3:              s3Client,
		datasetBucket:   appConfig.Aws.DatasetBucket,
		summariesBucket: appConfig.Aws.SummariesBucket,
	}
}

// DatasetBucket returns the bucket holding the raw match dumps.
func (c *Client) DatasetBucket() string {
	return c.datasetBucket
}

// SummariesBucket returns the bucket receiving the generated summaries.
func (c *Client) SummariesBucket() string {
	return c.summariesBucket
}

// PlayerBasePath builds the raw key prefix of a given player.
func PlayerBasePath(cluster, platform, puuid string) string {
	return fmt.Sprintf("raw/cluster=%s/platform=%s/player=%s", cluster, platform, puuid)
}

// PlayerSummaryKey builds the summaries bucket key of a player summary.
func PlayerSummaryKey(puuid string) string {
	return fmt.Sprintf("summaries/players/%s.json", puuid)
}

// MatchSummaryKey builds the summaries bucket key of a single match summary.
func MatchSummaryKey(puuid string, gameId int64) string {
	return fmt.Sprintf("summaries/matches/%s/%d.json", puuid, gameId)
}

// GetJSON downloads a object and decodes it into out.
// Keys ending in .gz are decompressed before decoding.
func (c *Client) GetJSON(ctx context.Context, bucket, key string, out any) error {
	output, err := c.s3.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		var notFound *types.NoSuchKey
		if errors.As(err, &notFound) {
			return fmt.Errorf("%w: %s", ErrObjectNotFound, key)
		}
		return fmt.Errorf("failed to get %s: %w", key, err)
	}
	defer output.Body.Close()

	var reader io.Reader = output.Body
	if strings.HasSuffix(key, ".gz") {
		gz, err := gzip.NewReader(output.Body)
		if err != nil {
			return fmt.Errorf("failed to open gzip reader for %s: %w", key, err)
		}
		defer gz.Close()
		reader = gz
	}

	if err := json.NewDecoder(reader).Decode(out); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}

	return nil
}

// PutJSON uploads a indented JSON document.
func (c *Client) PutJSON(ctx context.Context, bucket, key string, value any) error {
	body, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", key, err)
	}

	_, err = c.s3.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	return nil
}

// ListMatchKeys lists every raw match file of a player, paginating through
// the whole prefix.
func (c *Client) ListMatchKeys(ctx context.Context, cluster, platform, puuid string) ([]string, error) {
	prefix := PlayerBasePath(cluster, platform, puuid) + "/matches/"

	var keys []string
	var continuationToken *string

	for {
		output, err := c.s3.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
			Bucket:            aws.String(c.datasetBucket),
			Prefix:            aws.String(prefix),
			MaxKeys:           aws.Int32(1000),
			ContinuationToken: continuationToken,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to list matches for %s: %w", puuid, err)
		}

		for _, object := range output.Contents {
			key := aws.ToString(object.Key)
			if strings.HasSuffix(key, ".match.json.gz") {
				keys = append(keys, key)
			}
		}

		if output.NextContinuationToken == nil {
			break
		}
		continuationToken = output.NextContinuationToken
	}

	return keys, nil
}
