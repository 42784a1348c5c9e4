package config

import (
	"os"
	"strconv"
	"time"
)

// Riot API key used on every authenticated request.
var ApiKey string

// RedisConfiguration holds the connection values for the Redis instance.
type RedisConfiguration struct {
	Host     string
	Port     string
	Password string
}

// DatabaseConfiguration holds the Postgres connection and migration values.
type DatabaseConfiguration struct {
	URL            string
	Database       string
	MigrationsPath string
}

// AwsConfiguration holds the credentials and buckets used by the data lake.
type AwsConfiguration struct {
	Region       string
	AccessKey    string
	AccessSecret string
	Endpoint     string

	// Bucket with the raw match dumps and the bucket receiving the summaries.
	DatasetBucket   string
	SummariesBucket string
	LogBucket       string
}

// BedrockConfiguration holds the model ids used for the AI analysis.
type BedrockConfiguration struct {
	SonnetModelId string
	HaikuModelId  string
}

// LambdaConfiguration holds the optional Lambda offload for summary generation.
type LambdaConfiguration struct {
	SummaryFunction string
	UseLambda       bool
}

// LakeConfiguration holds the default routing values of the data lake keys.
type LakeConfiguration struct {
	DefaultCluster  string
	DefaultPlatform string
}

// RateWindow is a single Riot rate limit window.
type RateWindow struct {
	Count         int
	ResetInterval time.Duration
}

// LimitConfiguration holds both Riot rate limit windows and the background interval.
type LimitConfiguration struct {
	Lower        RateWindow
	Higher       RateWindow
	SlowInterval time.Duration
}

var (
	Redis    RedisConfiguration
	Database DatabaseConfiguration
	Aws      AwsConfiguration
	Bedrock  BedrockConfiguration
	Lambda   LambdaConfiguration
	Lake     LakeConfiguration
	Limits   LimitConfiguration
)

// LoadEnv fills the configuration structs from the environment.
func LoadEnv() {
	ApiKey = os.Getenv("RIOT_API_KEY")

	Redis.Host = os.Getenv("REDIS_HOST")
	Redis.Port = os.Getenv("REDIS_PORT")
	Redis.Password = os.Getenv("REDIS_PASSWORD")

	Database.URL = os.Getenv("DATABASE_URL")
	Database.Database = getEnvDefault("DATABASE_NAME", "riftrewind")
	Database.MigrationsPath = getEnvDefault("MIGRATIONS_PATH", "pkg/database/migrations")

	Aws.Region = getEnvDefault("AWS_REGION", "us-east-1")
	Aws.AccessKey = os.Getenv("AWS_ACCESS_KEY_ID")
	Aws.AccessSecret = os.Getenv("AWS_SECRET_ACCESS_KEY")
	Aws.Endpoint = os.Getenv("AWS_S3_ENDPOINT")
	Aws.DatasetBucket = getEnvDefault("S3_DATASET_BUCKET", "rift-rewind-dataset")
	Aws.SummariesBucket = getEnvDefault("S3_SUMMARIES_BUCKET", "rift-rewind-summaries")
	Aws.LogBucket = getEnvDefault("S3_LOG_BUCKET", "rift-rewind-logs")

	Bedrock.SonnetModelId = getEnvDefault("BEDROCK_SONNET_MODEL", "us.anthropic.claude-3-5-sonnet-20241022-v2:0")
	Bedrock.HaikuModelId = getEnvDefault("BEDROCK_HAIKU_MODEL", "us.anthropic.claude-3-haiku-20240307-v1:0")

	Lambda.SummaryFunction = getEnvDefault("SUMMARY_LAMBDA_FUNCTION", "simple-summary-lambda")
	Lambda.UseLambda = os.Getenv("SUMMARY_USE_LAMBDA") == "true"

	Lake.DefaultCluster = getEnvDefault("LAKE_DEFAULT_CLUSTER", "AMERICAS")
	Lake.DefaultPlatform = getEnvDefault("LAKE_DEFAULT_PLATFORM", "NA1")

	// Riot development limits: 20 requests each 1 second, 100 requests each 2 minutes.
	Limits.Lower = RateWindow{
		Count:         getEnvIntDefault("RIOT_LIMIT_LOWER_COUNT", 20),
		ResetInterval: time.Duration(getEnvIntDefault("RIOT_LIMIT_LOWER_SECONDS", 1)) * time.Second,
	}
	Limits.Higher = RateWindow{
		Count:         getEnvIntDefault("RIOT_LIMIT_HIGHER_COUNT", 100),
		ResetInterval: time.Duration(getEnvIntDefault("RIOT_LIMIT_HIGHER_SECONDS", 120)) * time.Second,
	}

	higherCount := Limits.Higher.Count
	if higherCount < 1 {
		higherCount = 1
	}
	Limits.SlowInterval = Limits.Higher.ResetInterval / time.Duration(higherCount)
}

// Get a environment variable with a fallback value.
func getEnvDefault(key string, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// Get a integer environment variable with a fallback value.
func getEnvIntDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
