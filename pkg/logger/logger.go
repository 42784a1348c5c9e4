package logger

import (
	"context"
	"fmt"
	"os"
	appConfig "riftrewind/pkg/config"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// RunLogger accumulates the log of one pipeline run on a temporary file,
// so it can be uploaded to the log bucket afterwards.
type RunLogger struct {
	mu       sync.Mutex
	logFile  *os.File
	filePath string
}

// CreateLogger creates the log instance with a temporary file.
func CreateLogger() (*RunLogger, error) {
	f, err := os.CreateTemp("", "log-*.log")
	if err != nil {
		return nil, err
	}

	return &RunLogger{
		logFile:  f,
		filePath: f.Name(),
	}, nil
}

// Infof logs a simple info.
func (l *RunLogger) Infof(format string, args ...interface{}) {
	l.write("[INFO]", format, args...)
}

// Errorf logs a error.
func (l *RunLogger) Errorf(format string, args ...interface{}) {
	l.write("[ERROR]", format, args...)
}

// EmptyLine writes a empty line.
func (l *RunLogger) EmptyLine() {
	l.logFile.WriteString("\n")
}

// Write something to the logger.
func (l *RunLogger) write(infoType string, format string, args ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%-8s %s %s\n", infoType, timestamp, fmt.Sprintf(format, args...))

	l.logFile.WriteString(line)
}

// CleanFile cleans the file contents.
func (l *RunLogger) CleanFile() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logFile.Truncate(0)

	l.logFile.Seek(0, 0)
}

// UploadToS3Bucket uploads the log to the configured log bucket.
func (l *RunLogger) UploadToS3Bucket(objectKey string) error {
	if _, err := l.logFile.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind file: %v", err)
	}

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

	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(appConfig.Aws.LogBucket),
		Key:    aws.String(objectKey),
		Body:   l.logFile,
		ACL:    types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3 bucket: %v", objectKey, err)
	}

	// Clean the file after sending.
	l.CleanFile()

	return nil
}
