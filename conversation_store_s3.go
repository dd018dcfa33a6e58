package chatbot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// S3Client interface for the S3 operations used by the conversation store
type S3Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3ConversationStore persists each session's log as one JSON object in an
// S3 bucket, keyed as "<session_id>.json".
type S3ConversationStore struct {
	client S3Client
	bucket string
}

// S3ConversationStoreConfig holds configuration for the S3 backend.
type S3ConversationStoreConfig struct {
	// Client is the S3Client implementation to use
	Client S3Client
	// Bucket is the target bucket name
	Bucket string
}

// NewS3ConversationStore creates an S3-backed ConversationStore.
//
// Example usage:
//
//	awsCfg, err := config.LoadDefaultConfig(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	store := chatbot.NewS3ConversationStore(chatbot.S3ConversationStoreConfig{
//	    Client: s3.NewFromConfig(awsCfg),
//	    Bucket: "healthproct-memory",
//	})
func NewS3ConversationStore(config S3ConversationStoreConfig) *S3ConversationStore {
	return &S3ConversationStore{
		client: config.Client,
		bucket: config.Bucket,
	}
}

// Load fetches the session document from the bucket. A missing key is the
// defined representation of a new session and loads as an empty log.
func (s *S3ConversationStore) Load(ctx context.Context, sessionID string) (ConversationLog, error) {
	out, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(memoryPath(sessionID)),
	})
	if err != nil {
		var noSuchKey *types.NoSuchKey
		if errors.As(err, &noSuchKey) {
			return ConversationLog{}, nil
		}
		return nil, fmt.Errorf("failed to get conversation object for session %s: %w", sessionID, err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read conversation object for session %s: %w", sessionID, err)
	}

	var log ConversationLog
	if err := json.Unmarshal(data, &log); err != nil {
		return nil, fmt.Errorf("failed to decode conversation object for session %s: %w", sessionID, err)
	}

	return log, nil
}

// Save replaces the session's object with the full serialized log.
func (s *S3ConversationStore) Save(ctx context.Context, sessionID string, log ConversationLog) error {
	data, err := json.MarshalIndent(log, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode conversation for session %s: %w", sessionID, err)
	}

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(memoryPath(sessionID)),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to put conversation object for session %s: %w", sessionID, err)
	}

	return nil
}
