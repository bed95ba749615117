package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "tubescribe/config"
)

// SpacesClient archives transcripts to S3-compatible object storage.
type SpacesClient struct {
	client *s3.Client
	bucket string
}

func NewSpacesClient(cfg appconfig.SpacesConfig) (*SpacesClient, error) {
	resolver := aws.EndpointResolverWithOptionsFunc(func(service, region string, options ...interface{}) (aws.Endpoint, error) {
		return aws.Endpoint{
			URL: cfg.Endpoint,
		}, nil
	})

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		awsconfig.WithEndpointResolverWithOptions(resolver),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("unable to load SDK config: %v", err)
	}

	return &SpacesClient{
		client: s3.NewFromConfig(awsCfg),
		bucket: cfg.Bucket,
	}, nil
}

type transcriptObject struct {
	VideoID   string    `json:"video_id"`
	Title     string    `json:"title"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

func (s *SpacesClient) SaveTranscript(ctx context.Context, videoID, title, text string) error {
	data := transcriptObject{
		VideoID:   videoID,
		Title:     title,
		Text:      text,
		Timestamp: time.Now(),
	}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal transcript: %v", err)
	}

	key := fmt.Sprintf("transcripts/%s.json", videoID)
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   bytes.NewReader(jsonData),
	})
	if err != nil {
		return fmt.Errorf("failed to save to Spaces: %v", err)
	}

	return nil
}

func (s *SpacesClient) GetTranscript(ctx context.Context, videoID string) (string, string, error) {
	key := fmt.Sprintf("transcripts/%s.json", videoID)
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return "", "", fmt.Errorf("failed to get from Spaces: %v", err)
	}
	defer result.Body.Close()

	var data transcriptObject
	if err := json.NewDecoder(result.Body).Decode(&data); err != nil {
		return "", "", fmt.Errorf("failed to decode transcript: %v", err)
	}

	return data.Title, data.Text, nil
}
