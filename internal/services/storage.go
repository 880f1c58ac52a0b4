package services

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"alfredoptarigan/smart-talent/internal/config"
)

// StoredFile is a saved speech artifact and the URL a browser fetches it from.
type StoredFile struct {
	Name string
	URL  string
}

type StorageService interface {
	EnsureReady(ctx context.Context) error
	SaveFile(ctx context.Context, prefix, ext, contentType string, data []byte) (*StoredFile, error)
	DeleteFile(ctx context.Context, filename string) error
	GetFilePath(filename string) (string, error)
}

// NewStorageService picks the backend named in the storage config.
func NewStorageService(ctx context.Context, cfg config.StorageConfig) (StorageService, error) {
	switch cfg.Backend {
	case "s3":
		return newS3StorageService(ctx, cfg.S3)
	case "local", "":
		return NewLocalStorageService(cfg.AudioPath), nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

func newFilename(prefix, ext string) string {
	return fmt.Sprintf("%s_%s%s", prefix, uuid.New().String(), ext)
}

type localStorageService struct {
	uploadPath string
}

func NewLocalStorageService(uploadPath string) StorageService {
	return &localStorageService{
		uploadPath: uploadPath,
	}
}

func (s *localStorageService) EnsureReady(ctx context.Context) error {
	if err := os.MkdirAll(s.uploadPath, 0755); err != nil {
		return fmt.Errorf("failed to create audio directory: %w", err)
	}

	return nil
}

func (s *localStorageService) SaveFile(ctx context.Context, prefix, ext, contentType string, data []byte) (*StoredFile, error) {
	filename := newFilename(prefix, ext)
	filePath := filepath.Join(s.uploadPath, filename)

	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &StoredFile{
		Name: filename,
		URL:  "/audio/" + filename,
	}, nil
}

// GetFilePath resolves a stored name, refusing anything that is not a plain
// file name inside the audio directory.
func (s *localStorageService) GetFilePath(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", fmt.Errorf("invalid file name: %q", filename)
	}
	return filepath.Join(s.uploadPath, filename), nil
}

func (s *localStorageService) DeleteFile(ctx context.Context, filename string) error {
	filePath, err := s.GetFilePath(filename)
	if err != nil {
		return err
	}
	if err := os.Remove(filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}

type s3StorageService struct {
	client    *s3.Client
	presigner *s3.PresignClient
	bucket    string
	publicURL string
}

func newS3StorageService(ctx context.Context, cfg config.S3Config) (StorageService, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
		awsconfig.WithRegion(cfg.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	endpoint := cfg.Endpoint
	if endpoint == "" && cfg.AccountID != "" {
		endpoint = fmt.Sprintf("https://%s.r2.cloudflarestorage.com", cfg.AccountID)
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if endpoint != "" {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		}
	})

	return &s3StorageService{
		client:    client,
		presigner: s3.NewPresignClient(client),
		bucket:    cfg.Bucket,
		publicURL: strings.TrimRight(cfg.PublicURL, "/"),
	}, nil
}

func (s *s3StorageService) EnsureReady(ctx context.Context) error {
	if _, err := s.client.HeadBucket(ctx, &s3.HeadBucketInput{Bucket: aws.String(s.bucket)}); err != nil {
		return fmt.Errorf("failed to reach bucket %s: %w", s.bucket, err)
	}
	return nil
}

func (s *s3StorageService) SaveFile(ctx context.Context, prefix, ext, contentType string, data []byte) (*StoredFile, error) {
	key := newFilename(prefix, ext)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to upload object: %w", err)
	}

	if s.publicURL != "" {
		return &StoredFile{Name: key, URL: s.publicURL + "/" + key}, nil
	}

	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(15*time.Minute))
	if err != nil {
		return nil, fmt.Errorf("failed to presign object: %w", err)
	}

	return &StoredFile{Name: key, URL: req.URL}, nil
}

func (s *s3StorageService) DeleteFile(ctx context.Context, filename string) error {
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(filename),
	})
	if err != nil {
		return fmt.Errorf("failed to delete object: %w", err)
	}
	return nil
}

// GetFilePath is not available for objects served from the bucket.
func (s *s3StorageService) GetFilePath(filename string) (string, error) {
	return "", fmt.Errorf("file %s is stored remotely", filename)
}
