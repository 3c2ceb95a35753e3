package storage

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// S3Config holds the credentials and location for an S3-backed store.
type S3Config struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
}

// S3Store keeps deployed portfolios as HTML objects in an S3 bucket.
type S3Store struct {
	client *s3.S3
	bucket string
}

// NewS3Store creates an S3-backed portfolio store.
func NewS3Store(cfg S3Config) (*S3Store, error) {
	if cfg.Region == "" || cfg.Bucket == "" {
		return nil, fmt.Errorf("s3 store requires region and bucket")
	}

	awsCfg := &aws.Config{Region: aws.String(cfg.Region)}
	if cfg.AccessKey != "" {
		awsCfg.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}
	sess, err := session.NewSession(awsCfg)
	if err != nil {
		return nil, fmt.Errorf("creating AWS session: %w", err)
	}

	return &S3Store{client: s3.New(sess), bucket: cfg.Bucket}, nil
}

// Put uploads the HTML under the slug.
func (s *S3Store) Put(slug, html string) error {
	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(objectKey(slug)),
		Body:        strings.NewReader(html),
		ContentType: aws.String("text/html; charset=utf-8"),
	})
	if err != nil {
		return fmt.Errorf("uploading portfolio: %w", err)
	}
	return nil
}

// Get downloads the HTML stored under the slug, or returns ErrNotFound.
func (s *S3Store) Get(slug string) (string, error) {
	out, err := s.client.GetObject(&s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectKey(slug)),
	})
	if err != nil {
		var awsErr awserr.Error
		if errors.As(err, &awsErr) {
			switch awsErr.Code() {
			case s3.ErrCodeNoSuchKey, "NotFound":
				return "", ErrNotFound
			}
		}
		return "", fmt.Errorf("downloading portfolio: %w", err)
	}
	defer out.Body.Close()

	data, err := io.ReadAll(out.Body)
	if err != nil {
		return "", fmt.Errorf("reading portfolio body: %w", err)
	}
	return string(data), nil
}

func objectKey(slug string) string {
	return "portfolios/" + slug + ".html"
}
