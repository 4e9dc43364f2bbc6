package infra_s3

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"path"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"github.com/humanbelnik/kinomatch/internal/model"
)

type S3Storage struct {
	client *s3.Client

	prefix     string
	bucketName string
	publicURL  string
}

// New checks the bucket and returns a storage whose object URLs start with
// publicURL. An empty publicURL falls back to the virtual hosted AWS URL.
func New(bucketName string, client *s3.Client, prefix string, publicURL string) (*S3Storage, error) {
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.amazonaws.com", bucketName)
	}
	storage := S3Storage{
		bucketName: bucketName,
		client:     client,
		prefix:     prefix,
		publicURL:  strings.TrimRight(publicURL, "/"),
	}

	_, err := storage.client.HeadBucket(context.TODO(), &s3.HeadBucketInput{
		Bucket: aws.String(bucketName),
	})
	if err != nil {
		var apiError smithy.APIError
		if errors.As(err, &apiError) {
			switch apiError.(type) {
			case *types.NotFound:
				log.Printf("Bucket %v is available.\n", bucketName)
				err = nil
			default:
				log.Printf("Either you don't have access to bucket %v or another error occurred. "+
					"Here's what happened: %v\n", bucketName, err)
			}
		}
	} else {
		log.Printf("Bucket %v exists and you already own it.", bucketName)
	}

	return &storage, err
}

// Save uploads the image under a fresh name and returns its public URL.
func (s *S3Storage) Save(ctx context.Context, obj model.FileObject) (string, error) {
	key := buildKey(s.prefix, obj.GetParent(), uniqueName(obj.GetFilename()))
	if _, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      &s.bucketName,
		Key:         &key,
		Body:        bytes.NewReader(obj.GetContent()),
		ContentType: aws.String(obj.GetContentType()),
		ACL:         types.ObjectCannedACLPublicRead,
	}); err != nil {
		return "", fmt.Errorf("failed to save object to S3: %w", err)
	}
	return s.publicURL + "/" + key, nil
}

// Delete removes the object behind a URL returned by Save. URLs pointing
// elsewhere are ignored.
func (s *S3Storage) Delete(ctx context.Context, url string) error {
	key, ok := strings.CutPrefix(url, s.publicURL+"/")
	if !ok || key == "" {
		return nil
	}
	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: &s.bucketName,
		Key:    &key,
	})
	if err != nil {
		return fmt.Errorf("failed to delete object from S3: %w", err)
	}
	return nil
}

// buildKey joins key segments keeping single slashes between them.
func buildKey(parts ...string) string {
	cleaned := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ReplaceAll(p, "\\", "")
		p = strings.Trim(p, "/")
		if p != "" {
			cleaned = append(cleaned, p)
		}
	}
	return path.Join(cleaned...)
}

func uniqueName(filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(strings.ReplaceAll(filename, "\\", "/"))))
	return uuid.NewString() + ext
}

func hasEnvCredentials() bool {
	return os.Getenv("AWS_ACCESS_KEY_ID") != ""
}
