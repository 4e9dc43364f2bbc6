package infra_s3

import (
	"context"
	"log"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	app_config "github.com/humanbelnik/kinomatch/internal/config"
)

// MustEstablishConn builds a client for AWS or, when an endpoint is
// configured, for an S3 compatible server such as minio.
func MustEstablishConn(cfg app_config.Storage) *s3.Client {
	if cfg.Endpoint == "" {
		return createRealClient(cfg)
	}
	return createEndpointClient(cfg)
}

func createRealClient(cfg app_config.Storage) *s3.Client {
	awsCfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(cfg.Region))
	if err != nil {
		log.Fatal(err)
	}

	log.Printf("[s3] using AWS client in region %s", awsCfg.Region)
	return s3.NewFromConfig(awsCfg)
}

func createEndpointClient(cfg app_config.Storage) *s3.Client {
	opts := []func(*config.LoadOptions) error{config.WithRegion(cfg.Region)}
	if !hasEnvCredentials() {
		opts = append(opts, config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider("mock", "mock", "")))
	}

	awsCfg, err := config.LoadDefaultConfig(context.TODO(), opts...)
	if err != nil {
		log.Fatal("failed to create S3 config:", err)
	}

	log.Printf("[s3] using S3 compatible endpoint %s", cfg.Endpoint)
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Endpoint)
		o.UsePathStyle = true
	})
}
