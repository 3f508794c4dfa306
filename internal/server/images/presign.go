package images

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3Presigner implements Presigner on top of an S3 presign client.
type S3Presigner struct {
	client *s3.PresignClient
}

func NewS3Presigner(client *s3.PresignClient) *S3Presigner {
	return &S3Presigner{client: client}
}

func (p *S3Presigner) PresignGet(ctx context.Context, bucket, key string, validity time.Duration) (string, error) {
	req, err := p.client.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(bucket),
		Key:    aws.String(key),
	}, s3.WithPresignExpires(validity))
	if err != nil {
		return "", err
	}
	return req.URL, nil
}
