package aws

import (
	"context"
	"fmt"
	"hbs/src/lib"
	"io"
	"log"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3UploadAsset stores r under name in the assets bucket and returns its public URL.
func S3UploadAsset(ctx context.Context, name string, contentType string, r io.Reader) (*string, error) {
	assetsBucket := os.Getenv("S3_ASSETS_BUCKET")
	client := lib.AWSGetS3Client()
	if client == nil {
		return nil, lib.ErrAWSUnavailable
	}
	_, err := client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(assetsBucket),
		Key:         aws.String(name),
		Body:        r,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		log.Printf("Could not put object to S3 bucket: %s\n", err.Error())
		return nil, err
	}
	log.Printf("Added object '%s' to bucket '%s'", name, assetsBucket)
	url := S3PublicURL(assetsBucket, os.Getenv("AWS_REGION"), name)
	return &url, nil
}

func S3PublicURL(bucket, region, key string) string {
	if base := os.Getenv("S3_PUBLIC_BASE_URL"); base != "" {
		return fmt.Sprintf("%s/%s", base, key)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", bucket, region, key)
}
