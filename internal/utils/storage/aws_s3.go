package storage

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"family-foodie/internal/utils"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gofiber/fiber/v2/log"
)

type AwsS3 struct {
	Client *s3.Client
	Bucket string
	Region string
}

func NewAwsS3() *AwsS3 {
	bucket := utils.GetConfig("AWS_S3_BUCKET")
	region := utils.GetConfig("AWS_S3_REGION")

	cfg, err := awsconfig.LoadDefaultConfig(
		context.Background(),
		awsconfig.WithRegion(region),
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			utils.GetConfig("AWS_ACCESS_KEY"),
			utils.GetConfig("AWS_SECRET_KEY"),
			"",
		)),
	)
	if err != nil {
		log.Fatalf("error loading AWS config: %v", err)
	}

	return &AwsS3{
		Client: s3.NewFromConfig(cfg),
		Bucket: bucket,
		Region: region,
	}
}

func (a *AwsS3) UploadFile(fileName string, file *multipart.FileHeader, folder string, allowedExt ...string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !extAllowed(ext, allowedExt) {
		return "", ErrExtensionNotAllowed
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	objectKey := fmt.Sprintf("%s/%s", folder, fileName)
	_, err = a.Client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.Bucket),
		Key:         aws.String(objectKey),
		Body:        src,
		ContentType: aws.String(file.Header.Get("Content-Type")),
	})
	if err != nil {
		return "", err
	}

	return objectKey, nil
}

func (a *AwsS3) UploadBytes(fileName string, data []byte, folder string, contentType string) (string, error) {
	objectKey := fmt.Sprintf("%s/%s", folder, fileName)
	_, err := a.Client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket:      aws.String(a.Bucket),
		Key:         aws.String(objectKey),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return objectKey, nil
}

func (a *AwsS3) DeleteFile(objectKey string) error {
	_, err := a.Client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(a.Bucket),
		Key:    aws.String(objectKey),
	})
	return err
}

func (a *AwsS3) GetPublicLinkKey(objectKey string) string {
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", a.Bucket, a.Region, objectKey)
}

func (a *AwsS3) GetObjectKeyFromLink(link string) string {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", a.Bucket, a.Region)
	if !strings.HasPrefix(link, prefix) {
		return ""
	}
	return strings.TrimPrefix(link, prefix)
}
