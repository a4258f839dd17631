package bucket

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

var S3Client *s3.S3

func InitS3Client() error {
	accessKeyID := os.Getenv("AWS_ACCESS_KEY_ID")
	secretAccessKey := os.Getenv("AWS_SECRET_ACCESS_KEY")
	region := os.Getenv("AWS_REGION")

	if accessKeyID == "" || secretAccessKey == "" || region == "" {
		return fmt.Errorf("credenciais ou região da AWS não configuradas")
	}

	sess, err := session.NewSession(&aws.Config{
		Region:      aws.String(region),
		Credentials: credentials.NewStaticCredentials(accessKeyID, secretAccessKey, ""),
	})
	if err != nil {
		return fmt.Errorf("falha ao criar sessão AWS: %w", err)
	}

	S3Client = s3.New(sess)
	return nil
}

// UploadFileToS3 arquiva o conteúdo no bucket e devolve a URL pública.
func UploadFileToS3(fileBytes []byte, fileName, bucket, contentType string) (string, error) {
	if S3Client == nil {
		if err := InitS3Client(); err != nil {
			return "", err
		}
	}

	_, err := S3Client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(bucket),
		Key:           aws.String(fileName),
		Body:          bytes.NewReader(fileBytes),
		ContentLength: aws.Int64(int64(len(fileBytes))),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("falha ao enviar arquivo para o S3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s", bucket, fileName), nil
}

func DeleteFile(ctx context.Context, bucketName, key string) error {
	if S3Client == nil {
		if err := InitS3Client(); err != nil {
			return err
		}
	}

	_, err := S3Client.DeleteObjectWithContext(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(bucketName),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("falha ao remover arquivo do S3: %w", err)
	}
	return nil
}
