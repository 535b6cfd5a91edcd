package utils

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
)

// Storage talks to an S3-compatible object store holding item images.
type Storage struct {
	client   *s3.S3
	bucket   string
	endpoint string
}

func NewStorage(endpoint, region, bucket, accessKey, secretKey string) *Storage {
	sess := session.Must(session.NewSession(&aws.Config{
		Region:   aws.String(region),
		Endpoint: aws.String(endpoint),
		Credentials: credentials.NewStaticCredentials(
			accessKey, secretKey, "",
		),
	}))
	return &Storage{
		client:   s3.New(sess),
		bucket:   bucket,
		endpoint: endpoint,
	}
}

// UploadFile stores the file under the given object name and returns a
// public URL for it.
func (s *Storage) UploadFile(file []byte, objectName, contentType string) (string, error) {
	_, err := s.client.PutObject(&s3.PutObjectInput{
		Bucket:        aws.String(s.bucket),
		Key:           aws.String(objectName),
		Body:          bytes.NewReader(file),
		ContentLength: aws.Int64(int64(len(file))),
		ContentType:   aws.String(contentType),
		ACL:           aws.String("public-read"),
	})
	if err != nil {
		return "", fmt.Errorf("unable to upload file to S3: %v", err)
	}
	return s.PublicURL(objectName), nil
}

// DeleteFile removes the object. Missing objects are not an error.
func (s *Storage) DeleteFile(objectName string) error {
	_, err := s.client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(objectName),
	})
	if err != nil {
		return fmt.Errorf("unable to delete file from S3: %v", err)
	}
	return nil
}

func (s *Storage) PublicURL(objectName string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(s.endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.bucket, host, objectName)
}

// ObjectNameFromURL extracts the stored object name from a public URL.
func ObjectNameFromURL(url string) string {
	parts := strings.Split(url, "/")
	return parts[len(parts)-1]
}
