package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/sirupsen/logrus"
)

type MinIOStore struct {
	client     *minio.Client
	bucketName string
}

// NewMinIOStore connects to MinIO and creates the bucket if it does not exist.
func NewMinIOStore(ctx context.Context, endpoint, accessKey, secretKey, bucketName string, useSSL bool) (*MinIOStore, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
		logrus.Infof("Bucket %s created successfully", bucketName)
	}

	return &MinIOStore{
		client:     client,
		bucketName: bucketName,
	}, nil
}

func (m *MinIOStore) Save(ctx context.Context, name string, r io.Reader, size int64, contentType string) error {
	if err := validName(name); err != nil {
		return err
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := m.client.PutObject(ctx, m.bucketName, name, r, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}

	logrus.Infof("File %s uploaded successfully", name)
	return nil
}

// Open returns the object body. GetObject is lazy, so the object is stat'ed
// first to report a missing key as ErrNotFound.
func (m *MinIOStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	ok, err := m.Exists(ctx, name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}

	object, err := m.client.GetObject(ctx, m.bucketName, name, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	return object, nil
}

func (m *MinIOStore) Exists(ctx context.Context, name string) (bool, error) {
	if err := validName(name); err != nil {
		return false, err
	}

	_, err := m.client.StatObject(ctx, m.bucketName, name, minio.StatObjectOptions{})
	if err != nil {
		if minio.ToErrorResponse(err).Code == "NoSuchKey" {
			return false, nil
		}
		return false, fmt.Errorf("failed to check file: %w", err)
	}

	return true, nil
}

// PresignedURL returns a temporary link staff can download the file from.
func (m *MinIOStore) PresignedURL(ctx context.Context, name string, ttl time.Duration) (string, error) {
	if err := validName(name); err != nil {
		return "", err
	}

	url, err := m.client.PresignedGetObject(ctx, m.bucketName, name, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url.String(), nil
}

var (
	_ FileStore = (*MinIOStore)(nil)
	_ Presigner = (*MinIOStore)(nil)
	_ FileStore = (*LocalStore)(nil)
)
