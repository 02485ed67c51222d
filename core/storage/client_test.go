package storage_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"skin-catalog/core/storage"
	"skin-catalog/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Run("ValidConfig", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    false,
			Bucket:    "test-bucket",
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTP", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "http://localhost:9000",
			AccessKey: "testkey",
			SecretKey: "testsecret",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("EndpointWithHTTPS", func(t *testing.T) {
		cfg := storage.Config{
			Endpoint:  "https://s3.amazonaws.com",
			AccessKey: "testkey",
			SecretKey: "testsecret",
			UseSSL:    true,
			Region:    "us-east-1",
		}

		client, err := storage.NewClient(cfg)
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})
}

func TestEnsureBucket(t *testing.T) {
	ctx := context.Background()

	t.Run("Exists", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "reports").Return(true, nil)

		require.NoError(t, storage.EnsureBucket(ctx, m, "reports", ""))
		m.AssertNotCalled(t, "MakeBucket", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Creates", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "reports").Return(false, nil)
		m.On("MakeBucket", ctx, "reports", minio.MakeBucketOptions{Region: "eu-west-1"}).Return(nil)

		require.NoError(t, storage.EnsureBucket(ctx, m, "reports", "eu-west-1"))
		m.AssertExpectations(t)
	})

	t.Run("CheckFails", func(t *testing.T) {
		m := new(mocks.Client)
		m.On("BucketExists", ctx, "reports").Return(false, errors.New("denied"))

		err := storage.EnsureBucket(ctx, m, "reports", "")
		assert.ErrorContains(t, err, "denied")
	})
}

func TestPutJSON(t *testing.T) {
	ctx := context.Background()
	m := new(mocks.Client)
	data := []byte(`[]`)

	m.On("PutObject", ctx, "b", "reports/x.json", mock.Anything, int64(2), mock.MatchedBy(func(o minio.PutObjectOptions) bool {
		return o.ContentType == "application/json"
	})).Return(minio.UploadInfo{Key: "reports/x.json", Size: 2}, nil)

	info, err := storage.PutJSON(ctx, m, "b", "reports/x.json", data)
	require.NoError(t, err)
	assert.Equal(t, "reports/x.json", info.Key)
	m.AssertExpectations(t)
}

func TestGetAll(t *testing.T) {
	ctx := context.Background()

	m := new(mocks.Client)
	m.On("GetObject", ctx, "b", "k", minio.GetObjectOptions{}).Return(io.NopCloser(strings.NewReader("hello")), nil)

	data, err := storage.GetAll(ctx, m, "b", "k")
	require.NoError(t, err)
	assert.Equal(t, "hello", string(data))

	m = new(mocks.Client)
	m.On("GetObject", ctx, "b", "k", minio.GetObjectOptions{}).Return(nil, errors.New("missing"))
	_, err = storage.GetAll(ctx, m, "b", "k")
	assert.ErrorContains(t, err, "missing")
}
