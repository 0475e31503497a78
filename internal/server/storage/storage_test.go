package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStore_SaveAndURL(t *testing.T) {
	root := filepath.Join(t.TempDir(), "storage")
	s, err := NewLocalStore(root, "http://127.0.0.1:5000/")
	require.NoError(t, err)

	ctx := context.Background()
	key, err := s.Save(ctx, AreaUploads, "a.jpg", strings.NewReader("img-bytes"))
	require.NoError(t, err)
	assert.Equal(t, "uploads/a.jpg", key)

	data, err := os.ReadFile(filepath.Join(root, "uploads", "a.jpg"))
	require.NoError(t, err)
	assert.Equal(t, "img-bytes", string(data))

	assert.Equal(t, "http://127.0.0.1:5000/uploads/a.jpg", s.URL(key))
}

func TestLocalStore_CreatesAreaDirs(t *testing.T) {
	root := filepath.Join(t.TempDir(), "storage")
	_, err := NewLocalStore(root, "http://localhost")
	require.NoError(t, err)

	for _, area := range []string{"uploads", "outputs"} {
		info, err := os.Stat(filepath.Join(root, area))
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}

func TestLocalStore_OutputsKey(t *testing.T) {
	s, err := NewLocalStore(filepath.Join(t.TempDir(), "st"), "https://img.example.com")
	require.NoError(t, err)

	key, err := s.Save(context.Background(), AreaOutputs, "a_final.png", strings.NewReader("png"))
	require.NoError(t, err)
	assert.Equal(t, "outputs/a_final.png", key)
	assert.Equal(t, "https://img.example.com/outputs/a_final.png", s.URL(key))
}

type putRecorder struct {
	input *s3.PutObjectInput
	err   error
}

func (p *putRecorder) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	p.input = params
	if p.err != nil {
		return nil, p.err
	}
	return &s3.PutObjectOutput{}, nil
}

func TestS3Store_Save(t *testing.T) {
	rec := &putRecorder{}
	s := &S3Store{client: rec, bucket: "testly", endpoint: "http://127.0.0.1:9000"}

	key, err := s.Save(context.Background(), AreaUploads, "a.jpg", strings.NewReader("img"))
	require.NoError(t, err)

	assert.Equal(t, "uploads/a.jpg", key)
	require.NotNil(t, rec.input)
	assert.Equal(t, "testly", *rec.input.Bucket)
	assert.Equal(t, "uploads/a.jpg", *rec.input.Key)
}

func TestS3Store_SaveError(t *testing.T) {
	rec := &putRecorder{err: assert.AnError}
	s := &S3Store{client: rec, bucket: "testly", endpoint: "http://127.0.0.1:9000"}

	_, err := s.Save(context.Background(), AreaUploads, "a.jpg", strings.NewReader("img"))
	require.ErrorIs(t, err, assert.AnError)
}

func TestS3Store_URL(t *testing.T) {
	s := &S3Store{bucket: "testly", endpoint: "http://127.0.0.1:9000"}
	assert.Equal(t, "http://127.0.0.1:9000/testly/outputs/a.png", s.URL("outputs/a.png"))
}
