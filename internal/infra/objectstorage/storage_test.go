package objectstorage

import (
	"context"
	"errors"
	"io"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
)

type mockS3Client struct {
	objects map[string][]byte
	putErr  error
	types   map[string]string
}

func newMockS3() *mockS3Client {
	return &mockS3Client{objects: make(map[string][]byte), types: make(map[string]string)}
}

func (m *mockS3Client) PutObject(_ context.Context, input *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if m.putErr != nil {
		return nil, m.putErr
	}
	body, _ := io.ReadAll(input.Body)
	m.objects[*input.Key] = body
	m.types[*input.Key] = *input.ContentType
	return &s3.PutObjectOutput{}, nil
}

func (m *mockS3Client) DeleteObject(_ context.Context, input *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	delete(m.objects, *input.Key)
	return &s3.DeleteObjectOutput{}, nil
}

func TestStorage_UploadAndDelete(t *testing.T) {
	mock := newMockS3()
	store := NewStorage(mock, "salon-images", "https://cdn.example.com/salon-images/", logger.NewNop())

	url, err := store.Upload(context.Background(), "portfolio/1-abc.jpg", strings.NewReader("img"), 3, "image/jpeg")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/salon-images/portfolio/1-abc.jpg", url)
	assert.Equal(t, []byte("img"), mock.objects["portfolio/1-abc.jpg"])
	assert.Equal(t, "image/jpeg", mock.types["portfolio/1-abc.jpg"])

	assert.Equal(t, "portfolio/1-abc.jpg", store.KeyFromURL(url))
	assert.Equal(t, "x.png", store.KeyFromURL("https://elsewhere.example.com/bucket/x.png"))

	require.NoError(t, store.Delete(context.Background(), store.KeyFromURL(url)))
	assert.Empty(t, mock.objects)
}

func TestStorage_UploadError(t *testing.T) {
	mock := newMockS3()
	mock.putErr = errors.New("access denied")
	store := NewStorage(mock, "salon-images", "https://cdn.example.com", logger.NewNop())

	_, err := store.Upload(context.Background(), "inspiration/1.png", strings.NewReader("x"), 1, "image/png")
	assert.ErrorIs(t, err, ErrUpload)

	_, err = store.Upload(context.Background(), "", strings.NewReader("x"), 1, "image/png")
	assert.ErrorIs(t, err, ErrEmptyKey)
}

func TestGenerateKey(t *testing.T) {
	now := time.UnixMilli(1736500000000)

	key := GenerateKey("inspiration", "My Nails.JPG", "image/jpeg", now)
	assert.Regexp(t, regexp.MustCompile(`^inspiration/1736500000000-[0-9a-f]{8}\.jpg$`), key)

	key = GenerateKey("portfolio", "blob", "image/webp", now)
	assert.Regexp(t, regexp.MustCompile(`^portfolio/1736500000000-[0-9a-f]{8}\.webp$`), key)

	key = GenerateKey("portfolio", "", "application/octet-stream", now)
	assert.True(t, strings.HasSuffix(key, ".bin"))

	assert.NotEqual(t, GenerateKey("p", "a.png", "", now), GenerateKey("p", "a.png", "", now))
}
