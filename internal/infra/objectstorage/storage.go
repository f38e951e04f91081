package objectstorage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
)

// S3API подмножество клиента S3, которое использует Storage
type S3API interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}

// ClientConfig параметры подключения к S3-совместимому хранилищу
type ClientConfig struct {
	Endpoint     string // пусто - AWS
	Region       string
	AccessKey    string
	SecretKey    string
	UsePathStyle bool // для MinIO
}

// NewS3Client создает клиента S3. Без ключей используется стандартная цепочка AWS
func NewS3Client(ctx context.Context, cfg ClientConfig) (*s3.Client, error) {
	loaders := []func(*awsconfig.LoadOptions) error{awsconfig.WithRegion(cfg.Region)}
	if strings.TrimSpace(cfg.AccessKey) != "" && strings.TrimSpace(cfg.SecretKey) != "" {
		loaders = append(loaders, awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx, loaders...)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrClientConfig, err)
	}

	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		}
		o.UsePathStyle = cfg.UsePathStyle
	}), nil
}

// Storage публичное хранилище изображений: фото-примеры клиентов и работы портфолио
type Storage struct {
	client        S3API
	bucket        string
	publicBaseURL string
	logger        Logger
}

func NewStorage(client S3API, bucket, publicBaseURL string, logger Logger) *Storage {
	return &Storage{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		logger:        logger,
	}
}

// Upload загружает объект и возвращает его публичный URL
func (s *Storage) Upload(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error) {
	if key == "" {
		return "", ErrEmptyKey
	}

	input := &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	}
	if size > 0 {
		input.ContentLength = aws.Int64(size)
	}

	if _, err := s.client.PutObject(ctx, input); err != nil {
		return "", fmt.Errorf("%w: Upload - put %s: %v", ErrUpload, key, err)
	}

	s.logger.Info("Object uploaded: bucket=%s, key=%s, size=%d", s.bucket, key, size)

	return s.PublicURL(key), nil
}

// Delete удаляет объект. Отсутствие объекта ошибкой не является
func (s *Storage) Delete(ctx context.Context, key string) error {
	if key == "" {
		return ErrEmptyKey
	}

	_, err := s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("%w: Delete - delete %s: %v", ErrDelete, key, err)
	}

	s.logger.Info("Object deleted: bucket=%s, key=%s", s.bucket, key)

	return nil
}

// PublicURL публичный адрес объекта
func (s *Storage) PublicURL(key string) string {
	return s.publicBaseURL + "/" + key
}

// KeyFromURL восстанавливает ключ объекта по публичному URL
// Для URL не из этого хранилища возвращает имя файла
func (s *Storage) KeyFromURL(url string) string {
	prefix := s.publicBaseURL + "/"
	if strings.HasPrefix(url, prefix) {
		return strings.TrimPrefix(url, prefix)
	}
	return path.Base(url)
}

var extByContentType = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
	"image/heic": "heic",
	"image/heif": "heif",
}

// GenerateKey уникальный ключ вида <prefix>/<unixMillis>-<random>.<ext>
// Расширение берется из имени файла, иначе из content type
func GenerateKey(prefix, filename, contentType string, now time.Time) string {
	ext := strings.TrimPrefix(strings.ToLower(path.Ext(filename)), ".")
	if ext == "" {
		ext = extByContentType[strings.ToLower(contentType)]
	}
	if ext == "" {
		ext = "bin"
	}

	random := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]

	return fmt.Sprintf("%s/%d-%s.%s", prefix, now.UnixMilli(), random, ext)
}
