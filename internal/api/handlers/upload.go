package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
)

// sniffLen столько байт смотрит http.DetectContentType
const sniffLen = 512

var (
	ErrFileMissing  = errors.New("handlers: file is missing")
	ErrFileTooLarge = errors.New("handlers: file is too large")
	ErrNotAnImage   = errors.New("handlers: file is not an image")
)

// UploadedFile изображение из multipart формы
// Content type определяется по содержимому, а не по заголовку клиента
type UploadedFile struct {
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader

	file multipart.File
}

// Close закрывает файл формы
func (f *UploadedFile) Close() error {
	if f == nil || f.file == nil {
		return nil
	}
	return f.file.Close()
}

// IsMultipart true для multipart/form-data запроса
func IsMultipart(r *http.Request) bool {
	return strings.HasPrefix(strings.ToLower(r.Header.Get("Content-Type")), "multipart/form-data")
}

// ParseMultipart разбирает форму с ограничением размера всего тела
func ParseMultipart(w http.ResponseWriter, r *http.Request, maxBytes int64) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
	if err := r.ParseMultipartForm(maxBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return ErrFileTooLarge
		}
		return err
	}
	return nil
}

// ImageFile достает изображение из разобранной формы
// required=false: отсутствие файла не ошибка, возвращается nil
func ImageFile(r *http.Request, field string, required bool) (*UploadedFile, error) {
	file, header, err := r.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			if required {
				return nil, ErrFileMissing
			}
			return nil, nil
		}
		return nil, err
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		_ = file.Close()
		return nil, fmt.Errorf("read %s: %w", field, err)
	}
	head = head[:n]

	if n == 0 {
		_ = file.Close()
		if required {
			return nil, ErrFileMissing
		}
		return nil, nil
	}

	contentType := http.DetectContentType(head)
	if !strings.HasPrefix(contentType, "image/") {
		_ = file.Close()
		return nil, fmt.Errorf("%w: detected %s", ErrNotAnImage, contentType)
	}

	return &UploadedFile{
		Filename:    header.Filename,
		ContentType: contentType,
		Size:        header.Size,
		Body:        io.MultiReader(bytes.NewReader(head), file),
		file:        file,
	}, nil
}
