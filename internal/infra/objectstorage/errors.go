package objectstorage

import "errors"

var (
	// ErrUpload возвращается при ошибке загрузки объекта
	ErrUpload = errors.New("objectstorage: failed to upload object")

	// ErrDelete возвращается при ошибке удаления объекта
	ErrDelete = errors.New("objectstorage: failed to delete object")

	// ErrEmptyKey возвращается, если ключ объекта пуст
	ErrEmptyKey = errors.New("objectstorage: empty object key")

	// ErrClientConfig возвращается при ошибке инициализации клиента S3
	ErrClientConfig = errors.New("objectstorage: failed to configure s3 client")
)
