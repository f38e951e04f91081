package models

import (
	"io"
	"time"

	"github.com/m04kA/SMC-SalonBooking/internal/domain"
)

// Request модели

// ListRequest запрос на получение работ
type ListRequest struct {
	Category string `json:"category"` // "all" или категория
}

// UploadRequest загрузка новой работы
// Файл читается из Body, заполняется обработчиком multipart формы
type UploadRequest struct {
	Title       string
	Category    string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

// Response модели

// ItemResponse работа в портфолио
type ItemResponse struct {
	ID        int64     `json:"id"`
	URL       string    `json:"url"`
	Title     string    `json:"title"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"createdAt"`
}

// ListResponse список работ
type ListResponse struct {
	Items    []ItemResponse `json:"items"`
	Category string         `json:"category"`
}

// Методы конвертации

// FromDomainItem конвертирует domain модель в DTO
func FromDomainItem(item *domain.PortfolioItem) *ItemResponse {
	if item == nil {
		return nil
	}

	return &ItemResponse{
		ID:        item.ID,
		URL:       item.URL,
		Title:     item.Title,
		Category:  string(item.Category),
		CreatedAt: item.CreatedAt,
	}
}

// FromDomainItemList конвертирует список domain моделей в DTO
func FromDomainItemList(items []*domain.PortfolioItem, category string) *ListResponse {
	resp := &ListResponse{
		Items:    make([]ItemResponse, 0, len(items)),
		Category: category,
	}

	for _, item := range items {
		if itemResp := FromDomainItem(item); itemResp != nil {
			resp.Items = append(resp.Items, *itemResp)
		}
	}

	return resp
}
