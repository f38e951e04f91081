package domain

import "time"

// PortfolioCategory category of a portfolio image
type PortfolioCategory string

const (
	PortfolioNatural PortfolioCategory = "natural"
	PortfolioFrench  PortfolioCategory = "french"
	PortfolioGel     PortfolioCategory = "gel"
	PortfolioAcrylic PortfolioCategory = "acrylic"
	PortfolioNailArt PortfolioCategory = "nailart"
	PortfolioOther   PortfolioCategory = "other"
)

// PortfolioCategoryAll значение фильтра "все категории"
const PortfolioCategoryAll = "all"

// PortfolioCategories все категории в порядке отображения
var PortfolioCategories = []PortfolioCategory{
	PortfolioNatural,
	PortfolioFrench,
	PortfolioGel,
	PortfolioAcrylic,
	PortfolioNailArt,
	PortfolioOther,
}

// IsValid returns true for a known category
func (c PortfolioCategory) IsValid() bool {
	for _, known := range PortfolioCategories {
		if c == known {
			return true
		}
	}
	return false
}

// PortfolioItem an image in the salon's public gallery
type PortfolioItem struct {
	ID         int64
	URL        string
	StorageKey string
	Title      string
	Category   PortfolioCategory
	CreatedAt  time.Time
}
