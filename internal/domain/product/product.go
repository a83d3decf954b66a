package product

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type Review struct {
	ID        string `json:"id"`
	UserName  string `json:"userName"`
	UserEmail string `json:"userEmail"`
	Rating    int    `json:"rating"`
	Comment   string `json:"comment"`
	Date      string `json:"date"`
}

// Product is one catalog entry with bilingual copy. Reviews are kept newest first.
type Product struct {
	ID              string          `json:"id"`
	NameAr          string          `json:"nameAr"`
	NameEn          string          `json:"nameEn"`
	Price           decimal.Decimal `json:"price"`
	DescriptionAr   string          `json:"descriptionAr"`
	DescriptionEn   string          `json:"descriptionEn"`
	Category        string          `json:"category"`
	Image           string          `json:"image"`
	SpecsAr         []string        `json:"specsAr"`
	SpecsEn         []string        `json:"specsEn"`
	Stock           int             `json:"stock"`
	AvailableColors []string        `json:"availableColors,omitempty"`
	AvailableSizes  []string        `json:"availableSizes,omitempty"`
	Reviews         []Review        `json:"reviews,omitempty"`
}

// Clone copies p deeply enough that edits to the copy never reach p.
func (p Product) Clone() Product {
	p.SpecsAr = cloneStrings(p.SpecsAr)
	p.SpecsEn = cloneStrings(p.SpecsEn)
	p.AvailableColors = cloneStrings(p.AvailableColors)
	p.AvailableSizes = cloneStrings(p.AvailableSizes)
	if p.Reviews != nil {
		p.Reviews = append([]Review(nil), p.Reviews...)
	}
	return p
}

// AverageRating is the mean of the embedded ratings, 0 without reviews.
func (p Product) AverageRating() float64 {
	if len(p.Reviews) == 0 {
		return 0
	}
	sum := 0
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	return float64(sum) / float64(len(p.Reviews))
}

// FormatRating renders a rating with one decimal place, e.g. "4.0".
func FormatRating(r float64) string {
	return fmt.Sprintf("%.1f", r)
}

func (p Product) Name(lang string) string {
	if lang == "en" {
		return p.NameEn
	}
	return p.NameAr
}

func (p Product) HasColor(c string) bool {
	return contains(p.AvailableColors, c)
}

func (p Product) HasSize(s string) bool {
	return contains(p.AvailableSizes, s)
}

func contains(list []string, v string) bool {
	for _, x := range list {
		if x == v {
			return true
		}
	}
	return false
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
