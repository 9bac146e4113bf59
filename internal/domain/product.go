package domain

import (
	"strings"
	"time"
)

// Category classifies a digital product.
type Category string

const (
	CategoryEbook    Category = "ebook"
	CategoryCourse   Category = "course"
	CategorySoftware Category = "software"
	CategoryTemplate Category = "template"
	CategoryOther    Category = "other"
)

// categoryLabels are the localized names shown to users; search also
// matches against them.
var categoryLabels = map[Category]string{
	CategoryEbook:    "E-Kitap",
	CategoryCourse:   "Kurs",
	CategorySoftware: "Yazılım",
	CategoryTemplate: "Şablon",
	CategoryOther:    "Diğer",
}

func (c Category) Valid() bool {
	_, ok := categoryLabels[c]
	return ok
}

func (c Category) Label() string {
	if label, ok := categoryLabels[c]; ok {
		return label
	}
	return categoryLabels[CategoryOther]
}

type Product struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Name        string    `bson:"name" json:"name"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	Category    Category  `bson:"category" json:"category"`
	Image       string    `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
}

// Matches reports whether the product matches a case-insensitive substring
// query over name, description and the localized category label.
func (p Product) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Description), q) ||
		strings.Contains(strings.ToLower(p.Category.Label()), q)
}
