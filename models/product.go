package models

import "time"

// Category is a menu grouping shown on the register's filter bar.
// The special id "all" is not stored; it is a virtual filter value.
type Category struct {
	ID        string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Label     string    `gorm:"type:varchar(64);not null" json:"label"`
	Icon      string    `gorm:"type:varchar(64)" json:"icon"`
	Position  int       `gorm:"not null;index" json:"position"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

// CategoryAll matches every product in the catalog filter.
const CategoryAll = "all"

// AllCategory is the virtual filter-bar chip for CategoryAll. It is
// never stored; screens prepend it to the seeded categories.
var AllCategory = Category{ID: CategoryAll, Label: "All Menu", Icon: "fast-food"}

type Product struct {
	ID         string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	Name       string    `gorm:"type:varchar(255);not null" json:"name"`
	Price      float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	CategoryID string    `gorm:"type:varchar(32);not null;index" json:"category_id"`
	Category   Category  `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ImageURL   string    `gorm:"type:varchar(255)" json:"image_url"`
	Position   int       `gorm:"not null;index" json:"position"` // menu display order
	Stock      int       `json:"stock"`                          // reserved, not decremented by the register
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}
