package database

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/yeremiapane/cafe-pos/models"
)

// Categories shown on the register's filter bar, in display order.
// The "all" chip is virtual and lives at models.AllCategory; it is
// intentionally not stored.
var Categories = []models.Category{
	{ID: "coffee", Label: "Coffee", Icon: "cafe"},
	{ID: "bakery", Label: "Bakery", Icon: "nutrition"},
	{ID: "main", Label: "Main Course", Icon: "restaurant"},
	{ID: "dessert", Label: "Dessert", Icon: "ice-cream"},
	{ID: "drinks", Label: "Cold Drinks", Icon: "wine"},
}

// Products is the static menu. The register never mutates it; stock
// is reserved for a future inventory feature and stays untouched.
var Products = []models.Product{
	{ID: "1", Name: "Caramel Macchiato", Price: 4.5, CategoryID: "coffee", ImageURL: "https://images.unsplash.com/photo-1485808191679-5f86510681a2?auto=format&fit=crop&w=400&q=80"},
	{ID: "2", Name: "Hot Cappuccino", Price: 3.8, CategoryID: "coffee", ImageURL: "https://images.unsplash.com/photo-1572442388796-11668a67e53d?auto=format&fit=crop&w=400&q=80"},
	{ID: "3", Name: "Iced Americano", Price: 3.2, CategoryID: "coffee", ImageURL: "https://images.unsplash.com/photo-1517701550927-30cf4ba1dba5?auto=format&fit=crop&w=400&q=80"},
	{ID: "4", Name: "Espresso Double", Price: 2.5, CategoryID: "coffee", ImageURL: "https://images.unsplash.com/photo-1510591509098-f4fdc6d0ff04?auto=format&fit=crop&w=400&q=80"},
	{ID: "5", Name: "Butter Croissant", Price: 3.0, CategoryID: "bakery", ImageURL: "https://images.unsplash.com/photo-1555507036-ab1f40388085?auto=format&fit=crop&w=400&q=80"},
	{ID: "6", Name: "Choco Muffin", Price: 3.5, CategoryID: "bakery", ImageURL: "https://images.unsplash.com/photo-1607958996333-41aef7caefaa?auto=format&fit=crop&w=400&q=80"},
	{ID: "7", Name: "Bagel & Cream", Price: 4.0, CategoryID: "bakery", ImageURL: "https://images.unsplash.com/photo-1585478259715-876a6a81bc08?auto=format&fit=crop&w=400&q=80"},
	{ID: "8", Name: "Sourdough Toast", Price: 5.5, CategoryID: "bakery", ImageURL: "https://images.unsplash.com/photo-1586444248902-2f64eddc13df?auto=format&fit=crop&w=400&q=80"},
	{ID: "9", Name: "Beef Burger", Price: 8.9, CategoryID: "main", ImageURL: "https://images.unsplash.com/photo-1568901346375-23c9450c58cd?auto=format&fit=crop&w=400&q=80"},
	{ID: "10", Name: "Spaghetti Carbonara", Price: 9.5, CategoryID: "main", ImageURL: "https://images.unsplash.com/photo-1612874742237-6526221588e3?auto=format&fit=crop&w=400&q=80"},
	{ID: "11", Name: "Caesar Salad", Price: 7.2, CategoryID: "main", ImageURL: "https://images.unsplash.com/photo-1550304943-4f24f54ddde9?auto=format&fit=crop&w=400&q=80"},
	{ID: "12", Name: "Grilled Salmon", Price: 12.0, CategoryID: "main", ImageURL: "https://images.unsplash.com/photo-1467003909585-2f8a7270028d?auto=format&fit=crop&w=400&q=80"},
	{ID: "13", Name: "Club Sandwich", Price: 6.5, CategoryID: "main", ImageURL: "https://images.unsplash.com/photo-1528735602780-2552fd46c7af?auto=format&fit=crop&w=400&q=80"},
	{ID: "14", Name: "Berry Cheesecake", Price: 5.0, CategoryID: "dessert", ImageURL: "https://images.unsplash.com/photo-1524351199678-941a58a3df50?auto=format&fit=crop&w=400&q=80"},
	{ID: "15", Name: "Classic Tiramisu", Price: 5.5, CategoryID: "dessert", ImageURL: "https://images.unsplash.com/photo-1571875257727-256c39da42af?auto=format&fit=crop&w=400&q=80"},
	{ID: "16", Name: "Fudgy Brownie", Price: 4.0, CategoryID: "dessert", ImageURL: "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?auto=format&fit=crop&w=400&q=80"},
	{ID: "17", Name: "Vanilla Ice Cream", Price: 3.5, CategoryID: "dessert", ImageURL: "https://images.unsplash.com/photo-1560008581-09826d1de69e?auto=format&fit=crop&w=400&q=80"},
	{ID: "18", Name: "Fresh Lemonade", Price: 3.0, CategoryID: "drinks", ImageURL: "https://images.unsplash.com/photo-1513558161293-cdaf765ed2fd?auto=format&fit=crop&w=400&q=80"},
	{ID: "19", Name: "Iced Lemon Tea", Price: 2.5, CategoryID: "drinks", ImageURL: "https://images.unsplash.com/photo-1556679343-c7306c1976bc?auto=format&fit=crop&w=400&q=80"},
	{ID: "20", Name: "Orange Juice", Price: 4.0, CategoryID: "drinks", ImageURL: "https://images.unsplash.com/photo-1613478223719-2ab802602423?auto=format&fit=crop&w=400&q=80"},
}

// Migrate creates the ledger and catalog tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Category{},
		&models.Product{},
		&models.Order{},
		&models.OrderItem{},
	)
}

// SeedCatalog loads the static menu. It is safe to call more than
// once; existing rows are left alone so the catalog stays immutable.
func SeedCatalog(db *gorm.DB) error {
	now := time.Now()
	for i := range Categories {
		Categories[i].Position = i
		Categories[i].CreatedAt = now
	}
	for i := range Products {
		Products[i].Position = i
		Products[i].CreatedAt = now
	}
	if err := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&Categories).Error; err != nil {
		return err
	}
	return db.Clauses(clause.OnConflict{DoNothing: true}).Create(&Products).Error
}
