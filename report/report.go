// Package report derives the daily recap from the order ledger. The
// recap is recomputed from scratch on every request; nothing here is
// maintained incrementally.
package report

import (
	"time"

	"gorm.io/gorm"

	"github.com/yeremiapane/cafe-pos/models"
)

// TopProductLimit caps the best-seller list on the recap screen.
const TopProductLimit = 5

type Reporter struct {
	DB *gorm.DB
}

func NewReporter(db *gorm.DB) *Reporter {
	return &Reporter{DB: db}
}

// ProductSales is one row of the best-seller table.
type ProductSales struct {
	ProductID    string  `json:"product_id"`
	Name         string  `json:"name"`
	TotalQty     int     `json:"total_qty"`
	TotalRevenue float64 `json:"total_revenue"`
}

// DailyReport is the recap for one calendar day. Only completed
// orders count; everything still in the kitchen is excluded.
type DailyReport struct {
	Date          time.Time                  `json:"date"`
	TotalRevenue  float64                    `json:"total_revenue"`
	OrderCount    int64                      `json:"order_count"`
	AvgOrderValue float64                    `json:"avg_order_value"`
	TopProducts   []ProductSales             `json:"top_products"`
	TypeCounts    map[models.OrderType]int64 `json:"type_counts"`
	Orders        []models.Order             `json:"orders"`
}

// Daily builds the recap for the calendar day of the given time,
// local date string equality, completed orders only.
func (r *Reporter) Daily(day time.Time) (DailyReport, error) {
	// Half-open local day range; avoids the UTC shift DATE() applies
	// to zoned timestamps.
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	rep := DailyReport{
		Date:       day,
		TypeCounts: make(map[models.OrderType]int64),
	}

	completed := func() *gorm.DB {
		return r.DB.Model(&models.Order{}).
			Where("status = ? AND created_at >= ? AND created_at < ?",
				models.StatusCompleted, start, end)
	}

	if err := completed().Count(&rep.OrderCount).Error; err != nil {
		return rep, err
	}
	if err := completed().Select("COALESCE(SUM(total), 0)").
		Row().Scan(&rep.TotalRevenue); err != nil {
		return rep, err
	}
	if rep.OrderCount > 0 {
		rep.AvgOrderValue = rep.TotalRevenue / float64(rep.OrderCount)
	}

	// Best sellers by quantity; ties keep first-sold order via the
	// smallest item rowid.
	if err := r.DB.Raw(`
		SELECT oi.product_id AS product_id, oi.name AS name,
		       SUM(oi.quantity) AS total_qty,
		       SUM(oi.price * oi.quantity) AS total_revenue
		FROM order_items oi
		JOIN orders o ON oi.order_id = o.id
		WHERE o.status = ? AND o.created_at >= ? AND o.created_at < ?
		GROUP BY oi.product_id, oi.name
		ORDER BY total_qty DESC, MIN(oi.id) ASC
		LIMIT ?
	`, models.StatusCompleted, start, end, TopProductLimit).Scan(&rep.TopProducts).Error; err != nil {
		return rep, err
	}

	var typeRows []struct {
		Type  models.OrderType
		Count int64
	}
	if err := completed().Select("type, COUNT(*) AS count").
		Group("type").Scan(&typeRows).Error; err != nil {
		return rep, err
	}
	for _, row := range typeRows {
		rep.TypeCounts[row.Type] = row.Count
	}

	if err := r.DB.Preload("Items").
		Where("status = ? AND created_at >= ? AND created_at < ?",
			models.StatusCompleted, start, end).
		Order("id desc").
		Find(&rep.Orders).Error; err != nil {
		return rep, err
	}

	return rep, nil
}
