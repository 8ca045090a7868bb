package models

import "time"

// OrderStatus walks a fixed one-way lane:
// Pending -> Preparing -> Ready -> Completed.
type OrderStatus string

const (
	StatusPending   OrderStatus = "Pending"
	StatusPreparing OrderStatus = "Preparing"
	StatusReady     OrderStatus = "Ready"
	StatusCompleted OrderStatus = "Completed"
)

// Next returns the follow-up status and false once the lane ends.
func (s OrderStatus) Next() (OrderStatus, bool) {
	switch s {
	case StatusPending:
		return StatusPreparing, true
	case StatusPreparing:
		return StatusReady, true
	case StatusReady:
		return StatusCompleted, true
	}
	return "", false
}

// CanTransitionTo reports whether target is the single allowed next
// step. Completed is terminal.
func (s OrderStatus) CanTransitionTo(target OrderStatus) bool {
	next, ok := s.Next()
	return ok && next == target
}

type OrderType string

const (
	TypeDineIn   OrderType = "Dine In"
	TypeToGo     OrderType = "To Go"
	TypeDelivery OrderType = "Delivery"
)

// Order is an immutable snapshot of a cart at placement time. Only
// Status may change afterwards; all monetary fields stay frozen.
type Order struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	TicketNo     string      `gorm:"type:varchar(6);not null;index" json:"ticket_no"`
	Reference    string      `gorm:"type:varchar(36);not null;uniqueIndex" json:"reference"`
	Cashier      string      `gorm:"type:varchar(255);not null" json:"cashier"`
	Type         OrderType   `gorm:"type:varchar(20);not null" json:"type"`
	CustomerName string      `gorm:"type:varchar(255);not null" json:"customer_name"`
	TableNo      string      `gorm:"type:varchar(20)" json:"table_no,omitempty"`
	UseBag       bool        `gorm:"not null;default:false" json:"use_bag"`
	SubTotal     float64     `gorm:"type:decimal(10,2);not null" json:"sub_total"`
	Tax          float64     `gorm:"type:decimal(10,2);not null" json:"tax"`
	BagFee       float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"bag_fee"`
	Total        float64     `gorm:"type:decimal(10,2);not null" json:"total"`
	Status       OrderStatus `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"`
	Items        []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`
}

type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"`
	Order     Order   `gorm:"foreignKey:OrderID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ProductID string  `gorm:"type:varchar(32);not null" json:"product_id"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	Price     float64 `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity  int     `gorm:"not null" json:"quantity"`
}

// LineTotal is the extended price of one snapshot line.
func (i OrderItem) LineTotal() float64 {
	return i.Price * float64(i.Quantity)
}
