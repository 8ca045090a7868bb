package models

// CartLine is a catalog product plus the quantity picked so far.
// Quantity is always >= 1; a decrement that would reach zero removes
// the line from the cart instead.
type CartLine struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// LineTotal is the extended price of one cart line.
func (l CartLine) LineTotal() float64 {
	return l.Product.Price * float64(l.Quantity)
}

// DraftContext carries the per-order metadata attached to the cart
// before it is submitted. TableNo only matters for Dine In; UseBag
// only matters for the other order types.
type DraftContext struct {
	OrderType    OrderType `json:"order_type"`
	CustomerName string    `json:"customer_name"`
	TableNo      string    `json:"table_no"`
	UseBag       bool      `json:"use_bag"`
}

// OrderSummary is the derived monetary breakdown of the current cart.
// It is recomputed on every read, never stored.
type OrderSummary struct {
	SubTotal float64 `json:"sub_total"`
	Tax      float64 `json:"tax"`
	BagFee   float64 `json:"bag_fee"`
	Total    float64 `json:"total"`
}
