// Package pos holds the register's state container: session gating,
// catalog projection, the cart engine and the order ledger. Screens
// read state through State() and mutate it only through the action
// methods; every derived value is recomputed from the source state on
// read.
package pos

import (
	"errors"
	"strings"
	"sync"

	"gorm.io/gorm"

	"github.com/yeremiapane/cafe-pos/config"
	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/utils"
)

var (
	ErrCashierNameRequired  = errors.New("cashier name is required")
	ErrCartEmpty            = errors.New("cart is empty")
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrTableNumberRequired  = errors.New("table number is required for dine in")
)

// POS is the register engine. One instance owns all mutable state for
// a single register; collaborators receive it by handle, there is no
// process-wide singleton.
type POS struct {
	DB       *gorm.DB
	Settings *config.Settings

	hub Hub

	mu sync.Mutex

	sessionActive bool
	cashierName   string
	ticketNo      string

	catalog    []models.Product
	categories []models.Category

	selectedCategory string
	searchQuery      string

	cart  []models.CartLine
	draft models.DraftContext
}

// State is the read-only snapshot handed to presentation
// collaborators.
type State struct {
	IsSessionActive  bool                `json:"is_session_active"`
	CashierName      string              `json:"cashier_name"`
	OrderID          string              `json:"order_id"`
	SelectedCategory string              `json:"selected_category"`
	SearchQuery      string              `json:"search_query"`
	OrderType        models.OrderType    `json:"order_type"`
	CustomerName     string              `json:"customer_name"`
	TableNo          string              `json:"table_no"`
	UseBag           bool                `json:"use_bag"`
	Cart             []models.CartLine   `json:"cart"`
	Orders           []models.Order      `json:"orders"`
	FilteredProducts []models.Product    `json:"filtered_products"`
	Summary          models.OrderSummary `json:"summary"`
}

// New builds a register engine on top of a migrated, seeded store.
// The catalog is loaded once; it never changes while the process
// runs.
func New(db *gorm.DB, settings *config.Settings) (*POS, error) {
	p := &POS{
		DB:               db,
		Settings:         settings,
		selectedCategory: models.CategoryAll,
		draft:            models.DraftContext{OrderType: models.TypeDineIn},
	}

	if err := db.Order("position asc").Find(&p.catalog).Error; err != nil {
		return nil, err
	}
	if err := db.Order("position asc").Find(&p.categories).Error; err != nil {
		return nil, err
	}
	return p, nil
}

// Subscribe registers a synchronous listener for register events.
func (p *POS) Subscribe(fn Listener) {
	p.hub.Subscribe(fn)
}

// State snapshots the whole register for a screen render. The cart
// slice is a copy; mutating it cannot touch engine state.
func (p *POS) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return State{
		IsSessionActive:  p.sessionActive,
		CashierName:      p.cashierName,
		OrderID:          p.ticketNo,
		SelectedCategory: p.selectedCategory,
		SearchQuery:      p.searchQuery,
		OrderType:        p.draft.OrderType,
		CustomerName:     p.draft.CustomerName,
		TableNo:          p.draft.TableNo,
		UseBag:           p.draft.UseBag,
		Cart:             p.cartCopy(),
		Orders:           p.ledgerOrders(),
		FilteredProducts: FilterProducts(p.catalog, p.selectedCategory, p.searchQuery),
		Summary:          ComputeSummary(p.cart, p.draft, p.Settings.TaxRate, p.Settings.BagFee),
	}
}

// Catalog returns the full static product list.
func (p *POS) Catalog() []models.Product {
	out := make([]models.Product, len(p.catalog))
	copy(out, p.catalog)
	return out
}

// Categories returns the filter-bar categories in display order.
func (p *POS) Categories() []models.Category {
	out := make([]models.Category, len(p.categories))
	copy(out, p.categories)
	return out
}

func (p *POS) SetSelectedCategory(cat string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selectedCategory = cat
}

func (p *POS) SetSearchQuery(query string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.searchQuery = query
}

func (p *POS) SetOrderType(t models.OrderType) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draft.OrderType = t
}

func (p *POS) SetCustomerName(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draft.CustomerName = name
}

func (p *POS) SetTableNo(tableNo string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draft.TableNo = tableNo
}

func (p *POS) SetUseBag(useBag bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.draft.UseBag = useBag
}

// FilteredProducts projects the catalog through the current category
// and search selections.
func (p *POS) FilteredProducts() []models.Product {
	p.mu.Lock()
	defer p.mu.Unlock()
	return FilterProducts(p.catalog, p.selectedCategory, p.searchQuery)
}

func (p *POS) cartCopy() []models.CartLine {
	out := make([]models.CartLine, len(p.cart))
	copy(out, p.cart)
	return out
}

func (p *POS) ledgerOrders() []models.Order {
	var orders []models.Order
	if err := p.DB.Preload("Items").Order("id desc").Find(&orders).Error; err != nil {
		utils.ErrorLogger.Printf("failed to load order ledger: %v", err)
		return nil
	}
	return orders
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
