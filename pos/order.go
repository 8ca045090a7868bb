package pos

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/utils"
)

// PlaceOrder snapshots the cart into a new ledger entry with status
// Pending, clears the cart, resets the draft context and issues the
// next ticket number. Validation failures leave every piece of state
// untouched.
func (p *POS) PlaceOrder() (models.Order, error) {
	p.mu.Lock()

	if len(p.cart) == 0 {
		p.mu.Unlock()
		return models.Order{}, ErrCartEmpty
	}
	if p.draft.OrderType == models.TypeDineIn && blank(p.draft.TableNo) {
		p.mu.Unlock()
		return models.Order{}, ErrTableNumberRequired
	}
	if blank(p.draft.CustomerName) {
		p.mu.Unlock()
		return models.Order{}, ErrCustomerNameRequired
	}

	summary := ComputeSummary(p.cart, p.draft, p.Settings.TaxRate, p.Settings.BagFee)

	now := time.Now()
	order := models.Order{
		TicketNo:     p.ticketNo,
		Reference:    uuid.NewString(),
		Cashier:      p.cashierName,
		Type:         p.draft.OrderType,
		CustomerName: p.draft.CustomerName,
		TableNo:      p.draft.TableNo,
		UseBag:       p.draft.UseBag,
		SubTotal:     summary.SubTotal,
		Tax:          summary.Tax,
		BagFee:       summary.BagFee,
		Total:        summary.Total,
		Status:       models.StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	for _, line := range p.cart {
		order.Items = append(order.Items, models.OrderItem{
			ProductID: line.Product.ID,
			Name:      line.Product.Name,
			Price:     line.Product.Price,
			Quantity:  line.Quantity,
		})
	}

	if err := p.DB.Create(&order).Error; err != nil {
		p.mu.Unlock()
		utils.ErrorLogger.Printf("failed to store order %s: %v", order.TicketNo, err)
		return models.Order{}, err
	}

	// Kosongkan cart dan reset draft; tipe order dibiarkan
	p.cart = nil
	p.draft.CustomerName = ""
	p.draft.TableNo = ""
	p.draft.UseBag = false
	p.ticketNo = newTicketNo()
	p.mu.Unlock()

	utils.InfoLogger.Printf("order #%s sent to kitchen (%d items, total %s)",
		order.TicketNo, len(order.Items), utils.FormatCurrency(order.Total))
	p.hub.publish(EventOrderCreate, order)
	return order, nil
}

// UpdateOrderStatus moves an order one step along the kitchen lane.
// Only the single allowed forward edge is applied; backward moves,
// skipped steps and transitions out of Completed are ignored, as is
// an unknown ticket. None of those are surfaced to the cashier.
func (p *POS) UpdateOrderStatus(ticketNo string, status models.OrderStatus) error {
	p.mu.Lock()

	var order models.Order
	err := p.DB.Where("ticket_no = ?", ticketNo).Order("id desc").First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p.mu.Unlock()
		utils.InfoLogger.Printf("status update for unknown ticket %s ignored", ticketNo)
		return nil
	}
	if err != nil {
		p.mu.Unlock()
		return err
	}

	if !order.Status.CanTransitionTo(status) {
		p.mu.Unlock()
		utils.InfoLogger.Printf("ignoring %s -> %s for ticket %s", order.Status, status, ticketNo)
		return nil
	}

	order.Status = status
	order.UpdatedAt = time.Now()
	if err := p.DB.Model(&models.Order{}).Where("id = ?", order.ID).
		Updates(map[string]interface{}{"status": order.Status, "updated_at": order.UpdatedAt}).Error; err != nil {
		p.mu.Unlock()
		return err
	}
	p.mu.Unlock()

	p.hub.publish(EventOrderUpdate, order)
	return nil
}

// Orders lists the whole ledger, newest placement first, items
// included.
func (p *POS) Orders() []models.Order {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ledgerOrders()
}

// ActiveOrders is the kitchen display feed: everything not yet
// completed, oldest first so the queue reads top-down.
func (p *POS) ActiveOrders() ([]models.Order, error) {
	var orders []models.Order
	err := p.DB.Preload("Items").
		Where("status IN ?", []models.OrderStatus{models.StatusPending, models.StatusPreparing, models.StatusReady}).
		Order("id asc").
		Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// OrderByTicket fetches one ledger entry for the detail modal. When
// a ticket number collided, the most recent order wins.
func (p *POS) OrderByTicket(ticketNo string) (models.Order, error) {
	var order models.Order
	err := p.DB.Preload("Items").
		Where("ticket_no = ?", ticketNo).
		Order("id desc").
		First(&order).Error
	return order, err
}
