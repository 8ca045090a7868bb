package pos

import (
	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/utils"
)

// AddToCart drops a product into the cart. A repeat of a product
// already in the cart bumps that line's quantity instead of adding a
// second line, so the cart never holds two lines for one product id.
func (p *POS) AddToCart(product models.Product) {
	p.mu.Lock()

	merged := false
	for i := range p.cart {
		if p.cart[i].Product.ID == product.ID {
			p.cart[i].Quantity++
			merged = true
			break
		}
	}
	if !merged {
		p.cart = append(p.cart, models.CartLine{Product: product, Quantity: 1})
	}
	cart := p.cartCopy()
	p.mu.Unlock()

	p.hub.publish(EventCartUpdate, cart)
}

// UpdateQty adds delta (positive or negative) to the line holding the
// given product id. A line that would drop to zero or below is
// removed. An unknown id is a silent no-op; the filter bar and cart
// sidebar can race a removal, that is not worth interrupting the
// cashier for.
func (p *POS) UpdateQty(id string, delta int) {
	p.mu.Lock()

	changed := false
	for i := range p.cart {
		if p.cart[i].Product.ID != id {
			continue
		}
		p.cart[i].Quantity += delta
		if p.cart[i].Quantity <= 0 {
			p.cart = append(p.cart[:i], p.cart[i+1:]...)
		}
		changed = true
		break
	}
	cart := p.cartCopy()
	p.mu.Unlock()

	if !changed {
		utils.InfoLogger.Printf("quantity update for unknown product %s ignored", id)
		return
	}
	p.hub.publish(EventCartUpdate, cart)
}

// Cart returns a copy of the in-progress lines in first-add order.
func (p *POS) Cart() []models.CartLine {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cartCopy()
}

// Summary recomputes the monetary breakdown of the current cart.
func (p *POS) Summary() models.OrderSummary {
	p.mu.Lock()
	defer p.mu.Unlock()
	return ComputeSummary(p.cart, p.draft, p.Settings.TaxRate, p.Settings.BagFee)
}

// ComputeSummary derives subtotal, tax, bag fee and total from a cart
// and its draft context. Pure; the engine calls it on every read and
// never caches the result. The bag fee only applies off-premise:
// Dine In never pays it even with the flag set.
func ComputeSummary(cart []models.CartLine, draft models.DraftContext, taxRate, bagFee float64) models.OrderSummary {
	var subTotal float64
	for _, line := range cart {
		subTotal += line.LineTotal()
	}

	tax := utils.Round2(subTotal * taxRate)

	fee := 0.0
	if draft.UseBag && draft.OrderType != models.TypeDineIn {
		fee = bagFee
	}

	return models.OrderSummary{
		SubTotal: subTotal,
		Tax:      tax,
		BagFee:   fee,
		Total:    subTotal + tax + fee,
	}
}
