package pos

import (
	"fmt"
	"math/rand"

	"github.com/yeremiapane/cafe-pos/utils"
)

// SetCashierName stores the candidate name typed into the shift
// modal. Validation happens at StartSession, not here.
func (p *POS) SetCashierName(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cashierName = name
}

// StartSession opens the shift. It fails when the cashier name is
// blank and otherwise activates the session and issues the first
// ticket number. Calling it on an active session just reissues
// nothing; the gate stays open.
func (p *POS) StartSession() error {
	p.mu.Lock()

	if blank(p.cashierName) {
		p.mu.Unlock()
		return ErrCashierNameRequired
	}
	if p.sessionActive {
		p.mu.Unlock()
		return nil
	}

	p.sessionActive = true
	p.ticketNo = newTicketNo()
	cashier, ticket := p.cashierName, p.ticketNo
	p.mu.Unlock()

	utils.InfoLogger.Printf("session started by %s, first ticket %s", cashier, ticket)
	p.hub.publish(EventSessionStart, cashier)
	return nil
}

// IsSessionActive gates the ordering screens.
func (p *POS) IsSessionActive() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.sessionActive
}

func (p *POS) CashierName() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cashierName
}

// TicketNo is the ticket the next placed order will carry.
func (p *POS) TicketNo() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ticketNo
}

// newTicketNo picks a display-friendly 6-digit ticket number. It is
// not collision-free and is not used as a storage key.
func newTicketNo() string {
	return fmt.Sprintf("%d", 100000+rand.Intn(900000))
}
