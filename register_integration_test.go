package main

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/yeremiapane/cafe-pos/config"
	"github.com/yeremiapane/cafe-pos/database"
	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/pos"
	"github.com/yeremiapane/cafe-pos/report"
	"github.com/yeremiapane/cafe-pos/utils"
)

func TestMain(m *testing.M) {
	utils.InitLogger("error")
	os.Exit(m.Run())
}

// TestEndToEndShift walks the whole register flow:
// 1. Seed the catalog, open a session
// 2. Build a dine-in cart and place it
// 3. Place a to-go order with a bag
// 4. Kitchen walks both tickets to Completed
// 5. Daily recap reflects both orders
func TestEndToEndShift(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.SeedCatalog(db))

	settings := &config.Settings{TaxRate: 0.10, BagFee: 0.50, LogLevel: "error"}
	register, err := pos.New(db, settings)
	require.NoError(t, err)

	// Session gate: no ordering before a cashier signs in.
	require.ErrorIs(t, register.StartSession(), pos.ErrCashierNameRequired)
	register.SetCashierName("Sarah")
	require.NoError(t, register.StartSession())

	catalog := register.Catalog()
	require.Len(t, catalog, 20)
	byName := make(map[string]models.Product, len(catalog))
	for _, p := range catalog {
		byName[p.Name] = p
	}

	// Dine-in: 2x Caramel Macchiato + 1x Butter Croissant at table 12.
	register.AddToCart(byName["Caramel Macchiato"])
	register.AddToCart(byName["Caramel Macchiato"])
	register.AddToCart(byName["Butter Croissant"])
	register.SetOrderType(models.TypeDineIn)
	register.SetCustomerName("Walk-in 12")
	register.SetTableNo("12")

	dineIn, err := register.PlaceOrder()
	require.NoError(t, err)
	assert.InDelta(t, 12.0, dineIn.SubTotal, 1e-9)
	assert.InDelta(t, 13.2, dineIn.Total, 1e-9)
	assert.Equal(t, models.StatusPending, dineIn.Status)

	// To-go with a bag: Iced Americano + Choco Muffin.
	register.AddToCart(byName["Iced Americano"])
	register.AddToCart(byName["Choco Muffin"])
	register.SetOrderType(models.TypeToGo)
	register.SetCustomerName("Dimas")
	register.SetUseBag(true)

	toGo, err := register.PlaceOrder()
	require.NoError(t, err)
	assert.InDelta(t, 6.7, toGo.SubTotal, 1e-9)
	assert.InDelta(t, 0.5, toGo.BagFee, 1e-9)
	assert.InDelta(t, 7.87, toGo.Total, 1e-9)

	// Kitchen display shows both tickets, oldest first.
	active, err := register.ActiveOrders()
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, dineIn.TicketNo, active[0].TicketNo)

	// Cook both through the lane.
	for _, ticket := range []string{dineIn.TicketNo, toGo.TicketNo} {
		require.NoError(t, register.UpdateOrderStatus(ticket, models.StatusPreparing))
		require.NoError(t, register.UpdateOrderStatus(ticket, models.StatusReady))
		require.NoError(t, register.UpdateOrderStatus(ticket, models.StatusCompleted))
	}

	active, err = register.ActiveOrders()
	require.NoError(t, err)
	assert.Empty(t, active)

	// Recap for today covers both orders.
	recap, err := report.NewReporter(db).Daily(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(2), recap.OrderCount)
	assert.InDelta(t, 13.2+7.87, recap.TotalRevenue, 1e-9)
	assert.Equal(t, int64(1), recap.TypeCounts[models.TypeDineIn])
	assert.Equal(t, int64(1), recap.TypeCounts[models.TypeToGo])
	require.NotEmpty(t, recap.TopProducts)
	assert.Equal(t, "Caramel Macchiato", recap.TopProducts[0].Name)

	text := report.RenderText(recap)
	assert.Contains(t, text, "DAILY RECAP")
	assert.Contains(t, text, "$21.07")
}
