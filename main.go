package main

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"

	"github.com/yeremiapane/cafe-pos/config"
	"github.com/yeremiapane/cafe-pos/database"
	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/pos"
	"github.com/yeremiapane/cafe-pos/report"
	"github.com/yeremiapane/cafe-pos/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	settings, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load settings: %v", err)
	}

	utils.InitLogger(settings.LogLevel)

	db, err := config.InitDB(settings)
	if err != nil {
		utils.ErrorLogger.Fatalf("failed to open ledger store: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		utils.ErrorLogger.Fatalf("failed to migrate: %v", err)
	}
	if err := database.SeedCatalog(db); err != nil {
		utils.ErrorLogger.Fatalf("failed to seed catalog: %v", err)
	}

	register, err := pos.New(db, settings)
	if err != nil {
		utils.ErrorLogger.Fatalf("failed to build register: %v", err)
	}

	register.Subscribe(func(evt pos.Event) {
		utils.InfoLogger.Printf("event: %s", evt.Kind)
	})

	// Scripted shift standing in for the register UI.
	runDemoShift(register)
}

func runDemoShift(register *pos.POS) {
	register.SetCashierName("Sarah")
	if err := register.StartSession(); err != nil {
		utils.ErrorLogger.Fatalf("failed to start session: %v", err)
	}

	catalog := register.Catalog()
	byName := make(map[string]models.Product, len(catalog))
	for _, p := range catalog {
		byName[p.Name] = p
	}

	// Table 12 orders two coffees and a croissant.
	register.AddToCart(byName["Caramel Macchiato"])
	register.AddToCart(byName["Caramel Macchiato"])
	register.AddToCart(byName["Butter Croissant"])
	register.SetOrderType(models.TypeDineIn)
	register.SetCustomerName("Walk-in 12")
	register.SetTableNo("12")

	first, err := register.PlaceOrder()
	if err != nil {
		utils.ErrorLogger.Fatalf("failed to place order: %v", err)
	}

	// A to-go order with a bag.
	register.AddToCart(byName["Iced Americano"])
	register.AddToCart(byName["Choco Muffin"])
	register.SetOrderType(models.TypeToGo)
	register.SetCustomerName("Dimas")
	register.SetUseBag(true)

	second, err := register.PlaceOrder()
	if err != nil {
		utils.ErrorLogger.Fatalf("failed to place order: %v", err)
	}

	// Kitchen works both tickets through to completion.
	for _, ticket := range []string{first.TicketNo, second.TicketNo} {
		for _, status := range []models.OrderStatus{models.StatusPreparing, models.StatusReady, models.StatusCompleted} {
			if err := register.UpdateOrderStatus(ticket, status); err != nil {
				utils.ErrorLogger.Fatalf("failed to update ticket %s: %v", ticket, err)
			}
		}
	}

	fmt.Println(report.RenderReceipt(second))

	reporter := report.NewReporter(register.DB)
	recap, err := reporter.Daily(time.Now())
	if err != nil {
		utils.ErrorLogger.Fatalf("failed to build recap: %v", err)
	}
	fmt.Println(report.RenderText(recap))
}
