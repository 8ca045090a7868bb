package report

import (
	"fmt"
	"strings"

	"github.com/yeremiapane/cafe-pos/models"
	"github.com/yeremiapane/cafe-pos/utils"
)

const lineWidth = 38

// RenderText lays the daily recap out as a printable text block for
// the "Print Report" action.
func RenderText(rep DailyReport) string {
	var b strings.Builder

	divider := strings.Repeat("=", lineWidth)
	b.WriteString(divider + "\n")
	b.WriteString(center("DAILY RECAP") + "\n")
	b.WriteString(center(rep.Date.Format("Monday, January 2, 2006")) + "\n")
	b.WriteString(divider + "\n")

	writeRow(&b, "Total Revenue", utils.FormatCurrency(rep.TotalRevenue))
	writeRow(&b, "Orders Completed", fmt.Sprintf("%d", rep.OrderCount))
	writeRow(&b, "Avg Order Value", utils.FormatCurrency(rep.AvgOrderValue))

	if len(rep.TopProducts) > 0 {
		b.WriteString(strings.Repeat("-", lineWidth) + "\n")
		b.WriteString("Top Products\n")
		for i, p := range rep.TopProducts {
			writeRow(&b, fmt.Sprintf("%d. %s x%d", i+1, p.Name, p.TotalQty),
				utils.FormatCurrency(p.TotalRevenue))
		}
	}

	if len(rep.TypeCounts) > 0 {
		b.WriteString(strings.Repeat("-", lineWidth) + "\n")
		b.WriteString("Order Types\n")
		for _, t := range []models.OrderType{models.TypeDineIn, models.TypeToGo, models.TypeDelivery} {
			if n, ok := rep.TypeCounts[t]; ok {
				writeRow(&b, string(t), fmt.Sprintf("%d", n))
			}
		}
	}

	b.WriteString(divider + "\n")
	return b.String()
}

// RenderReceipt lays one order out in ticket format for reprints from
// the order detail modal.
func RenderReceipt(order models.Order) string {
	var b strings.Builder

	divider := strings.Repeat("=", lineWidth)
	b.WriteString(divider + "\n")
	b.WriteString(center("CAFE POS") + "\n")
	b.WriteString(center("Order #"+order.TicketNo) + "\n")
	b.WriteString(divider + "\n")

	writeRow(&b, "Date", order.CreatedAt.Format("02 Jan 2006 15:04"))
	writeRow(&b, "Cashier", order.Cashier)
	writeRow(&b, "Customer", order.CustomerName)
	writeRow(&b, "Type", string(order.Type))
	if order.Type == models.TypeDineIn {
		writeRow(&b, "Table", order.TableNo)
	}

	b.WriteString(strings.Repeat("-", lineWidth) + "\n")
	for _, item := range order.Items {
		writeRow(&b, fmt.Sprintf("%s x%d", item.Name, item.Quantity),
			utils.FormatCurrency(item.LineTotal()))
	}
	b.WriteString(strings.Repeat("-", lineWidth) + "\n")

	writeRow(&b, "Subtotal", utils.FormatCurrency(order.SubTotal))
	writeRow(&b, "Tax", utils.FormatCurrency(order.Tax))
	if order.BagFee > 0 {
		writeRow(&b, "Bag Fee", utils.FormatCurrency(order.BagFee))
	}
	writeRow(&b, "TOTAL", utils.FormatCurrency(order.Total))

	b.WriteString(divider + "\n")
	b.WriteString(center("Thank you!") + "\n")
	return b.String()
}

func writeRow(b *strings.Builder, label, value string) {
	pad := lineWidth - len(label) - len(value)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(label + strings.Repeat(" ", pad) + value + "\n")
}

func center(s string) string {
	if len(s) >= lineWidth {
		return s
	}
	left := (lineWidth - len(s)) / 2
	return strings.Repeat(" ", left) + s
}
