package orders

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/salmansarfraz67/Order-Buddy/internal/lib/day"
)

var exportHeader = []string{
	"Order ID", "Type", "Customer Name", "Phone", "Address", "Product",
	"Quantity", "Price", "Total", "Date", "Status", "Tracking",
}

// ExportCSV выгружает полный список заказов аккаунта в CSV.
func (s *Service) ExportCSV(ctx context.Context, accountUID string, w io.Writer) error {
	const op = "services.orders.ExportCSV"

	snapshot, err := s.repo.ListOrders(ctx, accountUID)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	for _, order := range snapshot {
		record := []string{
			order.ID,
			string(order.Type),
			order.CustomerName,
			order.Phone,
			order.Address,
			order.Product,
			strconv.Itoa(order.Quantity),
			strconv.FormatFloat(order.Price, 'f', -1, 64),
			strconv.FormatFloat(order.Total, 'f', -1, 64),
			order.Date.Format(day.Format),
			string(order.Status),
			order.TrackingNumber,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
