package orderlist

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/salmansarfraz67/Order-Buddy/internal/models"
)

func date(dayN int) time.Time {
	return time.Date(2025, 6, dayN, 0, 0, 0, 0, time.UTC)
}

func snapshot() []*models.Order {
	return []*models.Order{
		{ID: "a1", CustomerName: "Ayesha Khan", Product: "Mug", Phone: "0300-1234567", Total: 500, Date: date(1), Status: models.StatusNew},
		{ID: "b2", CustomerName: "Bilal Ahmed", Product: "Shirt", Phone: "+92 301 7654321", Total: 1500, Date: date(3), Status: models.StatusShipped},
		{ID: "c3", CustomerName: "Comsats Store", Product: "Mug", Phone: "0302-1112233", Total: 500, Date: date(3), Status: models.StatusCancelled},
		{ID: "d4", CustomerName: "Dawood", Product: "Poster", Phone: "0303-9998877", Total: 200, Date: date(2), Status: models.StatusDelivered},
	}
}

func TestApply_SearchByNameAndProduct(t *testing.T) {
	orders := snapshot()

	got := Apply(orders, models.OrderFilter{SearchText: "ayesha"})
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0].ID)

	got = Apply(orders, models.OrderFilter{SearchText: "mug"})
	assert.Len(t, got, 2)
}

func TestApply_SearchByPhoneDigits(t *testing.T) {
	orders := snapshot()

	// Частичный номер в другом форматировании всё равно находит заказ.
	got := Apply(orders, models.OrderFilter{SearchText: "301-765"})
	require.Len(t, got, 1)
	assert.Equal(t, "b2", got[0].ID)
}

func TestApply_StatusAndDateRange(t *testing.T) {
	orders := snapshot()
	status := models.StatusCancelled
	got := Apply(orders, models.OrderFilter{Status: &status})
	require.Len(t, got, 1)
	assert.Equal(t, "c3", got[0].ID)

	start, end := date(2), date(3)
	got = Apply(orders, models.OrderFilter{StartDate: &start, EndDate: &end})
	assert.Len(t, got, 3, "range bounds are inclusive")
}

func TestApply_SortKeys(t *testing.T) {
	orders := snapshot()

	ids := func(res []*models.Order) []string {
		out := make([]string, len(res))
		for i, o := range res {
			out[i] = o.ID
		}
		return out
	}

	tests := []struct {
		name string
		key  models.SortKey
		want []string
	}{
		{"date desc ties break by id desc", models.SortDateDesc, []string{"c3", "b2", "d4", "a1"}},
		{"date asc ties break by id asc", models.SortDateAsc, []string{"a1", "d4", "b2", "c3"}},
		{"amount desc ties break by id desc", models.SortAmountDesc, []string{"b2", "c3", "a1", "d4"}},
		{"amount asc ties break by id asc", models.SortAmountAsc, []string{"d4", "a1", "c3", "b2"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(orders, models.OrderFilter{SortKey: tt.key})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestApply_AmountDescIsNonIncreasing(t *testing.T) {
	orders := snapshot()
	got := Apply(orders, models.OrderFilter{SortKey: models.SortAmountDesc})
	for i := 0; i < len(got)-1; i++ {
		assert.GreaterOrEqual(t, got[i].Total, got[i+1].Total)
	}
}

func TestApply_DoesNotMutateSnapshot(t *testing.T) {
	orders := snapshot()
	first := orders[0]
	_ = Apply(orders, models.OrderFilter{SortKey: models.SortAmountAsc})
	assert.Same(t, first, orders[0])
}

func TestProducts(t *testing.T) {
	got := Products(snapshot())
	assert.Equal(t, []string{"Mug", "Poster", "Shirt"}, got)
}
