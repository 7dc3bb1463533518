package generating

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/food-delivery-analytics/internal/domain"
)

var referenceTime = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func generate(t *testing.T, seed int64, sizes Sizes) (*domain.Dataset, int) {
	t.Helper()
	return NewGenerator(NewSource(seed), DefaultCatalog(), referenceTime).Generate(sizes)
}

func TestGenerator_OrderTotals(t *testing.T) {
	dataset, _ := generate(t, 42, Sizes{Customers: 50, Restaurants: 10, Orders: 500})
	require.NotEmpty(t, dataset.Orders)

	for _, o := range dataset.Orders {
		expected := o.Subtotal + o.DeliveryFee + o.TaxAmount + o.TipAmount - o.DiscountAmount
		assert.InDelta(t, expected, o.TotalAmount, 0.011, "pedido %d", o.ID)

		assert.GreaterOrEqual(t, o.Subtotal, 0.0)
		assert.GreaterOrEqual(t, o.TotalAmount, 0.0)
		assert.GreaterOrEqual(t, o.DiscountAmount, 0.0)
		assert.True(t, o.DeliveryFee >= 1.99 && o.DeliveryFee <= 4.99, "taxa de entrega fora da faixa")
		assert.InDelta(t, o.Subtotal*taxRate, o.TaxAmount, 0.011)

		if o.Status == domain.OrderStatusCompleted {
			require.NotNil(t, o.DeliveryTimeMinutes)
			assert.True(t, *o.DeliveryTimeMinutes >= 20 && *o.DeliveryTimeMinutes <= 60)
		} else {
			assert.Zero(t, o.TipAmount, "gorjeta só em pedidos concluídos")
			assert.Nil(t, o.DeliveryTimeMinutes)
		}
	}
}

func TestGenerator_OrderLinesMatchSubtotal(t *testing.T) {
	dataset, _ := generate(t, 7, Sizes{Customers: 20, Restaurants: 5, Orders: 200})

	subtotals := make(map[int64]float64)
	lines := make(map[int64]int)
	for _, line := range dataset.OrderItems {
		subtotals[line.OrderID] += float64(line.Quantity) * line.UnitPrice
		lines[line.OrderID]++
		assert.True(t, line.Quantity >= 1 && line.Quantity <= 3)
		if line.ItemRating != nil {
			assert.True(t, *line.ItemRating >= 3 && *line.ItemRating <= 5)
		}
	}

	for _, o := range dataset.Orders {
		assert.InDelta(t, subtotals[o.ID], o.Subtotal, 0.011)
		assert.True(t, lines[o.ID] >= 1 && lines[o.ID] <= 5, "pedido %d com %d linhas", o.ID, lines[o.ID])
	}
}

func TestGenerator_MenuItemCostBounds(t *testing.T) {
	dataset, _ := generate(t, 42, Sizes{Customers: 0, Restaurants: 25, Orders: 0})

	perRestaurant := make(map[int64]int)
	for _, item := range dataset.MenuItems {
		perRestaurant[item.RestaurantID]++

		assert.True(t, item.Price >= 8.99 && item.Price <= 24.99, "preço %.2f fora da faixa", item.Price)
		assert.GreaterOrEqual(t, item.CostToMake, 0.25*item.Price-0.01)
		assert.LessOrEqual(t, item.CostToMake, 0.45*item.Price+0.01)
	}

	require.Len(t, perRestaurant, 25)
	for id, count := range perRestaurant {
		assert.True(t, count >= 6 && count <= 12, "restaurante %d com %d itens", id, count)
	}
}

func TestGenerator_OrderTimestamps(t *testing.T) {
	dataset, _ := generate(t, 3, Sizes{Customers: 10, Restaurants: 3, Orders: 300})

	oldest := referenceTime.Add(-time.Duration((maxLookbackDays + 1) * 24 * float64(time.Hour)))
	for _, o := range dataset.Orders {
		assert.False(t, o.OrderDate.After(referenceTime), "pedido no futuro: %s", o.OrderDate)
		assert.True(t, o.OrderDate.After(oldest), "pedido além da janela: %s", o.OrderDate)
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	sizes := Sizes{Customers: 15, Restaurants: 4, Orders: 60}

	first, skippedFirst := generate(t, 99, sizes)
	second, skippedSecond := generate(t, 99, sizes)
	assert.Equal(t, first, second)
	assert.Equal(t, skippedFirst, skippedSecond)

	other, _ := generate(t, 100, sizes)
	assert.NotEqual(t, first.Orders, other.Orders)
}

func TestGenerator_UniqueEmails(t *testing.T) {
	dataset, _ := generate(t, 42, Sizes{Customers: 500})

	seen := make(map[string]bool)
	for _, c := range dataset.Customers {
		assert.False(t, seen[c.Email], "email duplicado %s", c.Email)
		seen[c.Email] = true
		assert.LessOrEqual(t, len(c.Phone), 20)
	}
}

func TestGenerator_SkipsRestaurantsWithoutAvailableItems(t *testing.T) {
	gen := NewGenerator(NewSource(1), DefaultCatalog(), referenceTime)
	customers := gen.Customers(3)
	restaurants := gen.Restaurants(1)
	items := gen.MenuItems(restaurants)
	for i := range items {
		items[i].IsAvailable = false
	}

	orders, lines, skipped := gen.Orders(customers, restaurants, items, 10)

	assert.Empty(t, orders)
	assert.Empty(t, lines)
	assert.Equal(t, 10, skipped)
}

func TestGenerator_CatalogFallback(t *testing.T) {
	tests := []struct {
		name    string
		catalog Catalog
		cuisine string
	}{
		{
			name:    "Culinária sem catálogo usa itens padrão",
			catalog: DefaultCatalog(),
			cuisine: "Korean",
		},
		{
			name:    "Catálogo vazio usa o padrão embutido",
			catalog: Catalog{},
			cuisine: "Italian",
		},
	}

	defaults := make(map[string]bool)
	for _, tpl := range defaultMenu {
		defaults[tpl.Name] = true
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gen := NewGenerator(NewSource(5), tt.catalog, referenceTime)
			items := gen.MenuItems([]domain.Restaurant{{ID: 1, CuisineType: tt.cuisine, CreatedDate: referenceTime}})

			require.True(t, len(items) >= 6 && len(items) <= 12)
			for _, item := range items {
				assert.True(t, defaults[item.Name], "item inesperado %s", item.Name)
			}
		})
	}
}

func TestSource_Weighted(t *testing.T) {
	src := NewSource(42)
	counts := make([]int, len(loyaltyTierWeights))
	const draws = 20000

	for i := 0; i < draws; i++ {
		counts[src.Weighted(loyaltyTierWeights)]++
	}

	for i, w := range loyaltyTierWeights {
		got := float64(counts[i]) / draws
		assert.True(t, math.Abs(got-w) < 0.02, "peso %d: esperado %.2f, obtido %.3f", i, w, got)
	}
}
