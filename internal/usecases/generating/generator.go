// Package generating produz o dataset sintético de delivery: catálogo
// (clientes, restaurantes, cardápios) e transações (pedidos e itens)
package generating

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/vfg2006/food-delivery-analytics/internal/domain"
)

const (
	taxRate            = 0.08
	recencyMeanDays    = 30.0
	maxLookbackDays    = 180.0
	specialInstrChance = 0.10
	itemRatingChance   = 0.70
	discountChance     = 0.20
	secondAddressRatio = 0.30
	availableRatio     = 0.80
	popularRatio       = 0.25
	activeCustomerRate = 0.75
)

// Sizes define quantas entidades gerar
type Sizes struct {
	Customers   int
	Restaurants int
	Orders      int
}

// Generator gera entidades a partir de uma Source e de um instante de
// referência fixo, o que torna a saída reproduzível
type Generator struct {
	src     *Source
	catalog Catalog
	now     time.Time
}

func NewGenerator(src *Source, catalog Catalog, now time.Time) *Generator {
	return &Generator{
		src:     src,
		catalog: catalog,
		now:     now.UTC().Truncate(time.Second),
	}
}

// Generate monta o dataset completo. skipped conta os pedidos descartados por
// restaurantes sem itens disponíveis.
func (g *Generator) Generate(sizes Sizes) (dataset *domain.Dataset, skipped int) {
	customers := g.Customers(sizes.Customers)
	restaurants := g.Restaurants(sizes.Restaurants)
	items := g.MenuItems(restaurants)
	orders, orderItems, skipped := g.Orders(customers, restaurants, items, sizes.Orders)

	return &domain.Dataset{
		Customers:   customers,
		Restaurants: restaurants,
		MenuItems:   items,
		Orders:      orders,
		OrderItems:  orderItems,
	}, skipped
}

func (g *Generator) Customers(n int) []domain.Customer {
	customers := make([]domain.Customer, 0, n)
	emails := make(map[string]struct{}, n)
	faker := g.src.Faker()

	for i := 0; i < n; i++ {
		address := faker.Address()

		customers = append(customers, domain.Customer{
			ID:               int64(i + 1),
			Name:             faker.Name(),
			Address:          fmt.Sprintf("%s, %s, %s %s", address.Street, address.City, address.State, address.Zip),
			Email:            uniqueEmail(faker.Email(), emails),
			Phone:            truncate(faker.Phone(), 20),
			RegistrationDate: g.between(g.now.AddDate(-2, 0, 0), g.now),
			IsActive:         g.src.Chance(activeCustomerRate),
			PreferredCuisine: customerCuisines[g.src.Intn(len(customerCuisines))],
			LoyaltyTier:      domain.LoyaltyTier(loyaltyTiers[g.src.Weighted(loyaltyTierWeights)]),
		})
	}

	return customers
}

func (g *Generator) Restaurants(n int) []domain.Restaurant {
	restaurants := make([]domain.Restaurant, 0, n)
	faker := g.src.Faker()

	for i := 0; i < n; i++ {
		location := cities[i%len(cities)]

		name := fmt.Sprintf("%s Restaurant", faker.Company())
		if i < len(restaurantNames) {
			name = restaurantNames[i]
		}

		var line2 *string
		if g.src.Chance(secondAddressRatio) {
			secondary := fmt.Sprintf("Suite %d", g.src.IntRange(100, 999))
			line2 = &secondary
		}

		restaurants = append(restaurants, domain.Restaurant{
			ID:                  int64(i + 1),
			Name:                name,
			AddressLine1:        faker.Street(),
			AddressLine2:        line2,
			City:                location.City,
			State:               location.State,
			ZipCode:             truncate(faker.Zip(), 10),
			CuisineType:         restaurantCuisines[g.src.Intn(len(restaurantCuisines))],
			Rating:              round2(g.src.Uniform(3.0, 5.0)),
			IsActive:            true,
			CreatedDate:         g.between(g.now.AddDate(-3, 0, 0), g.now.AddDate(0, -6, 0)),
			DeliveryRadiusMiles: round2(g.src.Uniform(2.0, 8.0)),
			AvgPrepTimeMinutes:  g.src.IntRange(15, 45),
		})
	}

	return restaurants
}

// MenuItems gera de 6 a 12 itens por restaurante, amostrados sem reposição do
// catálogo da culinária e completados com itens do catálogo padrão
func (g *Generator) MenuItems(restaurants []domain.Restaurant) []domain.MenuItem {
	items := make([]domain.MenuItem, 0, len(restaurants)*9)
	defaults := g.catalog.defaults()

	for _, restaurant := range restaurants {
		templates := g.catalog.itemsFor(restaurant.CuisineType)
		count := g.src.IntRange(6, 12)

		selected := make([]MenuTemplate, 0, count)
		for _, idx := range g.src.Sample(len(templates), count) {
			selected = append(selected, templates[idx])
		}
		for len(selected) < count {
			selected = append(selected, defaults[g.src.Intn(len(defaults))])
		}

		for _, tpl := range selected {
			basePrice := g.src.Uniform(8.99, 24.99)
			cost := basePrice * g.src.Uniform(0.25, 0.45)

			items = append(items, domain.MenuItem{
				ID:              int64(len(items) + 1),
				RestaurantID:    restaurant.ID,
				Name:            tpl.Name,
				Description:     tpl.Description,
				Price:           round2(basePrice),
				Category:        tpl.Category,
				IsAvailable:     g.src.Chance(availableRatio),
				Calories:        tpl.BaseCalories + g.src.IntRange(-50, 100),
				PrepTimeMinutes: g.src.IntRange(10, 30),
				CreatedDate:     restaurant.CreatedDate.AddDate(0, 0, g.src.IntRange(1, 30)),
				CostToMake:      round2(cost),
				IsPopular:       g.src.Chance(popularRatio),
			})
		}
	}

	return items
}

// Orders gera até n pedidos. Pedidos sorteados para restaurantes sem itens
// disponíveis são descartados e contados em skipped.
func (g *Generator) Orders(
	customers []domain.Customer,
	restaurants []domain.Restaurant,
	items []domain.MenuItem,
	n int,
) (orders []domain.Order, orderItems []domain.OrderItem, skipped int) {
	orders = make([]domain.Order, 0, n)
	orderItems = make([]domain.OrderItem, 0, n*2)

	if len(customers) == 0 || len(restaurants) == 0 {
		return orders, orderItems, n
	}

	available := make(map[int64][]domain.MenuItem, len(restaurants))
	for _, item := range items {
		if item.IsAvailable {
			available[item.RestaurantID] = append(available[item.RestaurantID], item)
		}
	}

	faker := g.src.Faker()

	for i := 0; i < n; i++ {
		customer := customers[g.src.Intn(len(customers))]
		restaurant := restaurants[g.src.Intn(len(restaurants))]
		orderDate := g.orderTimestamp()
		status := domain.OrderStatus(orderStatuses[g.src.Weighted(orderStatusWeights)])

		menu := available[restaurant.ID]
		if len(menu) == 0 {
			skipped++
			continue
		}

		orderID := int64(len(orders) + 1)
		wanted := g.src.Weighted(itemsPerOrderWeights) + 1
		completed := status == domain.OrderStatusCompleted

		subtotal := 0.0
		for _, idx := range g.src.Sample(len(menu), wanted) {
			item := menu[idx]
			quantity := g.src.Weighted(quantityWeights) + 1
			subtotal += float64(quantity) * item.Price

			line := domain.OrderItem{
				ID:        int64(len(orderItems) + 1),
				OrderID:   orderID,
				ItemID:    item.ID,
				Quantity:  quantity,
				UnitPrice: item.Price,
			}
			if g.src.Chance(specialInstrChance) {
				instructions := faker.Sentence(6)
				line.SpecialInstructions = &instructions
			}
			if completed && g.src.Chance(itemRatingChance) {
				rating := g.src.IntRange(3, 5)
				line.ItemRating = &rating
			}

			orderItems = append(orderItems, line)
		}

		order := domain.Order{
			ID:            orderID,
			CustomerID:    customer.ID,
			RestaurantID:  restaurant.ID,
			OrderDate:     orderDate,
			Status:        status,
			Subtotal:      round2(subtotal),
			DeliveryFee:   round2(g.src.Uniform(1.99, 4.99)),
			TaxAmount:     round2(subtotal * taxRate),
			PaymentMethod: paymentMethods[g.src.Intn(len(paymentMethods))],
			OrderSource:   orderSources[g.src.Intn(len(orderSources))],
		}
		if completed {
			order.TipAmount = round2(subtotal * g.src.Uniform(0.10, 0.25))
			minutes := g.src.IntRange(20, 60)
			order.DeliveryTimeMinutes = &minutes
		}
		if g.src.Chance(discountChance) {
			order.DiscountAmount = round2(subtotal * g.src.Uniform(0, 0.15))
		}
		order.TotalAmount = OrderTotal(order)

		orders = append(orders, order)
	}

	return orders, orderItems, skipped
}

// OrderTotal aplica subtotal + taxa de entrega + imposto + gorjeta - desconto
func OrderTotal(o domain.Order) float64 {
	return round2(o.Subtotal + o.DeliveryFee + o.TaxAmount + o.TipAmount - o.DiscountAmount)
}

// orderTimestamp favorece pedidos recentes (exponencial limitada à janela
// máxima) e concentra horários nos picos de almoço e jantar
func (g *Generator) orderTimestamp() time.Time {
	daysAgo := math.Min(g.src.Exponential(recencyMeanDays), maxLookbackDays)
	base := g.now.Add(-time.Duration(daysAgo * 24 * float64(time.Hour)))

	hour := g.src.Weighted(hourWeights)
	minute := g.src.IntRange(0, 59)
	ts := time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, time.UTC)

	// O ajuste de hora pode empurrar pedidos de hoje para o futuro
	if ts.After(g.now) {
		ts = ts.AddDate(0, 0, -1)
	}

	return ts
}

func (g *Generator) between(start, end time.Time) time.Time {
	span := end.Sub(start)
	if span <= 0 {
		return start
	}
	return start.Add(time.Duration(g.src.Uniform(0, float64(span)))).Truncate(time.Second)
}

func uniqueEmail(email string, seen map[string]struct{}) string {
	email = strings.ToLower(email)
	candidate := email
	for n := 2; ; n++ {
		if _, exists := seen[candidate]; !exists {
			seen[candidate] = struct{}{}
			return candidate
		}
		at := strings.LastIndexByte(email, '@')
		if at < 0 {
			candidate = fmt.Sprintf("%s%d", email, n)
			continue
		}
		candidate = fmt.Sprintf("%s%d%s", email[:at], n, email[at:])
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
