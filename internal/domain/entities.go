// Package domain contém as entidades do dataset de delivery e os registros derivados pelas análises
package domain

import "time"

type OrderStatus string

const (
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusPending   OrderStatus = "pending"
)

type LoyaltyTier string

const (
	LoyaltyTierBronze   LoyaltyTier = "Bronze"
	LoyaltyTierSilver   LoyaltyTier = "Silver"
	LoyaltyTierGold     LoyaltyTier = "Gold"
	LoyaltyTierPlatinum LoyaltyTier = "Platinum"
)

type Customer struct {
	ID               int64
	Name             string
	Address          string
	Email            string
	Phone            string
	RegistrationDate time.Time
	IsActive         bool
	PreferredCuisine string
	LoyaltyTier      LoyaltyTier
}

type Restaurant struct {
	ID                  int64
	Name                string
	AddressLine1        string
	AddressLine2        *string
	City                string
	State               string
	ZipCode             string
	CuisineType         string
	Rating              float64
	IsActive            bool
	CreatedDate         time.Time
	DeliveryRadiusMiles float64
	AvgPrepTimeMinutes  int
}

type MenuItem struct {
	ID              int64
	RestaurantID    int64
	Name            string
	Description     string
	Price           float64
	Category        string
	IsAvailable     bool
	Calories        int
	PrepTimeMinutes int
	CreatedDate     time.Time
	CostToMake      float64
	IsPopular       bool
}

type Order struct {
	ID                  int64
	CustomerID          int64
	RestaurantID        int64
	OrderDate           time.Time
	Status              OrderStatus
	Subtotal            float64
	DeliveryFee         float64
	TaxAmount           float64
	TipAmount           float64
	DiscountAmount      float64
	TotalAmount         float64
	DeliveryTimeMinutes *int
	PaymentMethod       string
	OrderSource         string
}

type OrderItem struct {
	ID                  int64
	OrderID             int64
	ItemID              int64
	Quantity            int
	UnitPrice           float64
	SpecialInstructions *string
	ItemRating          *int
}

// Dataset agrupa tudo que uma geração produz, na ordem de inserção
type Dataset struct {
	Customers   []Customer
	Restaurants []Restaurant
	MenuItems   []MenuItem
	Orders      []Order
	OrderItems  []OrderItem
}

// TableCount é usado na verificação do banco após a carga
type TableCount struct {
	Table string
	Rows  int64
}

// CustomerSummary é uma linha da view customer_summary
type CustomerSummary struct {
	CustomerID      int64
	Name            string
	CompletedOrders int
	TotalSpent      float64
	LastOrderDate   *string
}
