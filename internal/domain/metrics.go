package domain

import "time"

type CustomerStatus string

const (
	CustomerStatusNeverOrdered CustomerStatus = "Never Ordered"
	CustomerStatusActive       CustomerStatus = "Active"
	CustomerStatusAtRisk       CustomerStatus = "At Risk"
	CustomerStatusChurned      CustomerStatus = "Churned"
)

// Limites de recência (em dias) usados na classificação de clientes
const (
	ActiveRecencyDays = 30
	AtRiskRecencyDays = 90
)

// Rótulos atribuídos aos clusters da segmentação
const (
	SegmentChampions    = "Champions"
	SegmentLoyal        = "Loyal Customers"
	SegmentFrequent     = "Frequent Customers"
	SegmentHighValue    = "High Value Customers"
	SegmentOccasional   = "Occasional Customers"
	SegmentNeverOrdered = "Never Ordered"
)

// CustomerValue é o registro de valor do cliente, um por cliente cadastrado
type CustomerValue struct {
	CustomerID         int64          `csv:"customer_id" json:"customer_id"`
	Name               string         `csv:"name" json:"name"`
	LoyaltyTier        string         `csv:"loyalty_tier" json:"loyalty_tier"`
	OrderFrequency     int            `csv:"order_frequency" json:"order_frequency"`
	AvgOrderValue      float64        `csv:"avg_order_value" json:"avg_order_value"`
	TotalSpent         float64        `csv:"total_spent" json:"total_spent"`
	DaysSinceLastOrder *float64       `csv:"days_since_last_order" json:"days_since_last_order"`
	EstimatedCLV       float64        `csv:"estimated_clv" json:"estimated_clv"`
	CustomerStatus     CustomerStatus `csv:"customer_status" json:"customer_status"`
}

// CustomerSegment estende o registro de valor com o cluster atribuído.
// Cluster é nil para quem não participou do agrupamento.
type CustomerSegment struct {
	CustomerValue
	Cluster     *int   `csv:"cluster" json:"cluster"`
	SegmentName string `csv:"segment_name" json:"segment_name"`
}

type SegmentSummary struct {
	SegmentName        string  `csv:"segment_name" json:"segment_name"`
	Customers          int     `csv:"customers" json:"customers"`
	MeanTotalSpent     float64 `csv:"mean_total_spent" json:"mean_total_spent"`
	TotalSpent         float64 `csv:"total_spent" json:"total_spent"`
	MeanOrderFrequency float64 `csv:"mean_order_frequency" json:"mean_order_frequency"`
	MeanOrderValue     float64 `csv:"mean_order_value" json:"mean_order_value"`
}

// Segmentation é o resultado do agrupamento. Clustered false indica que o
// agrupamento não foi possível e Customers traz os registros sem grupo.
type Segmentation struct {
	Customers  []CustomerSegment
	Summary    []SegmentSummary
	Clustered  bool
	Clusters   int
	Silhouette *float64
}

type RestaurantPerformance struct {
	Position           int     `csv:"position" json:"position"`
	RestaurantID       int64   `csv:"restaurant_id" json:"restaurant_id"`
	RestaurantName     string  `csv:"restaurant_name" json:"restaurant_name"`
	City               string  `csv:"city" json:"city"`
	CuisineType        string  `csv:"cuisine_type" json:"cuisine_type"`
	Rating             float64 `csv:"rating" json:"rating"`
	TotalOrders        int     `csv:"total_orders" json:"total_orders"`
	UniqueCustomers    int     `csv:"unique_customers" json:"unique_customers"`
	TotalRevenue       float64 `csv:"total_revenue" json:"total_revenue"`
	AvgOrderValue      float64 `csv:"avg_order_value" json:"avg_order_value"`
	AvgDeliveryTime    float64 `csv:"avg_delivery_time" json:"avg_delivery_time"`
	RevenuePerCustomer float64 `csv:"revenue_per_customer" json:"revenue_per_customer"`
}

type ItemPerformance struct {
	ItemID            int64    `csv:"item_id" json:"item_id"`
	ItemName          string   `csv:"item_name" json:"item_name"`
	Price             float64  `csv:"price" json:"price"`
	CostToMake        float64  `csv:"cost_to_make" json:"cost_to_make"`
	Category          string   `csv:"category" json:"category"`
	RestaurantName    string   `csv:"restaurant_name" json:"restaurant_name"`
	CuisineType       string   `csv:"cuisine_type" json:"cuisine_type"`
	TimesOrdered      int      `csv:"times_ordered" json:"times_ordered"`
	TotalQuantitySold int      `csv:"total_quantity_sold" json:"total_quantity_sold"`
	TotalRevenue      float64  `csv:"total_revenue" json:"total_revenue"`
	AvgRating         float64  `csv:"avg_rating" json:"avg_rating"`
	ProfitMarginPct   *float64 `csv:"profit_margin_pct" json:"profit_margin_pct"`
}

// TimeBucket agrega pedidos concluídos por (data, hora, dia da semana).
// DayOfWeek segue a convenção 0 = domingo.
type TimeBucket struct {
	OrderDate       Date    `csv:"order_date" json:"order_date"`
	HourOfDay       int     `csv:"hour_of_day" json:"hour_of_day"`
	DayOfWeek       int     `csv:"day_of_week" json:"day_of_week"`
	OrderCount      int     `csv:"order_count" json:"order_count"`
	Revenue         float64 `csv:"daily_revenue" json:"daily_revenue"`
	AvgOrderValue   float64 `csv:"avg_order_value" json:"avg_order_value"`
	UniqueCustomers int     `csv:"unique_customers" json:"unique_customers"`
	AvgDeliveryTime float64 `csv:"avg_delivery_time" json:"avg_delivery_time"`
}

type DailyRevenue struct {
	OrderDate       Date    `csv:"order_date" json:"order_date"`
	Revenue         float64 `csv:"daily_revenue" json:"daily_revenue"`
	OrderCount      int     `csv:"order_count" json:"order_count"`
	UniqueCustomers int     `csv:"unique_customers" json:"unique_customers"`
	Revenue7DayMA   float64 `csv:"revenue_7day_ma" json:"revenue_7day_ma"`
	Revenue14DayMA  float64 `csv:"revenue_14day_ma" json:"revenue_14day_ma"`
	DaysSinceStart  int     `csv:"days_since_start" json:"days_since_start"`
}

type ForecastPoint struct {
	OrderDate        Date    `csv:"order_date" json:"order_date"`
	PredictedRevenue float64 `csv:"predicted_revenue" json:"predicted_revenue"`
	DaysSinceStart   int     `csv:"days_since_start" json:"days_since_start"`
}

const ForecastMethodLinearTrend = "naive linear trend"

// RevenueForecast é uma extrapolação linear simples da receita diária.
// Não é um modelo de séries temporais.
type RevenueForecast struct {
	Method     string
	Historical []DailyRevenue
	Forecast   []ForecastPoint
	Slope      float64
	Intercept  float64
	RSquared   float64
}

type HourlySummary struct {
	HourOfDay       int     `csv:"hour_of_day" json:"hour_of_day"`
	OrderCount      int     `csv:"order_count" json:"order_count"`
	Revenue         float64 `csv:"daily_revenue" json:"daily_revenue"`
	AvgOrderValue   float64 `csv:"avg_order_value" json:"avg_order_value"`
	UniqueCustomers int     `csv:"unique_customers" json:"unique_customers"`
	AvgDeliveryTime float64 `csv:"avg_delivery_time" json:"avg_delivery_time"`
}

type WeekdaySummary struct {
	DayOfWeek       int     `csv:"day_of_week" json:"day_of_week"`
	DayName         string  `csv:"day_name" json:"day_name"`
	OrderCount      int     `csv:"order_count" json:"order_count"`
	Revenue         float64 `csv:"daily_revenue" json:"daily_revenue"`
	AvgOrderValue   float64 `csv:"avg_order_value" json:"avg_order_value"`
	UniqueCustomers int     `csv:"unique_customers" json:"unique_customers"`
	AvgDeliveryTime float64 `csv:"avg_delivery_time" json:"avg_delivery_time"`
}

type PeakPatterns struct {
	Hourly    []HourlySummary
	Daily     []WeekdaySummary
	PeakHours []int
	PeakDays  []string
}

// KPISummary alimenta os cartões do topo do dashboard
type KPISummary struct {
	TotalRevenue    float64 `json:"total_revenue"`
	TotalOrders     int     `json:"total_orders"`
	ActiveCustomers int     `json:"active_customers"`
	AvgOrderValue   float64 `json:"avg_order_value"`
}

// CategoryCount é uma contagem por rótulo (status do pedido, meio de pagamento)
type CategoryCount struct {
	Label string `csv:"label" json:"label"`
	Count int    `csv:"count" json:"count"`
}

type OperationalStats struct {
	KPIs           KPISummary
	StatusCounts   []CategoryCount
	DeliveryTimes  []float64
	PaymentMethods []CategoryCount
}

// Snapshot guarda cada métrica de uma sessão de análise. Campo nil significa
// "ainda não calculado"; slice vazio significa "calculado, sem dados".
type Snapshot struct {
	SessionID             string
	GeneratedAt           time.Time
	CustomerValues        []CustomerValue
	RestaurantPerformance []RestaurantPerformance
	ItemPerformance       []ItemPerformance
	TimeBuckets           []TimeBucket
	Segmentation          *Segmentation
	Forecast              *RevenueForecast
	PeakPatterns          *PeakPatterns
	Operations            *OperationalStats
	Insights              []string
}
