package presenting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/food-delivery-analytics/internal/domain"
)

func chartByID(t *testing.T, view domain.TabView, id string) domain.Chart {
	t.Helper()
	for _, c := range view.Charts {
		if c.ID == id {
			return c
		}
	}
	require.Failf(t, "gráfico não encontrado", "id %s", id)
	return domain.Chart{}
}

func tab(t *testing.T, key domain.TabKey) domain.Tab {
	t.Helper()
	found, ok := domain.LookupTab(string(key))
	require.True(t, ok)
	return found
}

func snapshotFixture() *domain.Snapshot {
	margin := 50.0
	cluster := 0
	day := domain.NewDate(time.Date(2024, 5, 30, 0, 0, 0, 0, time.UTC))

	customers := []domain.CustomerValue{
		{CustomerID: 1, Name: "Ana", OrderFrequency: 3, AvgOrderValue: 20, TotalSpent: 60, EstimatedCLV: 720, CustomerStatus: domain.CustomerStatusActive},
		{CustomerID: 2, Name: "Bia", OrderFrequency: 1, AvgOrderValue: 40, TotalSpent: 40, EstimatedCLV: 480, CustomerStatus: domain.CustomerStatusChurned},
		{CustomerID: 3, Name: "Caio", CustomerStatus: domain.CustomerStatusNeverOrdered},
	}

	return &domain.Snapshot{
		CustomerValues: customers,
		RestaurantPerformance: []domain.RestaurantPerformance{
			{Position: 1, RestaurantName: "Bella Vista", TotalOrders: 3, TotalRevenue: 60, AvgDeliveryTime: 30},
			{Position: 2, RestaurantName: "Dragon Palace", TotalOrders: 1, TotalRevenue: 40, AvgDeliveryTime: 45},
		},
		ItemPerformance: []domain.ItemPerformance{
			{ItemName: "Lasagna", Category: "Pasta", TotalRevenue: 50, TotalQuantitySold: 3, ProfitMarginPct: &margin},
			{ItemName: "Tiramisu", Category: "Dessert", TotalRevenue: 10, TotalQuantitySold: 1},
			{ItemName: "Penne", Category: "Pasta", TotalRevenue: 15, TotalQuantitySold: 2},
		},
		TimeBuckets: []domain.TimeBucket{
			{OrderDate: day, HourOfDay: 12, Revenue: 40},
			{OrderDate: day.AddDays(2), HourOfDay: 19, Revenue: 60},
		},
		Segmentation: &domain.Segmentation{
			Clustered: true,
			Customers: []domain.CustomerSegment{
				{CustomerValue: customers[0], Cluster: &cluster, SegmentName: domain.SegmentChampions},
				{CustomerValue: customers[1], Cluster: &cluster, SegmentName: domain.SegmentChampions},
				{CustomerValue: customers[2], SegmentName: domain.SegmentNeverOrdered},
			},
		},
		Forecast: &domain.RevenueForecast{
			Method:     domain.ForecastMethodLinearTrend,
			Historical: []domain.DailyRevenue{{OrderDate: day, Revenue: 40}, {OrderDate: day.AddDays(2), Revenue: 60, DaysSinceStart: 2}},
			Forecast:   []domain.ForecastPoint{{OrderDate: day.AddDays(3), PredictedRevenue: 70, DaysSinceStart: 3}},
			RSquared:   1,
		},
		PeakPatterns: &domain.PeakPatterns{
			Hourly: []domain.HourlySummary{{HourOfDay: 12, OrderCount: 1, Revenue: 40}, {HourOfDay: 19, OrderCount: 1, Revenue: 60}},
			Daily:  []domain.WeekdaySummary{{DayOfWeek: 4, DayName: "Thursday", Revenue: 40}, {DayOfWeek: 6, DayName: "Saturday", Revenue: 60}},
		},
		Operations: &domain.OperationalStats{
			KPIs:           domain.KPISummary{TotalRevenue: 12345.678, TotalOrders: 1500, ActiveCustomers: 12, AvgOrderValue: 8.23},
			StatusCounts:   []domain.CategoryCount{{Label: "completed", Count: 4}, {Label: "cancelled", Count: 1}},
			DeliveryTimes:  []float64{20, 30, 40, 60},
			PaymentMethods: []domain.CategoryCount{{Label: "cash", Count: 5}},
		},
	}
}

func TestTabPresenter_ChartsPerTab(t *testing.T) {
	presenter := NewTabPresenter()
	snapshot := snapshotFixture()

	tests := []struct {
		key      domain.TabKey
		expected []string
	}{
		{key: domain.TabOverview, expected: []string{"daily-revenue", "customer-status", "top-restaurants", "orders-by-hour"}},
		{key: domain.TabCustomers, expected: []string{"customer-segmentation", "clv-distribution", "order-frequency"}},
		{key: domain.TabRestaurants, expected: []string{"restaurant-matrix", "top-15-restaurants", "delivery-vs-orders"}},
		{key: domain.TabMenu, expected: []string{"category-revenue", "top-items", "item-profitability"}},
		{key: domain.TabRevenue, expected: []string{"revenue-forecast", "monthly-revenue", "weekday-revenue"}},
		{key: domain.TabOperations, expected: []string{"peak-hours", "order-status", "delivery-time", "payment-methods"}},
	}

	for _, tt := range tests {
		t.Run(string(tt.key), func(t *testing.T) {
			view := presenter.Tab(tab(t, tt.key), snapshot)

			ids := make([]string, 0, len(view.Charts))
			for _, c := range view.Charts {
				ids = append(ids, c.ID)
				assert.False(t, c.Empty(), "gráfico %s sem dados", c.ID)
			}
			assert.Equal(t, tt.expected, ids)
		})
	}
}

func TestTabPresenter_Bindings(t *testing.T) {
	presenter := NewTabPresenter()
	snapshot := snapshotFixture()

	status := chartByID(t, presenter.Tab(tab(t, domain.TabOverview), snapshot), "customer-status")
	assert.Equal(t, []string{"Active", "Churned", "Never Ordered"}, status.Labels)
	assert.Equal(t, []float64{1, 1, 1}, status.Series[0].Data)

	customers := presenter.Tab(tab(t, domain.TabCustomers), snapshot)
	segmentation := chartByID(t, customers, "customer-segmentation")
	require.Len(t, segmentation.Series, 1)
	assert.Equal(t, domain.SegmentChampions, segmentation.Series[0].Label)
	assert.Len(t, segmentation.Series[0].Points, 2)

	clv := chartByID(t, customers, "clv-distribution")
	assert.Len(t, clv.Labels, histogramBins)
	total := 0.0
	for _, v := range clv.Series[0].Data {
		total += v
	}
	assert.Equal(t, 2.0, total, "apenas CLV positivo entra no histograma")

	menu := presenter.Tab(tab(t, domain.TabMenu), snapshot)
	category := chartByID(t, menu, "category-revenue")
	assert.Equal(t, []string{"Pasta", "Dessert"}, category.Labels)
	assert.Equal(t, []float64{65, 10}, category.Series[0].Data)
	assert.Len(t, chartByID(t, menu, "item-profitability").Series[0].Points, 1)

	revenue := presenter.Tab(tab(t, domain.TabRevenue), snapshot)
	forecast := chartByID(t, revenue, "revenue-forecast")
	require.Len(t, forecast.Series, 3)
	assert.True(t, forecast.Series[2].Dashed)
	assert.Equal(t, 3.0, forecast.Series[2].Points[0].X)
	assert.Contains(t, forecast.Title, domain.ForecastMethodLinearTrend)

	monthly := chartByID(t, revenue, "monthly-revenue")
	assert.Equal(t, []string{"2024-05", "2024-06"}, monthly.Labels)
	assert.Equal(t, []float64{40, 60}, monthly.Series[0].Data)
}

func TestTabPresenter_UnclusteredFallsBackToStatus(t *testing.T) {
	snapshot := snapshotFixture()
	snapshot.Segmentation = &domain.Segmentation{Clustered: false}

	view := NewTabPresenter().Tab(tab(t, domain.TabCustomers), snapshot)
	chart := chartByID(t, view, "customer-segmentation")

	require.Len(t, chart.Series, 2)
	assert.Equal(t, "Active", chart.Series[0].Label)
	assert.Equal(t, "Churned", chart.Series[1].Label)
}

func TestTabPresenter_EmptySnapshot(t *testing.T) {
	presenter := NewTabPresenter()

	for _, tb := range domain.Tabs {
		view := presenter.Tab(tb, nil)
		require.NotEmpty(t, view.Charts, tb.Key)
		for _, c := range view.Charts {
			assert.True(t, c.Empty(), "gráfico %s deveria estar vazio", c.ID)
		}
	}
}

func TestTabPresenter_KPIs(t *testing.T) {
	cards := NewTabPresenter().KPIs(snapshotFixture())

	require.Len(t, cards, 4)
	assert.Equal(t, "$12,345.68", cards[0].Value)
	assert.Equal(t, "1,500", cards[1].Value)
	assert.Equal(t, "12", cards[2].Value)
	assert.Equal(t, "$8.23", cards[3].Value)

	empty := NewTabPresenter().KPIs(nil)
	assert.Equal(t, "$0.00", empty[0].Value)
}

func TestHistogramChart_SingleValue(t *testing.T) {
	chart := histogramChart("h", "h", "n", []float64{30, 30, 30})

	require.Len(t, chart.Labels, 1)
	assert.Equal(t, []float64{3}, chart.Series[0].Data)
}

func TestFormatNumbers(t *testing.T) {
	tests := []struct {
		name  string
		money float64
		count int
		want  []string
	}{
		{name: "zero", money: 0, count: 0, want: []string{"$0.00", "0"}},
		{name: "milhar com centavos", money: 1234.5, count: 1234, want: []string{"$1,234.50", "1,234"}},
		{name: "milhões", money: 1234567.891, count: 1234567, want: []string{"$1,234,567.89", "1,234,567"}},
		{name: "abaixo de mil", money: 999.99, count: 999, want: []string{"$999.99", "999"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want[0], formatMoney(tt.money))
			assert.Equal(t, tt.want[1], formatInt(tt.count))
		})
	}
}
