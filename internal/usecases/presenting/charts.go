package presenting

import (
	"fmt"
	"math"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/vfg2006/food-delivery-analytics/internal/domain"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const histogramBins = 20

var statusOrder = []domain.CustomerStatus{
	domain.CustomerStatusActive,
	domain.CustomerStatusAtRisk,
	domain.CustomerStatusChurned,
	domain.CustomerStatusNeverOrdered,
}

func dailyRevenueChart(s *domain.Snapshot) domain.Chart {
	chart := domain.Chart{
		ID:     "daily-revenue",
		Title:  "Tendência de Receita Diária",
		Kind:   domain.ChartLine,
		XLabel: "Data",
		YLabel: "Receita ($)",
	}
	if s.Forecast == nil {
		return chart
	}

	series := domain.ChartSeries{Label: "Receita"}
	for _, d := range s.Forecast.Historical {
		chart.Labels = append(chart.Labels, d.OrderDate.String())
		series.Data = append(series.Data, d.Revenue)
	}
	chart.Series = []domain.ChartSeries{series}
	return chart
}

func customerStatusChart(s *domain.Snapshot) domain.Chart {
	counts := make(map[domain.CustomerStatus]int)
	for _, c := range s.CustomerValues {
		counts[c.CustomerStatus]++
	}

	chart := domain.Chart{ID: "customer-status", Title: "Distribuição de Status dos Clientes", Kind: domain.ChartPie}
	series := domain.ChartSeries{Label: "Clientes"}
	for _, status := range statusOrder {
		if counts[status] == 0 {
			continue
		}
		chart.Labels = append(chart.Labels, string(status))
		series.Data = append(series.Data, float64(counts[status]))
	}
	chart.Series = []domain.ChartSeries{series}
	return chart
}

func topRestaurantsChart(s *domain.Snapshot, n int, id, title string, horizontal bool) domain.Chart {
	chart := domain.Chart{
		ID:         id,
		Title:      title,
		Kind:       domain.ChartBar,
		Horizontal: horizontal,
		YLabel:     "Receita ($)",
	}

	series := domain.ChartSeries{Label: "Receita"}
	for i, r := range s.RestaurantPerformance {
		if i == n {
			break
		}
		chart.Labels = append(chart.Labels, r.RestaurantName)
		series.Data = append(series.Data, r.TotalRevenue)
	}
	chart.Series = []domain.ChartSeries{series}
	return chart
}

func ordersByHourChart(s *domain.Snapshot) domain.Chart {
	chart := domain.Chart{
		ID:     "orders-by-hour",
		Title:  "Pedidos por Hora do Dia",
		Kind:   domain.ChartBar,
		XLabel: "Hora",
		YLabel: "Pedidos",
	}
	if s.PeakPatterns == nil {
		return chart
	}

	series := domain.ChartSeries{Label: "Pedidos"}
	for _, h := range s.PeakPatterns.Hourly {
		chart.Labels = append(chart.Labels, fmt.Sprintf("%02d:00", h.HourOfDay))
		series.Data = append(series.Data, float64(h.OrderCount))
	}
	chart.Series = []domain.ChartSeries{series}
	return chart
}

// segmentationChart agrupa os pontos por segmento ou, sem agrupamento, por status
func segmentationChart(s *domain.Snapshot) domain.Chart {
	chart := domain.Chart{
		ID:     "customer-segmentation",
		Title:  "Segmentação de Clientes",
		Kind:   domain.ChartScatter,
		XLabel: "Frequência de pedidos",
		YLabel: "Ticket médio ($)",
	}

	groups := make(map[string][]domain.ChartPoint)
	if s.Segmentation != nil && s.Segmentation.Clustered {
		for _, c := range s.Segmentation.Customers {
			if c.Cluster == nil {
				continue
			}
			groups[c.SegmentName] = append(groups[c.SegmentName], customerPoint(c.CustomerValue))
		}
	} else {
		chart.Title = "Segmentação de Clientes por Status"
		for _, c := range s.CustomerValues {
			if c.OrderFrequency == 0 {
				continue
			}
			groups[string(c.CustomerStatus)] = append(groups[string(c.CustomerStatus)], customerPoint(c))
		}
	}

	names := make([]string, 0, len(groups))
	for name := range groups {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		chart.Series = append(chart.Series, domain.ChartSeries{Label: name, Points: groups[name]})
	}
	return chart
}

func customerPoint(c domain.CustomerValue) domain.ChartPoint {
	return domain.ChartPoint{X: float64(c.OrderFrequency), Y: c.AvgOrderValue, Label: c.Name}
}

func clvHistogramChart(s *domain.Snapshot) domain.Chart {
	values := make([]float64, 0, len(s.CustomerValues))
	for _, c := range s.CustomerValues {
		if c.EstimatedCLV > 0 {
			values = append(values, c.EstimatedCLV)
		}
	}

	chart := histogramChart("clv-distribution", "Distribuição do Valor do Cliente (CLV)", "Clientes", values)
	chart.XLabel = "CLV estimado ($)"
	return chart
}

func orderFrequencyChart(s *domain.Snapshot) domain.Chart {
	counts := make(map[int]int)
	for _, c := range s.CustomerValues {
		counts[c.OrderFrequency]++
	}

	frequencies := make([]int, 0, len(counts))
	for f := range counts {
		frequencies = append(frequencies, f)
	}
	sort.Ints(frequencies)

	chart := domain.Chart{
		ID:     "order-frequency",
		Title:  "Distribuição da Frequência de Pedidos",
		Kind:   domain.ChartBar,
		XLabel: "Pedidos concluídos",
		YLabel: "Clientes",
	}
	series := domain.ChartSeries{Label: "Clientes"}
	for _, f := range frequencies {
		chart.Labels = append(chart.Labels, fmt.Sprintf("%d", f))
		series.Data = append(series.Data, float64(counts[f]))
	}
	chart.Series = []domain.ChartSeries{series}
	return chart
}

func restaurantMatrixChart(s *domain.Snapshot) domain.Chart {
	series := domain.ChartSeries{Label: "Restaurantes"}
	for _, r := range s.RestaurantPerformance {
		series.Points = append(series.Points, domain.ChartPoint{X: float64(r.TotalOrders), Y: r.TotalRevenue, Label: r.RestaurantName})
	}

	return domain.Chart{
		ID:     "restaurant-matrix",
		Title:  "Matriz de Desempenho dos Restaurantes",
		Kind:   domain.ChartScatter,
		XLabel: "Pedidos",
		YLabel: "Receita ($)",
		Series: []domain.ChartSeries{series},
	}
}

func deliveryVsOrdersChart(s *domain.Snapshot) domain.Chart {
	series := domain.ChartSeries{Label: "Restaurantes"}
	for _, r := range s.RestaurantPerformance {
		if r.TotalOrders == 0 {
			continue
		}
		series.Points = append(series.Points, domain.ChartPoint{X: r.AvgDeliveryTime, Y: float64(r.TotalOrders), Label: r.RestaurantName})
	}

	return domain.Chart{
		ID:     "delivery-vs-orders",
		Title:  "Tempo de Entrega x Volume de Pedidos",
		Kind:   domain.ChartScatter,
		XLabel: "Tempo médio de entrega (min)",
		YLabel: "Pedidos",
		Series: []domain.ChartSeries{series},
	}
}

func categoryRevenueChart(s *domain.Snapshot) domain.Chart {
	revenue := make(map[string]float64)
	for _, it := range s.ItemPerformance {
		revenue[it.Category] += it.TotalRevenue
	}

	categories := make([]string, 0, len(revenue))
	for c := range revenue {
		categories = append(categories, c)
	}
	sort.Slice(categories, func(i, j int) bool {
		if revenue[categories[i]] == revenue[categories[j]] {
			return categories[i] < categories[j]
		}
		return revenue[categories[i]] > revenue[categories[j]]
	})

	chart := domain.Chart{ID: "category-revenue", Title: "Receita por Categoria", Kind: domain.ChartBar, YLabel: "Receita ($)"}
	series := domain.ChartSeries{Label: "Receita"}
	for _, c := range categories {
		chart.Labels = append(chart.Labels, c)
		series.Data = append(series.Data, revenue[c])
	}
	chart.Series = []domain.ChartSeries{series}
	return chart
}

func topItemsChart(s *domain.Snapshot) domain.Chart {
	chart := domain.Chart{
		ID:         "top-items",
		Title:      "Top 20 Itens por Receita",
		Kind:       domain.ChartBar,
		Horizontal: true,
		YLabel:     "Receita ($)",
	}
	series := domain.ChartSeries{Label: "Receita"}
	for i, it := range s.ItemPerformance {
		if i == 20 {
			break
		}
		chart.Labels = append(chart.Labels, fmt.Sprintf("%s (%s)", it.ItemName, it.RestaurantName))
		series.Data = append(series.Data, it.TotalRevenue)
	}
	chart.Series = []domain.ChartSeries{series}
	return chart
}

func profitabilityChart(s *domain.Snapshot) domain.Chart {
	series := domain.ChartSeries{Label: "Itens"}
	for _, it := range s.ItemPerformance {
		if it.ProfitMarginPct == nil {
			continue
		}
		series.Points = append(series.Points, domain.ChartPoint{X: float64(it.TotalQuantitySold), Y: *it.ProfitMarginPct, Label: it.ItemName})
	}

	return domain.Chart{
		ID:     "item-profitability",
		Title:  "Lucratividade x Popularidade dos Itens",
		Kind:   domain.ChartScatter,
		XLabel: "Quantidade vendida",
		YLabel: "Margem (%)",
		Series: []domain.ChartSeries{series},
	}
}

// forecastChart usa o índice do dia no eixo x para alinhar histórico e previsão
func forecastChart(s *domain.Snapshot) domain.Chart {
	chart := domain.Chart{
		ID:     "revenue-forecast",
		Title:  "Previsão de Receita",
		Kind:   domain.ChartLine,
		XLabel: "Dias desde o início",
		YLabel: "Receita ($)",
	}
	if s.Forecast == nil {
		return chart
	}
	chart.Title = fmt.Sprintf("Previsão de Receita (%s, R² = %.3f)", s.Forecast.Method, s.Forecast.RSquared)

	historical := domain.ChartSeries{Label: "Histórico"}
	for _, d := range s.Forecast.Historical {
		historical.Points = append(historical.Points, domain.ChartPoint{X: float64(d.DaysSinceStart), Y: d.Revenue, Label: d.OrderDate.String()})
	}
	average := domain.ChartSeries{Label: "Média móvel 7 dias"}
	for _, d := range s.Forecast.Historical {
		average.Points = append(average.Points, domain.ChartPoint{X: float64(d.DaysSinceStart), Y: d.Revenue7DayMA, Label: d.OrderDate.String()})
	}
	forecast := domain.ChartSeries{Label: "Previsão", Dashed: true}
	for _, p := range s.Forecast.Forecast {
		forecast.Points = append(forecast.Points, domain.ChartPoint{X: float64(p.DaysSinceStart), Y: p.PredictedRevenue, Label: p.OrderDate.String()})
	}

	chart.Series = []domain.ChartSeries{historical, average, forecast}
	return chart
}

func monthlyRevenueChart(s *domain.Snapshot) domain.Chart {
	revenue := make(map[string]float64)
	for _, b := range s.TimeBuckets {
		revenue[b.OrderDate.Format("2006-01")] += b.Revenue
	}

	months := make([]string, 0, len(revenue))
	for m := range revenue {
		months = append(months, m)
	}
	sort.Strings(months)

	chart := domain.Chart{ID: "monthly-revenue", Title: "Receita Mensal", Kind: domain.ChartBar, XLabel: "Mês", YLabel: "Receita ($)"}
	series := domain.ChartSeries{Label: "Receita"}
	for _, m := range months {
		chart.Labels = append(chart.Labels, m)
		series.Data = append(series.Data, revenue[m])
	}
	chart.Series = []domain.ChartSeries{series}
	return chart
}

func weekdayRevenueChart(s *domain.Snapshot) domain.Chart {
	chart := domain.Chart{ID: "weekday-revenue", Title: "Receita por Dia da Semana", Kind: domain.ChartBar, YLabel: "Receita ($)"}
	if s.PeakPatterns == nil {
		return chart
	}

	series := domain.ChartSeries{Label: "Receita"}
	for _, d := range s.PeakPatterns.Daily {
		chart.Labels = append(chart.Labels, d.DayName)
		series.Data = append(series.Data, d.Revenue)
	}
	chart.Series = []domain.ChartSeries{series}
	return chart
}

func peakHoursChart(s *domain.Snapshot) domain.Chart {
	chart := domain.Chart{ID: "peak-hours", Title: "Análise de Horários de Pico", Kind: domain.ChartBar, XLabel: "Hora"}
	if s.PeakPatterns == nil {
		return chart
	}

	orders := domain.ChartSeries{Label: "Pedidos"}
	revenue := domain.ChartSeries{Label: "Receita ($)"}
	for _, h := range s.PeakPatterns.Hourly {
		chart.Labels = append(chart.Labels, fmt.Sprintf("%02d:00", h.HourOfDay))
		orders.Data = append(orders.Data, float64(h.OrderCount))
		revenue.Data = append(revenue.Data, h.Revenue)
	}
	chart.Series = []domain.ChartSeries{orders, revenue}
	return chart
}

func orderStatusChart(s *domain.Snapshot) domain.Chart {
	chart := domain.Chart{ID: "order-status", Title: "Distribuição de Status dos Pedidos", Kind: domain.ChartPie}
	if s.Operations == nil {
		return chart
	}
	chart.Labels, chart.Series = categorySeries("Pedidos", s.Operations.StatusCounts)
	return chart
}

func deliveryTimeChart(s *domain.Snapshot) domain.Chart {
	var values []float64
	if s.Operations != nil {
		values = s.Operations.DeliveryTimes
	}

	chart := histogramChart("delivery-time", "Distribuição do Tempo de Entrega", "Pedidos", values)
	chart.XLabel = "Minutos"
	return chart
}

func paymentMethodsChart(s *domain.Snapshot) domain.Chart {
	chart := domain.Chart{ID: "payment-methods", Title: "Preferência de Meio de Pagamento", Kind: domain.ChartPie}
	if s.Operations == nil {
		return chart
	}
	chart.Labels, chart.Series = categorySeries("Pedidos", s.Operations.PaymentMethods)
	return chart
}

func categorySeries(label string, counts []domain.CategoryCount) ([]string, []domain.ChartSeries) {
	labels := make([]string, 0, len(counts))
	series := domain.ChartSeries{Label: label}
	for _, c := range counts {
		labels = append(labels, c.Label)
		series.Data = append(series.Data, float64(c.Count))
	}
	return labels, []domain.ChartSeries{series}
}

// histogramChart divide o intervalo [min, max] em faixas de mesma largura
func histogramChart(id, title, label string, values []float64) domain.Chart {
	chart := domain.Chart{ID: id, Title: title, Kind: domain.ChartHistogram, YLabel: label}
	if len(values) == 0 {
		return chart
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	lo, hi := floats.Min(sorted), floats.Max(sorted)
	bins := histogramBins
	if lo == hi {
		bins = 1
	}

	dividers := make([]float64, bins+1)
	floats.Span(dividers, lo, hi)
	dividers[bins] = math.Nextafter(hi, math.Inf(1))

	counts := stat.Histogram(nil, dividers, sorted, nil)

	series := domain.ChartSeries{Label: label, Data: counts}
	for i := 0; i < bins; i++ {
		chart.Labels = append(chart.Labels, fmt.Sprintf("%.0f-%.0f", dividers[i], dividers[i+1]))
	}
	chart.Series = []domain.ChartSeries{series}
	return chart
}

func formatMoney(v float64) string {
	return "$" + humanize.FormatFloat("#,###.##", v)
}

func formatInt(v int) string {
	return humanize.Comma(int64(v))
}
