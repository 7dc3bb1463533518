// Package presenting liga cada aba do dashboard aos gráficos calculados a
// partir de um snapshot de métricas
package presenting

import (
	"github.com/vfg2006/food-delivery-analytics/internal/domain"
)

// KPICard é um cartão de indicador exibido no topo de todas as abas
type KPICard struct {
	Title string
	Value string
}

type Presenter interface {
	Tab(tab domain.Tab, snapshot *domain.Snapshot) domain.TabView
	KPIs(snapshot *domain.Snapshot) []KPICard
}

type TabPresenter struct{}

func NewTabPresenter() *TabPresenter {
	return &TabPresenter{}
}

// Tab monta os gráficos da aba. Snapshot nulo gera gráficos vazios.
func (p *TabPresenter) Tab(tab domain.Tab, snapshot *domain.Snapshot) domain.TabView {
	if snapshot == nil {
		snapshot = &domain.Snapshot{}
	}

	var charts []domain.Chart
	switch tab.Key {
	case domain.TabOverview:
		charts = []domain.Chart{
			dailyRevenueChart(snapshot),
			customerStatusChart(snapshot),
			topRestaurantsChart(snapshot, 10, "top-restaurants", "Top 10 Restaurantes por Receita", true),
			ordersByHourChart(snapshot),
		}
	case domain.TabCustomers:
		charts = []domain.Chart{
			segmentationChart(snapshot),
			clvHistogramChart(snapshot),
			orderFrequencyChart(snapshot),
		}
	case domain.TabRestaurants:
		charts = []domain.Chart{
			restaurantMatrixChart(snapshot),
			topRestaurantsChart(snapshot, 15, "top-15-restaurants", "Top 15 Restaurantes por Receita", false),
			deliveryVsOrdersChart(snapshot),
		}
	case domain.TabMenu:
		charts = []domain.Chart{
			categoryRevenueChart(snapshot),
			topItemsChart(snapshot),
			profitabilityChart(snapshot),
		}
	case domain.TabRevenue:
		charts = []domain.Chart{
			forecastChart(snapshot),
			monthlyRevenueChart(snapshot),
			weekdayRevenueChart(snapshot),
		}
	case domain.TabOperations:
		charts = []domain.Chart{
			peakHoursChart(snapshot),
			orderStatusChart(snapshot),
			deliveryTimeChart(snapshot),
			paymentMethodsChart(snapshot),
		}
	}

	return domain.TabView{Tab: tab, Charts: charts}
}

func (p *TabPresenter) KPIs(snapshot *domain.Snapshot) []KPICard {
	kpis := domain.KPISummary{}
	if snapshot != nil && snapshot.Operations != nil {
		kpis = snapshot.Operations.KPIs
	}

	return []KPICard{
		{Title: "Receita Total", Value: formatMoney(kpis.TotalRevenue)},
		{Title: "Pedidos Concluídos", Value: formatInt(kpis.TotalOrders)},
		{Title: "Clientes Ativos", Value: formatInt(kpis.ActiveCustomers)},
		{Title: "Ticket Médio", Value: formatMoney(kpis.AvgOrderValue)},
	}
}
