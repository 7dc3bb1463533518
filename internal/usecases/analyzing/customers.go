package analyzing

import (
	"sort"

	"github.com/vfg2006/food-delivery-analytics/internal/domain"
	"github.com/vfg2006/food-delivery-analytics/pkg/utils"
)

// clvPeriods anualiza o valor do cliente. É uma heurística sem normalização
// pela frequência real de pedidos por ano.
const clvPeriods = 12

// DeriveCustomerValue preenche o CLV estimado e o status a partir das
// agregações de pedidos concluídos
func DeriveCustomerValue(cv domain.CustomerValue) domain.CustomerValue {
	cv.EstimatedCLV = float64(cv.OrderFrequency) * cv.AvgOrderValue * clvPeriods
	cv.CustomerStatus = CustomerStatus(cv.DaysSinceLastOrder)
	return cv
}

// CustomerStatus classifica o cliente pela recência do último pedido concluído
func CustomerStatus(daysSinceLastOrder *float64) domain.CustomerStatus {
	switch {
	case daysSinceLastOrder == nil:
		return domain.CustomerStatusNeverOrdered
	case *daysSinceLastOrder <= domain.ActiveRecencyDays:
		return domain.CustomerStatusActive
	case *daysSinceLastOrder <= domain.AtRiskRecencyDays:
		return domain.CustomerStatusAtRisk
	default:
		return domain.CustomerStatusChurned
	}
}

// RankRestaurants ordena por receita decrescente, atribui a posição e a
// receita por cliente
func RankRestaurants(restaurants []domain.RestaurantPerformance) []domain.RestaurantPerformance {
	ranked := make([]domain.RestaurantPerformance, len(restaurants))
	copy(ranked, restaurants)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalRevenue > ranked[j].TotalRevenue
	})

	for i := range ranked {
		ranked[i].Position = i + 1
		ranked[i].RevenuePerCustomer = utils.SafeDivide(ranked[i].TotalRevenue, float64(ranked[i].UniqueCustomers))
	}

	return ranked
}

// ProfitMargin retorna a margem percentual do item, nula quando o custo não
// foi informado
func ProfitMargin(price, cost float64) *float64 {
	if cost == 0 || price == 0 {
		return nil
	}
	margin := (price - cost) / price * 100
	return &margin
}

// RankItems ordena por receita decrescente e calcula a margem de cada item
func RankItems(items []domain.ItemPerformance) []domain.ItemPerformance {
	ranked := make([]domain.ItemPerformance, len(items))
	copy(ranked, items)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalRevenue > ranked[j].TotalRevenue
	})

	for i := range ranked {
		ranked[i].ProfitMarginPct = ProfitMargin(ranked[i].Price, ranked[i].CostToMake)
	}

	return ranked
}
