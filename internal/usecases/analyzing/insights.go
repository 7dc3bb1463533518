package analyzing

import (
	"fmt"

	"github.com/vfg2006/food-delivery-analytics/internal/domain"
	"gonum.org/v1/gonum/stat"
)

// Insights formata frases a partir de métricas já calculadas. Métricas vazias
// apenas omitem as frases correspondentes.
func Insights(snapshot *domain.Snapshot) []string {
	insights := make([]string, 0, 10)

	if customers := snapshot.CustomerValues; len(customers) > 0 {
		clv := make([]float64, len(customers))
		topSpent := 0.0
		statuses := make(map[domain.CustomerStatus]int)
		for i, c := range customers {
			clv[i] = c.EstimatedCLV
			topSpent = max(topSpent, c.TotalSpent)
			statuses[c.CustomerStatus]++
		}

		insights = append(insights,
			fmt.Sprintf("💰 Valor médio do cliente (CLV): $%.2f", stat.Mean(clv, nil)),
			fmt.Sprintf("🌟 Maior gasto de um cliente: $%.2f", topSpent),
			fmt.Sprintf("✅ Clientes ativos: %d", statuses[domain.CustomerStatusActive]),
			fmt.Sprintf("⚠️ Clientes em risco: %d", statuses[domain.CustomerStatusAtRisk]),
			fmt.Sprintf("💤 Clientes perdidos: %d", statuses[domain.CustomerStatusChurned]),
		)
	}

	if restaurants := snapshot.RestaurantPerformance; len(restaurants) > 0 {
		ratings := make([]float64, len(restaurants))
		for i, r := range restaurants {
			ratings[i] = r.Rating
		}
		top := restaurants[0]

		insights = append(insights,
			fmt.Sprintf("🏆 Restaurante com maior receita: %s ($%.2f)", top.RestaurantName, top.TotalRevenue),
			fmt.Sprintf("⭐ Avaliação média dos restaurantes: %.2f", stat.Mean(ratings, nil)),
		)
	}

	if peaks := snapshot.PeakPatterns; peaks != nil && len(peaks.PeakHours) > 0 {
		insights = append(insights, fmt.Sprintf("⏰ Horário de pico: %d:00", peaks.PeakHours[0]))
	}

	if items := snapshot.ItemPerformance; len(items) > 0 {
		top := items[0]
		insights = append(insights, fmt.Sprintf("🍕 Item mais vendido: %s ($%.2f de receita)", top.ItemName, top.TotalRevenue))
	}

	return insights
}
