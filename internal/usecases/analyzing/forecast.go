package analyzing

import (
	"math"
	"sort"

	"github.com/vfg2006/food-delivery-analytics/internal/domain"
	"github.com/vfg2006/food-delivery-analytics/pkg/utils"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	shortWindow = 7
	longWindow  = 14
)

// DailyRevenue soma as faixas de horário de cada dia e calcula as médias
// móveis de 7 e 14 dias, que servem apenas para exibição
func DailyRevenue(buckets []domain.TimeBucket) []domain.DailyRevenue {
	byDate := make(map[string]*domain.DailyRevenue)
	for _, b := range buckets {
		key := b.OrderDate.String()
		day, ok := byDate[key]
		if !ok {
			day = &domain.DailyRevenue{OrderDate: b.OrderDate}
			byDate[key] = day
		}
		day.Revenue += b.Revenue
		day.OrderCount += b.OrderCount
		day.UniqueCustomers += b.UniqueCustomers
	}

	daily := make([]domain.DailyRevenue, 0, len(byDate))
	for _, day := range byDate {
		day.Revenue = utils.RoundWithTwoDecimalPlace(day.Revenue)
		daily = append(daily, *day)
	}
	sort.Slice(daily, func(i, j int) bool {
		return daily[i].OrderDate.Before(daily[j].OrderDate.Time)
	})

	revenue := make([]float64, len(daily))
	for i := range daily {
		revenue[i] = daily[i].Revenue
	}
	short := TrailingMean(revenue, shortWindow)
	long := TrailingMean(revenue, longWindow)

	for i := range daily {
		daily[i].Revenue7DayMA = short[i]
		daily[i].Revenue14DayMA = long[i]
		daily[i].DaysSinceStart = daily[i].OrderDate.DaysSince(daily[0].OrderDate)
	}

	return daily
}

// TrailingMean é a média dos últimos window valores, usando o que houver no
// início da série
func TrailingMean(values []float64, window int) []float64 {
	out := make([]float64, len(values))
	for i := range values {
		start := max(0, i-window+1)
		out[i] = floats.Sum(values[start:i+1]) / float64(i+1-start)
	}
	return out
}

// Forecast ajusta uma reta da receita diária contra o índice do dia e projeta
// os próximos days dias. É uma extrapolação ingênua, sem sazonalidade.
func Forecast(buckets []domain.TimeBucket, days int) *domain.RevenueForecast {
	daily := DailyRevenue(buckets)

	result := &domain.RevenueForecast{
		Method:     domain.ForecastMethodLinearTrend,
		Historical: daily,
		Forecast:   make([]domain.ForecastPoint, 0, max(days, 0)),
	}
	if len(daily) == 0 {
		return result
	}

	x := make([]float64, len(daily))
	y := make([]float64, len(daily))
	for i, d := range daily {
		x[i] = float64(d.DaysSinceStart)
		y[i] = d.Revenue
	}

	if len(daily) < 2 {
		result.Intercept = stat.Mean(y, nil)
	} else {
		result.Intercept, result.Slope = stat.LinearRegression(x, y, nil, false)
		result.RSquared = rSquared(x, y, result.Intercept, result.Slope)
	}

	last := daily[len(daily)-1]
	for i := 1; i <= days; i++ {
		day := last.DaysSinceStart + i
		result.Forecast = append(result.Forecast, domain.ForecastPoint{
			OrderDate:        last.OrderDate.AddDays(i),
			PredictedRevenue: result.Intercept + result.Slope*float64(day),
			DaysSinceStart:   day,
		})
	}

	return result
}

// constantTolerance é a variância relativa abaixo da qual a série é constante
const constantTolerance = 1e-9

// rSquared trata a série constante: ajuste exato vale 1
func rSquared(x, y []float64, intercept, slope float64) float64 {
	mean := stat.Mean(y, nil)
	var ssRes, ssTot float64
	for i := range x {
		residual := y[i] - (intercept + slope*x[i])
		ssRes += residual * residual
		ssTot += (y[i] - mean) * (y[i] - mean)
	}

	scale := constantTolerance * math.Max(1, mean*mean) * float64(len(y))
	if ssTot <= scale {
		if ssRes <= scale {
			return 1
		}
		return 0
	}

	r2 := stat.RSquared(x, y, nil, intercept, slope)
	if math.IsNaN(r2) {
		return 0
	}
	return r2
}
