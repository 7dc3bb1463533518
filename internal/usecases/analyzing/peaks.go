package analyzing

import (
	"sort"

	"github.com/vfg2006/food-delivery-analytics/internal/domain"
)

const topPeaks = 3

var dayNames = []string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

type bucketAggregate struct {
	orders     int
	revenue    float64
	aovSum     float64
	customers  int
	deliverSum float64
	buckets    int
}

func (a *bucketAggregate) add(b domain.TimeBucket) {
	a.orders += b.OrderCount
	a.revenue += b.Revenue
	a.aovSum += b.AvgOrderValue
	a.customers += b.UniqueCustomers
	a.deliverSum += b.AvgDeliveryTime
	a.buckets++
}

// PeakPatterns soma contagens e receitas por hora e por dia da semana; ticket
// médio e tempo de entrega são médias das faixas
func PeakPatterns(buckets []domain.TimeBucket) *domain.PeakPatterns {
	byHour := make(map[int]*bucketAggregate)
	byDay := make(map[int]*bucketAggregate)
	for _, b := range buckets {
		if _, ok := byHour[b.HourOfDay]; !ok {
			byHour[b.HourOfDay] = &bucketAggregate{}
		}
		if _, ok := byDay[b.DayOfWeek]; !ok {
			byDay[b.DayOfWeek] = &bucketAggregate{}
		}
		byHour[b.HourOfDay].add(b)
		byDay[b.DayOfWeek].add(b)
	}

	patterns := &domain.PeakPatterns{
		Hourly:    make([]domain.HourlySummary, 0, len(byHour)),
		Daily:     make([]domain.WeekdaySummary, 0, len(byDay)),
		PeakHours: make([]int, 0, topPeaks),
		PeakDays:  make([]string, 0, topPeaks),
	}

	for hour, a := range byHour {
		n := float64(a.buckets)
		patterns.Hourly = append(patterns.Hourly, domain.HourlySummary{
			HourOfDay:       hour,
			OrderCount:      a.orders,
			Revenue:         a.revenue,
			AvgOrderValue:   a.aovSum / n,
			UniqueCustomers: a.customers,
			AvgDeliveryTime: a.deliverSum / n,
		})
	}
	sort.Slice(patterns.Hourly, func(i, j int) bool {
		return patterns.Hourly[i].HourOfDay < patterns.Hourly[j].HourOfDay
	})

	for dow, a := range byDay {
		n := float64(a.buckets)
		patterns.Daily = append(patterns.Daily, domain.WeekdaySummary{
			DayOfWeek:       dow,
			DayName:         DayName(dow),
			OrderCount:      a.orders,
			Revenue:         a.revenue,
			AvgOrderValue:   a.aovSum / n,
			UniqueCustomers: a.customers,
			AvgDeliveryTime: a.deliverSum / n,
		})
	}
	sort.Slice(patterns.Daily, func(i, j int) bool {
		return patterns.Daily[i].DayOfWeek < patterns.Daily[j].DayOfWeek
	})

	hours := make([]domain.HourlySummary, len(patterns.Hourly))
	copy(hours, patterns.Hourly)
	sort.SliceStable(hours, func(i, j int) bool { return hours[i].OrderCount > hours[j].OrderCount })
	for i := 0; i < len(hours) && i < topPeaks; i++ {
		patterns.PeakHours = append(patterns.PeakHours, hours[i].HourOfDay)
	}

	days := make([]domain.WeekdaySummary, len(patterns.Daily))
	copy(days, patterns.Daily)
	sort.SliceStable(days, func(i, j int) bool { return days[i].OrderCount > days[j].OrderCount })
	for i := 0; i < len(days) && i < topPeaks; i++ {
		patterns.PeakDays = append(patterns.PeakDays, days[i].DayName)
	}

	return patterns
}

// DayName converte 0 = domingo no nome do dia
func DayName(dow int) string {
	if dow < 0 || dow >= len(dayNames) {
		return ""
	}
	return dayNames[dow]
}
