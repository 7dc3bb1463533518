package analyzing

import (
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/food-delivery-analytics/internal/domain"
	"github.com/vfg2006/food-delivery-analytics/pkg/utils"
	"gonum.org/v1/gonum/stat"
)

// missingRecency substitui a recência de quem nunca concluiu um pedido
const missingRecency = 999.0

// Segment agrupa os clientes com ao menos um pedido concluído usando
// frequência, ticket médio, gasto total e recência padronizados. Com menos
// clientes do que grupos, devolve os registros sem agrupamento.
func Segment(customers []domain.CustomerValue, k int, seed int64) *domain.Segmentation {
	segmented := make([]domain.CustomerSegment, len(customers))
	active := make([]int, 0, len(customers))

	for i, cv := range customers {
		segmented[i] = domain.CustomerSegment{CustomerValue: cv}
		if cv.OrderFrequency > 0 {
			active = append(active, i)
		} else {
			segmented[i].SegmentName = domain.SegmentNeverOrdered
		}
	}

	result := &domain.Segmentation{
		Customers: segmented,
		Clusters:  k,
	}

	if k < 1 || len(active) < k {
		logrus.WithFields(logrus.Fields{
			"active_customers": len(active),
			"clusters":         k,
		}).Warn("Clientes ativos insuficientes para a segmentação, seguindo sem agrupamento")
		result.Summary = summarizeSegments(segmented)
		return result
	}

	features := make([][]float64, len(active))
	for i, idx := range active {
		features[i] = featureVector(customers[idx])
	}
	scaled := Standardize(features)

	clustering := NewKMeans(k, seed).Fit(scaled)
	names := nameClusters(features, clustering.Labels, k)

	for i, idx := range active {
		label := clustering.Labels[i]
		segmented[idx].Cluster = &label
		segmented[idx].SegmentName = names[label]
	}

	result.Clustered = true
	result.Silhouette = Silhouette(scaled, clustering.Labels)
	result.Summary = summarizeSegments(segmented)

	logrus.WithFields(logrus.Fields{
		"clusters":   k,
		"customers":  len(active),
		"inertia":    clustering.Inertia,
		"silhouette": result.Silhouette,
	}).Info("Segmentação de clientes concluída")

	return result
}

func featureVector(cv domain.CustomerValue) []float64 {
	recency := missingRecency
	if cv.DaysSinceLastOrder != nil {
		recency = *cv.DaysSinceLastOrder
	}
	return []float64{float64(cv.OrderFrequency), cv.AvgOrderValue, cv.TotalSpent, recency}
}

// nameClusters compara as médias de cada grupo (valores originais) com a
// mediana das médias dos grupos
func nameClusters(features [][]float64, labels []int, k int) map[int]string {
	sums := make([][3]float64, k)
	counts := make([]int, k)
	for i, f := range features {
		l := labels[i]
		sums[l][0] += f[0]
		sums[l][1] += f[1]
		sums[l][2] += f[3]
		counts[l]++
	}

	freqs := make([]float64, 0, k)
	values := make([]float64, 0, k)
	means := make(map[int][3]float64, k)
	for l := 0; l < k; l++ {
		if counts[l] == 0 {
			continue
		}
		n := float64(counts[l])
		m := [3]float64{sums[l][0] / n, sums[l][1] / n, sums[l][2] / n}
		means[l] = m
		freqs = append(freqs, m[0])
		values = append(values, m[1])
	}

	freqMedian := median(freqs)
	valueMedian := median(values)

	names := make(map[int]string, len(means))
	for l, m := range means {
		highFreq := m[0] >= freqMedian
		highValue := m[1] >= valueMedian

		switch {
		case highFreq && highValue && m[2] <= domain.ActiveRecencyDays:
			names[l] = domain.SegmentChampions
		case highFreq && highValue:
			names[l] = domain.SegmentLoyal
		case highFreq:
			names[l] = domain.SegmentFrequent
		case highValue:
			names[l] = domain.SegmentHighValue
		default:
			names[l] = domain.SegmentOccasional
		}
	}

	return names
}

// summarizeSegments agrega os clientes por nome de segmento, em ordem alfabética
func summarizeSegments(customers []domain.CustomerSegment) []domain.SegmentSummary {
	type acc struct {
		count              int
		spent, freq, value float64
	}

	groups := make(map[string]*acc)
	for _, c := range customers {
		if c.SegmentName == "" {
			continue
		}
		g, ok := groups[c.SegmentName]
		if !ok {
			g = &acc{}
			groups[c.SegmentName] = g
		}
		g.count++
		g.spent += c.TotalSpent
		g.freq += float64(c.OrderFrequency)
		g.value += c.AvgOrderValue
	}

	summary := make([]domain.SegmentSummary, 0, len(groups))
	for name, g := range groups {
		n := float64(g.count)
		summary = append(summary, domain.SegmentSummary{
			SegmentName:        name,
			Customers:          g.count,
			MeanTotalSpent:     utils.RoundWithTwoDecimalPlace(g.spent / n),
			TotalSpent:         utils.RoundWithTwoDecimalPlace(g.spent),
			MeanOrderFrequency: utils.RoundWithTwoDecimalPlace(g.freq / n),
			MeanOrderValue:     utils.RoundWithTwoDecimalPlace(g.value / n),
		})
	}

	sort.Slice(summary, func(i, j int) bool {
		return summary[i].SegmentName < summary[j].SegmentName
	})

	return summary
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return stat.Mean(sorted[mid-1:mid+1], nil)
}
