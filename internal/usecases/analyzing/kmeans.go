package analyzing

import (
	"math"
	"math/rand"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

const (
	defaultRestarts      = 10
	defaultMaxIterations = 300
	defaultTolerance     = 1e-4
)

// KMeans agrupa pontos em K grupos com inicialização k-means++. Entre as
// reinicializações fica o resultado de menor inércia.
type KMeans struct {
	K             int
	Restarts      int
	MaxIterations int
	Tolerance     float64
	Seed          int64
}

type Clustering struct {
	Labels    []int
	Centroids [][]float64
	Inertia   float64
}

func NewKMeans(k int, seed int64) KMeans {
	return KMeans{
		K:             k,
		Restarts:      defaultRestarts,
		MaxIterations: defaultMaxIterations,
		Tolerance:     defaultTolerance,
		Seed:          seed,
	}
}

// Fit agrupa os pontos. Os rótulos são renumerados pela ordem de primeira
// aparição, então a mesma entrada e semente produzem os mesmos rótulos.
func (km KMeans) Fit(points [][]float64) Clustering {
	if len(points) == 0 || km.K < 1 {
		return Clustering{}
	}

	rng := rand.New(rand.NewSource(km.Seed))
	restarts := max(km.Restarts, 1)

	var best Clustering
	for run := 0; run < restarts; run++ {
		result := km.lloyd(points, km.initCentroids(points, rng))
		if run == 0 || result.Inertia < best.Inertia {
			best = result
		}
	}

	return canonicalize(best)
}

// initCentroids sorteia o primeiro centro uniformemente e os demais com
// probabilidade proporcional ao quadrado da distância ao centro mais próximo
func (km KMeans) initCentroids(points [][]float64, rng *rand.Rand) [][]float64 {
	centroids := make([][]float64, 0, km.K)
	centroids = append(centroids, clone(points[rng.Intn(len(points))]))

	weights := make([]float64, len(points))
	for len(centroids) < km.K {
		for i, p := range points {
			_, d := nearest(p, centroids)
			weights[i] = d * d
		}

		total := floats.Sum(weights)
		if total == 0 {
			centroids = append(centroids, clone(points[rng.Intn(len(points))]))
			continue
		}

		target := rng.Float64() * total
		idx := len(points) - 1
		acc := 0.0
		for i, w := range weights {
			acc += w
			if target < acc {
				idx = i
				break
			}
		}
		centroids = append(centroids, clone(points[idx]))
	}

	return centroids
}

func (km KMeans) lloyd(points [][]float64, centroids [][]float64) Clustering {
	labels := make([]int, len(points))
	dims := len(points[0])

	for iter := 0; iter < km.MaxIterations; iter++ {
		for i, p := range points {
			labels[i], _ = nearest(p, centroids)
		}

		sums := make([][]float64, len(centroids))
		counts := make([]int, len(centroids))
		for c := range sums {
			sums[c] = make([]float64, dims)
		}
		for i, p := range points {
			floats.Add(sums[labels[i]], p)
			counts[labels[i]]++
		}

		shift := 0.0
		for c := range centroids {
			// Grupo vazio mantém o centro anterior
			if counts[c] == 0 {
				continue
			}
			floats.Scale(1/float64(counts[c]), sums[c])
			shift += floats.Distance(sums[c], centroids[c], 2)
			centroids[c] = sums[c]
		}

		if shift <= km.Tolerance {
			break
		}
	}

	inertia := 0.0
	for i, p := range points {
		var d float64
		labels[i], d = nearest(p, centroids)
		inertia += d * d
	}

	return Clustering{Labels: labels, Centroids: centroids, Inertia: inertia}
}

// Silhouette calcula o coeficiente médio de silhueta. Retorna nil quando há
// menos de 2 grupos ou um grupo por ponto.
func Silhouette(points [][]float64, labels []int) *float64 {
	groups := make(map[int][]int)
	for i, l := range labels {
		groups[l] = append(groups[l], i)
	}
	if len(groups) < 2 || len(groups) >= len(points) {
		return nil
	}

	scores := make([]float64, len(points))
	for i, p := range points {
		own := groups[labels[i]]
		if len(own) == 1 {
			continue
		}

		a := meanDistance(p, points, own) * float64(len(own)) / float64(len(own)-1)
		b := math.Inf(1)
		for l, members := range groups {
			if l == labels[i] {
				continue
			}
			b = math.Min(b, meanDistance(p, points, members))
		}

		if denom := math.Max(a, b); denom > 0 {
			scores[i] = (b - a) / denom
		}
	}

	score := stat.Mean(scores, nil)
	return &score
}

// Standardize centraliza cada coluna e divide pelo desvio padrão populacional.
// Colunas constantes viram zero.
func Standardize(rows [][]float64) [][]float64 {
	if len(rows) == 0 {
		return nil
	}

	dims := len(rows[0])
	scaled := make([][]float64, len(rows))
	for i := range rows {
		scaled[i] = make([]float64, dims)
	}

	column := make([]float64, len(rows))
	for d := 0; d < dims; d++ {
		for i, row := range rows {
			column[i] = row[d]
		}
		mean, std := stat.PopMeanStdDev(column, nil)
		for i := range rows {
			if std > 0 {
				scaled[i][d] = (rows[i][d] - mean) / std
			}
		}
	}

	return scaled
}

func nearest(p []float64, centroids [][]float64) (int, float64) {
	best, bestDist := 0, math.Inf(1)
	for c, centroid := range centroids {
		if d := floats.Distance(p, centroid, 2); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, bestDist
}

func meanDistance(p []float64, points [][]float64, members []int) float64 {
	total := 0.0
	for _, m := range members {
		total += floats.Distance(p, points[m], 2)
	}
	return total / float64(len(members))
}

func canonicalize(c Clustering) Clustering {
	mapping := make(map[int]int)
	for _, l := range c.Labels {
		if _, ok := mapping[l]; !ok {
			mapping[l] = len(mapping)
		}
	}
	for old := range c.Centroids {
		if _, ok := mapping[old]; !ok {
			mapping[old] = len(mapping)
		}
	}

	labels := make([]int, len(c.Labels))
	for i, l := range c.Labels {
		labels[i] = mapping[l]
	}
	centroids := make([][]float64, len(c.Centroids))
	for old, centroid := range c.Centroids {
		centroids[mapping[old]] = centroid
	}

	return Clustering{Labels: labels, Centroids: centroids, Inertia: c.Inertia}
}

func clone(p []float64) []float64 {
	out := make([]float64, len(p))
	copy(out, p)
	return out
}
