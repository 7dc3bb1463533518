package generating

import (
	"math"
	"math/rand"

	"github.com/brianvoe/gofakeit/v6"
)

// Source concentra toda a aleatoriedade de uma geração. Duas instâncias com a
// mesma semente produzem a mesma sequência, sem estado global compartilhado.
type Source struct {
	rng   *rand.Rand
	faker *gofakeit.Faker
}

func NewSource(seed int64) *Source {
	return &Source{
		rng:   rand.New(rand.NewSource(seed)),
		faker: gofakeit.New(seed),
	}
}

// Uniform sorteia um valor em [min, max)
func (s *Source) Uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// IntRange sorteia um inteiro em [min, max]
func (s *Source) IntRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

func (s *Source) Intn(n int) int {
	return s.rng.Intn(n)
}

// Chance retorna true com probabilidade p
func (s *Source) Chance(p float64) bool {
	return s.rng.Float64() < p
}

// Exponential sorteia de uma exponencial com a média informada
func (s *Source) Exponential(mean float64) float64 {
	return s.rng.ExpFloat64() * mean
}

// Weighted retorna o índice sorteado proporcionalmente aos pesos
func (s *Source) Weighted(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return s.rng.Intn(len(weights))
	}

	target := s.rng.Float64() * total
	acc := 0.0
	for i, w := range weights {
		acc += w
		if target < acc {
			return i
		}
	}
	return len(weights) - 1
}

// Sample retorna k índices distintos de [0, n)
func (s *Source) Sample(n, k int) []int {
	if k > n {
		k = n
	}
	return s.rng.Perm(n)[:k]
}

func (s *Source) Faker() *gofakeit.Faker {
	return s.faker
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}
