// internal/utils/prng.go
package utils

import (
	"math/rand"
	"time"

	"brainrot-td/internal/component"
	"brainrot-td/internal/defs"
)

// PRNGService — обертка над генератором случайных чисел Go, чтобы вся игра
// использовала один предсказуемый (seeded) источник.
type PRNGService struct {
	rng  *rand.Rand
	seed int64
}

// NewPRNGService creates a service with the given seed; 0 means current time.
func NewPRNGService(seed int64) *PRNGService {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &PRNGService{
		rng:  rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Seed returns the seed the service was created with.
func (s *PRNGService) Seed() int64 {
	return s.seed
}

// Intn returns a number in [0, n).
func (s *PRNGService) Intn(n int) int {
	return s.rng.Intn(n)
}

// IntInclusive returns a number in [lo, hi].
func (s *PRNGService) IntInclusive(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo+1)
}

// Float64 returns a number in [0.0, 1.0).
func (s *PRNGService) Float64() float64 {
	return s.rng.Float64()
}

// ChooseWeighted picks an element from the purchase table: sum the weights,
// draw in that range, then walk the entries until the draw is covered.
func (s *PRNGService) ChooseWeighted(entries []defs.LootEntry) component.Element {
	if len(entries) == 0 {
		return component.Basic
	}

	totalWeight := 0
	for _, entry := range entries {
		totalWeight += entry.Weight
	}
	if totalWeight <= 0 {
		return entries[0].Element
	}

	r := s.Intn(totalWeight)
	upto := 0
	for _, entry := range entries {
		if upto+entry.Weight > r {
			return entry.Element
		}
		upto += entry.Weight
	}
	return entries[len(entries)-1].Element
}
