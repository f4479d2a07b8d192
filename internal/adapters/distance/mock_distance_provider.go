package distance

import (
	"context"
	"fmt"
	"geo-distance-service/internal/domain"
)

type MockPair struct {
	From, To domain.Coordinates
	Km       float64
}

// MockDistanceProvider answers from a fixed table and counts lookups.
type MockDistanceProvider struct {
	m     map[[2]domain.Coordinates]float64
	Calls int
}

func NewMockDistanceProvider(pairs []MockPair) *MockDistanceProvider {
	m := make(map[[2]domain.Coordinates]float64, len(pairs))
	for _, p := range pairs {
		m[[2]domain.Coordinates{p.From, p.To}] = p.Km
	}
	return &MockDistanceProvider{m: m}
}

func (p *MockDistanceProvider) Distances(ctx context.Context, ref domain.Coordinates, candidates []domain.Coordinates) ([]float64, error) {
	p.Calls++
	out := make([]float64, len(candidates))
	for i, c := range candidates {
		if c == ref {
			continue
		}
		km, ok := p.m[[2]domain.Coordinates{ref, c}]
		if !ok {
			return nil, fmt.Errorf("missing pair %v -> %v", ref, c)
		}
		out[i] = km
	}

	return out, nil
}
