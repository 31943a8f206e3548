package services

import (
	"context"
	"errors"
	"math"
)

// VectorIndex builds a one-document index from reference and returns the
// similarity of query to its nearest neighbour.
type VectorIndex interface {
	NearestScore(ctx context.Context, reference, query []float32) (float64, error)
}

type memoryIndex struct{}

// NewMemoryIndex compares the two vectors directly by cosine similarity.
func NewMemoryIndex() VectorIndex {
	return &memoryIndex{}
}

func (m *memoryIndex) NearestScore(_ context.Context, reference, query []float32) (float64, error) {
	if len(reference) == 0 || len(query) == 0 {
		return 0, errors.New("empty vector")
	}
	if len(reference) != len(query) {
		return 0, errors.New("vector dimension mismatch")
	}

	var dot, normRef, normQuery float64
	for i := range reference {
		r, q := float64(reference[i]), float64(query[i])
		dot += r * q
		normRef += r * r
		normQuery += q * q
	}

	if normRef == 0 || normQuery == 0 {
		return 0, errors.New("zero-length vector")
	}

	return dot / (math.Sqrt(normRef) * math.Sqrt(normQuery)), nil
}
