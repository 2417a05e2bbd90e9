// Package telemetry generates the synthetic presentation metrics shown next
// to a response. The figures are not measurements: they are drawn from a
// seedable pseudo-random source within fixed documented ranges, so tests can
// pin a seed while production stays randomized.
package telemetry

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/nyayamitra/legal-assistant/internal/core/domain"
)

const (
	confidenceMin = 92
	confidenceMax = 99
	agentsMin     = 3
	agentsMax     = 5
	casesMin      = 100
	casesMax      = 599
)

type Estimator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewEstimator builds an estimator from the given seed. A zero seed selects
// a time-derived one.
func NewEstimator(seed int64) *Estimator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	s := uint64(seed)
	return &Estimator{rng: rand.New(rand.NewPCG(s, s))}
}

func (e *Estimator) Estimate() domain.Telemetry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return domain.Telemetry{
		ConfidencePercent: confidenceMin + e.rng.IntN(confidenceMax-confidenceMin+1),
		AIAgentsConsulted: agentsMin + e.rng.IntN(agentsMax-agentsMin+1),
		CasesSimilar:      casesMin + e.rng.IntN(casesMax-casesMin+1),
	}
}
