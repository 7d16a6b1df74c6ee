package qsim

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/reusee/qsearch/circuits"
)

// Sampler executes programs on a fresh Machine and samples the read-out
// distribution with repeated shots.
type Sampler struct {
	shots int
	rng   *rand.Rand
}

// NewSampler builds a sampling backend. A zero seed picks a wall-clock
// seed; any other value makes the sample stream reproducible.
func NewSampler(shots int, seed uint64) *Sampler {
	if shots <= 0 {
		shots = 1024
	}
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Sampler{
		shots: shots,
		rng:   rand.New(rand.NewPCG(seed, seed)),
	}
}

func (s *Sampler) SupportsSampling() bool {
	return true
}

func (s *Sampler) Execute(ctx context.Context, program circuits.Program) (circuits.Counts, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if program.Qubits > 24 {
		return nil, fmt.Errorf("program too wide for state vector simulation: %d qubits", program.Qubits)
	}

	machine := NewMachine(program.Qubits)
	if err := machine.Run(program); err != nil {
		return nil, err
	}

	probs := machine.Probabilities(program.Clbits)
	outcomes := sortedOutcomes(probs)

	counts := make(circuits.Counts)
	for range s.shots {
		r := s.rng.Float64()
		acc := 0.0
		picked := outcomes[len(outcomes)-1]
		for _, outcome := range outcomes {
			acc += probs[outcome]
			if r < acc {
				picked = outcome
				break
			}
		}
		counts[picked]++
	}
	return counts, nil
}
