package grover

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/reusee/qsearch/circuits"
)

// Search runs generalized amplitude amplification over an oracle's
// predicate: amplify, sample, decode, then verify classically; repeat on
// failure when incremental.
type Search struct {
	oracle        Oracle
	backend       Backend
	incremental   bool
	numIterations int
	maxIterations int
	logger        *slog.Logger
}

type Options struct {
	// Incremental grows the round count from 1 until a verified
	// assignment is found or the round bound is exhausted. When set,
	// NumIterations is ignored.
	Incremental bool

	// NumIterations is the fixed round count. Defaults to 1.
	NumIterations int

	Logger *slog.Logger // if nil, default to slog.Default()
}

func New(oracle Oracle, backend Backend, options Options) (*Search, error) {
	if !backend.SupportsSampling() {
		return nil, ErrNoSampling
	}

	n := oracle.SearchRegister().Width()
	if n < 1 {
		return nil, fmt.Errorf("%w: zero-width search register", ErrBadOracle)
	}

	logger := options.Logger
	if logger == nil {
		logger = slog.Default()
	}

	numIterations := options.NumIterations
	if numIterations < 1 {
		numIterations = 1
	}

	s := &Search{
		oracle:        oracle,
		backend:       backend,
		incremental:   options.Incremental,
		numIterations: numIterations,
		maxIterations: maxIterations(n),
		logger:        logger,
	}

	if s.incremental {
		logger.Debug("incremental mode, ignoring fixed iteration count")
	} else if numIterations > s.maxIterations {
		// likely past the amplification peak; allowed, but wasteful
		logger.Warn("iteration count may be too high",
			"num_iterations", numIterations,
			"max_iterations", s.maxIterations,
		)
	}

	return s, nil
}

// maxIterations is floor(2^(n/2)), the single-marked-state ceiling past
// which further amplification cannot raise the success probability.
func maxIterations(n int) int {
	if n >= 62 {
		return math.MaxInt
	}
	return int(math.Pow(2, float64(n)/2))
}

// MaxIterations returns the round bound of incremental mode.
func (s *Search) MaxIterations() int {
	return s.maxIterations
}

// Run performs the search. Fixed mode executes exactly one trial; in
// incremental mode trials continue until a verified assignment or until
// the round bound is exhausted, in which case the last trial's result is
// returned with Verified false. Backend failures abort the run with no
// partial result.
func (s *Search) Run(ctx context.Context) (*Result, error) {
	prefix, block, measurement := s.fragments()

	if !s.incremental {
		result, err := s.runTrial(ctx, prefix, block.Repeat(s.numIterations), measurement)
		if err != nil {
			return nil, err
		}
		result.Iterations = s.numIterations
		return result, nil
	}

	amplification := circuits.NewFragment()
	for k := 1; ; k++ {
		amplification = amplification.Compose(block)
		result, err := s.runTrial(ctx, prefix, amplification, measurement)
		if err != nil {
			return nil, err
		}
		result.Iterations = k
		if result.Verified {
			s.logger.Debug("assignment verified",
				"iterations", k,
			)
			return result, nil
		}
		if k == s.maxIterations {
			s.logger.Debug("round bound exhausted without verified assignment",
				"max_iterations", s.maxIterations,
			)
			return result, nil
		}
	}
}

func (s *Search) runTrial(ctx context.Context, prefix, amplification, measurement circuits.Fragment) (*Result, error) {
	program := circuits.Assemble(
		s.width(),
		s.oracle.SearchRegister().Width(),
		prefix,
		amplification,
		measurement,
	)

	counts, err := s.backend.Execute(ctx, program)
	if err != nil {
		return nil, fmt.Errorf("execute trial: %w", err)
	}

	assignment := s.oracle.Decode(counts)
	verified := s.oracle.Verify(assignment)

	return &Result{
		Program:    program,
		Counts:     counts,
		Assignment: assignment,
		Verified:   verified,
	}, nil
}
