package grover

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/reusee/qsearch/circuits"
)

type stubOracle struct {
	n      int
	target string
}

func (o stubOracle) SearchRegister() circuits.Register {
	return circuits.NewRegister("v", 0, o.n)
}

func (o stubOracle) AuxiliaryRegister() circuits.Register {
	return circuits.Register{Name: "a"}
}

func (o stubOracle) OutcomeCell() int {
	return o.n
}

func (o stubOracle) PredicateFragment() circuits.Fragment {
	var b circuits.Builder
	b.CNX(o.SearchRegister().Wires, o.OutcomeCell())
	return b.Fragment()
}

func (o stubOracle) Decode(counts circuits.Counts) string {
	return counts.MostFrequent()
}

func (o stubOracle) Verify(assignment string) bool {
	return assignment == o.target
}

type stubBackend struct {
	sampling bool
	execute  func(program circuits.Program) (circuits.Counts, error)
	calls    int
}

func (b *stubBackend) SupportsSampling() bool {
	return b.sampling
}

func (b *stubBackend) Execute(ctx context.Context, program circuits.Program) (circuits.Counts, error) {
	b.calls++
	return b.execute(program)
}

func constCounts(counts circuits.Counts) func(circuits.Program) (circuits.Counts, error) {
	return func(circuits.Program) (circuits.Counts, error) {
		return counts, nil
	}
}

func TestMaxIterations(t *testing.T) {
	for _, pair := range []struct {
		n    int
		want int
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 4},
		{5, 5},
		{6, 8},
		{8, 16},
	} {
		if got := maxIterations(pair.n); got != pair.want {
			t.Fatalf("n=%d: got %d, want %d", pair.n, got, pair.want)
		}
		if maxIterations(pair.n) < 1 {
			t.Fatal("bound below 1")
		}
	}
}

func TestFixedModeSingleTrial(t *testing.T) {
	backend := &stubBackend{
		sampling: true,
		execute:  constCounts(circuits.Counts{"0011": 7, "1100": 3}),
	}
	s, err := New(stubOracle{n: 4, target: "1111"}, backend, Options{
		NumIterations: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
	result, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if backend.calls != 1 {
		t.Fatalf("got %d trials", backend.calls)
	}
	if len(result.Assignment) != 4 {
		t.Fatalf("got assignment %q", result.Assignment)
	}
	if result.Verified {
		t.Fatal("verified without oracle acceptance")
	}
	if result.Iterations != 2 {
		t.Fatalf("got %d iterations", result.Iterations)
	}
}

func TestFixedModeWarnsAboveBound(t *testing.T) {
	buf := new(bytes.Buffer)
	logger := slog.New(slog.NewTextHandler(buf, nil))

	backend := &stubBackend{
		sampling: true,
		execute:  constCounts(circuits.Counts{"11": 1}),
	}
	// max_k for n=2 is 2
	_, err := New(stubOracle{n: 2, target: "11"}, backend, Options{
		NumIterations: 5,
		Logger:        logger,
	})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "iteration count may be too high") {
		t.Fatalf("no warning in %q", buf.String())
	}

	buf.Reset()
	_, err = New(stubOracle{n: 2, target: "11"}, backend, Options{
		NumIterations: 2,
		Logger:        logger,
	})
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "too high") {
		t.Fatalf("unexpected warning in %q", buf.String())
	}
}

func TestRejectsBackendWithoutSampling(t *testing.T) {
	backend := &stubBackend{
		sampling: false,
		execute:  constCounts(circuits.Counts{}),
	}
	_, err := New(stubOracle{n: 2, target: "11"}, backend, Options{})
	if !errors.Is(err, ErrNoSampling) {
		t.Fatalf("got %v", err)
	}
	if backend.calls != 0 {
		t.Fatal("backend executed before capability check")
	}
}

func TestRejectsZeroWidthSearchRegister(t *testing.T) {
	backend := &stubBackend{
		sampling: true,
		execute:  constCounts(circuits.Counts{}),
	}
	_, err := New(stubOracle{n: 0}, backend, Options{})
	if !errors.Is(err, ErrBadOracle) {
		t.Fatalf("got %v", err)
	}
}

func TestIncrementalStopsAtFirstVerified(t *testing.T) {
	backend := &stubBackend{
		sampling: true,
		execute:  constCounts(circuits.Counts{"1010": 9, "0000": 1}),
	}
	s, err := New(stubOracle{n: 4, target: "1010"}, backend, Options{
		Incremental: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	result, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if backend.calls != 1 {
		t.Fatalf("got %d trials", backend.calls)
	}
	if !result.Verified || result.Iterations != 1 {
		t.Fatalf("got verified=%v iterations=%d", result.Verified, result.Iterations)
	}
}

func TestIncrementalExhaustsBound(t *testing.T) {
	var sizes []int
	backend := &stubBackend{
		sampling: true,
		execute: func(program circuits.Program) (circuits.Counts, error) {
			sizes = append(sizes, len(program.Gates))
			return circuits.Counts{"0000": 1}, nil
		},
	}
	// unsatisfiable: no assignment verifies
	s, err := New(stubOracle{n: 4, target: ""}, backend, Options{
		Incremental: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	result, err := s.Run(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if backend.calls != s.MaxIterations() {
		t.Fatalf("got %d trials, want %d", backend.calls, s.MaxIterations())
	}
	if result.Verified {
		t.Fatal("verified on unsatisfiable predicate")
	}
	if result.Iterations != s.MaxIterations() {
		t.Fatalf("got %d iterations", result.Iterations)
	}

	// each trial grows by exactly one amplification block
	for i := 1; i < len(sizes); i++ {
		if sizes[i] <= sizes[i-1] {
			t.Fatalf("program did not grow: %v", sizes)
		}
		if i >= 2 && sizes[i]-sizes[i-1] != sizes[i-1]-sizes[i-2] {
			t.Fatalf("uneven growth: %v", sizes)
		}
	}
}

func TestExecutionFailurePropagates(t *testing.T) {
	boom := fmt.Errorf("backend down")
	backend := &stubBackend{
		sampling: true,
		execute: func(circuits.Program) (circuits.Counts, error) {
			return nil, boom
		},
	}
	s, err := New(stubOracle{n: 2, target: "11"}, backend, Options{
		Incremental: true,
	})
	if err != nil {
		t.Fatal(err)
	}
	result, err := s.Run(context.Background())
	if !errors.Is(err, boom) {
		t.Fatalf("got %v", err)
	}
	if result != nil {
		t.Fatal("partial result on failure")
	}
	if backend.calls != 1 {
		t.Fatalf("got %d trials, failures must not be retried", backend.calls)
	}
}

func TestGrowingFragmentMatchesDirectAssembly(t *testing.T) {
	backend := &stubBackend{
		sampling: true,
		execute:  constCounts(circuits.Counts{"11": 1}),
	}
	s, err := New(stubOracle{n: 2, target: "11"}, backend, Options{})
	if err != nil {
		t.Fatal(err)
	}
	_, block, _ := s.fragments()

	grown := circuits.NewFragment()
	for k := 1; k <= 3; k++ {
		grown = grown.Compose(block)
		if !grown.Equal(block.Repeat(k)) {
			t.Fatalf("structural identity broken at k=%d", k)
		}
	}
}

func TestFragmentShapes(t *testing.T) {
	backend := &stubBackend{
		sampling: true,
		execute:  constCounts(circuits.Counts{"111": 1}),
	}
	s, err := New(stubOracle{n: 3, target: "111"}, backend, Options{})
	if err != nil {
		t.Fatal(err)
	}
	prefix, block, measurement := s.fragments()

	// prefix: one H per search cell
	if prefix.Len() != 3 {
		t.Fatalf("got prefix len %d", prefix.Len())
	}
	for _, g := range prefix.Gates() {
		if g.Kind != circuits.GateH {
			t.Fatalf("got %v in prefix", g.Kind)
		}
	}

	// measurement: barrier then one read-out per cell
	gates := measurement.Gates()
	if gates[0].Kind != circuits.GateBarrier {
		t.Fatal("measurement does not start with a barrier")
	}
	if len(gates) != 4 {
		t.Fatalf("got measurement len %d", len(gates))
	}
	for i, g := range gates[1:] {
		if g.Kind != circuits.GateMeasure || g.Qubit != i || g.Clbit != i {
			t.Fatalf("bad read-out gate %+v", g)
		}
	}

	// block: predicate fragment then diffusion over search + outcome
	oracleLen := stubOracle{n: 3}.PredicateFragment().Len()
	// diffusion: 2n H + 2n X on search, 2 X + 3 H on outcome, 1 CNX
	if want := oracleLen + 4*3 + 5 + 1; block.Len() != want {
		t.Fatalf("got block len %d, want %d", block.Len(), want)
	}
}
