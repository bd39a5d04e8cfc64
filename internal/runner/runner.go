package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/shinji-kodama/drills/internal/catalog"
	"github.com/shinji-kodama/drills/internal/model"
)

// floatMargin is the absolute and relative tolerance for comparing numbers.
const floatMargin = 1e-9

// equateFloats treats numbers within floatMargin of each other as equal.
// JSON decoding turns every number into float64, so this covers ints too.
var equateFloats = cmpopts.EquateApprox(floatMargin, floatMargin)

// Options configures a batch run.
type Options struct {
	// Parallel caps concurrent evaluations. Zero or less means GOMAXPROCS.
	Parallel int

	// Logger receives per-case debug events. Nil disables logging.
	Logger *zap.Logger
}

// Result is the graded outcome of one case.
type Result struct {
	// Name and Exercise identify the case.
	Name     string
	Exercise string

	// Outcome is the verdict.
	Outcome model.Outcome

	// Got is the exercise result as JSON; nil when the exercise errored.
	Got json.RawMessage

	// Err is the error the exercise returned, or why the case could not run.
	Err error

	// Detail explains a failure: a cmp diff or the expectation that was missed.
	Detail string
}

// Summary counts results by outcome.
type Summary struct {
	Total   int `json:"total" yaml:"total"`
	Passed  int `json:"passed" yaml:"passed"`
	Failed  int `json:"failed" yaml:"failed"`
	Errored int `json:"errored" yaml:"errored"`
}

// OK reports whether every case passed.
func (s Summary) OK() bool {
	return s.Failed == 0 && s.Errored == 0
}

// Summarize tallies results.
func Summarize(results []Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		switch r.Outcome {
		case model.OutcomePass:
			s.Passed++
		case model.OutcomeFail:
			s.Failed++
		default:
			s.Errored++
		}
	}
	return s
}

// Run evaluates cases against reg concurrently. Results are returned in
// input order. If ctx is cancelled, Run stops scheduling new cases and
// returns the context error along with the results gathered so far;
// unscheduled slots are reported as errors.
func Run(ctx context.Context, reg *catalog.Registry, cases []model.Case, opts Options) ([]Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	parallel := opts.Parallel
	if parallel <= 0 {
		parallel = runtime.GOMAXPROCS(0)
	}

	results := make([]Result, len(cases))
	done := make([]bool, len(cases))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(parallel)

	logger.Debug("running cases", zap.Int("cases", len(cases)), zap.Int("parallel", parallel))

	for i := range cases {
		i := i // per-iteration copy for Go < 1.22
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = Evaluate(reg, cases[i])
			done[i] = true
			logger.Debug("case evaluated",
				zap.String("case", results[i].Name),
				zap.String("outcome", results[i].Outcome.String()))
			return nil
		})
	}

	err := g.Wait()
	for i := range results {
		if done[i] {
			continue
		}
		// Slots are only skipped once the group context is cancelled.
		if err == nil {
			err = ctx.Err()
		}
		results[i] = Result{
			Name:     cases[i].Name,
			Exercise: cases[i].Exercise,
			Outcome:  model.OutcomeError,
			Err:      fmt.Errorf("not evaluated: %w", err),
		}
	}
	return results, err
}

// Evaluate runs a single case and grades it.
func Evaluate(reg *catalog.Registry, c model.Case) Result {
	res := Result{Name: c.Name, Exercise: c.Exercise}

	ex, err := reg.Lookup(c.Exercise)
	if err != nil {
		res.Outcome, res.Err = model.OutcomeError, err
		return res
	}

	got, err := ex.Invoke(c.Args)
	if errors.Is(err, catalog.ErrArity) || errors.Is(err, catalog.ErrInvalidArgument) {
		res.Outcome, res.Err = model.OutcomeError, err
		return res
	}
	res.Err = err

	if c.WantError != "" {
		switch {
		case err == nil:
			res.Outcome = model.OutcomeFail
			res.Detail = fmt.Sprintf("expected error containing %q, got a value", c.WantError)
			res.Got = encode(got)
		case strings.Contains(strings.ToLower(err.Error()), strings.ToLower(c.WantError)):
			res.Outcome = model.OutcomePass
		default:
			res.Outcome = model.OutcomeFail
			res.Detail = fmt.Sprintf("expected error containing %q", c.WantError)
		}
		return res
	}

	if err != nil {
		res.Outcome = model.OutcomeError
		return res
	}

	gotJSON, err := json.Marshal(got)
	if err != nil {
		res.Outcome, res.Err = model.OutcomeError, fmt.Errorf("encode result: %w", err)
		return res
	}
	res.Got = gotJSON

	if !c.HasWant() {
		res.Outcome = model.OutcomePass
		return res
	}

	var gotVal, wantVal any
	if err := json.Unmarshal(gotJSON, &gotVal); err != nil {
		res.Outcome, res.Err = model.OutcomeError, fmt.Errorf("decode result: %w", err)
		return res
	}
	if err := json.Unmarshal(c.Want, &wantVal); err != nil {
		res.Outcome, res.Err = model.OutcomeError, fmt.Errorf("decode want: %w", err)
		return res
	}

	if cmp.Equal(wantVal, gotVal, equateFloats) {
		res.Outcome = model.OutcomePass
		return res
	}
	res.Outcome = model.OutcomeFail
	res.Detail = cmp.Diff(wantVal, gotVal, equateFloats)
	return res
}

// encode renders v as JSON, or nil if it cannot be encoded.
func encode(v any) json.RawMessage {
	data, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return data
}
