package budget

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/ruboto-labs/ruboto/internal/manifest"
)

// Sentinel errors for budget violations; BudgetError wraps one of them.
var (
	ErrOverBudget  = errors.New("artifact exceeds its size budget")
	ErrUnderBudget = errors.New("artifact is below its size budget")
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := manifest.RegisterValidations(v); err != nil {
		panic(err)
	}
	return v
}

// Report is the outcome of a budget check.
type Report struct {
	Config    Config
	Path      string
	SizeBytes int64
	SizeKB    float64
	LowerKB   float64
	UpperKB   float64
}

// BudgetError is returned when an artifact falls outside its band.
type BudgetError struct {
	Report *Report
	Err    error
}

func (e *BudgetError) Error() string {
	r := e.Report
	if errors.Is(e.Err, ErrUnderBudget) {
		return fmt.Sprintf("APK was smaller than %.1fKB: %.1fKB.  You should lower the limit.  %s",
			r.LowerKB, floorTenth(r.SizeKB), r.Config)
	}
	return fmt.Sprintf("APK was larger than %.1fKB: %.1fKB.  %s",
		r.UpperKB, ceilTenth(r.SizeKB), r.Config)
}

func (e *BudgetError) Unwrap() error { return e.Err }

// Check compares an artifact's size with the band selected by cfg. The
// report is returned even when the check fails.
func Check(cfg Config, artifact *Artifact) (*Report, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid budget config: %w", err)
	}

	lower, upper := Limits(cfg)
	r := &Report{
		Config:    cfg,
		Path:      artifact.Path,
		SizeBytes: artifact.SizeBytes,
		SizeKB:    float64(artifact.SizeBytes) / 1024,
		LowerKB:   lower,
		UpperKB:   upper,
	}

	switch {
	case r.SizeKB > upper:
		return r, &BudgetError{Report: r, Err: ErrOverBudget}
	case r.SizeKB < lower:
		return r, &BudgetError{Report: r, Err: ErrUnderBudget}
	}
	return r, nil
}

func ceilTenth(v float64) float64  { return math.Ceil(v*10) / 10 }
func floorTenth(v float64) float64 { return math.Floor(v*10) / 10 }
