package cutout

import (
	"fmt"
	"strings"

	"github.com/disintegration/imaging"
)

// Settings is the per-invocation configuration of the pipeline.
//
// Only the fields of the selected strategy are consulted: Red/Green/Blue for
// "threshold", DiffThresh/KernelSize for "diff_blue".
type Settings struct {
	Strategy    string `json:"strategy"`
	RedThresh   int    `json:"red_thresh"`
	GreenThresh int    `json:"green_thresh"`
	BlueThresh  int    `json:"blue_thresh"`
	DiffThresh  int    `json:"diff_thresh"`
	KernelSize  int    `json:"kernel_size"`
	Resample    string `json:"resample"`
}

// DefaultSettings selects the threshold strategy with stock values for every
// field.
func DefaultSettings() Settings {
	t, d := DefaultThreshold(), DefaultDiffBlue()
	return Settings{
		Strategy:    StrategyThreshold,
		RedThresh:   t.Red,
		GreenThresh: t.Green,
		BlueThresh:  t.Blue,
		DiffThresh:  d.DiffThresh,
		KernelSize:  d.KernelSize,
		Resample:    ResampleLinear,
	}
}

// Overrides holds optional replacements for Settings fields, as they arrive in
// request bodies and tool arguments. Nil fields leave the setting alone.
type Overrides struct {
	Strategy    *string `json:"strategy,omitempty"`
	RedThresh   *int    `json:"red_thresh,omitempty"`
	GreenThresh *int    `json:"green_thresh,omitempty"`
	BlueThresh  *int    `json:"blue_thresh,omitempty"`
	DiffThresh  *int    `json:"diff_thresh,omitempty"`
	KernelSize  *int    `json:"kernel_size,omitempty"`
	Resample    *string `json:"resample,omitempty"`
}

// Apply returns s with every non-nil field of o substituted.
func (s Settings) Apply(o Overrides) Settings {
	if o.Strategy != nil {
		s.Strategy = *o.Strategy
	}
	if o.RedThresh != nil {
		s.RedThresh = *o.RedThresh
	}
	if o.GreenThresh != nil {
		s.GreenThresh = *o.GreenThresh
	}
	if o.BlueThresh != nil {
		s.BlueThresh = *o.BlueThresh
	}
	if o.DiffThresh != nil {
		s.DiffThresh = *o.DiffThresh
	}
	if o.KernelSize != nil {
		s.KernelSize = *o.KernelSize
	}
	if o.Resample != nil {
		s.Resample = *o.Resample
	}
	return s
}

// Options is a validated, ready-to-run pipeline configuration.
type Options struct {
	Strategy Strategy
	Resample imaging.ResampleFilter
}

// Options validates s and builds the strategy it selects.
func (s Settings) Options() (Options, error) {
	var strategy Strategy
	switch strings.ToLower(s.Strategy) {
	case StrategyThreshold:
		strategy = Threshold{Red: s.RedThresh, Green: s.GreenThresh, Blue: s.BlueThresh}
	case StrategyDiffBlue, "diff+blue", "diffblue":
		strategy = DiffBlue{DiffThresh: s.DiffThresh, KernelSize: s.KernelSize}
	default:
		return Options{}, fmt.Errorf("%w: unknown strategy %q", ErrConfig, s.Strategy)
	}
	if err := strategy.Validate(); err != nil {
		return Options{}, err
	}

	filter, err := ParseResample(s.Resample)
	if err != nil {
		return Options{}, err
	}
	return Options{Strategy: strategy, Resample: filter}, nil
}
