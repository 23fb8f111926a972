package chroma

import "fmt"

// OutputMode selects what the keying shader writes to the framebuffer.
type OutputMode int

const (
	// OutputComposite renders the keyed subject with a real alpha
	// channel (and the background plate behind it, if one is set).
	OutputComposite OutputMode = iota

	// OutputAlpha renders the matte itself as a grayscale image.
	// The alpha decision depends only on the keying math, never on
	// the key color's RGB values directly.
	OutputAlpha

	// OutputStatus renders a diagnostic view of the per-pixel keying
	// decision, useful for tuning parameters.
	OutputStatus
)

// String returns a human-readable name for the mode.
func (m OutputMode) String() string {
	switch m {
	case OutputComposite:
		return "composite"
	case OutputAlpha:
		return "alpha"
	case OutputStatus:
		return "status"
	default:
		return fmt.Sprintf("OutputMode(%d)", int(m))
	}
}

// KeyParams is the keying parameter set for one run. It is validated
// once with Clamp before processing starts and never mutated mid-run:
// every frame of a run is rendered with the identical set.
type KeyParams struct {
	// KeyColor is the RGB reference color to remove, each channel
	// in [0, 1].
	KeyColor [3]float64

	// Transparency controls the keying threshold strength, [0, 100].
	Transparency float64

	// Tolerance is the width of the color-distance acceptance band,
	// [0, 100].
	Tolerance float64

	// Highlight biases transparency in bright regions, [0, 100].
	Highlight float64

	// Shadow biases transparency in dark regions, [0, 100].
	Shadow float64

	// Pedestal shifts the entire alpha range uniformly, [0, 100].
	Pedestal float64

	// SpillSuppression desaturates residual key-color spill on the
	// subject, [0, 100].
	SpillSuppression float64

	// Contrast pushes matte mid-tones toward the extremes, [0, 200].
	Contrast float64

	// MidPoint is the pivot value used by Contrast, [0, 100].
	MidPoint float64

	// Choke erodes (positive) or dilates (negative) the matte edge,
	// [-20, 20].
	Choke float64

	// Soften is the edge blur radius, [0, 20].
	Soften float64

	// Output selects the shader's output mode.
	Output OutputMode
}

// DefaultKeyParams returns the documented defaults: a green-screen
// key color with moderate threshold and spill suppression.
func DefaultKeyParams() KeyParams {
	return KeyParams{
		KeyColor:         [3]float64{0.157, 0.576, 0.129},
		Transparency:     50,
		Tolerance:        50,
		Highlight:        50,
		Shadow:           50,
		Pedestal:         0,
		SpillSuppression: 30,
		Contrast:         0,
		MidPoint:         50,
		Choke:            0,
		Soften:           0,
		Output:           OutputComposite,
	}
}

// Clamp returns a copy of p with every field forced into its
// documented range. Out-of-range values are clamped rather than
// rejected; the same policy applies to all parameters. Unknown output
// modes fall back to OutputComposite.
func (p KeyParams) Clamp() KeyParams {
	for i := range p.KeyColor {
		p.KeyColor[i] = clampRange(p.KeyColor[i], 0, 1)
	}
	p.Transparency = clampRange(p.Transparency, 0, 100)
	p.Tolerance = clampRange(p.Tolerance, 0, 100)
	p.Highlight = clampRange(p.Highlight, 0, 100)
	p.Shadow = clampRange(p.Shadow, 0, 100)
	p.Pedestal = clampRange(p.Pedestal, 0, 100)
	p.SpillSuppression = clampRange(p.SpillSuppression, 0, 100)
	p.Contrast = clampRange(p.Contrast, 0, 200)
	p.MidPoint = clampRange(p.MidPoint, 0, 100)
	p.Choke = clampRange(p.Choke, -20, 20)
	p.Soften = clampRange(p.Soften, 0, 20)
	if p.Output < OutputComposite || p.Output > OutputStatus {
		p.Output = OutputComposite
	}
	return p
}

func clampRange(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
