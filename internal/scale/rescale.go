package scale

import (
	"errors"
	"fmt"

	"github.com/tidewatch-labs/predcheck/internal/dataset"
)

// ErrMissingGroupBound is returned when a row's group has no entry in the
// min or max mapping.
var ErrMissingGroupBound = errors.New("group missing from scale bounds")

// Rescale maps normalized values back to physical units: for every column
// named base+suffix, each value v becomes v*(max-min)+min with the bounds
// looked up by that row's group key. The input frame is not modified; the
// result carries the same columns, rescaled.
func Rescale(frame *dataset.Frame, bounds Bounds, base string, suffixes []string) (*dataset.Frame, error) {
	mins, maxs, err := rowBounds(frame, bounds)
	if err != nil {
		return nil, err
	}

	out := frame.Clone()

	for _, suffix := range suffixes {
		name := base + suffix

		values, colErr := out.Column(name)
		if colErr != nil {
			return nil, fmt.Errorf("rescale %q: %w", name, colErr)
		}

		rescaled := make([]float64, len(values))
		for i, v := range values {
			rescaled[i] = v*(maxs[i]-mins[i]) + mins[i]
		}

		setErr := out.SetColumn(name, rescaled)
		if setErr != nil {
			return nil, fmt.Errorf("rescale %q: %w", name, setErr)
		}
	}

	return out, nil
}

// rowBounds resolves the min and max bound of every row's group up front,
// so an incomplete mapping fails before any column is touched.
func rowBounds(frame *dataset.Frame, bounds Bounds) (mins, maxs []float64, err error) {
	groups := frame.Groups()
	mins = make([]float64, len(groups))
	maxs = make([]float64, len(groups))

	for i, group := range groups {
		minVal, ok := bounds.Min[group]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q has no min", ErrMissingGroupBound, group)
		}

		maxVal, ok := bounds.Max[group]
		if !ok {
			return nil, nil, fmt.Errorf("%w: %q has no max", ErrMissingGroupBound, group)
		}

		mins[i] = minVal
		maxs[i] = maxVal
	}

	return mins, maxs, nil
}
