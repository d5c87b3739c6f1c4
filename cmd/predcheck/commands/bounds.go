package commands

import (
	"fmt"

	"github.com/tidewatch-labs/predcheck/internal/scale"
)

// loadBounds reads the scales file and resolves the bounds for the target
// variable.
func loadBounds(path, target string) (scale.Bounds, error) {
	set, err := scale.LoadSet(path)
	if err != nil {
		return scale.Bounds{}, fmt.Errorf("load scales: %w", err)
	}

	bounds, err := set.Variable(target)
	if err != nil {
		return scale.Bounds{}, fmt.Errorf("scales for %q: %w", target, err)
	}

	return bounds, nil
}
