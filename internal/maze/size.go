package maze

import "fmt"

// AdjustSize rounds requested up to the next multiple of stride.
func AdjustSize(requested, stride int) (int, error) {
	if requested <= 0 || stride <= 0 {
		return 0, fmt.Errorf("%w: size %d with stride %d", ErrInvalidConfiguration, requested, stride)
	}
	if rem := requested % stride; rem != 0 {
		return requested + stride - rem, nil
	}
	return requested, nil
}

// GridSize returns the full grid dimensions for a requested interior: the
// border ring is added on both sides and each axis is rounded up to its
// stride.
func GridSize(width, height int, geo Geometry) (int, int, error) {
	w, err := AdjustSize(width+2*geo.BorderThickness, geo.StrideX())
	if err != nil {
		return 0, 0, err
	}
	h, err := AdjustSize(height+2*geo.BorderThickness, geo.StrideY())
	if err != nil {
		return 0, 0, err
	}
	return w, h, nil
}
