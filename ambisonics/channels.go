// SPDX-License-Identifier: MIT

package ambisonics

import (
	"fmt"
	"math"
)

// ChannelCount returns (order+1)².
func ChannelCount(order int) (int, error) {
	if err := validateOrder(order); err != nil {
		return 0, fmt.Errorf("ChannelCount: %w", err)
	}
	return (order + 1) * (order + 1), nil
}

// ACN returns the channel number of (l, m). It does not validate.
func ACN(l, m int) int { return l*l + l + m }

// DegreeIndex inverts ACN.
//
// Errors: ErrInvalidChannel for acn < 0.
func DegreeIndex(acn int) (l, m int, err error) {
	if acn < 0 {
		return 0, 0, fmt.Errorf("DegreeIndex(%d): %w", acn, ErrInvalidChannel)
	}
	l = int(math.Sqrt(float64(acn)))
	for (l+1)*(l+1) <= acn {
		l++
	}
	for l*l > acn {
		l--
	}
	return l, acn - l*l - l, nil
}

// MaxOrderForChannels returns floor(sqrt(n) - 1), the highest full order
// that n capsules or channels can carry. Returns -1 for n < 1.
func MaxOrderForChannels(n int) int {
	if n < 1 {
		return -1
	}
	return int(math.Floor(math.Sqrt(float64(n)) - 1))
}

func validateOrder(order int) error {
	if order < 0 {
		return fmt.Errorf("order %d: %w", order, ErrInvalidOrder)
	}
	return nil
}

func validateDegree(l, m int) error {
	if err := validateOrder(l); err != nil {
		return err
	}
	if m < -l || m > l {
		return fmt.Errorf("(l=%d, m=%d): %w", l, m, ErrInvalidDegree)
	}
	return nil
}

func validateAngle(name string, x float64) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return fmt.Errorf("%s=%v: %w", name, x, ErrInvalidAngle)
	}
	return nil
}
