// SPDX-License-Identifier: MIT

package distribution

import "fmt"

// Kind enumerates descriptor variants.
type Kind int

const (
	KindConst Kind = iota
	KindChoose
	KindUniform
	KindNormal
	KindTruncNorm
)

// kindNames is indexed by Kind; the names double as YAML tags.
var kindNames = [...]string{
	KindConst:     "const",
	KindChoose:    "choose",
	KindUniform:   "uniform",
	KindNormal:    "normal",
	KindTruncNorm: "truncnorm",
}

// String returns the lowercase tag of k.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// Continuous reports whether k draws from a real-valued density.
func (k Kind) Continuous() bool {
	return k == KindUniform || k == KindNormal || k == KindTruncNorm
}

// ParseKind maps a tag back to its Kind.
func ParseKind(s string) (Kind, error) {
	for i, name := range kindNames {
		if name == s {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("ParseKind: unknown tag %q: %w", s, ErrInvalidDistribution)
}
