// SPDX-License-Identifier: MIT

package specfile

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ambiscape/distribution"
)

// Field decodes a tagged YAML sequence into a distribution descriptor.
// A missing field leaves Dist nil.
type Field[T any] struct {
	Dist distribution.Dist[T]
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Field[T]) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.SequenceNode || len(n.Content) == 0 {
		return fmt.Errorf("line %d: expected [kind, args...]: %w", n.Line, ErrSyntax)
	}
	var tag string
	if err := n.Content[0].Decode(&tag); err != nil {
		return fmt.Errorf("line %d: kind: %v: %w", n.Line, err, ErrSyntax)
	}
	kind, err := distribution.ParseKind(tag)
	if err != nil {
		return fmt.Errorf("line %d: %w", n.Line, err)
	}
	args := n.Content[1:]

	switch kind {
	case distribution.KindConst:
		if len(args) != 1 {
			return arity(n, kind, 1, len(args))
		}
		var v T
		if err := args[0].Decode(&v); err != nil {
			return fmt.Errorf("line %d: const: %v: %w", n.Line, err, ErrSyntax)
		}
		f.Dist = distribution.NewConst(v)
		return nil
	case distribution.KindChoose:
		if len(args) != 1 || args[0].Kind != yaml.SequenceNode {
			return fmt.Errorf("line %d: choose takes one list: %w", n.Line, ErrSyntax)
		}
		var vs []T
		if err := args[0].Decode(&vs); err != nil {
			return fmt.Errorf("line %d: choose: %v: %w", n.Line, err, ErrSyntax)
		}
		f.Dist = distribution.NewChoose(vs...)
		return nil
	}

	want := map[distribution.Kind]int{
		distribution.KindUniform:   2,
		distribution.KindNormal:    2,
		distribution.KindTruncNorm: 4,
	}[kind]
	if len(args) != want {
		return arity(n, kind, want, len(args))
	}
	xs := make([]float64, len(args))
	for i, a := range args {
		if err := a.Decode(&xs[i]); err != nil {
			return fmt.Errorf("line %d: %s: %v: %w", n.Line, kind, err, ErrSyntax)
		}
	}
	var d distribution.Dist[float64]
	switch kind {
	case distribution.KindUniform:
		d = distribution.NewUniform(xs[0], xs[1])
	case distribution.KindNormal:
		d = distribution.NewNormal(xs[0], xs[1])
	default:
		d = distribution.NewTruncNorm(xs[0], xs[1], xs[2], xs[3])
	}
	typed, ok := any(d).(distribution.Dist[T])
	if !ok {
		return fmt.Errorf("line %d: %s needs a real-valued field: %w", n.Line, kind, distribution.ErrInvalidDistribution)
	}
	f.Dist = typed
	return nil
}

func arity(n *yaml.Node, k distribution.Kind, want, got int) error {
	return fmt.Errorf("line %d: %s takes %d argument(s), got %d: %w", n.Line, k, want, got, ErrSyntax)
}
