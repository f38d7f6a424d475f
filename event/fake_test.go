package event_test

import (
	"errors"
	"path"
	"slices"
	"sort"

	"github.com/katalvlaran/ambiscape/catalog"
	"github.com/katalvlaran/ambiscape/distribution"
	"github.com/katalvlaran/ambiscape/event"
)

// memSources is an in-memory catalog: path -> duration in seconds.
// A negative duration means "cannot be measured".
type memSources map[string]float64

var _ catalog.Sources = memSources(nil)

func (m memSources) Files() ([]string, error) {
	out := make([]string, 0, len(m))
	for p := range m {
		out = append(out, p)
	}
	sort.Strings(out)
	return out, nil
}

func (m memSources) Resolve(p string) (string, error) {
	if !path.IsAbs(p) {
		p = path.Join("/src", p)
	}
	if _, ok := m[p]; !ok {
		return "", errors.Join(errors.New("missing "+p), catalog.ErrCatalog)
	}
	return p, nil
}

func (m memSources) Duration(p string) (float64, bool) {
	d, ok := m[p]
	return d, ok && d >= 0
}

func (m memSources) sorted() []string {
	files, _ := m.Files()
	return slices.Clone(files)
}

func newSources() memSources {
	return memSources{
		"/src/car/1.wav":   10,
		"/src/car/2.wav":   10,
		"/src/dog/1.wav":   2,
		"/src/siren/1.wav": -1,
	}
}

// fgSpec is a fully constant foreground template that fits everything.
func fgSpec() event.Spec {
	return event.Spec{
		Role:       event.Foreground,
		SourceFile: distribution.NewConst("car/1.wav"),
		SourceTime: distribution.NewConst(0.0),
		EventTime:  distribution.NewConst(1.0),
		Duration:   distribution.NewConst(2.0),
		Azimuth:    distribution.NewConst(0.5),
		Elevation:  distribution.NewConst(0.25),
		Spread:     distribution.NewConst(0.0),
		SNR:        distribution.NewConst(6.0),
	}
}
