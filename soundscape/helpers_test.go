package soundscape_test

import (
	"errors"
	"os"
	"path"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ambiscape/catalog"
	"github.com/katalvlaran/ambiscape/distribution"
	"github.com/katalvlaran/ambiscape/event"
)

// memSources maps absolute paths to durations in seconds.
type memSources map[string]float64

func (m memSources) Files() ([]string, error) {
	var out []string
	for p := range m {
		out = append(out, p)
	}
	slices.Sort(out)
	return out, nil
}

func (m memSources) Resolve(p string) (string, error) {
	if !path.IsAbs(p) {
		p = path.Join("/lib", p)
	}
	if _, ok := m[p]; !ok {
		return "", errors.Join(errors.New(p), catalog.ErrCatalog)
	}
	return p, nil
}

func (m memSources) Duration(p string) (float64, bool) {
	d, ok := m[p]
	return d, ok
}

func fgLib() memSources {
	return memSources{"/lib/car.wav": 20, "/lib/dog.wav": 3, "/lib/bird.wav": 8}
}

func bgLib() memSources {
	return memSources{"/lib/park.wav": 60, "/lib/street.wav": 60}
}

func fgEvent(onset, dur float64) event.Spec {
	return event.Spec{
		SourceFile: distribution.NewConst("car.wav"),
		SourceTime: distribution.NewConst(0.0),
		EventTime:  distribution.NewConst(onset),
		Duration:   distribution.NewConst(dur),
		Azimuth:    distribution.NewConst(0.0),
		Elevation:  distribution.NewConst(0.0),
		Spread:     distribution.NewConst(0.0),
		SNR:        distribution.NewConst(10.0),
	}
}

func randomEvent() event.Spec {
	return event.Spec{
		SourceFile:  distribution.NewChoose[string](),
		SourceTime:  distribution.NewConst(0.0),
		EventTime:   distribution.NewUniform(0, 8),
		Duration:    distribution.NewTruncNorm(2, 1, 0.5, 3),
		Azimuth:     distribution.NewUniform(0, 6.28),
		Elevation:   distribution.NewUniform(-1, 1),
		Spread:      distribution.NewUniform(0, 1),
		SNR:         distribution.NewUniform(6, 30),
		PitchShift:  distribution.NewUniform(-3, 3),
		TimeStretch: distribution.NewUniform(0.8, 1.2),
	}
}

func writeFile(t *testing.T, p string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte("x"), 0o644))
}
