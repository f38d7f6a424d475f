// Package soundscape_test covers scene assembly, statistics and encoding.
package soundscape_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/ambiscape/ambisonics"
	"github.com/katalvlaran/ambiscape/catalog"
	"github.com/katalvlaran/ambiscape/distribution"
	"github.com/katalvlaran/ambiscape/event"
	"github.com/katalvlaran/ambiscape/matrix"
	"github.com/katalvlaran/ambiscape/reverb"
	"github.com/katalvlaran/ambiscape/soundscape"
)

func newScape(t *testing.T, opts ...soundscape.Option) *soundscape.Soundscape {
	t.Helper()
	sc, err := soundscape.FromSources(10, 3, fgLib(), bgLib(), opts...)
	require.NoError(t, err)
	return sc
}

// TestNew_Validation checks construction failures.
func TestNew_Validation(t *testing.T) {
	t.Parallel()
	_, err := soundscape.FromSources(0, 1, fgLib(), bgLib())
	require.ErrorIs(t, err, soundscape.ErrInvalidDuration)
	_, err = soundscape.FromSources(math.Inf(1), 1, fgLib(), bgLib())
	require.ErrorIs(t, err, soundscape.ErrInvalidDuration)
	_, err = soundscape.FromSources(1, -1, fgLib(), bgLib())
	require.ErrorIs(t, err, ambisonics.ErrInvalidOrder)
	_, err = soundscape.FromSources(1, 1, nil, bgLib())
	require.ErrorIs(t, err, catalog.ErrCatalog)
	_, err = soundscape.New(1, 1, filepath.Join(t.TempDir(), "none"), t.TempDir())
	require.ErrorIs(t, err, catalog.ErrCatalog)
	_, err = soundscape.FromSources(1, 1, fgLib(), bgLib(), soundscape.WithReverbDir(filepath.Join(t.TempDir(), "none")))
	require.ErrorIs(t, err, catalog.ErrCatalog)

	assert.Panics(t, func() { soundscape.WithSampleRate(0) })
	assert.Panics(t, func() { soundscape.WithFades(-1, 0) })
	assert.Panics(t, func() { soundscape.WithRefDB(math.NaN()) })
	assert.Panics(t, func() { soundscape.WithLogger(nil) })
	assert.Panics(t, func() { soundscape.WithSampler(nil) })
	assert.Panics(t, func() { soundscape.WithReverbs(nil) })
	assert.Panics(t, func() { soundscape.WithReverbDir("") })
}

// TestNew_Folders generates from real folders with an injected probe.
func TestNew_Folders(t *testing.T) {
	t.Parallel()
	fg, bg := t.TempDir(), t.TempDir()
	writeFile(t, filepath.Join(fg, "dog", "bark.wav"))
	writeFile(t, filepath.Join(bg, "rain.wav"))
	probe := catalog.WithDurationProbe(func(string) (float64, error) { return 4, nil })

	sc, err := soundscape.New(5, 1, fg, bg, soundscape.WithSourceOptions(probe))
	require.NoError(t, err)
	_, err = sc.AddBackground(distribution.NewChoose[string](), distribution.NewConst(0.0))
	require.NoError(t, err)
	spec := fgEvent(1, 2)
	spec.SourceFile = distribution.NewConst("dog/bark.wav")
	_, err = sc.AddEvent(spec)
	require.NoError(t, err)

	scene, err := sc.Generate(context.Background(), soundscape.WithoutWarnings())
	require.NoError(t, err)
	require.Len(t, scene.Events, 2)
	assert.Equal(t, filepath.Join(bg, "rain.wav"), scene.Events[0].SourceFile)
	assert.Equal(t, filepath.Join(fg, "dog", "bark.wav"), scene.Events[1].SourceFile)
	assert.Equal(t, fg, scene.ForegroundPath)
	// the 4 s background bed loops over the 5 s scene without complaint
	assert.Empty(t, scene.Warnings)
}

// TestGenerate_Layout checks ordering, identifiers and background defaults.
func TestGenerate_Layout(t *testing.T) {
	t.Parallel()
	sc := newScape(t)
	_, err := sc.AddBackground(distribution.NewConst("park.wav"), distribution.NewUniform(0, 10))
	require.NoError(t, err)
	_, err = sc.AddEvent(fgEvent(1, 2))
	require.NoError(t, err)
	spec := fgEvent(4, 1)
	spec.Role = event.Background
	_, err = sc.AddEvent(spec)
	require.NoError(t, err)
	assert.Equal(t, 1, sc.NumBackground())
	assert.Equal(t, 2, sc.NumForeground())

	scene, err := sc.Generate(context.Background(), soundscape.WithSeed(7))
	require.NoError(t, err)
	ids := make([]string, len(scene.Events))
	for i, e := range scene.Events {
		ids[i] = e.ID
	}
	assert.Equal(t, []string{"bg0", "fg0", "fg1"}, ids)
	assert.Len(t, scene.Foreground(), 2)
	assert.Equal(t, event.Foreground, scene.Events[2].Role)

	bg := scene.Background()
	require.Len(t, bg, 1)
	assert.Equal(t, 0.0, bg[0].EventTime)
	assert.Equal(t, 10.0, bg[0].Duration)
	assert.Equal(t, 1.0, bg[0].Spread)
	assert.Equal(t, 0.0, bg[0].SNR)
	assert.Nil(t, bg[0].PitchShift)

	assert.Equal(t, int64(7), scene.Seed)
	assert.Equal(t, soundscape.DefaultSampleRate, scene.SampleRate)
	assert.Equal(t, soundscape.DefaultRefDB, scene.RefDB)
	assert.Equal(t, soundscape.DefaultFade, scene.FadeIn)
	assert.True(t, scene.AllowRepeatedSource)
	assert.Nil(t, scene.Reverb)

	e, ok := scene.Event("fg1")
	require.True(t, ok)
	assert.Equal(t, 4.0, e.EventTime)
	_, ok = scene.Event("fg9")
	assert.False(t, ok)

	sc.ResetForeground()
	sc.ResetBackground()
	assert.Zero(t, sc.NumForeground()+sc.NumBackground())
}

// TestGenerate_Deterministic checks equal seeds give identical JSON.
func TestGenerate_Deterministic(t *testing.T) {
	t.Parallel()
	sc := newScape(t)
	_, err := sc.AddBackground(distribution.NewChoose[string](), distribution.NewConst(0.0))
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err = sc.AddEvent(randomEvent())
		require.NoError(t, err)
	}
	_, err = sc.SetSimulatedReverb(reverb.SimulatedSpec{
		IRLength:       distribution.NewChoose(2048, 4096),
		RoomDimensions: distribution.NewConst([3]float64{5, 4, 3}),
		T60:            distribution.NewTruncNorm(0.5, 0.2, 0.2, 1),
		SourceType:     distribution.NewChoose[string](),
		MicrophoneType: distribution.NewConst("em32"),
	})
	require.NoError(t, err)

	encode := func(seed int64) []byte {
		scene, err := sc.Generate(context.Background(), soundscape.WithSeed(seed), soundscape.WithoutWarnings())
		require.NoError(t, err)
		var b bytes.Buffer
		require.NoError(t, scene.Encode(&b))
		return b.Bytes()
	}
	a, b := encode(11), encode(11)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, encode(12))

	// seed 0 is the default seed
	assert.Equal(t, encode(0), encode(distribution.DefaultSeed))

	s1, err := sc.Generate(context.Background(), soundscape.WithSampler(distribution.NewSampler(11)), soundscape.WithoutWarnings())
	require.NoError(t, err)
	s2, err := sc.Generate(context.Background(), soundscape.WithSeed(11), soundscape.WithoutWarnings())
	require.NoError(t, err)
	assert.Equal(t, s2.ID, s1.ID)
	assert.Zero(t, s1.Seed)
}

// TestGenerate_NoRepeat checks source exhaustion aborts the whole scene.
func TestGenerate_NoRepeat(t *testing.T) {
	t.Parallel()
	sc := newScape(t)
	for i := 0; i < 3; i++ {
		_, err := sc.AddEvent(randomEvent())
		require.NoError(t, err)
	}
	scene, err := sc.Generate(context.Background(), soundscape.WithAllowRepeatedSource(false), soundscape.WithoutWarnings())
	require.NoError(t, err)
	seen := map[string]bool{}
	for _, e := range scene.Foreground() {
		assert.False(t, seen[e.SourceFile], e.SourceFile)
		seen[e.SourceFile] = true
	}

	_, err = sc.AddEvent(randomEvent())
	require.NoError(t, err)
	scene, err = sc.Generate(context.Background(), soundscape.WithAllowRepeatedSource(false))
	require.ErrorIs(t, err, event.ErrSourceExhausted)
	assert.Nil(t, scene)

	_, err = sc.Generate(context.Background(), soundscape.WithoutWarnings())
	require.NoError(t, err)
}

// TestGenerate_Reverb checks order limits and the reverb lifecycle.
func TestGenerate_Reverb(t *testing.T) {
	t.Parallel()
	sc := newScape(t)
	room := reverb.SimulatedSpec{
		IRLength:       distribution.NewConst(1024),
		RoomDimensions: distribution.NewConst([3]float64{4, 4, 3}),
		T60:            distribution.NewConst(0.3),
		Reflectivity:   distribution.NewConst([6]float64{0.2, 0.2, 0.2, 0.2, 0.2, 0.2}),
		SourceType:     distribution.NewConst("c"),
		MicrophoneType: distribution.NewConst("soundfield"),
	}
	_, err := sc.SetSimulatedReverb(room)
	require.ErrorIs(t, err, reverb.ErrOrderUnsupported)
	assert.False(t, sc.HasReverb())

	room.MicrophoneType = distribution.NewConst("em32")
	warns, err := sc.SetSimulatedReverb(room)
	require.NoError(t, err)
	require.Len(t, warns, 1)
	assert.True(t, sc.HasReverb())

	scene, err := sc.Generate(context.Background(), soundscape.WithoutWarnings())
	require.NoError(t, err)
	require.NotNil(t, scene.Reverb)
	assert.Equal(t, reverb.Simulated, scene.Reverb.Kind)
	assert.Len(t, scene.Warnings, 1)

	_, err = sc.SetMeasuredReverb(reverb.MeasuredSpec{
		Name: distribution.NewChoose[string](),
		Wrap: distribution.NewConst("random"),
	})
	require.ErrorIs(t, err, catalog.ErrCatalog)
	assert.True(t, sc.HasReverb())

	sc.ClearReverb()
	scene, err = sc.Generate(context.Background())
	require.NoError(t, err)
	assert.Nil(t, scene.Reverb)
}

// TestGenerate_LogsWarnings checks warnings reach the injected logger.
func TestGenerate_LogsWarnings(t *testing.T) {
	t.Parallel()
	sc := newScape(t)
	_, err := sc.AddEvent(fgEvent(9, 2))
	require.NoError(t, err)

	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))
	scene, err := sc.Generate(context.Background(), soundscape.WithLogger(log))
	require.NoError(t, err)
	require.Len(t, scene.Warnings, 1)
	assert.Equal(t, event.FieldEventTime, scene.Warnings[0].Field)
	assert.Contains(t, buf.String(), `"field":"event_time"`)
	assert.Contains(t, buf.String(), scene.ID.String())

	buf.Reset()
	_, err = sc.Generate(context.Background(), soundscape.WithLogger(log), soundscape.WithoutWarnings())
	require.NoError(t, err)
	assert.Empty(t, buf.String())
}

// TestGenerate_Canceled checks a done context aborts generation.
func TestGenerate_Canceled(t *testing.T) {
	t.Parallel()
	sc := newScape(t)
	_, err := sc.AddEvent(fgEvent(0, 1))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = sc.Generate(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func fixedScene(spans ...[2]float64) *soundscape.Scene {
	s := &soundscape.Scene{Duration: 10, Order: 1}
	s.Events = append(s.Events, event.Instantiated{ID: "bg0", Role: event.Background, Duration: 10, Spread: 1})
	for i, sp := range spans {
		id, _ := event.ID(event.Foreground, i)
		s.Events = append(s.Events, event.Instantiated{
			ID: id, Role: event.Foreground, EventTime: sp[0], Duration: sp[1] - sp[0],
		})
	}
	return s
}

// TestScene_MaxPolyphony covers stacked and touching events.
func TestScene_MaxPolyphony(t *testing.T) {
	t.Parallel()
	for n := 0; n <= 10; n++ {
		var spans [][2]float64
		for i := 0; i < n; i++ {
			spans = append(spans, [2]float64{float64(i) / 2, float64(i)/2 + 10})
		}
		assert.Equal(t, n, fixedScene(spans...).MaxPolyphony(), n)
	}
	assert.Equal(t, 1, fixedScene([2]float64{0, 5}, [2]float64{5, 10}).MaxPolyphony())

	// stretching fg0 to 15 s makes it overlap fg1
	stretch := 3.0
	s := fixedScene([2]float64{0, 5}, [2]float64{6, 7})
	assert.Equal(t, 1, s.MaxPolyphony())
	s.Events[1].TimeStretch = &stretch
	assert.Equal(t, 2, s.MaxPolyphony())
}

// TestScene_PolyphonyGini checks closed-form values of the flatness measure.
func TestScene_PolyphonyGini(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name  string
		spans [][2]float64
		want  float64
	}{
		{"no foreground", nil, 0},
		{"one short event", [][2]float64{{0, 1}}, 0.1},
		{"flat", [][2]float64{{0, 5}, {5, 10}}, 1},
		{"nested", [][2]float64{{0, 10}, {3, 7}, {4, 6}}, 0.75},
	}
	for _, tc := range cases {
		got, err := fixedScene(tc.spans...).PolyphonyGini(soundscape.DefaultHop)
		require.NoError(t, err, tc.name)
		assert.InDelta(t, tc.want, got, 1e-5, tc.name)
	}

	s := fixedScene()
	for _, hop := range []float64{0, -1, 11, math.NaN()} {
		_, err := s.PolyphonyGini(hop)
		assert.ErrorIs(t, err, soundscape.ErrInvalidHop, hop)
	}
}

// TestScene_GainMatrix checks point, spread and background rows.
func TestScene_GainMatrix(t *testing.T) {
	t.Parallel()
	s := fixedScene([2]float64{0, 1})
	s.Events[1].Azimuth = math.Pi / 2
	s.Events = append(s.Events, event.Instantiated{ID: "fg1", Role: event.Foreground, Spread: -0.2})

	m, err := s.GainMatrix(ambisonics.DefaultTau)
	require.NoError(t, err)
	assert.Equal(t, 3, m.Rows())
	assert.Equal(t, 4, m.Cols())

	want, err := matrix.FromRows([][]float64{
		{1.653, 0, 0, 0},
		{1, 1, 0, 0},
		{1, 0, 0, 1},
	})
	require.NoError(t, err)
	ok, err := matrix.AllClose(m, want, 0, 1e-3)
	require.NoError(t, err)
	assert.True(t, ok, m.String())

	_, err = s.GainMatrix(2)
	require.ErrorIs(t, err, ambisonics.ErrInvalidSpread)
	_, err = (&soundscape.Scene{Duration: 1}).GainMatrix(1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	var nilScene *soundscape.Scene
	_, err = nilScene.GainMatrix(1)
	require.ErrorIs(t, err, soundscape.ErrNilScene)
}

// TestScene_Clone checks the copy shares no mutable state.
func TestScene_Clone(t *testing.T) {
	t.Parallel()
	sc := newScape(t)
	_, err := sc.AddEvent(randomEvent())
	require.NoError(t, err)
	_, err = sc.SetSimulatedReverb(reverb.SimulatedSpec{
		IRLength:       distribution.NewConst(512),
		RoomDimensions: distribution.NewConst([3]float64{3, 3, 3}),
		T60:            distribution.NewConst(0.2),
		SourceType:     distribution.NewConst("o"),
		MicrophoneType: distribution.NewConst("em32"),
	})
	require.NoError(t, err)
	scene, err := sc.Generate(context.Background(), soundscape.WithoutWarnings())
	require.NoError(t, err)

	cp, err := scene.Clone()
	require.NoError(t, err)
	assert.Equal(t, scene.ID, cp.ID)
	assert.Equal(t, scene.Events, cp.Events)
	assert.Equal(t, scene.Reverb, cp.Reverb)

	cp.Events[0].Azimuth = 99
	*cp.Events[0].PitchShift = 99
	cp.Reverb.Simulated.Microphone.Capsules[0].Azimuth = 99
	assert.NotEqual(t, 99.0, scene.Events[0].Azimuth)
	assert.NotEqual(t, 99.0, *scene.Events[0].PitchShift)
	assert.NotEqual(t, 99.0, scene.Reverb.Simulated.Microphone.Capsules[0].Azimuth)
}

// TestScene_JSON checks the stable field names of the description.
func TestScene_JSON(t *testing.T) {
	t.Parallel()
	sc := newScape(t)
	_, err := sc.AddEvent(fgEvent(1, 2))
	require.NoError(t, err)
	scene, err := sc.Generate(context.Background())
	require.NoError(t, err)

	var b bytes.Buffer
	require.NoError(t, scene.Encode(&b))
	var doc map[string]any
	require.NoError(t, json.Unmarshal(b.Bytes(), &doc))
	for _, k := range []string{"id", "duration", "ambisonics_order", "ref_db", "sample_rate", "events"} {
		assert.Contains(t, doc, k)
	}
	events := doc["events"].([]any)
	require.Len(t, events, 1)
	ev := events[0].(map[string]any)
	assert.Equal(t, "fg0", ev["event_id"])
	assert.Equal(t, "foreground", ev["role"])
	assert.Nil(t, ev["pitch_shift"])
	assert.Contains(t, ev, "event_spread")
}

// TestSchema checks enums and field names in the reflected schema.
func TestSchema(t *testing.T) {
	t.Parallel()
	raw, err := json.Marshal(soundscape.Schema())
	require.NoError(t, err)
	s := string(raw)
	for _, want := range []string{"event_azimuth", "ambisonics_order", `"foreground"`, `"wrap_surface"`, `"uuid"`} {
		assert.Contains(t, s, want)
	}
}
