// SPDX-License-Identifier: MIT

package specfile

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/ambiscape/distribution"
	"github.com/katalvlaran/ambiscape/event"
	"github.com/katalvlaran/ambiscape/reverb"
	"github.com/katalvlaran/ambiscape/soundscape"
)

// File is a decoded scene specification.
type File struct {
	Duration   float64  `yaml:"duration"`
	Order      int      `yaml:"ambisonics_order"`
	FgPath     string   `yaml:"fg_path"`
	BgPath     string   `yaml:"bg_path"`
	ReverbPath string   `yaml:"reverb_path,omitempty"`
	SampleRate *int     `yaml:"sample_rate,omitempty"`
	RefDB      *float64 `yaml:"ref_db,omitempty"`
	FadeIn     *float64 `yaml:"fade_in,omitempty"`
	FadeOut    *float64 `yaml:"fade_out,omitempty"`

	Backgrounds []Background `yaml:"backgrounds"`
	Events      []Event      `yaml:"events"`
	Reverb      *Reverb      `yaml:"reverb,omitempty"`
}

// Background is a background bed.
type Background struct {
	SourceFile Field[string]  `yaml:"source_file"`
	SourceTime Field[float64] `yaml:"source_time"`
}

// Event is a foreground event template.
type Event struct {
	SourceFile  Field[string]  `yaml:"source_file"`
	SourceTime  Field[float64] `yaml:"source_time"`
	EventTime   Field[float64] `yaml:"event_time"`
	Duration    Field[float64] `yaml:"event_duration"`
	Azimuth     Field[float64] `yaml:"event_azimuth"`
	Elevation   Field[float64] `yaml:"event_elevation"`
	Spread      Field[float64] `yaml:"event_spread"`
	SNR         Field[float64] `yaml:"snr"`
	PitchShift  Field[float64] `yaml:"pitch_shift,omitempty"`
	TimeStretch Field[float64] `yaml:"time_stretch,omitempty"`
}

// Reverb holds exactly one variant.
type Reverb struct {
	Simulated *Simulated `yaml:"simulated,omitempty"`
	Measured  *Measured  `yaml:"measured,omitempty"`
}

// Simulated mirrors reverb.SimulatedSpec.
type Simulated struct {
	IRLength       Field[int]        `yaml:"ir_length"`
	RoomDimensions Field[[3]float64] `yaml:"room_dimensions"`
	T60            Field[float64]    `yaml:"t60,omitempty"`
	Reflectivity   Field[[6]float64] `yaml:"reflectivity,omitempty"`
	SourceType     Field[string]     `yaml:"source_type"`
	MicrophoneType Field[string]     `yaml:"microphone_type"`
}

// Measured mirrors reverb.MeasuredSpec.
type Measured struct {
	Name Field[string] `yaml:"name"`
	Wrap Field[string] `yaml:"wrap"`
}

// Decode reads one YAML document. Unknown keys are rejected.
//
// Errors: ErrSyntax; distribution.ErrInvalidDistribution for unknown kinds.
func Decode(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var f File
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("Decode: empty document: %w", ErrSyntax)
		}
		return nil, fmt.Errorf("Decode: %w", wrapSyntax(err))
	}
	return &f, nil
}

// wrapSyntax keeps typed errors from Field and tags plain yaml errors.
func wrapSyntax(err error) error {
	if _, ok := err.(*yaml.TypeError); ok {
		return fmt.Errorf("%v: %w", err, ErrSyntax)
	}
	return err
}

// Load reads path and resolves relative folders against its directory.
//
// Errors: as Decode, plus os errors.
func Load(path string) (*File, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Load: %w", err)
	}
	defer fh.Close()
	f, err := Decode(fh)
	if err != nil {
		return nil, fmt.Errorf("Load(%s): %w", path, err)
	}
	base := filepath.Dir(path)
	for _, p := range []*string{&f.FgPath, &f.BgPath, &f.ReverbPath} {
		if *p != "" && !filepath.IsAbs(*p) {
			*p = filepath.Join(base, *p)
		}
	}
	return f, nil
}

// Build creates the Soundscape described by f. opts are applied after the
// settings taken from the file.
//
// Errors: ErrReverbVariant, plus anything soundscape.New and the Add/Set
// methods return. Warnings from validation are returned alongside.
func (f *File) Build(opts ...soundscape.Option) (*soundscape.Soundscape, []distribution.Warning, error) {
	var base []soundscape.Option
	if f.SampleRate != nil {
		if *f.SampleRate <= 0 {
			return nil, nil, fmt.Errorf("Build: sample_rate %d: %w", *f.SampleRate, distribution.ErrInvalidFieldValue)
		}
		base = append(base, soundscape.WithSampleRate(*f.SampleRate))
	}
	if f.RefDB != nil {
		if !finite(*f.RefDB) {
			return nil, nil, fmt.Errorf("Build: ref_db %g: %w", *f.RefDB, distribution.ErrInvalidFieldValue)
		}
		base = append(base, soundscape.WithRefDB(*f.RefDB))
	}
	if f.FadeIn != nil || f.FadeOut != nil {
		in, out := soundscape.DefaultFade, soundscape.DefaultFade
		if f.FadeIn != nil {
			in = *f.FadeIn
		}
		if f.FadeOut != nil {
			out = *f.FadeOut
		}
		if !finite(in) || !finite(out) || in < 0 || out < 0 {
			return nil, nil, fmt.Errorf("Build: fades %g, %g must be finite and >= 0: %w",
				in, out, distribution.ErrInvalidFieldValue)
		}
		base = append(base, soundscape.WithFades(in, out))
	}
	if f.ReverbPath != "" {
		base = append(base, soundscape.WithReverbDir(f.ReverbPath))
	}

	sc, err := soundscape.New(f.Duration, f.Order, f.FgPath, f.BgPath, append(base, opts...)...)
	if err != nil {
		return nil, nil, fmt.Errorf("Build: %w", err)
	}

	var warns []distribution.Warning
	for i, bg := range f.Backgrounds {
		w, err := sc.AddBackground(bg.SourceFile.Dist, bg.SourceTime.Dist)
		if err != nil {
			return nil, nil, fmt.Errorf("Build: backgrounds[%d]: %w", i, err)
		}
		warns = append(warns, w...)
	}
	for i, ev := range f.Events {
		w, err := sc.AddEvent(ev.spec())
		if err != nil {
			return nil, nil, fmt.Errorf("Build: events[%d]: %w", i, err)
		}
		warns = append(warns, w...)
	}
	if f.Reverb != nil {
		w, err := f.Reverb.apply(sc)
		if err != nil {
			return nil, nil, fmt.Errorf("Build: reverb: %w", err)
		}
		warns = append(warns, w...)
	}
	return sc, warns, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }

func (e Event) spec() event.Spec {
	return event.Spec{
		Role:        event.Foreground,
		SourceFile:  e.SourceFile.Dist,
		SourceTime:  e.SourceTime.Dist,
		EventTime:   e.EventTime.Dist,
		Duration:    e.Duration.Dist,
		Azimuth:     e.Azimuth.Dist,
		Elevation:   e.Elevation.Dist,
		Spread:      e.Spread.Dist,
		SNR:         e.SNR.Dist,
		PitchShift:  e.PitchShift.Dist,
		TimeStretch: e.TimeStretch.Dist,
	}
}

func (r *Reverb) apply(sc *soundscape.Soundscape) ([]distribution.Warning, error) {
	switch {
	case r.Simulated != nil && r.Measured == nil:
		s := r.Simulated
		return sc.SetSimulatedReverb(reverb.SimulatedSpec{
			IRLength:       s.IRLength.Dist,
			RoomDimensions: s.RoomDimensions.Dist,
			T60:            s.T60.Dist,
			Reflectivity:   s.Reflectivity.Dist,
			SourceType:     s.SourceType.Dist,
			MicrophoneType: s.MicrophoneType.Dist,
		})
	case r.Measured != nil && r.Simulated == nil:
		return sc.SetMeasuredReverb(reverb.MeasuredSpec{
			Name: r.Measured.Name.Dist,
			Wrap: r.Measured.Wrap.Dist,
		})
	}
	return nil, ErrReverbVariant
}
