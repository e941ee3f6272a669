package drag

import (
	"fmt"
	"io"
	"os"

	"diorama/internal/components"

	"gopkg.in/yaml.v3"
)

// Tuning holds every knob of the drag system that designers adjust without
// touching code. Zero fields in a loaded file keep their defaults.
type Tuning struct {
	PressThreshold   float32 `yaml:"press_threshold"`
	ReleaseThreshold float32 `yaml:"release_threshold"`

	// SmoothingRate is how fast the platform closes on the pointer, per second.
	SmoothingRate   float32 `yaml:"smoothing_rate"`
	MaxPickDistance float32 `yaml:"max_pick_distance"`
	// AimPitchDegrees tilts the VR controller's forward axis around its right
	// axis so the ray follows where a hand naturally points.
	AimPitchDegrees float32 `yaml:"aim_pitch_degrees"`
	Padding         float32 `yaml:"padding"`

	ProbeHeight float32 `yaml:"probe_height"`
	ProbeMargin float32 `yaml:"probe_margin"`
	ProbeSkin   float32 `yaml:"probe_skin"`

	Feedback FeedbackConfig `yaml:"feedback"`
}

// FeedbackConfig is the file form of Feedback, with colors given by name.
type FeedbackConfig struct {
	Base           string  `yaml:"base"`
	Highlight      string  `yaml:"highlight"`
	Drag           string  `yaml:"drag"`
	IdleFrequency  float32 `yaml:"idle_frequency"`
	IdleIntensity  float32 `yaml:"idle_intensity"`
	HoverFrequency float32 `yaml:"hover_frequency"`
	HoverIntensity float32 `yaml:"hover_intensity"`
}

func DefaultTuning() Tuning {
	fb := DefaultFeedback()
	return Tuning{
		PressThreshold:   DefaultPressThreshold,
		ReleaseThreshold: DefaultReleaseThreshold,
		SmoothingRate:    15,
		MaxPickDistance:  100,
		AimPitchDegrees:  -30,
		Padding:          DefaultPadding,
		ProbeHeight:      0.15,
		ProbeMargin:      0.05,
		ProbeSkin:        0.05,
		Feedback: FeedbackConfig{
			Base:           components.LookupColorName(fb.Base),
			Highlight:      components.LookupColorName(fb.Highlight),
			Drag:           components.LookupColorName(fb.Drag),
			IdleFrequency:  fb.IdleFrequency,
			IdleIntensity:  fb.IdleIntensity,
			HoverFrequency: fb.HoverFrequency,
			HoverIntensity: fb.HoverIntensity,
		},
	}
}

// LoadTuning reads a YAML tuning file layered over DefaultTuning.
func LoadTuning(path string) (Tuning, error) {
	f, err := os.Open(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("failed to open tuning: %w", err)
	}
	defer f.Close()
	return DecodeTuning(f)
}

func DecodeTuning(r io.Reader) (Tuning, error) {
	t := DefaultTuning()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && err != io.EOF {
		return Tuning{}, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

func (t Tuning) Validate() error {
	if t.ReleaseThreshold < 0 || t.PressThreshold > 1 || t.ReleaseThreshold > t.PressThreshold {
		return fmt.Errorf("%w: thresholds press %.2f release %.2f", ErrInvalidRange, t.PressThreshold, t.ReleaseThreshold)
	}
	if t.SmoothingRate <= 0 {
		return fmt.Errorf("%w: smoothing rate %.2f", ErrInvalidRange, t.SmoothingRate)
	}
	if t.MaxPickDistance <= 0 {
		return fmt.Errorf("%w: max pick distance %.2f", ErrInvalidRange, t.MaxPickDistance)
	}
	if t.Padding < 0 || t.ProbeHeight < 0 || t.ProbeMargin < 0 || t.ProbeSkin < 0 {
		return fmt.Errorf("%w: padding and probe sizes must not be negative", ErrInvalidRange)
	}
	return nil
}

// FeedbackStyle resolves the configured color names.
func (t Tuning) FeedbackStyle() Feedback {
	fc := t.Feedback
	return Feedback{
		Base:           components.LookupColor(fc.Base),
		Highlight:      components.LookupColor(fc.Highlight),
		Drag:           components.LookupColor(fc.Drag),
		IdleFrequency:  fc.IdleFrequency,
		IdleIntensity:  fc.IdleIntensity,
		HoverFrequency: fc.HoverFrequency,
		HoverIntensity: fc.HoverIntensity,
	}
}
