package setting

import (
	"fmt"

	"github.com/vizplot/setting/distance"
	"github.com/vizplot/setting/notify"
)

// policy implements the per-kind behavior of a Setting.
type policy interface {
	// convertTo validates a value and returns its storage representation.
	convertTo(v any) (any, error)

	// convertFrom maps a storage representation to the external one.
	convertFrom(v any) any

	// text renders a storage representation in canonical text form.
	text(v any) string

	// parse converts text into a candidate value for Set.
	parse(text string) (any, error)
}

// Setting is a named, typed, validated, observable configuration value.
//
// The zero value is not usable; construct settings with the New* functions.
type Setting struct {
	name      string
	descr     string
	kind      Kind
	policy    policy
	def       any
	value     any
	observers *notify.List
	allowed   []string
	icons     map[string]any
}

// Option configures a setting at construction time.
type Option func(*config)

type config struct {
	descr  string
	icons  map[string]any
	isDist func(string) bool
}

// WithDescription sets the human-readable description.
func WithDescription(descr string) Option {
	return func(c *config) {
		c.descr = descr
	}
}

// WithIconHints attaches display hints keyed by allowed value. The hints are
// opaque to this package and passed through to consumers unchanged. Only
// meaningful for choice settings.
func WithIconHints(hints map[string]any) Option {
	return func(c *config) {
		c.icons = hints
	}
}

// WithDistanceChecker overrides the syntax predicate used by distance
// settings. The default is distance.IsValid.
func WithDistanceChecker(valid func(string) bool) Option {
	return func(c *config) {
		c.isDist = valid
	}
}

func applyOptions(opts []Option) config {
	var cfg config
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// NewString creates a string setting. Any text is a valid value.
func NewString(name, value string, opts ...Option) (*Setting, error) {
	return newSetting(name, KindString, stringPolicy{}, value, applyOptions(opts))
}

// NewBool creates a boolean setting. Set also accepts the integers 0 and 1.
func NewBool(name string, value bool, opts ...Option) (*Setting, error) {
	return newSetting(name, KindBool, boolPolicy{}, value, applyOptions(opts))
}

// NewInt creates an integer setting. Set accepts any Go integer width.
func NewInt(name string, value int64, opts ...Option) (*Setting, error) {
	return newSetting(name, KindInt, intPolicy{}, value, applyOptions(opts))
}

// NewFloat creates a float setting. Set widens integer inputs to float64.
func NewFloat(name string, value float64, opts ...Option) (*Setting, error) {
	return newSetting(name, KindFloat, floatPolicy{}, value, applyOptions(opts))
}

// NewFloatOrAuto creates a float setting that also accepts the text "auto"
// (case-insensitive). Get returns the string "Auto" when the automatic
// sentinel is stored.
func NewFloatOrAuto(name string, value any, opts ...Option) (*Setting, error) {
	return newSetting(name, KindFloatOrAuto, floatOrAutoPolicy{}, value, applyOptions(opts))
}

// NewIntOrAuto creates an integer setting that also accepts the text "auto".
func NewIntOrAuto(name string, value any, opts ...Option) (*Setting, error) {
	return newSetting(name, KindIntOrAuto, intOrAutoPolicy{}, value, applyOptions(opts))
}

// NewDistance creates a setting holding a distance token such as "1pt" or
// "3%". Format validity is delegated to the configured syntax predicate.
func NewDistance(name, value string, opts ...Option) (*Setting, error) {
	cfg := applyOptions(opts)
	valid := cfg.isDist
	if valid == nil {
		valid = distance.IsValid
	}
	return newSetting(name, KindDistance, distancePolicy{valid: valid}, value, cfg)
}

// NewChoice creates a setting whose value must be a member of allowed.
// The order of allowed defines presentation order for consumers.
func NewChoice(name string, allowed []string, value string, opts ...Option) (*Setting, error) {
	vals := append([]string(nil), allowed...)
	s, err := newSetting(name, KindChoice, choicePolicy{allowed: vals}, value, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	s.allowed = vals
	return s, nil
}

// NewChoiceOrMore creates a choice setting that accepts any text; membership
// in allowed is advisory and affects presentation only.
func NewChoiceOrMore(name string, allowed []string, value string, opts ...Option) (*Setting, error) {
	vals := append([]string(nil), allowed...)
	s, err := newSetting(name, KindChoiceOrMore, choiceOrMorePolicy{}, value, applyOptions(opts))
	if err != nil {
		return nil, err
	}
	s.allowed = vals
	return s, nil
}

// newSetting validates the initial value and builds the setting. The initial
// value becomes both the default and the current value.
func newSetting(name string, kind Kind, p policy, value any, cfg config) (*Setting, error) {
	stored, err := p.convertTo(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	return &Setting{
		name:      name,
		descr:     cfg.descr,
		kind:      kind,
		policy:    p,
		def:       stored,
		value:     stored,
		observers: notify.NewList(),
		icons:     cfg.icons,
	}, nil
}

// Name returns the setting's immutable identifier.
func (s *Setting) Name() string {
	return s.name
}

// Description returns the setting's description.
func (s *Setting) Description() string {
	return s.descr
}

// Kind returns the setting's value kind.
func (s *Setting) Kind() Kind {
	return s.kind
}

// AllowedValues returns the permitted values for choice settings, in
// presentation order. It is nil for other kinds.
func (s *Setting) AllowedValues() []string {
	return s.allowed
}

// IconHints returns the display hints attached at construction, or nil.
func (s *Setting) IconHints() map[string]any {
	return s.icons
}

// Get returns the external representation of the stored value.
func (s *Setting) Get() any {
	return s.policy.convertFrom(s.value)
}

// Default returns the external representation of the default value.
func (s *Setting) Default() any {
	return s.policy.convertFrom(s.def)
}

// Set validates value and stores it, then notifies every observer in
// registration order. On failure the stored value is unchanged and the
// returned error matches ErrInvalidValue.
func (s *Setting) Set(value any) error {
	stored, err := s.policy.convertTo(value)
	if err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}

	s.value = stored
	s.observers.Notify(true)
	return nil
}

// SetDefault replaces the default and makes it the current value.
// Observers are notified as for Set. On failure neither the default nor the
// value changes.
func (s *Setting) SetDefault(value any) error {
	stored, err := s.policy.convertTo(value)
	if err != nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}

	s.def = stored
	s.value = stored
	s.observers.Notify(true)
	return nil
}

// IsDefault reports whether the current value equals the default, compared
// in the external representation.
func (s *Setting) IsDefault() bool {
	return s.Get() == s.Default()
}

// ToText renders the stored value in its canonical text form. It is the
// exact inverse of FromText for every accepted value.
func (s *Setting) ToText() string {
	return s.policy.text(s.value)
}

// FromText parses text into a candidate value for Set. The setting itself
// is never mutated. The returned error matches ErrInvalidValue when the
// text cannot be parsed into a legal value for this kind.
func (s *Setting) FromText(text string) (any, error) {
	v, err := s.policy.parse(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", s.name, err)
	}
	return v, nil
}

// Subscribe registers an observer invoked once after every successful Set,
// in registration order. Observers must not mutate this setting during
// delivery. The returned subscription deregisters the observer.
func (s *Setting) Subscribe(fn notify.Observer) *notify.Subscription {
	return s.observers.Subscribe(fn)
}
