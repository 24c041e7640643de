// Package setting provides typed, validated, observable configuration
// values.
//
// Each Setting owns a value of one semantic kind (string, bool, integer,
// float, float-or-auto, int-or-auto, distance, choice, choice-or-more),
// validates every assignment, serializes losslessly to text, tracks whether
// the current value differs from its default, and notifies observers after
// every successful assignment.
//
// # Basic Usage
//
//	width, err := setting.NewFloat("width", 10.0,
//	    setting.WithDescription("plot width in cm"))
//	if err != nil {
//	    // invalid initial value
//	}
//
//	sub := width.Subscribe(func(bool) { redraw() })
//	defer sub.Unsubscribe()
//
//	if err := width.Set(12.5); err != nil {
//	    // errors.Is(err, setting.ErrInvalidValue)
//	}
//
// # Text Persistence
//
// ToText and FromText are exact inverses for every accepted value. FromText
// never mutates the setting; it returns a candidate value for the caller to
// pass to Set:
//
//	v, err := width.FromText("12.5")
//	if err == nil {
//	    err = width.Set(v)
//	}
//
// # Storage vs External Representation
//
// Get returns the external representation of the stored value. For most
// kinds the two coincide; FloatOrAuto and IntOrAuto store an internal
// sentinel for "automatic" and surface it externally as the string "Auto".
//
// # Concurrency
//
// A Setting is single-owner: Set, Get, and the observer callbacks run
// inline and synchronously. Callers sharing a Setting across goroutines
// must synchronize Set/Get pairs themselves; the core guarantees only that
// a single Set is atomic with respect to its own state.
//
// # Sub-packages
//
//   - notify: ordered observer registry with subscription handles
//   - distance: default syntax checker for distance-valued settings
package setting
