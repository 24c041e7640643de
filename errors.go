package setting

import "errors"

// ErrInvalidValue indicates a value was rejected by a setting's validation
// policy. Every failure from Set, FromText, SetDefault, and the constructors
// matches this error via errors.Is. Callers decide user-facing messaging.
var ErrInvalidValue = errors.New("invalid setting value")
