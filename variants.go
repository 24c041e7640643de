package setting

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// autoValue is the internal sentinel meaning "use automatic behavior".
// It is surfaced externally as the string "Auto".
type autoValue struct{}

func isAutoText(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "auto")
}

// toInt64 normalizes any Go integer width to int64.
func toInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	default:
		return 0, false
	}
}

// toFloat64 normalizes floats and integer widths to float64.
func toFloat64(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	default:
		if n, ok := toInt64(v); ok {
			return float64(n), true
		}
		return 0, false
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// stringPolicy accepts any text.
type stringPolicy struct{}

func (stringPolicy) convertTo(v any) (any, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: expected string, got %T", ErrInvalidValue, v)
}

func (stringPolicy) convertFrom(v any) any { return v }

func (stringPolicy) text(v any) string { return v.(string) }

func (stringPolicy) parse(text string) (any, error) { return text, nil }

// boolPolicy accepts booleans and the integers 0/1.
type boolPolicy struct{}

func (boolPolicy) convertTo(v any) (any, error) {
	if b, ok := v.(bool); ok {
		return b, nil
	}
	if n, ok := toInt64(v); ok {
		switch n {
		case 0:
			return false, nil
		case 1:
			return true, nil
		}
	}
	return nil, fmt.Errorf("%w: expected bool or 0/1, got %v (%T)", ErrInvalidValue, v, v)
}

func (boolPolicy) convertFrom(v any) any { return v }

func (boolPolicy) text(v any) string {
	if v.(bool) {
		return "True"
	}
	return "False"
}

func (boolPolicy) parse(text string) (any, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "true", "1", "t", "y", "yes":
		return true, nil
	case "false", "0", "f", "n", "no":
		return false, nil
	default:
		return nil, fmt.Errorf("%w: cannot parse %q as bool", ErrInvalidValue, text)
	}
}

// intPolicy accepts any Go integer width, stored as int64.
type intPolicy struct{}

func (intPolicy) convertTo(v any) (any, error) {
	if n, ok := toInt64(v); ok {
		return n, nil
	}
	return nil, fmt.Errorf("%w: expected integer, got %T", ErrInvalidValue, v)
}

func (intPolicy) convertFrom(v any) any { return v }

func (intPolicy) text(v any) string {
	return strconv.FormatInt(v.(int64), 10)
}

func (intPolicy) parse(text string) (any, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %q as integer", ErrInvalidValue, text)
	}
	return n, nil
}

// floatPolicy accepts floats and integers, stored as float64.
type floatPolicy struct{}

func (floatPolicy) convertTo(v any) (any, error) {
	if f, ok := toFloat64(v); ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: expected number, got %T", ErrInvalidValue, v)
}

func (floatPolicy) convertFrom(v any) any { return v }

func (floatPolicy) text(v any) string {
	return formatFloat(v.(float64))
}

func (floatPolicy) parse(text string) (any, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %q as float", ErrInvalidValue, text)
	}
	return f, nil
}

// floatOrAutoPolicy accepts floats, integers, or the text "auto". The
// sentinel is stored internally and surfaced as "Auto".
type floatOrAutoPolicy struct{}

func (floatOrAutoPolicy) convertTo(v any) (any, error) {
	if s, ok := v.(string); ok {
		if isAutoText(s) {
			return autoValue{}, nil
		}
		return nil, fmt.Errorf("%w: expected number or \"auto\", got %q", ErrInvalidValue, s)
	}
	if f, ok := toFloat64(v); ok {
		return f, nil
	}
	return nil, fmt.Errorf("%w: expected number or \"auto\", got %T", ErrInvalidValue, v)
}

func (floatOrAutoPolicy) convertFrom(v any) any {
	if _, ok := v.(autoValue); ok {
		return "Auto"
	}
	return v
}

func (floatOrAutoPolicy) text(v any) string {
	if _, ok := v.(autoValue); ok {
		return "Auto"
	}
	return formatFloat(v.(float64))
}

func (floatOrAutoPolicy) parse(text string) (any, error) {
	if isAutoText(text) {
		return "Auto", nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %q as float or \"auto\"", ErrInvalidValue, text)
	}
	return f, nil
}

// intOrAutoPolicy accepts integers or the text "auto".
type intOrAutoPolicy struct{}

func (intOrAutoPolicy) convertTo(v any) (any, error) {
	if s, ok := v.(string); ok {
		if isAutoText(s) {
			return autoValue{}, nil
		}
		return nil, fmt.Errorf("%w: expected integer or \"auto\", got %q", ErrInvalidValue, s)
	}
	if n, ok := toInt64(v); ok {
		return n, nil
	}
	return nil, fmt.Errorf("%w: expected integer or \"auto\", got %T", ErrInvalidValue, v)
}

func (intOrAutoPolicy) convertFrom(v any) any {
	if _, ok := v.(autoValue); ok {
		return "Auto"
	}
	return v
}

func (intOrAutoPolicy) text(v any) string {
	if _, ok := v.(autoValue); ok {
		return "Auto"
	}
	return strconv.FormatInt(v.(int64), 10)
}

func (intOrAutoPolicy) parse(text string) (any, error) {
	if isAutoText(text) {
		return "Auto", nil
	}
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: cannot parse %q as integer or \"auto\"", ErrInvalidValue, text)
	}
	return n, nil
}

// distancePolicy accepts distance tokens validated by an external predicate.
type distancePolicy struct {
	valid func(string) bool
}

func (p distancePolicy) convertTo(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected distance string, got %T", ErrInvalidValue, v)
	}
	if !p.valid(s) {
		return nil, fmt.Errorf("%w: %q is not a valid distance", ErrInvalidValue, s)
	}
	return s, nil
}

func (distancePolicy) convertFrom(v any) any { return v }

func (distancePolicy) text(v any) string { return v.(string) }

func (p distancePolicy) parse(text string) (any, error) {
	if !p.valid(text) {
		return nil, fmt.Errorf("%w: %q is not a valid distance", ErrInvalidValue, text)
	}
	return text, nil
}

// choicePolicy accepts only members of a fixed value list.
type choicePolicy struct {
	allowed []string
}

func (p choicePolicy) convertTo(v any) (any, error) {
	s, ok := v.(string)
	if !ok {
		return nil, fmt.Errorf("%w: expected string, got %T", ErrInvalidValue, v)
	}
	if !slices.Contains(p.allowed, s) {
		return nil, fmt.Errorf("%w: %q is not one of %v", ErrInvalidValue, s, p.allowed)
	}
	return s, nil
}

func (choicePolicy) convertFrom(v any) any { return v }

func (choicePolicy) text(v any) string { return v.(string) }

func (p choicePolicy) parse(text string) (any, error) {
	if !slices.Contains(p.allowed, text) {
		return nil, fmt.Errorf("%w: %q is not one of %v", ErrInvalidValue, text, p.allowed)
	}
	return text, nil
}

// choiceOrMorePolicy accepts any text; the value list is advisory only and
// parse has no failure path.
type choiceOrMorePolicy struct{}

func (choiceOrMorePolicy) convertTo(v any) (any, error) {
	if s, ok := v.(string); ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: expected string, got %T", ErrInvalidValue, v)
}

func (choiceOrMorePolicy) convertFrom(v any) any { return v }

func (choiceOrMorePolicy) text(v any) string { return v.(string) }

func (choiceOrMorePolicy) parse(text string) (any, error) { return text, nil }
