package setting

// Kind identifies a setting's semantic value kind.
type Kind uint8

const (
	// KindString accepts any text.
	KindString Kind = iota
	// KindBool accepts booleans and the integers 0/1.
	KindBool
	// KindInt accepts integers.
	KindInt
	// KindFloat accepts floats and integers (widened).
	KindFloat
	// KindFloatOrAuto accepts floats or the text "auto".
	KindFloatOrAuto
	// KindIntOrAuto accepts integers or the text "auto".
	KindIntOrAuto
	// KindDistance accepts distance tokens such as "1pt" or "3%".
	KindDistance
	// KindChoice accepts a member of a fixed value list.
	KindChoice
	// KindChoiceOrMore accepts any text; the value list is advisory.
	KindChoiceOrMore
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindFloatOrAuto:
		return "float-or-auto"
	case KindIntOrAuto:
		return "int-or-auto"
	case KindDistance:
		return "distance"
	case KindChoice:
		return "choice"
	case KindChoiceOrMore:
		return "choice-or-more"
	default:
		return "unknown"
	}
}
