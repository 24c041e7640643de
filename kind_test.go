package setting

import "testing"

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindString, "string"},
		{KindBool, "bool"},
		{KindInt, "int"},
		{KindFloat, "float"},
		{KindFloatOrAuto, "float-or-auto"},
		{KindIntOrAuto, "int-or-auto"},
		{KindDistance, "distance"},
		{KindChoice, "choice"},
		{KindChoiceOrMore, "choice-or-more"},
		{Kind(255), "unknown"},
	}

	for _, tt := range tests {
		got := tt.kind.String()
		if got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestKind_PerConstructor(t *testing.T) {
	mustNew := func(s *Setting, err error) *Setting {
		t.Helper()
		if err != nil {
			t.Fatalf("constructor failed: %v", err)
		}
		return s
	}

	tests := []struct {
		setting *Setting
		want    Kind
	}{
		{mustNew(NewString("a", "")), KindString},
		{mustNew(NewBool("b", false)), KindBool},
		{mustNew(NewInt("c", 0)), KindInt},
		{mustNew(NewFloat("d", 0)), KindFloat},
		{mustNew(NewFloatOrAuto("e", "auto")), KindFloatOrAuto},
		{mustNew(NewIntOrAuto("f", "auto")), KindIntOrAuto},
		{mustNew(NewDistance("g", "1pt")), KindDistance},
		{mustNew(NewChoice("h", []string{"x"}, "x")), KindChoice},
		{mustNew(NewChoiceOrMore("i", []string{"x"}, "x")), KindChoiceOrMore},
	}

	for _, tt := range tests {
		if got := tt.setting.Kind(); got != tt.want {
			t.Errorf("%s: Kind() = %v, want %v", tt.setting.Name(), got, tt.want)
		}
	}
}
