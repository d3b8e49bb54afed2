package maps

import (
	stderrors "errors"
	"testing"

	"github.com/maddymakesgames/celeste-go/errors"
)

func TestValueAccessors(t *testing.T) {
	if v, err := BoolValue(true).Bool(); err != nil || !v {
		t.Errorf("Bool = %v, %v", v, err)
	}
	if v, err := ByteValue(7).Byte(); err != nil || v != 7 {
		t.Errorf("Byte = %v, %v", v, err)
	}
	if v, err := ShortValue(-5).Short(); err != nil || v != -5 {
		t.Errorf("Short = %v, %v", v, err)
	}
	if v, err := IntValue(1 << 20).Int(); err != nil || v != 1<<20 {
		t.Errorf("Int = %v, %v", v, err)
	}
	if v, err := FloatValue(0.5).Float(); err != nil || v != 0.5 {
		t.Errorf("Float = %v, %v", v, err)
	}
	if v, err := LookupValue(3).LookupIndex(); err != nil || v != 3 {
		t.Errorf("LookupIndex = %v, %v", v, err)
	}
	if v, err := StringValue("lvl1").Text(); err != nil || v != "lvl1" {
		t.Errorf("Text = %v, %v", v, err)
	}
	if v, err := RLEStringValue("0000").Text(); err != nil || v != "0000" {
		t.Errorf("Text on rle string = %v, %v", v, err)
	}
}

func TestValueMismatchReportsKinds(t *testing.T) {
	_, err := StringValue("x").AsInteger()

	var e *errors.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("AsInteger on string = %T, want *errors.Error", err)
	}
	if e.Kind != errors.KindValueMismatch {
		t.Errorf("Kind = %s", e.Kind)
	}
	if e.Expected != "integer" || e.Found != "string" {
		t.Errorf("expected/found = %q/%q, want integer/string", e.Expected, e.Found)
	}
}

func TestValueWidening(t *testing.T) {
	for _, v := range []EncodedValue{ByteValue(9), ShortValue(9), IntValue(9)} {
		i, err := v.AsInteger()
		if err != nil || i.Int32() != 9 {
			t.Errorf("AsInteger(%s) = %v, %v", v.Kind(), i, err)
		}
		// The original width survives a round trip through Integer.
		if i.Value().Kind() != v.Kind() {
			t.Errorf("Integer re-encoded %s as %s", v.Kind(), i.Value().Kind())
		}

		n, err := v.AsNumber()
		if err != nil || n.Float32() != 9 {
			t.Errorf("AsNumber(%s) = %v, %v", v.Kind(), n, err)
		}
		if n.Value().Kind() != v.Kind() {
			t.Errorf("Number re-encoded %s as %s", v.Kind(), n.Value().Kind())
		}
	}

	if _, err := FloatValue(1).AsInteger(); err == nil {
		t.Error("AsInteger accepted a float")
	}
	if n, err := FloatValue(2.5).AsNumber(); err != nil || n.Float32() != 2.5 {
		t.Errorf("AsNumber(float) = %v, %v", n, err)
	}
	if _, err := BoolValue(true).AsNumber(); err == nil {
		t.Error("AsNumber accepted a bool")
	}
}

func TestValueCharacter(t *testing.T) {
	table := NewLookupTable()
	table.IndexString("g")

	tests := []struct {
		name  string
		value EncodedValue
		want  rune
	}{
		{"byte", ByteValue('a'), 'a'},
		{"string", StringValue("b"), 'b'},
		{"lookup", LookupValue(0), 'g'},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c, err := tc.value.AsCharacter()
			if err != nil {
				t.Fatal(err)
			}
			r, ok := c.Rune(table)
			if !ok || r != tc.want {
				t.Errorf("Rune = %q, %t, want %q", r, ok, tc.want)
			}
		})
	}

	// Multi-character backing strings are not characters.
	c, err := StringValue("ab").AsCharacter()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := c.Rune(table); ok {
		t.Error("Rune accepted a two-character string")
	}

	if _, err := IntValue(65).AsCharacter(); err == nil {
		t.Error("AsCharacter accepted an int")
	}
}

func TestValueDisplay(t *testing.T) {
	table := NewLookupTable()
	table.IndexString("solids")

	tests := []struct {
		value EncodedValue
		want  string
	}{
		{BoolValue(true), "true"},
		{ByteValue(3), "3_u8"},
		{ShortValue(-1), "-1_i16"},
		{IntValue(70), "70_i32"},
		{FloatValue(1.5), "1.5_f32"},
		{LookupValue(0), "solids"},
		{StringValue("lvl1"), "lvl1"},
	}

	for _, tc := range tests {
		if got := tc.value.Display(table); got != tc.want {
			t.Errorf("Display(%s) = %q, want %q", tc.value.Kind(), got, tc.want)
		}
	}
}
