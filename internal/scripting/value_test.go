package scripting

import "testing"

func TestParseKind(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    Kind
		wantErr bool
	}{
		{"string", "string", KindString, false},
		{"text", "text", KindString, false},
		{"enum", "enum", KindString, false},
		{"number", "number", KindNumber, false},
		{"integer", "integer", KindNumber, false},
		{"math expression", "math expression", KindNumber, false},
		{"boolean", "boolean", KindBoolean, false},
		{"bool", "bool", KindBoolean, false},
		{"case insensitive", "Number", KindNumber, false},
		{"padded", "  string ", KindString, false},
		{"empty means infer", "", KindUnset, false},
		{"unknown", "matrix", KindUnset, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseKind(%q) expected error", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseKind(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		name    string
		raw     any
		kind    Kind
		want    Value
		wantErr bool
	}{
		{"string from number", 4.5, KindString, String("4.5"), false},
		{"number from text", " 42 ", KindNumber, Number(42), false},
		{"number from bool", true, KindNumber, Number(1), false},
		{"bad number text", "forty", KindNumber, Unset, true},
		{"bool from text", "TRUE", KindBoolean, Boolean(true), false},
		{"bool from one", "1", KindBoolean, Boolean(true), false},
		{"bool from empty", "", KindBoolean, Boolean(false), false},
		{"bad bool text", "maybe", KindBoolean, Unset, true},
		{"infer float", 3.0, KindUnset, Number(3), false},
		{"infer bool", false, KindUnset, Boolean(false), false},
		{"infer keeps numeric text as string", "42", KindUnset, String("42"), false},
		{"nil is unset", nil, KindNumber, Unset, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Coerce(tt.raw, tt.kind)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("Coerce(%v, %v) expected error", tt.raw, tt.kind)
				}
				return
			}
			if err != nil {
				t.Fatalf("Coerce(%v, %v): %v", tt.raw, tt.kind, err)
			}
			if got != tt.want {
				t.Errorf("Coerce(%v, %v) = %+v, want %+v", tt.raw, tt.kind, got, tt.want)
			}
		})
	}
}

func TestValueReads(t *testing.T) {
	if got := Number(2.5).AsString(); got != "2.5" {
		t.Errorf("Number(2.5).AsString() = %q", got)
	}
	if got := String("3.5").AsNumber(); got != 3.5 {
		t.Errorf("String(3.5).AsNumber() = %v", got)
	}
	if got := String("oops").AsNumber(); got != 0 {
		t.Errorf("non-numeric text AsNumber() = %v, want 0", got)
	}
	if !Number(1).AsBool() {
		t.Error("Number(1).AsBool() = false")
	}
	if Unset.AsBool() || Unset.AsString() != "" || Unset.AsNumber() != 0 {
		t.Error("Unset should read as zero values")
	}
	if Unset.Interface() != nil {
		t.Error("Unset.Interface() should be nil")
	}
}
