package scripting

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind is the runtime type of a variable value.
type Kind int

const (
	KindUnset Kind = iota
	KindString
	KindNumber
	KindBoolean
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBoolean:
		return "boolean"
	default:
		return "unset"
	}
}

// Value is a typed variable value stored in the Environment.
// The zero Value is unset.
type Value struct {
	Kind Kind
	Str  string
	Num  float64
	Bool bool
}

// Unset is the absent value. Reading a path that was never written yields Unset.
var Unset = Value{}

// Str makes a string Value.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Number makes a numeric Value.
func Number(f float64) Value { return Value{Kind: KindNumber, Num: f} }

// Boolean makes a boolean Value.
func Boolean(b bool) Value { return Value{Kind: KindBoolean, Bool: b} }

// ParseKind maps an authored targetType name to a Kind.
// Unknown names are an error so a bad operation can be reported
// without stopping the rest of its batch.
func ParseKind(targetType string) (Kind, error) {
	switch strings.TrimSpace(strings.ToLower(targetType)) {
	case "string", "text", "enum":
		return KindString, nil
	case "number", "integer", "math expression":
		return KindNumber, nil
	case "boolean", "bool":
		return KindBoolean, nil
	case "":
		return KindUnset, nil
	default:
		return KindUnset, fmt.Errorf("unknown target type %q", targetType)
	}
}

// Coerce converts a raw value into a Value of the requested kind.
// KindUnset means "infer": numbers and booleans are detected from the
// raw type or, for strings, from their text form.
func Coerce(raw any, kind Kind) (Value, error) {
	if raw == nil {
		return Unset, nil
	}
	switch kind {
	case KindString:
		return String(stringify(raw)), nil
	case KindNumber:
		f, err := toNumber(raw)
		if err != nil {
			return Unset, err
		}
		return Number(f), nil
	case KindBoolean:
		b, err := toBool(raw)
		if err != nil {
			return Unset, err
		}
		return Boolean(b), nil
	default:
		return infer(raw), nil
	}
}

// infer picks a Kind from the dynamic type of raw. String text that parses
// cleanly as a number or boolean keeps its string form; authored content
// decides typing through targetType, not through lucky parses.
func infer(raw any) Value {
	switch v := raw.(type) {
	case Value:
		return v
	case bool:
		return Boolean(v)
	case float64:
		return Number(v)
	case float32:
		return Number(float64(v))
	case int:
		return Number(float64(v))
	case int64:
		return Number(float64(v))
	case string:
		return String(v)
	default:
		return String(stringify(raw))
	}
}

func stringify(raw any) string {
	switch v := raw.(type) {
	case Value:
		return v.AsString()
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", raw)
	}
}

func toNumber(raw any) (float64, error) {
	switch v := raw.(type) {
	case Value:
		return v.AsNumber(), nil
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot coerce %q to number", v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot coerce %T to number", raw)
	}
}

func toBool(raw any) (bool, error) {
	switch v := raw.(type) {
	case Value:
		return v.AsBool(), nil
	case bool:
		return v, nil
	case float64:
		return v != 0, nil
	case int:
		return v != 0, nil
	case string:
		switch strings.TrimSpace(strings.ToLower(v)) {
		case "true", "1":
			return true, nil
		case "false", "0", "":
			return false, nil
		default:
			return false, fmt.Errorf("cannot coerce %q to boolean", v)
		}
	default:
		return false, fmt.Errorf("cannot coerce %T to boolean", raw)
	}
}

// AsString renders the value as text. Unset renders empty.
func (v Value) AsString() string {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.Bool)
	default:
		return ""
	}
}

// AsNumber reads the value as a number. Unset and non-numeric text read as 0.
func (v Value) AsNumber() float64 {
	switch v.Kind {
	case KindNumber:
		return v.Num
	case KindBoolean:
		if v.Bool {
			return 1
		}
		return 0
	case KindString:
		f, err := strconv.ParseFloat(strings.TrimSpace(v.Str), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// AsBool reads the value as a boolean. Unset reads false.
func (v Value) AsBool() bool {
	switch v.Kind {
	case KindBoolean:
		return v.Bool
	case KindNumber:
		return v.Num != 0
	case KindString:
		b, err := toBool(v.Str)
		return err == nil && b
	default:
		return false
	}
}

// Interface unwraps the value to its native Go type for serialization
// and for binding into condition expressions. Unset unwraps to nil.
func (v Value) Interface() any {
	switch v.Kind {
	case KindString:
		return v.Str
	case KindNumber:
		return v.Num
	case KindBoolean:
		return v.Bool
	default:
		return nil
	}
}
