package scripting

import (
	"fmt"
	"strings"
)

// Operator names accepted by ApplyBulk. "bind to" is rewritten at scope
// resolution time and applied here as a value copy from the bound path.
const (
	OpAssign    = "="
	OpSetting   = "setting to"
	OpAdding    = "adding"
	OpSubtract  = "subtracting"
	OpBind      = "bind to"
	OpAnchor    = "anchor to"
)

// ApplyOperation is one state mutation: write Value to Target using Operator,
// coercing to TargetType. Targets must already be owner-qualified when they
// refer to stage variables.
type ApplyOperation struct {
	Target     string `json:"target"`
	Operator   string `json:"operator"`
	Value      any    `json:"value"`
	TargetType string `json:"targetType,omitempty"`
}

// ApplyResult reports the outcome of one operation in a batch.
type ApplyResult struct {
	Target string
	Value  Value
	Err    error
}

// ApplyBulk applies operations in order against env. Later operations see
// the writes of earlier ones: each string value is templatized against the
// environment as it stands when that operation runs, not a pre-batch
// snapshot. A failing operation is recorded and skipped; the batch always
// runs to the end.
func ApplyBulk(ops []ApplyOperation, env *Environment) ([]ApplyResult, []error) {
	results := make([]ApplyResult, 0, len(ops))
	var errs []error
	for _, op := range ops {
		r := applyOne(op, env)
		if r.Err != nil {
			errs = append(errs, fmt.Errorf("apply %q: %w", op.Target, r.Err))
		}
		results = append(results, r)
	}
	return results, errs
}

func applyOne(op ApplyOperation, env *Environment) ApplyResult {
	res := ApplyResult{Target: op.Target}
	if strings.TrimSpace(op.Target) == "" {
		res.Err = fmt.Errorf("empty target")
		return res
	}

	kind, err := ParseKind(op.TargetType)
	if err != nil {
		res.Err = err
		return res
	}

	raw := op.Value
	if s, ok := raw.(string); ok && IsTemplated(s) {
		v, err := Evaluate(s, env)
		if err != nil {
			// unresolved templates degrade to the evaluated (possibly
			// empty) text rather than failing the operation
			raw = v.AsString()
		} else {
			raw = v.Interface()
		}
	}

	switch op.Operator {
	case OpAssign, OpSetting, "":
		v, err := Coerce(raw, kind)
		if err != nil {
			res.Err = err
			return res
		}
		env.Set(op.Target, v)
		res.Value = v

	case OpAdding:
		delta, err := toNumber(raw)
		if err != nil {
			res.Err = err
			return res
		}
		v := Number(env.GetNumber(op.Target) + delta)
		env.Set(op.Target, v)
		res.Value = v

	case OpSubtract:
		delta, err := toNumber(raw)
		if err != nil {
			res.Err = err
			return res
		}
		v := Number(env.GetNumber(op.Target) - delta)
		env.Set(op.Target, v)
		res.Value = v

	case OpBind, OpAnchor:
		// the value is a (scoped) variable path; the target tracks the
		// bound path's current value
		path := stringify(raw)
		v, ok := env.Get(path)
		if !ok {
			v = Unset
		}
		if kind != KindUnset {
			coerced, err := Coerce(v.Interface(), kind)
			if err != nil {
				res.Err = err
				return res
			}
			v = coerced
		}
		env.Set(op.Target, v)
		res.Value = v

	default:
		res.Err = fmt.Errorf("unknown operator %q", op.Operator)
	}
	return res
}
