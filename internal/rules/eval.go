package rules

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/expr-lang/expr"

	"github.com/jtrask/stagehand/internal/activity"
	"github.com/jtrask/stagehand/internal/check"
	"github.com/jtrask/stagehand/internal/scripting"
)

// Evaluate runs every enabled rule's conditions against env and returns the
// fired results in priority order. When no authored rule fires, the default
// rules fire instead so a check cycle always has a verdict. Condition
// evaluation errors disable the affected rule for the cycle and are
// reported alongside the results.
func (e *Engine) Evaluate(ctx context.Context, env *scripting.Environment, tree activity.Tree) ([]check.RuleResult, []error) {
	var fired []check.RuleResult
	var defaults []check.RuleResult
	var errs []error

	for _, r := range e.rules {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if r.Disabled {
			continue
		}
		ok, err := e.conditionsHold(r, env, tree)
		if err != nil {
			errs = append(errs, fmt.Errorf("rule %q: %w", r.Name, err))
			continue
		}
		if !ok {
			continue
		}
		result := check.RuleResult{Name: r.Name, Correct: r.Correct, Actions: r.Actions}
		if r.Default {
			defaults = append(defaults, result)
		} else {
			fired = append(fired, result)
		}
	}

	if len(fired) == 0 {
		return defaults, errs
	}
	return fired, errs
}

// conditionsHold evaluates the rule's conditions as a conjunction. A rule
// with no conditions holds.
func (e *Engine) conditionsHold(r Rule, env *scripting.Environment, tree activity.Tree) (bool, error) {
	for _, cond := range r.Conditions {
		ok, err := evalCondition(cond, env, tree)
		if err != nil {
			return false, fmt.Errorf("condition %q: %w", cond, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// evalCondition resolves the {path} placeholders in cond to typed literals
// (scoping unqualified stage references first) and evaluates the remaining
// expression with expr. A placeholder with no value inlines as the type's
// zero so comparisons behave like the authored runtime.
func evalCondition(cond string, env *scripting.Environment, tree activity.Tree) (bool, error) {
	scoped, err := activity.ScopeValue(cond, "", tree)
	if err != nil {
		return false, err
	}

	inlined := scoped
	for _, ph := range scripting.Placeholders(scoped) {
		v, evalErr := scripting.Evaluate(ph, env)
		var lit string
		if evalErr != nil {
			lit = `""`
		} else {
			lit = literalFor(v)
		}
		inlined = strings.Replace(inlined, ph, lit, 1)
	}

	program, err := expr.Compile(inlined, expr.AsBool())
	if err != nil {
		return false, fmt.Errorf("compile: %w", err)
	}
	out, err := expr.Run(program, nil)
	if err != nil {
		return false, fmt.Errorf("eval: %w", err)
	}
	b, ok := out.(bool)
	if !ok {
		return false, fmt.Errorf("condition is not boolean (got %T)", out)
	}
	return b, nil
}

// literalFor renders a typed value as an expr literal.
func literalFor(v scripting.Value) string {
	switch v.Kind {
	case scripting.KindString:
		return strconv.Quote(v.Str)
	case scripting.KindNumber, scripting.KindBoolean:
		return v.AsString()
	default:
		return `""`
	}
}
