package scripting

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/expr-lang/expr"
)

// ErrUnresolvedPath reports a placeholder whose path has no value in the
// environment. Callers substitute empty text and keep going; it is a
// diagnostic, never a user-facing failure.
var ErrUnresolvedPath = errors.New("unresolved variable path")

// placeholderRe matches {...} placeholders with no nested braces.
var placeholderRe = regexp.MustCompile(`\{([^{}]*)\}`)

// pathTokenRe matches variable path tokens inside a placeholder expression,
// e.g. stage.input.value or q-1|session.attemptNumber.
var pathTokenRe = regexp.MustCompile(`[A-Za-z_][A-Za-z0-9_-]*(\|[A-Za-z_])?[A-Za-z0-9_.|-]*`)

// Placeholders returns the {...} placeholders in text, braces included,
// in order of appearance.
func Placeholders(text string) []string {
	return placeholderRe.FindAllString(text, -1)
}

// IsTemplated reports whether text should be treated as containing variable
// placeholders. A value that opens with `{"` is raw JSON content that merely
// happens to start with a brace; it is never templated.
func IsTemplated(text string) bool {
	if strings.HasPrefix(text, `{"`) {
		return false
	}
	return strings.Contains(text, "{") && strings.Contains(text, "}")
}

// TemplateResult carries the rendered text plus any resolution errors.
// Errors never abort rendering: each failed placeholder degrades to empty.
type TemplateResult struct {
	Text   string
	Errors []error
}

// Templatize resolves every {path} placeholder in text against env and
// substitutes its value. Placeholder contents that are not a plain path are
// evaluated as an expression after inlining any path tokens that resolve
// (so "{stage.a.score} + 1" and "{stage.a.score + 1}" both work).
// Unresolvable placeholders substitute empty text and are recorded.
func Templatize(text string, env *Environment) TemplateResult {
	res := TemplateResult{Text: text}
	if !IsTemplated(text) {
		return res
	}

	res.Text = placeholderRe.ReplaceAllStringFunc(text, func(m string) string {
		inner := strings.TrimSpace(m[1 : len(m)-1])
		if inner == "" {
			return m
		}
		v, err := resolvePlaceholder(inner, env)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("%q: %w", inner, err))
			return ""
		}
		return v.AsString()
	})
	return res
}

// Evaluate resolves a single templated value to a typed Value. Text that is
// exactly one placeholder keeps the stored value's type; anything else
// renders to a string through Templatize.
func Evaluate(text string, env *Environment) (Value, error) {
	if !IsTemplated(text) {
		return String(text), nil
	}
	trimmed := strings.TrimSpace(text)
	if m := placeholderRe.FindString(trimmed); m == trimmed {
		inner := strings.TrimSpace(trimmed[1 : len(trimmed)-1])
		v, err := resolvePlaceholder(inner, env)
		if err != nil {
			return Unset, fmt.Errorf("%q: %w", inner, err)
		}
		return v, nil
	}
	res := Templatize(text, env)
	if len(res.Errors) > 0 {
		return String(res.Text), res.Errors[0]
	}
	return String(res.Text), nil
}

// resolvePlaceholder resolves the contents of one {...} placeholder:
// first as a direct environment path, then as an expression with resolvable
// path tokens inlined.
func resolvePlaceholder(inner string, env *Environment) (Value, error) {
	if v, ok := env.Get(inner); ok {
		return v, nil
	}
	if !looksLikeExpression(inner) {
		return Unset, ErrUnresolvedPath
	}
	return evalExpression(inner, env)
}

// looksLikeExpression reports whether s contains operators beyond a plain
// dotted (or scoped) variable path.
func looksLikeExpression(s string) bool {
	return strings.ContainsAny(s, "+-*/%()<>=!&, ")
}

// evalExpression inlines resolvable path tokens and hands the rest to expr.
// Path tokens with dots or scope qualifiers are not legal expr identifiers,
// so they are substituted textually before compilation.
func evalExpression(src string, env *Environment) (Value, error) {
	rewritten := pathTokenRe.ReplaceAllStringFunc(src, func(tok string) string {
		v, ok := env.Get(tok)
		if !ok {
			return tok
		}
		switch v.Kind {
		case KindString:
			return fmt.Sprintf("%q", v.Str)
		default:
			return v.AsString()
		}
	})

	program, err := expr.Compile(rewritten)
	if err != nil {
		return Unset, fmt.Errorf("compile expression: %w", err)
	}
	out, err := expr.Run(program, nil)
	if err != nil {
		return Unset, fmt.Errorf("eval expression: %w", err)
	}
	return infer(out), nil
}
