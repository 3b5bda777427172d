package scripting

// MutationChanges re-reads each mutated path from env and reports its final
// value. Stored string values get one more templatize pass so that templates
// written into the environment by the batch resolve before the change set is
// handed to external observers. Keys are the paths as passed in; values are
// native Go types.
func MutationChanges(paths []string, env *Environment) map[string]any {
	changes := make(map[string]any, len(paths))
	for _, p := range paths {
		v, ok := env.Get(p)
		if !ok {
			changes[p] = nil
			continue
		}
		if v.Kind == KindString && IsTemplated(v.Str) {
			changes[p] = Templatize(v.Str, env).Text
			continue
		}
		changes[p] = v.Interface()
	}
	return changes
}
