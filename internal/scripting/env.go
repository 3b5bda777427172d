package scripting

import (
	"sort"
	"strings"
	"sync"
)

// Environment is the session-scoped variable store. Keys are fully-qualified
// variable paths: either globals like "session.attemptNumber" or
// activity-scoped paths like "activity-1|stage.input.value".
//
// One Environment exists per lesson session. Check cycles for a session are
// serialized by the session, but saves from part collaborators can land
// between cycles, so all access goes through the mutex.
type Environment struct {
	mu   sync.Mutex
	vars map[string]Value
}

// NewEnvironment creates an empty Environment.
func NewEnvironment() *Environment {
	return &Environment{vars: make(map[string]Value)}
}

// Get returns the value stored at path. Missing paths return Unset, false.
func (e *Environment) Get(path string) (Value, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	v, ok := e.vars[path]
	if !ok {
		return Unset, false
	}
	return v, true
}

// GetNumber reads path as a number, treating a missing value as 0.
func (e *Environment) GetNumber(path string) float64 {
	v, _ := e.Get(path)
	return v.AsNumber()
}

// Set stores v at path, replacing any previous value.
func (e *Environment) Set(path string, v Value) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.vars[path] = v
}

// Delete removes path from the environment.
func (e *Environment) Delete(path string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	delete(e.vars, path)
}

// Snapshot returns a copy of the full variable map.
func (e *Environment) Snapshot() map[string]Value {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make(map[string]Value, len(e.vars))
	for k, v := range e.vars {
		out[k] = v
	}
	return out
}

// LocalizedSnapshot returns the variables visible to the given activities:
// globals (paths without an activity qualifier) plus every path scoped to
// one of the ids. Scoped paths are present both under their full key and
// under their bare alias so part collaborators can read either form. When
// two activities in the list write the same bare alias, the later id in
// activityIDs wins.
func (e *Environment) LocalizedSnapshot(activityIDs []string) map[string]Value {
	e.mu.Lock()
	defer e.mu.Unlock()

	out := make(map[string]Value)
	for k, v := range e.vars {
		if !strings.Contains(k, "|") {
			out[k] = v
		}
	}
	for _, id := range activityIDs {
		prefix := id + "|"
		// deterministic alias order within one activity
		keys := make([]string, 0)
		for k := range e.vars {
			if strings.HasPrefix(k, prefix) {
				keys = append(keys, k)
			}
		}
		sort.Strings(keys)
		for _, k := range keys {
			out[k] = e.vars[k]
			out[strings.TrimPrefix(k, prefix)] = e.vars[k]
		}
	}
	return out
}

// Len reports the number of stored variables.
func (e *Environment) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.vars)
}
