package validator

import (
	"fmt"
	"maps"
	"slices"
	"sync"
)

// Form aggregates validation across a fixed set of named fields, each
// bound to one pattern at construction. The binding is immutable for the
// Form's lifetime; fields cannot be added or removed afterwards.
type Form struct {
	fields map[string]Pattern

	mu      sync.Mutex
	results map[string]Result
}

// FormResult is the atomic outcome of validating every bound field at
// once, the picture a submit handler inspects before accepting input.
type FormResult struct {
	Results map[string]Result
	Valid   bool
}

// NewForm binds each field name to a pattern. It panics if any bound
// pattern is unknown.
func NewForm(fields map[string]Pattern) *Form {
	bound := make(map[string]Pattern, len(fields))
	for name, p := range fields {
		lookup(p)
		bound[name] = p
	}
	return &Form{
		fields:  bound,
		results: make(map[string]Result, len(bound)),
	}
}

// boundPattern panics for names with no binding: validating an unknown
// field is a configuration error, distinct from a failing validation.
func (f *Form) boundPattern(name string) Pattern {
	p, ok := f.fields[name]
	if !ok {
		panic(fmt.Sprintf("validator: no pattern bound to field %q", name))
	}
	return p
}

// ValidateField validates one field against its bound pattern, records the
// result, and returns it.
func (f *Form) ValidateField(name, value string) Result {
	res := Validate(value, f.boundPattern(name))

	f.mu.Lock()
	f.results[name] = res
	f.mu.Unlock()

	return res
}

// ValidateForm validates every bound field in one pass, with no
// short-circuiting between fields, and replaces all stored state. Names
// missing from values validate the empty string; a value keyed by an
// unbound name panics.
func (f *Form) ValidateForm(values map[string]string) FormResult {
	for name := range values {
		f.boundPattern(name)
	}

	results := make(map[string]Result, len(f.fields))
	valid := true
	for name, p := range f.fields {
		res := Validate(values[name], p)
		results[name] = res
		valid = valid && res.Valid
	}

	f.mu.Lock()
	f.results = maps.Clone(results)
	f.mu.Unlock()

	return FormResult{Results: results, Valid: valid}
}

// Reset discards every stored result. Valid reports false again until the
// next validation.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.results = make(map[string]Result, len(f.fields))
}

// Valid reports whole-form validity: false until at least one field has
// been validated, then the conjunction of every stored result.
func (f *Form) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.results) == 0 {
		return false
	}
	for _, res := range f.results {
		if !res.Valid {
			return false
		}
	}
	return true
}

// FieldResult returns the last stored result for name. ok is false when
// the field has not been validated since construction or the last Reset.
func (f *Form) FieldResult(name string) (res Result, ok bool) {
	f.boundPattern(name)

	f.mu.Lock()
	defer f.mu.Unlock()
	res, ok = f.results[name]
	return res, ok
}

// Fields returns the bound field names in sorted order.
func (f *Form) Fields() []string {
	names := slices.Collect(maps.Keys(f.fields))
	slices.Sort(names)
	return names
}
