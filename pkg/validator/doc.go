// Package validator implements the pattern-based validation engine applied
// to user-submitted text across the academic-coordination forms: names,
// national ID numbers, institutional emails, phone numbers, passwords,
// course and center codes, free text, HTTPS URLs, and UUIDs.
//
// # Architecture
//
// Every value passes through the same ordered pipeline: the input is
// trimmed and NFD-normalized, a length guard bounds the cost of all later
// checks, an injection-marker scan rejects dangerous content regardless of
// the requested pattern, and only then does the business pattern run.
// Failure is represented entirely in the returned Result; validation never
// returns an error and never panics on bad user input.
//
// Core building blocks:
//   - Pattern – identifier naming one registered rule
//   - Result  – valid/invalid outcome with display message or sanitized value
//   - Field   – debounced live validator for a single input
//   - Form    – aggregate validator over a fixed set of named fields
//
// # Usage
//
//	res := validator.Validate(input, validator.NationalID)
//	if !res.Valid {
//	    // res.Message is ready for direct display
//	}
//
// Live single-field feedback:
//
//	field := validator.NewField(validator.PersonName,
//	    validator.WithWindow(300*time.Millisecond),
//	    validator.WithNotify(render))
//	field.Validate(keystrokes) // only the newest value in the window runs
//
// Whole-form submission:
//
//	form := validator.NewForm(map[string]validator.Pattern{
//	    "cedula": validator.NationalID,
//	    "nombre": validator.PersonName,
//	})
//	out := form.ValidateForm(values)
//	if out.Valid {
//	    // accept submission
//	}
//
// # Error Handling
//
// User-input failure is a Result with Valid false and a non-empty Message.
// Requesting an unknown Pattern, or a field name with no binding, is a
// programming error and panics so a misconfigured form is caught in
// development rather than silently rejecting or accepting everything.
//
// # Concurrency
//
// Validate is pure and goroutine-safe. Each Field and Form instance owns
// its state behind a mutex; the only asynchrony is the Field debounce
// timer, and at most one timer is pending per Field at any time.
package validator
