package validator_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elparchetipk/sicora-app-sub000/pkg/validator"
)

// notifyRecorder collects completed validation results from the timer
// goroutine so tests can assert on count and content safely.
type notifyRecorder struct {
	mu      sync.Mutex
	results []validator.Result
}

func (r *notifyRecorder) record(res validator.Result) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results = append(r.results, res)
}

func (r *notifyRecorder) snapshot() []validator.Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]validator.Result(nil), r.results...)
}

func TestField_InitialState(t *testing.T) {
	f := validator.NewField(validator.NationalID)

	res := f.Result()
	assert.True(t, res.Valid)
	assert.Empty(t, res.Message)
	assert.False(t, f.Validating())
}

func TestField_UnknownPatternPanics(t *testing.T) {
	require.Panics(t, func() {
		validator.NewField(validator.Pattern("bogus"))
	})
}

func TestField_DebouncesToNewestValue(t *testing.T) {
	rec := &notifyRecorder{}
	f := validator.NewField(validator.NationalID,
		validator.WithWindow(30*time.Millisecond),
		validator.WithNotify(rec.record))

	f.Validate("1")
	f.Validate("12")
	f.Validate("12345678")

	require.Eventually(t, func() bool {
		return !f.Validating()
	}, time.Second, 5*time.Millisecond)

	results := rec.snapshot()
	require.Len(t, results, 1, "intermediate keystrokes must never be validated")
	assert.True(t, results[0].Valid)
	assert.Equal(t, "12345678", results[0].Sanitized)

	res := f.Result()
	assert.True(t, res.Valid)
	assert.Equal(t, "12345678", res.Sanitized)
}

func TestField_ValidatingFlag(t *testing.T) {
	f := validator.NewField(validator.NationalID,
		validator.WithWindow(200*time.Millisecond))

	f.Validate("12345678")
	assert.True(t, f.Validating())

	require.Eventually(t, func() bool {
		return !f.Validating()
	}, time.Second, 5*time.Millisecond)
	assert.True(t, f.Result().Valid)
}

func TestField_InvalidValue(t *testing.T) {
	f := validator.NewField(validator.NationalID,
		validator.WithWindow(10*time.Millisecond))

	f.Validate("123")

	require.Eventually(t, func() bool {
		return !f.Validating()
	}, time.Second, 5*time.Millisecond)

	res := f.Result()
	assert.False(t, res.Valid)
	assert.Equal(t, "must contain between 7 and 10 digits", res.Message)
}

func TestField_CustomMessage(t *testing.T) {
	f := validator.NewField(validator.NationalID,
		validator.WithWindow(10*time.Millisecond),
		validator.WithFieldMessage("número de cédula inválido"))

	f.Validate("abc")

	require.Eventually(t, func() bool {
		return !f.Validating()
	}, time.Second, 5*time.Millisecond)

	assert.Equal(t, "número de cédula inválido", f.Result().Message)
}

func TestField_ResetCancelsPending(t *testing.T) {
	rec := &notifyRecorder{}
	f := validator.NewField(validator.NationalID,
		validator.WithWindow(50*time.Millisecond),
		validator.WithNotify(rec.record))

	f.Validate("123")
	f.Reset()

	assert.False(t, f.Validating())
	assert.True(t, f.Result().Valid)

	time.Sleep(150 * time.Millisecond)
	assert.Empty(t, rec.snapshot(), "canceled validation must not publish a result")
	assert.True(t, f.Result().Valid)
}

func TestField_ResetAfterResult(t *testing.T) {
	f := validator.NewField(validator.NationalID,
		validator.WithWindow(10*time.Millisecond))

	f.Validate("123")
	require.Eventually(t, func() bool {
		return !f.Validating()
	}, time.Second, 5*time.Millisecond)
	require.False(t, f.Result().Valid)

	f.Reset()
	res := f.Result()
	assert.True(t, res.Valid)
	assert.Empty(t, res.Message)
}

func TestField_ReusableAfterFiring(t *testing.T) {
	f := validator.NewField(validator.NationalID,
		validator.WithWindow(10*time.Millisecond))

	f.Validate("123")
	require.Eventually(t, func() bool {
		return !f.Validating()
	}, time.Second, 5*time.Millisecond)
	require.False(t, f.Result().Valid)

	f.Validate("12345678")
	require.Eventually(t, func() bool {
		return f.Result().Valid
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, "12345678", f.Result().Sanitized)
}

func TestField_DefaultWindowKeptForNonPositive(t *testing.T) {
	f := validator.NewField(validator.NationalID,
		validator.WithWindow(-1))

	f.Validate("12345678")
	// The default 300ms window applies, so the result cannot be ready yet.
	assert.True(t, f.Validating())

	require.Eventually(t, func() bool {
		return !f.Validating()
	}, 2*time.Second, 10*time.Millisecond)
	assert.True(t, f.Result().Valid)
}
