package statkit

import (
	"errors"
	"testing"

	"github.com/longbridgeapp/assert"

	"github.com/hyp3rd/statkit/internal/sentinel"
)

func TestRegistry_Lookup(t *testing.T) {
	tests := []struct {
		name        string
		stat        string
		expectedErr error
	}{
		{
			name: "lookup mean",
			stat: StatMean,
		},
		{
			name: "lookup stddev",
			stat: StatStdDev,
		},
		{
			name: "lookup median",
			stat: StatMedian,
		},
		{
			name: "lookup l2",
			stat: StatL2,
		},
		{
			name:        "lookup unknown statistic",
			stat:        "mode",
			expectedErr: sentinel.ErrStatNotFound,
		},
		{
			name:        "lookup empty name",
			stat:        "",
			expectedErr: sentinel.ErrParamCannotBeEmpty,
		},
	}

	registry := NewRegistry()

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			fn, err := registry.Lookup(test.stat)
			if test.expectedErr != nil {
				assert.True(t, errors.Is(err, test.expectedErr))
				assert.Nil(t, fn)
			} else {
				assert.Nil(t, err)
				assert.True(t, fn != nil)
			}
		})
	}
}

func TestRegistry_Register(t *testing.T) {
	registry := NewEmptyRegistry()

	if err := registry.Register("", Mean); !errors.Is(err, sentinel.ErrParamCannotBeEmpty) {
		t.Errorf("expected ErrParamCannotBeEmpty, got %v", err)
	}

	if err := registry.Register("mean", nil); !errors.Is(err, sentinel.ErrNilStatFn) {
		t.Errorf("expected ErrNilStatFn, got %v", err)
	}

	count := func(nums []float64) (float64, bool) {
		return float64(len(nums)), true
	}

	if err := registry.Register("count", count); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fn, err := registry.Lookup("count")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, ok := fn([]float64{1.0, 2.0, 3.0})
	if !ok || value != 3.0 {
		t.Errorf("expected (3, true), got (%v, %v)", value, ok)
	}

	// Re-registering a name overwrites the previous function.
	if err := registry.Register("count", Mean); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fn, err = registry.Lookup("count")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	value, ok = fn([]float64{1.0, 2.0, 3.0})
	if !ok || value != 2.0 {
		t.Errorf("expected (2, true), got (%v, %v)", value, ok)
	}
}

func TestRegistry_Names(t *testing.T) {
	registry := NewRegistry()
	assert.Equal(t, []string{StatL2, StatMean, StatMedian, StatStdDev}, registry.Names())

	empty := NewEmptyRegistry()
	assert.Equal(t, 0, len(empty.Names()))
}

func TestNewEmptyRegistry(t *testing.T) {
	registry := NewEmptyRegistry()

	_, err := registry.Lookup(StatMean)
	assert.True(t, errors.Is(err, sentinel.ErrStatNotFound))
}
