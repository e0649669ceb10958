package bankacct

import (
	"reflect"
	"testing"
)

func TestCollect(t *testing.T) {
	opts := Collect([]string{"/Fblah", "/Hblah2", "/Fblah3"})

	want := Options{
		'F': []string{"blah", "blah3"},
		'H': []string{"blah2"},
	}
	if !reflect.DeepEqual(opts, want) {
		t.Errorf("Collect() = %v, want %v", opts, want)
	}
}

func TestCollect_ignoresMalformedArguments(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{"no marker", "blah"},
		{"marker only", "/"},
		{"empty", ""},
		{"marker not first", "x/F"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := Collect([]string{tc.arg})
			if len(opts) != 0 {
				t.Errorf("Collect(%q) = %v, want empty", tc.arg, opts)
			}
		})
	}
}

func TestCollect_emptyValue(t *testing.T) {
	opts := Collect([]string{"/I"})
	if got, ok := opts.Yank('I'); !ok || got != "" {
		t.Errorf("Yank('I') = %q, %v, want empty value present", got, ok)
	}
}

func TestYank_consumesInSupplyOrder(t *testing.T) {
	opts := Collect([]string{"/NA0001", "/NA0002"})

	if got, ok := opts.Yank(OptNumber); !ok || got != "A0001" {
		t.Errorf("first Yank = %q, %v, want %q", got, ok, "A0001")
	}
	if got, ok := opts.Yank(OptNumber); !ok || got != "A0002" {
		t.Errorf("second Yank = %q, %v, want %q", got, ok, "A0002")
	}
	if got, ok := opts.Yank(OptNumber); ok {
		t.Errorf("third Yank = %q, want absent", got)
	}
}

func TestYank_neverSupplied(t *testing.T) {
	opts := Collect(nil)
	if got, ok := opts.Yank(OptNumber); ok {
		t.Errorf("Yank on empty options = %q, want absent", got)
	}
}

func TestHas_exhaustedQueueStillSupplied(t *testing.T) {
	opts := Collect([]string{"/I"})
	opts.Yank(OptInfo)
	if !opts.Has(OptInfo) {
		t.Error("Has(OptInfo) = false after Yank, want true")
	}
	if opts.Has(OptReport) {
		t.Error("Has(OptReport) = true, want false")
	}
}
