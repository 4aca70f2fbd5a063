package internal

import "testing"

func TestIsTypedNil(t *testing.T) {
	type probe struct{ n int }

	var (
		nilPtr   *probe
		nilSlice []string
		nilMap   map[string]int
		nilFunc  func()
		nilChan  chan int
	)

	cases := []struct {
		name string
		val  any
		want bool
	}{
		{name: "untyped_nil", val: nil, want: true},
		{name: "nil_ptr", val: nilPtr, want: true},
		{name: "nil_slice", val: nilSlice, want: true},
		{name: "nil_map", val: nilMap, want: true},
		{name: "nil_func", val: nilFunc, want: true},
		{name: "nil_chan", val: nilChan, want: true},
		{name: "typed_nil_in_interface", val: any(nilPtr), want: true},
		{name: "non_nil_ptr", val: &probe{}, want: false},
		{name: "struct_value", val: probe{n: 1}, want: false},
		{name: "scalar", val: 123, want: false},
		{name: "empty_string", val: "", want: false},
		{name: "empty_slice", val: []string{}, want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := IsTypedNil(tc.val); got != tc.want {
				t.Fatalf("IsTypedNil(%s)=%v, want %v", tc.name, got, tc.want)
			}
		})
	}
}
