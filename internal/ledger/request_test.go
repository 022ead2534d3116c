package ledger

import "testing"

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"50000", "50000"},
		{" 12.5 ", "12.5"},
		{"12.5 XAF", "12.5"},
		{"1e3", "1000"},
		{".5", "0.5"},
		{"+7", "7"},
		{"-3", "-3"},
		{"12.", "12"},
		{"", "0"},
		{"abc", "0"},
		{"XAF 100", "0"},
		{"1e10000000", "0"},
		{"1e999999999", "0"},
		{"-1e10000000", "0"},
		{"1e-10000000", "0"},
		{"2e05", "200000"},
		{"1e15", "1000000000000000"},
		{"1e16", "0"},
		{"-1000000000000001", "0"},
		{"0.000000000000000000000000000000001", "0"},
	}
	for _, tc := range cases {
		if got := ParseAmount(tc.in).String(); got != tc.want {
			t.Fatalf("%q expected %s, got %s", tc.in, tc.want, got)
		}
	}
}

func TestRequestTarget(t *testing.T) {
	if _, ok := Create(BusFields{}).Target(); ok {
		t.Fatalf("create request should not have a target")
	}
	id, ok := Update(7, BusFields{}).Target()
	if !ok || id != 7 {
		t.Fatalf("update request target = %d, %v", id, ok)
	}
}
