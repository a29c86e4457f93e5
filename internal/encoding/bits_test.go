package encoding

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	cases := []struct {
		in   string
		n    int
		want []byte
		err  error
	}{
		{"1011", 4, []byte{1, 0, 1, 1}, nil},
		{"0000000", 7, []byte{0, 0, 0, 0, 0, 0, 0}, nil},
		{"101", 4, nil, ErrLength},
		{"", 4, nil, ErrLength},
		{"10110", 4, nil, ErrLength},
		{"10a1", 4, nil, ErrSymbol},
		{"0000002", 7, nil, ErrSymbol},
		{"1 01", 4, nil, ErrSymbol},
	}
	for _, tc := range cases {
		got, err := Parse(tc.in, tc.n)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Fatalf("Parse(%q, %d): got err %v, want %v", tc.in, tc.n, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("Parse(%q, %d): unexpected error %v", tc.in, tc.n, err)
		}
		if Format(got) != tc.in {
			t.Fatalf("Parse(%q) -> %v does not format back", tc.in, got)
		}
		for i := range tc.want {
			if got[i] != tc.want[i] {
				t.Fatalf("Parse(%q)[%d] = %d, want %d", tc.in, i, got[i], tc.want[i])
			}
		}
	}
}

func TestFlip(t *testing.T) {
	got, err := Flip("0110011", 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != "1110011" {
		t.Fatalf("got %s", got)
	}
	back, _ := Flip(got, 0)
	if back != "0110011" {
		t.Fatalf("double flip: got %s", back)
	}
	if _, err := Flip("0110011", 7); err == nil {
		t.Fatal("expected out of range error")
	}
	if _, err := Flip("0110011", -1); err == nil {
		t.Fatal("expected out of range error")
	}
	if _, err := Flip("01x", 0); !errors.Is(err, ErrSymbol) {
		t.Fatalf("expected ErrSymbol, got %v", err)
	}
}

func TestCovers(t *testing.T) {
	want := map[int][]int{
		0: {0, 2, 4, 6},
		1: {1, 2, 5, 6},
		3: {3, 4, 5, 6},
	}
	for p, set := range want {
		got := Covers(p)
		if len(got) != len(set) {
			t.Fatalf("Covers(%d) = %v, want %v", p, got, set)
		}
		for i := range set {
			if got[i] != set[i] {
				t.Fatalf("Covers(%d) = %v, want %v", p, got, set)
			}
		}
	}
}

func TestParity(t *testing.T) {
	// data 1011 laid out at 2,4,5,6
	bits := []byte{0, 0, 1, 0, 0, 1, 1}
	if got := Parity(bits, 0); got != 0 {
		t.Errorf("parity 0: got %d", got)
	}
	if got := Parity(bits, 1); got != 1 {
		t.Errorf("parity 1: got %d", got)
	}
	if got := Parity(bits, 3); got != 0 {
		t.Errorf("parity 3: got %d", got)
	}
	// the parity bit itself never contributes
	bits[1] = 1
	if got := Parity(bits, 1); got != 1 {
		t.Errorf("parity 1 with bit set: got %d", got)
	}
}
