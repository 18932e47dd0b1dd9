package bishop

import (
	"errors"
	"testing"
)

func TestParseSquare(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Square
	}{
		{"27", D4},
		{"0", A1},
		{"63", H8},
		{"d4", D4},
		{"D4", D4},
		{" h8 ", H8},
		{"a1", A1},
		{"b7", B7},
	} {
		got, err := ParseSquare(tc.in)
		if err != nil {
			t.Fatalf("ParseSquare(%q): unexpected error %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParseSquare(%q): expected %s got %s", tc.in, tc.want, got)
		}
	}

	for _, in := range []string{"", "64", "-1", "1000", "i1", "a9", "a0", "d44", "xx"} {
		got, err := ParseSquare(in)
		if !errors.Is(err, ErrInvalidSquare) {
			t.Fatalf("ParseSquare(%q): expected ErrInvalidSquare got %v", in, err)
		}
		if got != NoSquare {
			t.Fatalf("ParseSquare(%q): expected NoSquare got %d", in, got)
		}
	}
}

func TestSquareFileRank(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		if NewSquare(sq.File(), sq.Rank()) != sq {
			t.Fatalf("square %d does not round trip through file and rank", sq)
		}
	}
	if D4.String() != "d4" || H8.String() != "h8" || NoSquare.String() != "-" {
		t.Fatalf("unexpected square names %s %s %s", D4, H8, NoSquare)
	}
	if int(D4) != 27 {
		t.Fatalf("expected d4 to be index 27 got %d", D4)
	}
}
