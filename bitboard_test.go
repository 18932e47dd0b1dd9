package bishop

import "testing"

type bitboardTestPair struct {
	initial  uint64
	reversed uint64
}

var (
	tests = []bitboardTestPair{
		{
			uint64(1),
			uint64(9223372036854775808),
		},
		{
			uint64(18446744073709551615),
			uint64(18446744073709551615),
		},
		{
			uint64(0),
			uint64(0),
		},
	}
)

func TestBitboardReverse(t *testing.T) {
	for _, p := range tests {
		r := uint64(Bitboard(p.initial).Reverse())
		if r != p.reversed {
			t.Fatalf("bitboard reverse of %s expected %s but got %s", intStr(p.initial), intStr(p.reversed), intStr(r))
		}
	}
}

func TestBitboardOccupied(t *testing.T) {
	bb := EmptyBB.Set(B3)

	if bb.Occupied(B3) != true {
		t.Fatalf("bitboard occupied of %s expected %t but got %t", bb, true, false)
	}

	if bb.Occupied(C4) != false {
		t.Fatalf("bitboard occupied of %s expected %t but got %t", bb, false, true)
	}

	if bb.Occupied(NoSquare) {
		t.Fatalf("bitboard occupied of invalid square expected false")
	}
}

func TestBitboardPopLSB(t *testing.T) {
	bb := SquareBB(A1) | SquareBB(H8)

	sq1, next1, ok1 := bb.PopLSB()
	if !ok1 || sq1 != A1 {
		t.Fatalf("PopLSB 1: expected (%s, true), got (%s, %t)", A1, sq1, ok1)
	}
	if next1 != SquareBB(H8) {
		t.Fatalf("PopLSB 1: expected remaining %s, got %s", SquareBB(H8), next1)
	}

	sq2, next2, ok2 := next1.PopLSB()
	if !ok2 || sq2 != H8 {
		t.Fatalf("PopLSB 2: expected (%s, true), got (%s, %t)", H8, sq2, ok2)
	}
	if next2 != EmptyBB {
		t.Fatalf("PopLSB 2: expected remaining %s, got %s", EmptyBB, next2)
	}

	_, _, ok3 := next2.PopLSB()
	if ok3 {
		t.Fatalf("PopLSB 3: expected (NoSquare, false), got ok=true")
	}
}

func TestBitboardScan(t *testing.T) {
	bb := SquareBB(A1) | SquareBB(B2) | SquareBB(H8)
	expected := []Square{A1, B2, H8}
	result := bb.Scan()

	if len(result) != len(expected) {
		t.Fatalf("Scan: expected %d squares, got %d", len(expected), len(result))
	}
	for i := range expected {
		if result[i] != expected[i] {
			t.Fatalf("Scan: expected %v, got %v", expected, result)
		}
	}

	empty := EmptyBB.Scan()
	if empty == nil || len(empty) != 0 {
		t.Fatalf("Scan (empty): expected empty non-nil slice, got %v", empty)
	}
}

func TestRays(t *testing.T) {
	for _, tc := range []struct {
		sq   Square
		dir  int
		want Bitboard
	}{
		{A1, NorthEast, MainDiagonalBB.Clear(A1)},
		{H8, SouthWest, MainDiagonalBB.Clear(H8)},
		{H1, NorthWest, AntiDiagonalBB.Clear(H1)},
		{A1, SouthWest, EmptyBB},
		{H4, NorthEast, EmptyBB},
		{D4, SouthEast, SquareBB(E3) | SquareBB(F2) | SquareBB(G1)},
		{NoSquare, North, EmptyBB},
	} {
		if got := Ray(tc.sq, tc.dir); got != tc.want {
			t.Fatalf("Ray(%s, %d): expected %s got %s", tc.sq, tc.dir, tc.want, got)
		}
	}
}

func TestGenerateBishopAttacks(t *testing.T) {
	// d4 on an empty board
	want := EmptyBB
	for _, sq := range []Square{A1, B2, C3, E5, F6, G7, H8, A7, B6, C5, E3, F2, G1} {
		want = want.Set(sq)
	}
	if got := GenerateBishopAttacks(D4, EmptyBB); got != want {
		t.Fatalf("bishop attacks from d4 expected %s got %s", want.Draw(), got.Draw())
	}

	// a blocker on f6 is included, g7 and h8 are not
	blocked := GenerateBishopAttacks(D4, SquareBB(F6))
	if !blocked.Occupied(F6) || blocked.Occupied(G7) || blocked.Occupied(H8) {
		t.Fatalf("blocked bishop attacks from d4 unexpected %s", blocked.Draw())
	}
}

func BenchmarkBitboardReverse(b *testing.B) {
	for i := 0; i < b.N; i++ {
		u := uint64(9223372036854775807)
		Bitboard(u).Reverse()
	}
}

func BenchmarkBitboardScan(b *testing.B) {
	bb := SquareBB(A1) | SquareBB(B2) | SquareBB(H8)
	for i := 0; i < b.N; i++ {
		bb.Scan()
	}
}

func intStr(i uint64) string {
	return Bitboard(i).String()
}
