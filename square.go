package bishop

import (
	"fmt"
	"strconv"
	"strings"
)

// A Square is one of the 64 squares on a board, indexed rank*8 + file (A1 = 0, H8 = 63).
type Square int8

// NewSquare creates a new Square from a File and a Rank.
func NewSquare(f File, r Rank) Square {
	return Square((int(r) * NumOfFiles) + int(f))
}

// SquareFromIndex converts a plain index to a Square.
// Indices outside [0, 63] return NoSquare and ErrInvalidSquare.
func SquareFromIndex(i int) (Square, error) {
	if i < int(A1) || i > int(H8) {
		return NoSquare, fmt.Errorf("%w: %d", ErrInvalidSquare, i)
	}
	return Square(i), nil
}

// ParseSquare parses either a decimal index ("27") or algebraic notation ("d4").
func ParseSquare(s string) (Square, error) {
	s = strings.TrimSpace(s)
	if i, err := strconv.Atoi(s); err == nil {
		return SquareFromIndex(i)
	}
	s = strings.ToLower(s)
	if len(s) != 2 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	f := File(s[0] - 'a')
	r := Rank(s[1] - '1')
	if f < FileA || f > FileH || r < Rank1 || r > Rank8 {
		return NoSquare, fmt.Errorf("%w: %q", ErrInvalidSquare, s)
	}
	return NewSquare(f, r), nil
}

// Valid reports whether sq lies on the board.
func (sq Square) Valid() bool { return sq >= A1 && sq <= H8 }

// File returns the square's file.
func (sq Square) File() File {
	return File(int(sq) % NumOfFiles)
}

// Rank returns the square's rank.
func (sq Square) Rank() Rank {
	return Rank(int(sq) / NumOfFiles)
}

func (sq Square) String() string {
	if !sq.Valid() {
		return "-"
	}
	return sq.File().String() + sq.Rank().String()
}

const (
	fileChars = "abcdefgh"
	rankChars = "12345678"
)

// A Rank is the rank of a square.
type Rank int8

const (
	Rank1 Rank = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

func (r Rank) String() string {
	return rankChars[r : r+1]
}

// A File is the file of a square.
type File int8

const (
	FileA File = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

func (f File) String() string {
	return fileChars[f : f+1]
}

const (
	NoSquare Square = iota - 1
	A1
	B1
	C1
	D1
	E1
	F1
	G1
	H1
	A2
	B2
	C2
	D2
	E2
	F2
	G2
	H2
	A3
	B3
	C3
	D3
	E3
	F3
	G3
	H3
	A4
	B4
	C4
	D4
	E4
	F4
	G4
	H4
	A5
	B5
	C5
	D5
	E5
	F5
	G5
	H5
	A6
	B6
	C6
	D6
	E6
	F6
	G6
	H6
	A7
	B7
	C7
	D7
	E7
	F7
	G7
	H7
	A8
	B8
	C8
	D8
	E8
	F8
	G8
	H8
)
