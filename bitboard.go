package bishop

import (
	"fmt"
	"math/bits"
	"strings"
)

// Bitboard is a set of squares packed into 64 bits, bit i standing for Square(i).
type Bitboard uint64

// --- Constants ---

const (
	NumOfSquaresInBoard = 64 // Total squares on the board.
	NumOfFiles          = 8  // Number of files (columns).
	NumOfRanks          = 8  // Number of ranks (rows).
)

// Directions for ray generation (N, NE, E, SE, S, SW, W, NW).
const (
	North = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
	NumDirections // Total number of directions = 8
)

// --- Predefined Bitboard Constants ---

const (
	EmptyBB Bitboard = 0
	FullBB  Bitboard = ^EmptyBB // All squares set

	// Files (LSB = Rank 1)
	FileABB Bitboard = 0x0101010101010101
	FileHBB Bitboard = FileABB << 7

	// Ranks (LSB = File A)
	Rank1BB Bitboard = 0xFF
	Rank8BB Bitboard = Rank1BB << (8 * 7)

	// Outer ring of the board.
	BorderBB Bitboard = FileABB | FileHBB | Rank1BB | Rank8BB

	// Long diagonals.
	MainDiagonalBB Bitboard = 0x8040201008040201 // A1-H8
	AntiDiagonalBB Bitboard = 0x0102040810204080 // A8-H1
)

// rays holds the empty-board ray in each direction from each square (excluding the square).
var rays [NumOfSquaresInBoard][NumDirections]Bitboard

func init() {
	initRays()
}

// Initializes ray tables. Rays exclude the starting square.
func initRays() {
	// Steps: N=8, NE=9, E=1, SE=-7, S=-8, SW=-9, W=-1, NW=7
	steps := [NumDirections]int{8, 9, 1, -7, -8, -9, -1, 7}
	for sq := A1; sq <= H8; sq++ {
		for dir := 0; dir < NumDirections; dir++ {
			ray := EmptyBB
			cur := int(sq)
			for {
				cur += steps[dir]
				if cur < 0 || cur >= NumOfSquaresInBoard {
					break
				}
				next := Square(cur)
				prev := Square(cur - steps[dir])
				// a step of more than one king move means the index wrapped a file
				df := abs(int(next.File()) - int(prev.File()))
				dr := abs(int(next.Rank()) - int(prev.Rank()))
				if max(df, dr) > 1 {
					break
				}
				ray |= SquareBB(next)
			}
			rays[sq][dir] = ray
		}
	}
}

// IsPositiveRayDir checks if a direction index corresponds to a positive shift (N, NE, E, NW).
func IsPositiveRayDir(dir int) bool {
	return dir == North || dir == NorthEast || dir == East || dir == NorthWest
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// --- Bitboard Manipulation ---

// SquareBB returns a bitboard with only the given square set. Returns EmptyBB for invalid squares.
func SquareBB(sq Square) Bitboard {
	if sq >= A1 && sq <= H8 {
		return 1 << sq
	}
	return EmptyBB
}

// Set sets the bit corresponding to the square. Handles invalid squares.
func (b Bitboard) Set(sq Square) Bitboard { return b | SquareBB(sq) }

// Clear clears the bit corresponding to the square. Handles invalid squares.
func (b Bitboard) Clear(sq Square) Bitboard { return b &^ SquareBB(sq) }

// Occupied checks if the square's bit is set. Handles invalid squares.
func (b Bitboard) Occupied(sq Square) bool {
	return (b & SquareBB(sq)) != 0
}

// IsEmpty checks if the bitboard is empty.
func (b Bitboard) IsEmpty() bool { return b == 0 }

// PopCount counts the number of set bits.
func (b Bitboard) PopCount() int { return bits.OnesCount64(uint64(b)) }

// LSB finds the index of the least significant bit. Returns (square, true) or (NoSquare, false).
func (b Bitboard) LSB() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(bits.TrailingZeros64(uint64(b))), true
}

// MSB finds the index of the most significant bit. Returns (square, true) or (NoSquare, false).
func (b Bitboard) MSB() (Square, bool) {
	if b == 0 {
		return NoSquare, false
	}
	return Square(NumOfSquaresInBoard - 1 - bits.LeadingZeros64(uint64(b))), true
}

// PopLSB finds and removes the least significant bit.
// Returns (square, new bitboard, true) or (NoSquare, original bitboard, false).
func (b Bitboard) PopLSB() (Square, Bitboard, bool) {
	if b == 0 {
		return NoSquare, b, false
	}
	sq := Square(bits.TrailingZeros64(uint64(b)))
	// b & (b-1) clears the LSB
	return sq, b & (b - 1), true
}

// Ray returns the precomputed ray from sq in direction dir (excluding sq).
func Ray(sq Square, dir int) Bitboard {
	if sq < A1 || sq > H8 || dir < 0 || dir >= NumDirections {
		return EmptyBB
	}
	return rays[sq][dir]
}

// Scan returns a slice of all squares corresponding to set bits, ordered LSB to MSB.
// The slice is always non-nil.
func (b Bitboard) Scan() []Square {
	squares := make([]Square, 0, b.PopCount())
	for tempBB := b; tempBB != 0; {
		sq, next, _ := tempBB.PopLSB()
		squares = append(squares, sq)
		tempBB = next
	}
	return squares
}

// Reverse reverses the bit order, mapping square i to square 63-i (a 180 degree rotation).
func (b Bitboard) Reverse() Bitboard { return Bitboard(bits.Reverse64(uint64(b))) }

// String returns the 64-bit binary string representation (MSB=H8, LSB=A1).
func (b Bitboard) String() string {
	var sb strings.Builder
	for i := 63; i >= 0; i-- {
		if (uint64(b)>>i)&1 == 1 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Draw returns a string visually representing the bitboard on a chessboard grid.
func (b Bitboard) Draw() string {
	return drawGrid(func(sq Square) byte {
		if b.Occupied(sq) {
			return 'X'
		}
		return '.'
	})
}

// drawGrid lays out one character per square, rank 8 at the top.
func drawGrid(mark func(Square) byte) string {
	var sb strings.Builder
	sb.WriteString("\n  a b c d e f g h\n")
	for r := Rank8; r >= Rank1; r-- {
		sb.WriteString(fmt.Sprintf("%d ", r+1))
		for f := FileA; f <= FileH; f++ {
			sb.WriteByte(mark(NewSquare(f, r)))
			sb.WriteByte(' ')
		}
		sb.WriteString(fmt.Sprintf("%d\n", r+1))
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}

// --- Slider Attacks ---

// generateSliderAttacks generates attacks from sq along dirs, stopping at (and including) the first blocker.
func generateSliderAttacks(sq Square, blockers Bitboard, dirs []int) Bitboard {
	if sq < A1 || sq > H8 {
		return EmptyBB
	}
	attacks := EmptyBB
	for _, dir := range dirs {
		ray := Ray(sq, dir)
		blockedRay := ray & blockers
		if blockedRay == 0 {
			attacks |= ray
			continue
		}
		var blockerSq Square
		if IsPositiveRayDir(dir) {
			blockerSq, _ = blockedRay.LSB()
		} else {
			blockerSq, _ = blockedRay.MSB()
		}
		attacks |= ray &^ Ray(blockerSq, dir)
	}
	return attacks
}

// GenerateBishopAttacks calculates bishop attacks from a square, considering blockers.
func GenerateBishopAttacks(sq Square, blockers Bitboard) Bitboard {
	return generateSliderAttacks(sq, blockers, []int{NorthEast, SouthEast, SouthWest, NorthWest})
}
