package bishop

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
)

var (
	// ErrInvalidReach is returned when a Reach cannot be parsed from text.
	ErrInvalidReach = errors.New("bishop: invalid reach text")
	// ErrInvalidTable is returned when a Table cannot be decoded from binary.
	ErrInvalidTable = errors.New("bishop: invalid number of bytes for table unmarshal binary (expected 512)")
)

// A Reach is the set of squares reachable from Origin.
type Reach struct {
	Origin  Square
	Squares Bitboard
}

// NewReach walks from origin and returns the result as a Reach.
func NewReach(origin Square) (Reach, error) {
	bb, err := DiagonalReach(origin)
	if err != nil {
		return Reach{Origin: NoSquare}, err
	}
	return Reach{Origin: origin, Squares: bb}, nil
}

// Contains reports whether sq is reachable.
func (r Reach) Contains(sq Square) bool { return r.Squares.Occupied(sq) }

// Indices returns the reachable squares as ascending plain integers.
func (r Reach) Indices() []int {
	sqs := r.Squares.Scan()
	out := make([]int, len(sqs))
	for i, sq := range sqs {
		out[i] = int(sq)
	}
	return out
}

// Rotate returns the reach rotated 180 degrees about the board centre.
func (r Reach) Rotate() Reach {
	origin := NoSquare
	if r.Origin.Valid() {
		origin = H8 - r.Origin
	}
	return Reach{Origin: origin, Squares: r.Squares.Reverse()}
}

// Draw returns a visual representation of the reach useful for debugging.
// The origin is shown as 'B', other reachable squares as 'X'.
func (r Reach) Draw() string {
	return drawGrid(func(sq Square) byte {
		switch {
		case sq == r.Origin:
			return 'B'
		case r.Squares.Occupied(sq):
			return 'X'
		}
		return '.'
	})
}

// String implements the fmt.Stringer interface and returns the
// reachable indices in the form [6 9 13].
func (r Reach) String() string {
	return fmt.Sprint(r.Indices())
}

// MarshalText implements the encoding.TextMarshaler interface.
// The format is the origin in algebraic notation, a colon and the indices: "d4: 6 9 13".
func (r Reach) MarshalText() ([]byte, error) {
	var sb strings.Builder
	sb.WriteString(r.Origin.String())
	sb.WriteByte(':')
	for _, i := range r.Indices() {
		sb.WriteByte(' ')
		sb.WriteString(strconv.Itoa(i))
	}
	return []byte(sb.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (r *Reach) UnmarshalText(text []byte) error {
	head, tail, ok := strings.Cut(string(text), ":")
	if !ok {
		return fmt.Errorf("%w: missing origin separator", ErrInvalidReach)
	}
	origin, err := ParseSquare(head)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidReach, err)
	}
	bb := EmptyBB
	for _, field := range strings.Fields(tail) {
		sq, err := ParseSquare(field)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidReach, err)
		}
		bb = bb.Set(sq)
	}
	r.Origin = origin
	r.Squares = bb
	return nil
}

// A Table holds the reach of every origin square.
// A Table is safe for concurrent use once built.
type Table struct {
	reach [NumOfSquaresInBoard]Bitboard
}

var (
	defaultTable     *Table
	defaultTableOnce sync.Once
)

// DefaultTable returns the shared table of all 64 reaches, built on first use.
func DefaultTable() *Table {
	defaultTableOnce.Do(func() {
		defaultTable = NewTable()
	})
	return defaultTable
}

// NewTable walks from every square and returns the resulting table.
func NewTable() *Table {
	t := &Table{}
	for sq := A1; sq <= H8; sq++ {
		t.reach[sq], _ = DiagonalReach(sq)
	}
	return t
}

// Reach returns the entry for origin.
func (t *Table) Reach(origin Square) (Reach, error) {
	if !origin.Valid() {
		return Reach{Origin: NoSquare}, fmt.Errorf("%w: %d", ErrInvalidSquare, origin)
	}
	return Reach{Origin: origin, Squares: t.reach[origin]}, nil
}

// Reaches returns all 64 entries ordered by origin.
func (t *Table) Reaches() []Reach {
	out := make([]Reach, 0, NumOfSquaresInBoard)
	for sq := A1; sq <= H8; sq++ {
		out = append(out, Reach{Origin: sq, Squares: t.reach[sq]})
	}
	return out
}

// MarshalBinary implements the encoding.BinaryMarshaler interface.
// Encodes the 64 reach bitboards in origin order.
func (t *Table) MarshalBinary() (data []byte, err error) {
	buf := new(bytes.Buffer)
	buf.Grow(NumOfSquaresInBoard * 8)
	err = binary.Write(buf, binary.BigEndian, t.reach[:])
	return buf.Bytes(), err
}

// UnmarshalBinary implements the encoding.BinaryUnmarshaler interface.
func (t *Table) UnmarshalBinary(data []byte) error {
	if len(data) != NumOfSquaresInBoard*8 {
		return ErrInvalidTable
	}
	for i := range t.reach {
		t.reach[i] = Bitboard(binary.BigEndian.Uint64(data[i*8 : i*8+8]))
	}
	return nil
}
