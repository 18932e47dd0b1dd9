package bishop

// edgeSquares lists the squares at which a diagonal walk terminates.
// The list is fixed data and must not be regenerated from file/rank arithmetic.
var edgeSquares = [...]Square{
	0, 1, 2, 3, 4, 5, 6, 7,
	8, 15, 16, 23, 24, 31, 32, 39, 40, 47, 48, 55,
	56, 57, 58, 59, 60, 61, 62, 63,
}

// NumOfEdgeSquares is the size of the edge table.
const NumOfEdgeSquares = len(edgeSquares)

var edgeBB = func() Bitboard {
	bb := EmptyBB
	for _, sq := range edgeSquares {
		bb = bb.Set(sq)
	}
	return bb
}()

// EdgeSquares returns a copy of the edge table in its literal order.
func EdgeSquares() []Square {
	s := make([]Square, len(edgeSquares))
	copy(s, edgeSquares[:])
	return s
}

// EdgeBB returns the edge table as a bitboard.
func EdgeBB() Bitboard { return edgeBB }

// IsEdge reports whether sq is in the edge table.
func IsEdge(sq Square) bool { return edgeBB.Occupied(sq) }
