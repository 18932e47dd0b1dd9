// Package bishop computes the squares a diagonal mover reaches from an origin
// square on an 8x8 board indexed 0-63 (rank*8 + file).
//
// The walk is table driven: each of the four diagonal steps is repeated until
// the current square is in a fixed edge table, so the terminating square is
// part of the result. Boundary squares 0 and 63 are only visited when they are
// the origin; see Divergence for how this differs from empty-board geometry.
package bishop

import (
	"errors"
	"fmt"
)

// ErrInvalidSquare is returned for origins outside [0, 63].
var ErrInvalidSquare = errors.New("bishop: invalid square")

// A Step is the index delta of one diagonal walk.
type Step int

const (
	StepSouthEast Step = -7
	StepSouthWest Step = -9
	StepNorthWest Step = 7
	StepNorthEast Step = 9
)

// Steps lists the four walks in the order they are performed.
var Steps = [4]Step{StepSouthEast, StepSouthWest, StepNorthWest, StepNorthEast}

// inRange is the loop condition of a walk. Descending walks continue above
// square 0 and ascending walks below square 63, so neither bound is ever
// stepped onto.
func (s Step) inRange(cur int) bool {
	if s < 0 {
		return cur > int(A1)
	}
	return cur < int(H8)
}

func (s Step) String() string {
	switch s {
	case StepSouthEast:
		return "-7"
	case StepSouthWest:
		return "-9"
	case StepNorthWest:
		return "+7"
	case StepNorthEast:
		return "+9"
	}
	return fmt.Sprintf("%+d", int(s))
}

// Walk returns the squares visited by a single walk from target, in visit order.
// The target itself is the first element whenever the walk starts at all.
// An invalid target yields nil.
func Walk(target Square, step Step) []Square {
	if !target.Valid() || step == 0 {
		return nil
	}
	var visited []Square
	for cur := int(target); step.inRange(cur); cur += int(step) {
		visited = append(visited, Square(cur))
		if IsEdge(Square(cur)) {
			break
		}
	}
	return visited
}

// DiagonalReach returns the union of the four walks from target.
func DiagonalReach(target Square) (Bitboard, error) {
	if !target.Valid() {
		return EmptyBB, fmt.Errorf("%w: %d", ErrInvalidSquare, target)
	}
	reach := EmptyBB
	for _, step := range Steps {
		for _, sq := range Walk(target, step) {
			reach = reach.Set(sq)
		}
	}
	return reach, nil
}

// DiagonalSquares returns the squares of DiagonalReach in ascending order, without duplicates.
func DiagonalSquares(target Square) ([]Square, error) {
	reach, err := DiagonalReach(target)
	if err != nil {
		return nil, err
	}
	return reach.Scan(), nil
}

// Geometric returns target together with its four empty-board diagonal rays.
func Geometric(target Square) (Bitboard, error) {
	if !target.Valid() {
		return EmptyBB, fmt.Errorf("%w: %d", ErrInvalidSquare, target)
	}
	return GenerateBishopAttacks(target, EmptyBB) | SquareBB(target), nil
}

// Divergence returns the squares on which DiagonalReach and Geometric disagree.
// missing holds geometric squares the walk never visits, extra the reverse.
func Divergence(target Square) (missing, extra Bitboard, err error) {
	walked, err := DiagonalReach(target)
	if err != nil {
		return EmptyBB, EmptyBB, err
	}
	geo, _ := Geometric(target)
	return geo &^ walked, walked &^ geo, nil
}
