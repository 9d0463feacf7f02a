// Package game converts compact pieces to and from the piece values of
// github.com/notnil/chess. White is the first side, black the second.
package game

import (
	"github.com/notnil/chess"
	"github.com/pkg/errors"

	"github.com/notation"
	"github.com/notation/epin"
	"github.com/notation/pin"
)

// ErrNotChessPiece is the cause of errors for identifiers that have no
// orthodox chess counterpart.
var ErrNotChessPiece = errors.New("no chess piece")

var chessTypes = map[chess.PieceType]pin.Type{
	chess.King:   pin.K,
	chess.Queen:  pin.Q,
	chess.Rook:   pin.R,
	chess.Bishop: pin.B,
	chess.Knight: pin.N,
	chess.Pawn:   pin.P,
}

var chessPieces = map[pin.Identifier]chess.Piece{
	pin.MustParse("K"): chess.WhiteKing,
	pin.MustParse("Q"): chess.WhiteQueen,
	pin.MustParse("R"): chess.WhiteRook,
	pin.MustParse("B"): chess.WhiteBishop,
	pin.MustParse("N"): chess.WhiteKnight,
	pin.MustParse("P"): chess.WhitePawn,
	pin.MustParse("k"): chess.BlackKing,
	pin.MustParse("q"): chess.BlackQueen,
	pin.MustParse("r"): chess.BlackRook,
	pin.MustParse("b"): chess.BlackBishop,
	pin.MustParse("n"): chess.BlackKnight,
	pin.MustParse("p"): chess.BlackPawn,
}

// Side maps a chess colour onto a side.
func Side(c chess.Color) (notation.Side, error) {
	switch c {
	case chess.White:
		return notation.First, nil
	case chess.Black:
		return notation.Second, nil
	}
	return 0, notation.ArgumentError("color", c)
}

// FromChessPiece returns the normal, native identifier of p.
func FromChessPiece(p chess.Piece) (epin.Identifier, error) {
	t, ok := chessTypes[p.Type()]
	if !ok {
		return epin.Identifier{}, errors.Wrapf(ErrNotChessPiece, "piece type %v", p.Type())
	}
	side, err := Side(p.Color())
	if err != nil {
		return epin.Identifier{}, err
	}
	return epin.New(t, side, notation.Normal, true)
}

// ToChessPiece returns the chess piece of id. Only normal, native kings,
// queens, rooks, bishops, knights and pawns have one.
func ToChessPiece(id epin.Identifier) (chess.Piece, error) {
	if !id.Native() || !id.Normal() {
		return chess.NoPiece, errors.Wrapf(ErrNotChessPiece, "%s carries modifiers", id)
	}
	p, ok := chessPieces[id.PIN()]
	if !ok {
		return chess.NoPiece, errors.Wrapf(ErrNotChessPiece, "%s", id)
	}
	return p, nil
}

// SquareMap returns the occupied squares of b as compact identifiers.
func SquareMap(b *chess.Board) (map[chess.Square]epin.Identifier, error) {
	m := make(map[chess.Square]epin.Identifier)
	for sq, p := range b.SquareMap() {
		if p == chess.NoPiece {
			continue
		}
		id, err := FromChessPiece(p)
		if err != nil {
			return nil, errors.WithMessagef(err, "square %s", sq)
		}
		m[sq] = id
	}
	return m, nil
}
