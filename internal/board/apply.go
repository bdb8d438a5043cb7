package board

import "fmt"

// Rook relocation masks for the four castling variants. XORing one into
// the rook and occupancy boards lifts the rook from its corner and
// drops it on its post-castle square in a single operation.
const (
	whiteKingSideRooks  Bitboard = 0x00000000000000A0 // h1 <-> f1
	whiteQueenSideRooks Bitboard = 0x0000000000000009 // a1 <-> d1
	blackKingSideRooks  Bitboard = 0xA000000000000000 // h8 <-> f8
	blackQueenSideRooks Bitboard = 0x0900000000000000 // a8 <-> d8
)

// PlayMove applies a move to the position under full chess rules:
// captures, castling, en passant, promotion, and the move counters.
//
// The move is not checked for legality. A king could march across the
// board and take a friendly piece, and PlayMove would still clear that
// side's castling rights and flip the side to move. The only rejected
// input is a move whose origin square is empty, which is a caller bug;
// it returns an error and leaves the position untouched.
func (p *Position) PlayMove(m Move) error {
	from := m.From()
	to := m.To()
	fromBB := SquareBB(from)
	toBB := SquareBB(to)

	moving := p.PieceAt(from)
	if moving == NoPiece {
		return fmt.Errorf("play move %s: no piece on %s", m, from)
	}
	us := moving.Color()
	them := us.Other()
	pt := moving.Type()

	p.HalfMoveClock++
	if p.SideToMove == Black {
		p.FullMoveNumber++
	}
	p.SideToMove = p.SideToMove.Other()

	// A capture clears the destination from every bitboard before the
	// mover lands there.
	if p.AllOccupied&toBB != 0 {
		p.clearSquare(to)
		p.HalfMoveClock = 0
	}

	// The previous en passant target is only live for this one ply.
	passantPrev := p.EnPassant
	p.EnPassant = NoSquare

	switch pt {
	case Pawn:
		switch {
		case to == passantPrev:
			// En passant: the captured pawn sits one rank behind the
			// destination, not on it.
			capSq := to - 8
			if us == Black {
				capSq = to + 8
			}
			capBB := SquareBB(capSq)
			p.Pieces[them][Pawn] &^= capBB
			p.Occupied[them] &^= capBB
			p.AllOccupied &^= capBB
		case abs(int(to)-int(from)) == 16:
			// Double advance: the skipped square becomes capturable.
			p.EnPassant = Square((int(from) + int(to)) / 2)
		case toBB&(Rank1|Rank8) != 0:
			// Promotion. Setting the destination bit on the pawn board
			// here lets the relocation XOR below cancel it, leaving
			// only the promoted piece on the destination.
			p.Pieces[us][Pawn] |= toBB
			p.Pieces[us][m.Promotion()] |= toBB
		}
		p.HalfMoveClock = 0

	case King:
		if us == White {
			p.CastlingRights &^= WhiteKingSideCastle | WhiteQueenSideCastle
		} else {
			p.CastlingRights &^= BlackKingSideCastle | BlackQueenSideCastle
		}
		if abs(int(to)-int(from)) == 2 {
			mask := castleRookMask(us, to > from)
			p.Pieces[us][Rook] ^= mask
			p.Occupied[us] ^= mask
			p.AllOccupied ^= mask
		}
	}

	// A rook leaving its corner, or anything landing on one, voids the
	// corresponding right; a right is never re-granted.
	if (fromBB|toBB)&Corners != 0 {
		if from == A1 || to == A1 {
			p.CastlingRights &^= WhiteQueenSideCastle
		}
		if from == H1 || to == H1 {
			p.CastlingRights &^= WhiteKingSideCastle
		}
		if from == A8 || to == A8 {
			p.CastlingRights &^= BlackQueenSideCastle
		}
		if from == H8 || to == H8 {
			p.CastlingRights &^= BlackKingSideCastle
		}
	}

	// Relocate the moving piece. The destination is already vacant and
	// the origin bit is guaranteed set, so a single XOR does both ends.
	moveBB := fromBB | toBB
	p.Pieces[us][pt] ^= moveBB
	p.Occupied[us] ^= moveBB
	p.AllOccupied ^= moveBB

	return nil
}

func castleRookMask(c Color, kingSide bool) Bitboard {
	if c == White {
		if kingSide {
			return whiteKingSideRooks
		}
		return whiteQueenSideRooks
	}
	if kingSide {
		return blackKingSideRooks
	}
	return blackQueenSideRooks
}
