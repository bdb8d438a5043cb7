package board

// Moves generates the pseudo-legal leaper moves (knights and kings) for
// the side to move. No check or pin filtering is applied.
func (p *Position) Moves() *MoveList {
	ml := NewMoveList()
	p.KnightMoves(ml)
	p.KingMoves(ml)
	return ml
}

// KnightMoves appends the side to move's pseudo-legal knight moves to ml.
func (p *Position) KnightMoves(ml *MoveList) {
	p.leaperMoves(ml, p.Pieces[p.SideToMove][Knight], &knightMoveTable)
}

// KingMoves appends the side to move's pseudo-legal king moves to ml.
func (p *Position) KingMoves(ml *MoveList) {
	p.leaperMoves(ml, p.Pieces[p.SideToMove][King], &kingMoveTable)
}

// leaperMoves gathers each piece's precomputed candidate list, dropping
// candidates that land on a friendly piece.
func (p *Position) leaperMoves(ml *MoveList, pieces Bitboard, table *[64][]Move) {
	friendly := p.Occupied[p.SideToMove]

	for pieces != 0 {
		sq := pieces.PopLSB()
		for _, m := range table[sq] {
			if friendly&SquareBB(m.To()) == 0 {
				ml.Add(m)
			}
		}
	}
}
