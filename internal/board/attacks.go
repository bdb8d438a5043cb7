package board

// Pre-computed leaper tables. Built once at package init and read-only
// afterwards: attack bitboards per square, plus the per-square candidate
// move lists the generator appends from.
var (
	knightAttacks [64]Bitboard
	kingAttacks   [64]Bitboard

	knightMoveTable [64][]Move
	kingMoveTable   [64][]Move
)

func init() {
	initKnightAttacks()
	initKingAttacks()
	initMoveTables()
}

func initKnightAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		// Knight moves: 2+1 or 1+2 in any direction
		attacks := Empty

		// Up 2, left/right 1
		attacks |= (bb << 17) & NotFileA // NNE
		attacks |= (bb << 15) & NotFileH // NNW
		attacks |= (bb >> 17) & NotFileH // SSW
		attacks |= (bb >> 15) & NotFileA // SSE

		// Up 1, left/right 2
		attacks |= (bb << 10) & NotFileAB // ENE
		attacks |= (bb << 6) & NotFileGH  // WNW
		attacks |= (bb >> 10) & NotFileGH // WSW
		attacks |= (bb >> 6) & NotFileAB  // ESE

		knightAttacks[sq] = attacks
	}
}

func initKingAttacks() {
	for sq := A1; sq <= H8; sq++ {
		bb := SquareBB(sq)

		// King moves: 1 square in any direction
		attacks := bb.North() | bb.South()
		attacks |= bb.East() | bb.West()
		attacks |= bb.NorthEast() | bb.NorthWest()
		attacks |= bb.SouthEast() | bb.SouthWest()

		kingAttacks[sq] = attacks
	}
}

func initMoveTables() {
	for sq := A1; sq <= H8; sq++ {
		knightMoveTable[sq] = movesFromAttacks(sq, knightAttacks[sq])
		kingMoveTable[sq] = movesFromAttacks(sq, kingAttacks[sq])
	}
}

func movesFromAttacks(from Square, attacks Bitboard) []Move {
	moves := make([]Move, 0, attacks.PopCount())
	for attacks != 0 {
		moves = append(moves, NewMove(from, attacks.PopLSB()))
	}
	return moves
}

// KnightAttacks returns the knight attack bitboard for a square.
func KnightAttacks(sq Square) Bitboard {
	return knightAttacks[sq]
}

// KingAttacks returns the king attack bitboard for a square.
func KingAttacks(sq Square) Bitboard {
	return kingAttacks[sq]
}
