package board

import (
	"sort"
	"testing"
)

func moveStrings(ml *MoveList) []string {
	out := make([]string, 0, ml.Len())
	for _, m := range ml.Slice() {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestMovesStartingPosition(t *testing.T) {
	// The king is boxed in, so only the four knight moves exist.
	pos := mustParseFEN(t, StartFEN)
	got := moveStrings(pos.Moves())
	want := []string{"b1a3", "b1c3", "g1f3", "g1h3"}
	if !equalStrings(got, want) {
		t.Errorf("white moves = %v, want %v", got, want)
	}

	pos.SideToMove = Black
	got = moveStrings(pos.Moves())
	want = []string{"b8a6", "b8c6", "g8f6", "g8h6"}
	if !equalStrings(got, want) {
		t.Errorf("black moves = %v, want %v", got, want)
	}
}

func TestMovesExcludeFriendlySquares(t *testing.T) {
	// Knight on d4 hemmed in by its own pawns on half its targets.
	pos := mustParseFEN(t, "k7/8/8/2P1P3/8/3N4/1P3P2/K7 w - - 0 1")
	got := moveStrings(pos.Moves())
	want := []string{
		"a1a2", "a1b1", // b2 is friendly
		"d3c1", "d3e1", "d3f4", "d3b4", // c5, e5, b2, f2 are friendly
	}
	sort.Strings(want)
	if !equalStrings(got, want) {
		t.Errorf("moves = %v, want %v", got, want)
	}
}

func TestMovesIncludeCaptures(t *testing.T) {
	pos := mustParseFEN(t, "8/8/8/8/8/2n5/8/N6k w - - 0 1")
	ml := pos.Moves()
	if !ml.Contains(NewMove(A1, C2)) {
		t.Errorf("a1c2 missing from %v", moveStrings(ml))
	}
	if !ml.Contains(NewMove(A1, B3)) {
		t.Errorf("a1b3 missing from %v", moveStrings(ml))
	}
	if ml.Len() != 2 {
		t.Errorf("move count = %d, want 2", ml.Len())
	}
}

func TestKingMoveCounts(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"corner", "8/8/8/8/8/8/8/K7 w - - 0 1", 3},
		{"edge", "8/8/8/8/8/8/8/3K4 w - - 0 1", 5},
		{"center", "8/8/8/3K4/8/8/8/8 w - - 0 1", 8},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			pos := mustParseFEN(t, tc.fen)
			ml := NewMoveList()
			pos.KingMoves(ml)
			if ml.Len() != tc.want {
				t.Errorf("king moves = %d, want %d", ml.Len(), tc.want)
			}
		})
	}
}

func TestKnightAttackTables(t *testing.T) {
	tests := []struct {
		sq   Square
		want Bitboard
	}{
		{A1, SquareBB(B3) | SquareBB(C2)},
		{H1, SquareBB(G3) | SquareBB(F2)},
		{D4, SquareBB(B3) | SquareBB(B5) | SquareBB(C2) | SquareBB(C6) |
			SquareBB(E2) | SquareBB(E6) | SquareBB(F3) | SquareBB(F5)},
		{H8, SquareBB(F7) | SquareBB(G6)},
	}

	for _, tc := range tests {
		if got := KnightAttacks(tc.sq); got != tc.want {
			t.Errorf("KnightAttacks(%v) = %016x, want %016x", tc.sq, uint64(got), uint64(tc.want))
		}
	}
}

func TestKingAttackTables(t *testing.T) {
	tests := []struct {
		sq   Square
		want Bitboard
	}{
		{A1, SquareBB(A2) | SquareBB(B1) | SquareBB(B2)},
		{E1, SquareBB(D1) | SquareBB(F1) | SquareBB(D2) | SquareBB(E2) | SquareBB(F2)},
		{D5, SquareBB(C4) | SquareBB(D4) | SquareBB(E4) |
			SquareBB(C5) | SquareBB(E5) |
			SquareBB(C6) | SquareBB(D6) | SquareBB(E6)},
	}

	for _, tc := range tests {
		if got := KingAttacks(tc.sq); got != tc.want {
			t.Errorf("KingAttacks(%v) = %016x, want %016x", tc.sq, uint64(got), uint64(tc.want))
		}
	}
}

// Every table entry must stay on the board and never include its own
// origin square.
func TestAttackTablesWellFormed(t *testing.T) {
	for sq := A1; sq <= H8; sq++ {
		if KnightAttacks(sq).IsSet(sq) {
			t.Errorf("KnightAttacks(%v) includes origin", sq)
		}
		if KingAttacks(sq).IsSet(sq) {
			t.Errorf("KingAttacks(%v) includes origin", sq)
		}
		if n := KnightAttacks(sq).PopCount(); n < 2 || n > 8 {
			t.Errorf("KnightAttacks(%v) count = %d", sq, n)
		}
		if n := KingAttacks(sq).PopCount(); n < 3 || n > 8 {
			t.Errorf("KingAttacks(%v) count = %d", sq, n)
		}
	}
}
