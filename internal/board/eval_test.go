package board

import "testing"

func TestEvaluateStartingPosition(t *testing.T) {
	pos := mustParseFEN(t, StartFEN)
	r := pos.Evaluate()
	if r.Outcome != Ongoing {
		t.Fatalf("outcome = %v, want Ongoing", r.Outcome)
	}
	if r.Score != 0 {
		t.Errorf("score = %d, want 0", r.Score)
	}
	if r.Value() != 0 {
		t.Errorf("value = %d, want 0", r.Value())
	}
}

func TestEvaluateMissingKing(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want Outcome
	}{
		{"black king gone", "8/8/8/8/8/8/8/K7 w - - 0 1", WhiteWon},
		{"white king gone", "k7/8/8/8/8/8/8/8 w - - 0 1", BlackWon},
		{"black king gone despite material", "8/8/8/8/8/8/8/K6q w - - 0 1", WhiteWon},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := mustParseFEN(t, tc.fen).Evaluate()
			if r.Outcome != tc.want {
				t.Errorf("outcome = %v, want %v", r.Outcome, tc.want)
			}
		})
	}
}

func TestResultValue(t *testing.T) {
	tests := []struct {
		r    Result
		want int
	}{
		{Result{Outcome: Ongoing, Score: 250}, 250},
		{Result{Outcome: Ongoing, Score: -525}, -525},
		{Result{Outcome: WhiteWon}, WinScore},
		{Result{Outcome: BlackWon}, -WinScore},
		{Result{Outcome: WhiteWon, Score: 42}, WinScore},
	}

	for _, tc := range tests {
		if got := tc.r.Value(); got != tc.want {
			t.Errorf("Value(%v) = %d, want %d", tc.r, got, tc.want)
		}
	}
}

func TestMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want int
	}{
		{"kings only", "k7/8/8/8/8/8/8/K7 w - - 0 1", 0},
		{"extra white pawn", "k7/8/8/8/8/8/P7/K7 w - - 0 1", 100},
		{"extra black rook", "k7/r7/8/8/8/8/8/K7 w - - 0 1", -350},
		{"knight for bishop", "k7/b7/8/8/8/8/N7/K7 w - - 0 1", 350 - 525},
		{"queen up", "k7/8/8/8/8/8/Q7/K7 w - - 0 1", 1000},
		{"mixed", "k7/rq6/8/8/8/8/NP6/K7 w - - 0 1", 350 + 100 - 350 - 1000},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := mustParseFEN(t, tc.fen).Material(); got != tc.want {
				t.Errorf("material = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestEvaluateAfterKingCapture(t *testing.T) {
	// A rook taking the king flips the evaluation to decisive.
	pos := mustParseFEN(t, "k6R/8/8/8/8/8/8/K7 w - - 0 1")
	playSequence(t, pos, "h8a8")

	r := pos.Evaluate()
	if r.Outcome != WhiteWon {
		t.Errorf("outcome = %v, want WhiteWon", r.Outcome)
	}
	if r.Value() != WinScore {
		t.Errorf("value = %d, want %d", r.Value(), WinScore)
	}
}
