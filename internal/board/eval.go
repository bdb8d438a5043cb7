package board

// Outcome tags the state of the game as seen by the evaluator.
type Outcome uint8

const (
	Ongoing Outcome = iota
	WhiteWon
	BlackWon
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case WhiteWon:
		return "WhiteWon"
	case BlackWon:
		return "BlackWon"
	default:
		return "Ongoing"
	}
}

// Result is an evaluation outcome: either an ongoing game with a
// material score, or a decisive result. Modeling decisive results as a
// tag rather than an integer sentinel keeps them out of score
// arithmetic.
type Result struct {
	Outcome Outcome
	Score   int // centipawns from White's view; meaningful only when Ongoing
}

// WinScore bounds every material score; Value maps decisive outcomes
// onto it for callers that need a single comparable number.
const WinScore = 1_000_000

// Value collapses the result to a comparable integer from White's view.
func (r Result) Value() int {
	switch r.Outcome {
	case WhiteWon:
		return WinScore
	case BlackWon:
		return -WinScore
	default:
		return r.Score
	}
}

// Evaluate scores the position by material count. A missing king is the
// terminal signal: the game is already decided for the other side. This
// is not checkmate detection.
func (p *Position) Evaluate() Result {
	if p.Pieces[White][King] == 0 {
		return Result{Outcome: BlackWon}
	}
	if p.Pieces[Black][King] == 0 {
		return Result{Outcome: WhiteWon}
	}
	return Result{Outcome: Ongoing, Score: p.Material()}
}

// Material returns the material balance in centipawns, positive when
// White is ahead. Kings are excluded.
func (p *Position) Material() int {
	score := 0
	for pt := Pawn; pt < King; pt++ {
		score += p.Pieces[White][pt].PopCount() * PieceValue[pt]
		score -= p.Pieces[Black][pt].PopCount() * PieceValue[pt]
	}
	return score
}
