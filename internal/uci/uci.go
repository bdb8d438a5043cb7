// Package uci implements the Universal Chess Interface protocol over a
// reader and a writer, with a producer goroutine validating input lines
// and a consumer goroutine owning the game state.
package uci

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/heraldchess/herald/internal/board"
	"github.com/heraldchess/herald/internal/diagram"
	"github.com/heraldchess/herald/internal/storage"
)

// commandPatterns lists every accepted command shape. A line matching
// none of them is discarded by the producer before it reaches the
// consumer.
var commandPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^(uci|isready|ucinewgame|stop|ponderhit|d|draw)$`),
	regexp.MustCompile(`^debug (on|off)$`),
	regexp.MustCompile(`^position (startpos|fen( \S+){6})( moves( [a-h][1-8][a-h][1-8][nbrqNBRQ]?)+)?$`),
	regexp.MustCompile(`^go(\s.*)?$`),
	regexp.MustCompile(`^setoption name \S+( \S+)*( value \S+( \S+)*)?$`),
}

func validCommand(line string) bool {
	for _, p := range commandPatterns {
		if p.MatchString(line) {
			return true
		}
	}
	return false
}

// UCI owns the game state and dispatches validated commands. Only the
// consumer goroutine touches its fields, so no locking is needed.
type UCI struct {
	position *board.Position
	store    *storage.Store
	out      io.Writer

	debug       bool
	movesPlayed int
}

// New creates a UCI handler writing responses to out. The store may be
// nil, in which case options and game statistics are not persisted.
func New(out io.Writer, store *storage.Store) *UCI {
	return &UCI{
		position: board.NewPosition(),
		store:    store,
		out:      out,
	}
}

// Run reads commands from r until "quit" or EOF. The producer scans
// and validates lines, the consumer applies them in arrival order.
func Run(r io.Reader, w io.Writer, store *storage.Store) {
	u := New(w, store)
	commands := make(chan string)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(commands)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			if line == "" {
				continue
			}
			if line == "quit" {
				return
			}
			if !validCommand(line) {
				continue
			}
			commands <- line
		}
	}()

	for line := range commands {
		u.dispatch(line)
	}
	wg.Wait()
}

// dispatch routes one validated command line to its handler.
func (u *UCI) dispatch(line string) {
	parts := strings.Fields(line)
	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "uci":
		u.handleUCI()
	case "debug":
		u.debug = args[0] == "on"
	case "isready":
		fmt.Fprintln(u.out, "readyok")
	case "ucinewgame":
		u.handleNewGame()
	case "position":
		u.handlePosition(args)
	case "go":
		u.handleGo()
	case "stop", "ponderhit":
		// Accepted for protocol compatibility; the move choice is
		// instantaneous, so there is nothing to interrupt.
	case "setoption":
		u.handleSetOption(args)
	case "d":
		fmt.Fprintln(u.out, u.position.String())
	case "draw":
		u.handleDraw()
	}
}

// handleUCI responds to the "uci" command.
func (u *UCI) handleUCI() {
	fmt.Fprintln(u.out, "id name Herald")
	fmt.Fprintln(u.out, "id author Herald Team")
	fmt.Fprintln(u.out)
	fmt.Fprintln(u.out, "option name DiagramDir type string default <empty>")
	fmt.Fprintln(u.out, "uciok")
}

// handleNewGame records the outcome of the previous game, if any moves
// were played, and resets to the starting position.
func (u *UCI) handleNewGame() {
	if u.store != nil && u.movesPlayed > 0 {
		outcome := storage.OutcomeUnfinished
		switch u.position.Evaluate().Outcome {
		case board.WhiteWon:
			outcome = storage.OutcomeWhiteWin
		case board.BlackWon:
			outcome = storage.OutcomeBlackWin
		}
		if err := u.store.RecordGame(outcome); err != nil {
			fmt.Fprintf(os.Stderr, "info string failed to record game: %v\n", err)
		}
	}

	u.position = board.NewPosition()
	u.movesPlayed = 0
}

// handlePosition parses and sets up a position.
// Formats:
//   - position startpos
//   - position startpos moves e2e4 e7e5
//   - position fen <fen>
//   - position fen <fen> moves e2e4
func (u *UCI) handlePosition(args []string) {
	// Find the "moves" keyword; everything after it is move strings.
	moveStart := len(args)
	fenEnd := len(args)
	for i, arg := range args {
		if arg == "moves" {
			moveStart = i + 1
			fenEnd = i
			break
		}
	}

	var pos *board.Position
	if args[0] == "startpos" {
		pos = board.NewPosition()
	} else {
		p, err := board.ParseFEN(strings.Join(args[1:fenEnd], " "))
		if err != nil {
			fmt.Fprintf(u.out, "info string invalid fen: %v\n", err)
			return
		}
		pos = p
	}

	played := 0
	for _, moveStr := range args[moveStart:] {
		move, err := board.ParseMove(moveStr, pos)
		if err != nil {
			fmt.Fprintf(u.out, "info string invalid move %s: %v\n", moveStr, err)
			return
		}
		if err := pos.PlayMove(move); err != nil {
			fmt.Fprintf(u.out, "info string cannot play %s: %v\n", moveStr, err)
			return
		}
		played++
	}

	u.position = pos
	u.movesPlayed = played
	if u.debug {
		fmt.Fprintf(os.Stderr, "info string position set: %s\n", pos.ToFEN())
	}
}

// handleGo picks the move whose resulting position scores best for the
// side to move, looking one ply ahead. Clock and depth arguments are
// accepted by the command grammar but have nothing to steer here.
func (u *UCI) handleGo() {
	best, score := u.bestMove()
	if best == board.NoMove {
		fmt.Fprintln(u.out, "bestmove 0000")
		return
	}
	fmt.Fprintf(u.out, "info depth 1 score cp %d pv %s\n", score, best)
	fmt.Fprintf(u.out, "bestmove %s\n", best)
}

// bestMove evaluates every generated move on a copy of the position
// and returns the best one with its score from the mover's view.
func (u *UCI) bestMove() (board.Move, int) {
	moves := u.position.Moves()

	best := board.NoMove
	bestScore := 0
	for i := 0; i < moves.Len(); i++ {
		m := moves.Get(i)

		next := u.position.Copy()
		if err := next.PlayMove(m); err != nil {
			continue
		}

		score := next.Evaluate().Value()
		if u.position.SideToMove == board.Black {
			score = -score
		}
		if best == board.NoMove || score > bestScore {
			best = m
			bestScore = score
		}
	}

	return best, bestScore
}

// handleSetOption processes "setoption name <name> [value <value>]".
func (u *UCI) handleSetOption(args []string) {
	var name, value string
	readingName := false
	readingValue := false

	for _, arg := range args {
		switch arg {
		case "name":
			readingName = true
			readingValue = false
		case "value":
			readingName = false
			readingValue = true
		default:
			if readingName {
				if name != "" {
					name += " "
				}
				name += arg
			} else if readingValue {
				if value != "" {
					value += " "
				}
				value += arg
			}
		}
	}
	if name == "" {
		return
	}

	if u.store != nil {
		if err := u.store.SetOption(name, value); err != nil {
			fmt.Fprintf(os.Stderr, "info string failed to save option: %v\n", err)
		}
	}
}

// handleDraw writes an SVG diagram of the current position.
func (u *UCI) handleDraw() {
	dir := ""
	if u.store != nil {
		if prefs, err := u.store.LoadPreferences(); err == nil {
			dir = prefs.DiagramDir
			if dir == "" {
				dir = prefs.Options["DiagramDir"]
			}
		}
	}
	if dir == "" {
		d, err := storage.DataDir()
		if err != nil {
			fmt.Fprintf(u.out, "info string cannot resolve diagram dir: %v\n", err)
			return
		}
		dir = d
	}

	path := filepath.Join(dir, fmt.Sprintf("herald-%d.svg", time.Now().UnixNano()))
	f, err := os.Create(path)
	if err != nil {
		fmt.Fprintf(u.out, "info string cannot create diagram: %v\n", err)
		return
	}
	diagram.Write(f, u.position)
	if err := f.Close(); err != nil {
		fmt.Fprintf(u.out, "info string cannot write diagram: %v\n", err)
		return
	}

	fmt.Fprintf(u.out, "info string diagram written to %s\n", path)
}
