// Package diagram renders a position as an SVG board diagram.
package diagram

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/heraldchess/herald/internal/board"
)

const (
	squareSize = 45
	boardSize  = 8 * squareSize
	margin     = 20
)

const (
	lightFill = "fill:#f0d9b5"
	darkFill  = "fill:#b58863"
	whiteText = "text-anchor:middle;font-size:30px;font-family:sans-serif;fill:#ffffff;stroke:#000000;stroke-width:0.6"
	blackText = "text-anchor:middle;font-size:30px;font-family:sans-serif;fill:#000000"
	labelText = "text-anchor:middle;font-size:12px;font-family:sans-serif;fill:#555555"
)

// Write renders pos as an SVG document on w. White is drawn at the
// bottom regardless of the side to move.
func Write(w io.Writer, pos *board.Position) {
	canvas := svg.New(w)
	canvas.Start(boardSize+2*margin, boardSize+2*margin)

	for rank := 7; rank >= 0; rank-- {
		for file := 0; file < 8; file++ {
			x := margin + file*squareSize
			y := margin + (7-rank)*squareSize

			fill := darkFill
			if (file+rank)%2 == 1 {
				fill = lightFill
			}
			canvas.Rect(x, y, squareSize, squareSize, fill)

			piece := pos.PieceAt(board.NewSquare(file, rank))
			if piece == board.NoPiece {
				continue
			}
			style := blackText
			if piece.Color() == board.White {
				style = whiteText
			}
			canvas.Text(x+squareSize/2, y+squareSize-11, piece.String(), style)
		}
	}

	// File and rank labels along the bottom and left edges.
	for file := 0; file < 8; file++ {
		x := margin + file*squareSize + squareSize/2
		canvas.Text(x, margin+boardSize+14, fmt.Sprintf("%c", 'a'+file), labelText)
	}
	for rank := 0; rank < 8; rank++ {
		y := margin + (7-rank)*squareSize + squareSize/2 + 4
		canvas.Text(margin/2, y, fmt.Sprintf("%d", rank+1), labelText)
	}

	canvas.End()
}
