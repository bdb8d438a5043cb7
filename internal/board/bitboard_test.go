package board

import "testing"

func TestBitboardSetClearIsSet(t *testing.T) {
	var b Bitboard
	b = b.Set(E4)
	if !b.IsSet(E4) {
		t.Error("E4 not set")
	}
	if b.IsSet(E5) {
		t.Error("E5 set unexpectedly")
	}
	b = b.Clear(E4)
	if b != Empty {
		t.Errorf("board = %016x after clear, want empty", uint64(b))
	}
}

func TestBitboardPopLSB(t *testing.T) {
	b := SquareBB(C2) | SquareBB(G5) | SquareBB(A8)

	want := []Square{C2, G5, A8}
	for _, sq := range want {
		if got := b.PopLSB(); got != sq {
			t.Errorf("PopLSB() = %v, want %v", got, sq)
		}
	}
	if b != Empty {
		t.Errorf("board = %016x after draining, want empty", uint64(b))
	}
	if (&b).PopLSB() != NoSquare {
		t.Error("PopLSB on empty board != NoSquare")
	}
}

func TestBitboardShifts(t *testing.T) {
	tests := []struct {
		name string
		got  Bitboard
		want Bitboard
	}{
		{"north", SquareBB(E4).North(), SquareBB(E5)},
		{"south", SquareBB(E4).South(), SquareBB(E3)},
		{"east", SquareBB(E4).East(), SquareBB(F4)},
		{"west", SquareBB(E4).West(), SquareBB(D4)},
		{"north east", SquareBB(E4).NorthEast(), SquareBB(F5)},
		{"south west", SquareBB(E4).SouthWest(), SquareBB(D3)},
		{"east off board", SquareBB(H4).East(), Empty},
		{"west off board", SquareBB(A4).West(), Empty},
		{"north off board", SquareBB(E8).North(), Empty},
		{"north east wraps not", SquareBB(H8).NorthEast(), Empty},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.got != tc.want {
				t.Errorf("got %016x, want %016x", uint64(tc.got), uint64(tc.want))
			}
		})
	}
}

func TestBitboardSquares(t *testing.T) {
	b := SquareBB(A1) | SquareBB(D4) | SquareBB(H8)
	got := b.Squares()
	want := []Square{A1, D4, H8}
	if len(got) != len(want) {
		t.Fatalf("Squares() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Squares()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
