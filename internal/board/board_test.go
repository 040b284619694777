package board

import (
	"errors"
	"strings"
	"testing"
)

const completeGrid = "123456789" +
	"456789123" +
	"789123456" +
	"231564897" +
	"564897231" +
	"897231564" +
	"312645978" +
	"645978312" +
	"978312645"

func TestNewFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"empty board dots", strings.Repeat(".", CellCount), false},
		{"empty board zeros", strings.Repeat("0", CellCount), false},
		{"complete grid", completeGrid, false},
		{"too short", strings.Repeat(".", CellCount-1), true},
		{"too long", strings.Repeat(".", CellCount+1), true},
		{"bad character", "x" + strings.Repeat(".", CellCount-1), true},
		{"duplicate in row", "11" + strings.Repeat(".", CellCount-2), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := NewFromString(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Error("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			want := strings.ReplaceAll(tt.input, "0", ".")
			if got := b.String(); got != want {
				t.Errorf("String() = %q, want %q", got, want)
			}
		})
	}
}

func TestSetRejectsIllegalMoves(t *testing.T) {
	b := New()
	if err := b.Set(MakePos(0, 0), 5); err != nil {
		t.Fatalf("legal move rejected: %v", err)
	}

	tests := []struct {
		name string
		pos  int
		val  int
	}{
		{"same row", MakePos(0, 8), 5},
		{"same column", MakePos(8, 0), 5},
		{"same box", MakePos(1, 1), 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := b.Set(tt.pos, tt.val); !errors.Is(err, ErrIllegalMove) {
				t.Errorf("Set(%d, %d) = %v, want ErrIllegalMove", tt.pos, tt.val, err)
			}
		})
	}

	if err := b.Set(-1, 5); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("Set(-1, 5) = %v, want ErrInvalidPosition", err)
	}
	if err := b.Set(0, 10); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("Set(0, 10) = %v, want ErrInvalidValue", err)
	}
}

func TestClearAndEmptyCount(t *testing.T) {
	b := New()
	if b.EmptyCount() != CellCount {
		t.Fatalf("EmptyCount() = %d, want %d", b.EmptyCount(), CellCount)
	}

	pos := MakePos(4, 4)
	b.SetForce(pos, 7)
	if b.EmptyCount() != CellCount-1 || b.HintCount() != 1 {
		t.Error("counts not updated after SetForce")
	}

	if err := b.Clear(pos); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if b.Get(pos) != EmptyCell || b.EmptyCount() != CellCount {
		t.Error("cell not cleared")
	}

	// Clearing an already empty cell is a no-op.
	if err := b.Clear(pos); err != nil {
		t.Errorf("Clear on empty cell: %v", err)
	}
	if b.EmptyCount() != CellCount {
		t.Error("EmptyCount changed by clearing an empty cell")
	}
}

func TestGetCandidates(t *testing.T) {
	b := New()
	b.SetForce(MakePos(0, 0), 1)
	b.SetForce(MakePos(0, 5), 2) // same row as (0,1)
	b.SetForce(MakePos(5, 1), 3) // same column as (0,1)
	b.SetForce(MakePos(1, 1), 4) // same box as (0,1)

	// Cell (0,1): row has 1,2; column has 3,4; box has 1,4.
	got := b.GetCandidates(MakePos(0, 1))
	want := []int{5, 6, 7, 8, 9}
	if len(got) != len(want) {
		t.Fatalf("GetCandidates = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("GetCandidates = %v, want %v", got, want)
		}
	}

	if mask := b.GetCandidatesMask(-1); mask != 0 {
		t.Errorf("GetCandidatesMask(-1) = %d, want 0", mask)
	}
}

func TestCloneIsIndependent(t *testing.T) {
	b := New()
	b.SetForce(MakePos(2, 3), 6)

	c := b.Clone()
	c.SetForce(MakePos(2, 4), 7)

	if b.Get(MakePos(2, 4)) != EmptyCell {
		t.Error("mutating the clone changed the original")
	}
	if c.Get(MakePos(2, 3)) != 6 {
		t.Error("clone lost original cell")
	}
}

func TestIsValid(t *testing.T) {
	b, err := NewFromString(completeGrid)
	if err != nil {
		t.Fatal(err)
	}
	if !b.IsValid() || !b.IsComplete() {
		t.Error("complete grid should be valid and complete")
	}

	// Force a duplicate past the Set checks.
	bad := New()
	bad.SetForce(MakePos(0, 0), 9)
	bad.SetForce(MakePos(0, 1), 9)
	if bad.IsValid() {
		t.Error("duplicate in row should be invalid")
	}
}

func TestPositionHelpers(t *testing.T) {
	tests := []struct {
		pos, row, col, box int
	}{
		{0, 0, 0, 0},
		{8, 0, 8, 2},
		{40, 4, 4, 4},
		{80, 8, 8, 8},
		{30, 3, 3, 4},
	}
	for _, tt := range tests {
		if got := RowOf(tt.pos); got != tt.row {
			t.Errorf("RowOf(%d) = %d, want %d", tt.pos, got, tt.row)
		}
		if got := ColOf(tt.pos); got != tt.col {
			t.Errorf("ColOf(%d) = %d, want %d", tt.pos, got, tt.col)
		}
		if got := BoxOf(tt.pos); got != tt.box {
			t.Errorf("BoxOf(%d) = %d, want %d", tt.pos, got, tt.box)
		}
		if got := MakePos(tt.row, tt.col); got != tt.pos {
			t.Errorf("MakePos(%d, %d) = %d, want %d", tt.row, tt.col, got, tt.pos)
		}
	}

	if MakePos(9, 0) != InvalidCell || MakePos(0, -1) != InvalidCell {
		t.Error("out-of-range MakePos should return InvalidCell")
	}
}
