package core

import (
	"strings"
	"testing"
)

func TestNewFrame(t *testing.T) {
	f := NewFrame(64, 32)

	if f.Width() != 64 {
		t.Errorf("Width() = %d, expected 64", f.Width())
	}
	if f.Height() != 32 {
		t.Errorf("Height() = %d, expected 32", f.Height())
	}
	if len(f.Bytes()) != 65*32 {
		t.Errorf("len(Bytes()) = %d, expected %d", len(f.Bytes()), 65*32)
	}

	for y := 0; y < f.Height(); y++ {
		for x := 0; x < f.Width(); x++ {
			if f.Get(x, y) != ' ' {
				t.Fatalf("new frame should be spaces, got %q at (%d, %d)", f.Get(x, y), x, y)
			}
		}
	}
}

func TestFrameTerminators(t *testing.T) {
	f := NewFrame(5, 3)
	f.Fill('#')

	// Writes into the terminator column are rejected.
	for y := 0; y < 3; y++ {
		f.Set(5, y, 'X')
	}

	lines := strings.SplitAfter(f.String(), "\n")
	// SplitAfter leaves a trailing empty element after the last terminator.
	if len(lines) != 4 || lines[3] != "" {
		t.Fatalf("expected 3 terminated rows, got %q", lines)
	}
	for i, line := range lines[:3] {
		if line != "#####\n" {
			t.Errorf("row %d = %q, expected %q", i, line, "#####\n")
		}
	}
}

func TestFrameSetGet(t *testing.T) {
	f := NewFrame(10, 10)

	f.Set(5, 5, 'X')
	if f.Get(5, 5) != 'X' {
		t.Errorf("Get(5, 5) = %q, expected 'X'", f.Get(5, 5))
	}

	// Out of bounds should be silent
	f.Set(-1, 0, 'A')
	f.Set(100, 0, 'A')
	f.Set(0, -1, 'A')
	f.Set(0, 100, 'A')

	if f.Get(-1, 0) != ' ' {
		t.Error("Out of bounds Get should return space")
	}
	if f.Get(10, 0) != ' ' {
		t.Error("Terminator column Get should return space")
	}
	if strings.Contains(f.String(), "A") {
		t.Error("Out of bounds Set leaked into the buffer")
	}
}

func TestFrameRowLayout(t *testing.T) {
	f := NewFrame(4, 2)
	f.Set(0, 0, 'a')
	f.Set(3, 0, 'b')
	f.Set(0, 1, 'c')

	if got := f.String(); got != "a  b\nc   \n" {
		t.Errorf("String() = %q", got)
	}
	if got := f.Row(0); got != "a  b" {
		t.Errorf("Row(0) = %q, expected %q", got, "a  b")
	}
	if got := f.Row(9); got != "    " {
		t.Errorf("Row(9) = %q, expected blank row", got)
	}
	if got := f.Lines(); got != "a  b\nc   " {
		t.Errorf("Lines() = %q", got)
	}
}

func TestFrameClear(t *testing.T) {
	f := NewFrame(3, 3)
	f.Fill('@')
	f.Clear()

	if got := f.String(); got != "   \n   \n   \n" {
		t.Errorf("after Clear, String() = %q", got)
	}
}

func TestFrameDegenerate(t *testing.T) {
	f := NewFrame(-1, -1)
	if f.Width() != 0 || f.Height() != 0 || len(f.Bytes()) != 0 {
		t.Errorf("negative sizes should clamp to an empty frame")
	}
}
