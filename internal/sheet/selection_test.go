package sheet_test

import (
	"fmt"
	"testing"

	"proofsheet/internal/sheet"
)

func makeFrames(n int) []sheet.Frame {
	frames := make([]sheet.Frame, n)
	for i := range frames {
		frames[i] = sheet.Frame{Path: fmt.Sprintf("frame_%04d.png", i), Index: i}
	}
	return frames
}

func indicesOf(frames []sheet.Frame) []int {
	indices := make([]int, len(frames))
	for i, frame := range frames {
		indices[i] = frame.Index
	}
	return indices
}

func TestSelectEvenSampling(t *testing.T) {
	// 10 frames into a 2x2 grid: step = 9/3 = 3.
	selected := sheet.Select(makeFrames(10), 4)
	want := []int{0, 3, 6, 9}
	got := indicesOf(selected)
	if len(got) != len(want) {
		t.Fatalf("selected %d frames, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("selection = %v, want %v", got, want)
		}
	}
}

func TestSelectRoundsHalvesToEven(t *testing.T) {
	// 6 frames into 3 cells: step = 5/2 = 2.5, so position 1 sits exactly
	// between indices 2 and 3 and must resolve to the even index.
	selected := sheet.Select(makeFrames(6), 3)
	want := []int{0, 2, 5}
	got := indicesOf(selected)
	if len(got) != len(want) {
		t.Fatalf("selected %d frames, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("selection = %v, want %v", got, want)
		}
	}
}

func TestSelectFewerFramesThanCapacity(t *testing.T) {
	selected := sheet.Select(makeFrames(2), 16)
	if len(selected) != 2 {
		t.Fatalf("selected %d frames, want 2", len(selected))
	}
	if selected[0].Index != 0 || selected[1].Index != 1 {
		t.Fatalf("unexpected selection: %v", indicesOf(selected))
	}
}

func TestSelectSpansFullSequence(t *testing.T) {
	for _, tc := range []struct{ n, capacity int }{
		{10, 4}, {100, 16}, {17, 9}, {5, 4}, {1000, 2},
	} {
		selected := sheet.Select(makeFrames(tc.n), tc.capacity)
		if len(selected) != tc.capacity {
			t.Fatalf("n=%d capacity=%d: selected %d frames", tc.n, tc.capacity, len(selected))
		}
		if selected[0].Index != 0 {
			t.Errorf("n=%d capacity=%d: first index %d, want 0", tc.n, tc.capacity, selected[0].Index)
		}
		if last := selected[len(selected)-1].Index; last != tc.n-1 {
			t.Errorf("n=%d capacity=%d: last index %d, want %d", tc.n, tc.capacity, last, tc.n-1)
		}
		for i := 1; i < len(selected); i++ {
			if selected[i].Index < selected[i-1].Index {
				t.Errorf("n=%d capacity=%d: indices not non-decreasing: %v", tc.n, tc.capacity, indicesOf(selected))
				break
			}
		}
	}
}

func TestSelectSingleCell(t *testing.T) {
	selected := sheet.Select(makeFrames(50), 1)
	if len(selected) != 1 || selected[0].Index != 0 {
		t.Fatalf("unexpected selection: %v", indicesOf(selected))
	}
}

func TestSelectToleratesDuplicates(t *testing.T) {
	// 3 frames into 2x4: duplicates are expected, not an error.
	selected := sheet.Select(makeFrames(3), 8)
	if len(selected) != 3 {
		t.Fatalf("3 frames fit capacity 8 without sampling, got %d", len(selected))
	}

	// Capacity above n only samples when n > capacity, so force it: 5 into 4.
	selected = sheet.Select(makeFrames(5), 4)
	if len(selected) != 4 {
		t.Fatalf("selected %d frames, want 4", len(selected))
	}
	if selected[0].Index != 0 || selected[3].Index != 4 {
		t.Fatalf("unexpected endpoints: %v", indicesOf(selected))
	}
}

func TestSelectDeterministic(t *testing.T) {
	first := indicesOf(sheet.Select(makeFrames(123), 16))
	second := indicesOf(sheet.Select(makeFrames(123), 16))
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("selection not deterministic: %v vs %v", first, second)
		}
	}
}
