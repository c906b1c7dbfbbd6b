package keycap

import (
	"fmt"
	"testing"
	"time"
)

var epoch = time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)

func newTestQueue() *Queue {
	return New(Limits{MaxRowWidth: 1180, Gap: 4, Fade: DefaultFade})
}

func activeSlots(q *Queue) int {
	n := 0
	for _, tok := range q.slots {
		if tok.Active {
			n++
		}
	}
	return n
}

func checkInvariants(t *testing.T, q *Queue) {
	t.Helper()
	if got := activeSlots(q); got != q.Len() {
		t.Fatalf("active slots = %d, Len() = %d", got, q.Len())
	}
	want := 0
	for i, tok := range q.Tokens() {
		if i > 0 {
			want += q.limits.Gap
		}
		want += tok.Width
	}
	if q.LineWidth() != want {
		t.Fatalf("LineWidth() = %d, want %d", q.LineWidth(), want)
	}
}

func TestAddWithinRow(t *testing.T) {
	q := newTestQueue()
	for n := 1; n <= 10; n++ {
		q.Push(fmt.Sprintf("K%d", n), 20, 40, epoch)
		if q.Len() != n {
			t.Fatalf("after %d adds Len() = %d", n, q.Len())
		}
		checkInvariants(t, q)
	}
	for i, tok := range q.Tokens() {
		if !tok.Active {
			t.Errorf("token %d inactive", i)
		}
		if want := fmt.Sprintf("K%d", i+1); tok.Text != want {
			t.Errorf("token %d = %q, want %q", i, tok.Text, want)
		}
	}
	if q.LineWidth() != 10*20+9*4 {
		t.Errorf("LineWidth() = %d, want %d", q.LineWidth(), 10*20+9*4)
	}
}

func TestFillToCapacity(t *testing.T) {
	q := New(Limits{MaxRowWidth: 1 << 20, Gap: 4})
	for i := 0; i < Capacity; i++ {
		q.Push("x", 10, 10, epoch)
	}
	if q.Len() != Capacity {
		t.Fatalf("Len() = %d, want %d", q.Len(), Capacity)
	}
	checkInvariants(t, q)
}

func TestWrapResetsLine(t *testing.T) {
	q := New(Limits{MaxRowWidth: 100, Gap: 4})
	q.Push("A", 40, 30, epoch)
	q.Push("B", 40, 30, epoch)
	if q.LineWidth() != 84 {
		t.Fatalf("LineWidth() = %d, want 84", q.LineWidth())
	}

	// 84 + 4 + 20 > 100
	wrapped := q.Push("C", 20, 30, epoch)
	if !wrapped {
		t.Fatal("expected wrap reset")
	}
	if q.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", q.Len())
	}
	if q.LineWidth() != 20 {
		t.Fatalf("LineWidth() = %d, want 20", q.LineWidth())
	}
	if toks := q.Tokens(); toks[0].Text != "C" {
		t.Fatalf("only token = %q, want C", toks[0].Text)
	}
	checkInvariants(t, q)
}

func TestExactFitDoesNotWrap(t *testing.T) {
	q := New(Limits{MaxRowWidth: 100, Gap: 4})
	q.Push("A", 48, 30, epoch)
	if wrapped := q.Push("B", 48, 30, epoch); wrapped {
		t.Fatal("48+4+48 == 100 should fit")
	}
	if q.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", q.Len())
	}
}

func TestOversizedTokenOnEmptyLine(t *testing.T) {
	q := New(Limits{MaxRowWidth: 100, Gap: 4})
	if wrapped := q.Push("Wide", 150, 30, epoch); wrapped {
		t.Fatal("empty line should not report a wrap")
	}
	if q.Len() != 1 || q.LineWidth() != 150 {
		t.Fatalf("Len() = %d LineWidth() = %d", q.Len(), q.LineWidth())
	}
}

func TestOverflowEvictsOldest(t *testing.T) {
	q := New(Limits{MaxRowWidth: 1 << 20, Gap: 4})
	for i := 0; i < Capacity; i++ {
		q.Push(fmt.Sprintf("%d", i), 10+i, 10, epoch)
	}
	before := q.LineWidth()

	q.Push("new", 7, 10, epoch)

	if q.Len() != Capacity {
		t.Fatalf("Len() = %d, want %d", q.Len(), Capacity)
	}
	toks := q.Tokens()
	if toks[0].Text != "1" {
		t.Errorf("oldest = %q, want 1 after evicting 0", toks[0].Text)
	}
	if toks[len(toks)-1].Text != "new" {
		t.Errorf("newest = %q, want new", toks[len(toks)-1].Text)
	}
	// Slot 0 held the evicted token and is the one reused.
	if q.slots[0].Text != "new" {
		t.Errorf("slot 0 = %q, want new", q.slots[0].Text)
	}
	if want := before - 10 + 7; q.LineWidth() != want {
		t.Errorf("LineWidth() = %d, want %d", q.LineWidth(), want)
	}
	checkInvariants(t, q)
}

func TestUpdateExpiresWholeLine(t *testing.T) {
	q := newTestQueue()
	q.Push("A", 20, 30, epoch)
	q.Push("B", 20, 30, epoch.Add(500*time.Millisecond))

	// The second press restarted the shared clock.
	frame, expired := q.Update(epoch.Add(DefaultFade + 100*time.Millisecond))
	if expired || len(frame.Tokens) != 2 {
		t.Fatalf("expired=%v tokens=%d, want both still shown", expired, len(frame.Tokens))
	}

	frame, expired = q.Update(epoch.Add(500*time.Millisecond + DefaultFade + time.Millisecond))
	if !expired {
		t.Fatal("expected expiry one millisecond past the fade")
	}
	if !frame.Empty() {
		t.Fatalf("expired frame has %d tokens", len(frame.Tokens))
	}
	if q.Len() != 0 || q.LineWidth() != 0 {
		t.Fatalf("Len() = %d LineWidth() = %d after expiry", q.Len(), q.LineWidth())
	}
	checkInvariants(t, q)
}

func TestUpdateAtFadeBoundary(t *testing.T) {
	q := newTestQueue()
	q.Push("A", 20, 30, epoch)

	frame, expired := q.Update(epoch.Add(DefaultFade))
	if expired {
		t.Fatal("elapsed == fade should not expire yet")
	}
	if frame.Alpha != 0 {
		t.Fatalf("alpha at fade = %d, want 0", frame.Alpha)
	}
}

func TestUpdateOnEmptyQueue(t *testing.T) {
	q := newTestQueue()
	frame, expired := q.Update(epoch)
	if expired || !frame.Empty() {
		t.Fatalf("empty queue: expired=%v tokens=%d", expired, len(frame.Tokens))
	}
}

func TestAlpha(t *testing.T) {
	fade := DefaultFade
	tests := []struct {
		elapsed time.Duration
		want    uint8
	}{
		{-time.Second, 255},
		{0, 255},
		{time.Millisecond, 254},
		{1000 * time.Millisecond, 127},
		{1992 * time.Millisecond, 1},
		{1999 * time.Millisecond, 0},
		{fade, 0},
		{fade + time.Second, 0},
	}
	for _, tt := range tests {
		if got := Alpha(tt.elapsed, fade); got != tt.want {
			t.Errorf("Alpha(%v) = %d, want %d", tt.elapsed, got, tt.want)
		}
	}
}

func TestAlphaNonIncreasing(t *testing.T) {
	prev := Alpha(0, DefaultFade)
	for ms := 1; ms <= 2000; ms++ {
		a := Alpha(time.Duration(ms)*time.Millisecond, DefaultFade)
		if a > prev {
			t.Fatalf("alpha rose from %d to %d at %dms", prev, a, ms)
		}
		prev = a
	}
}

func TestResetClearsEverything(t *testing.T) {
	q := newTestQueue()
	q.Push("A", 20, 30, epoch)
	q.Push("B", 20, 30, epoch)
	q.Reset()
	if q.Len() != 0 || q.LineWidth() != 0 || activeSlots(q) != 0 {
		t.Fatalf("Len()=%d LineWidth()=%d active=%d", q.Len(), q.LineWidth(), activeSlots(q))
	}

	// Slots are reused from the start after a reset.
	q.Push("C", 20, 30, epoch)
	if q.slots[0].Text != "C" {
		t.Fatalf("slot 0 = %q, want C", q.slots[0].Text)
	}
}

func TestLabelTruncation(t *testing.T) {
	q := newTestQueue()
	q.Push("abcdefghijklmnopqrstuvwxyz0123456789", 20, 30, epoch)
	if got := q.Tokens()[0].Text; len(got) != MaxLabel {
		t.Fatalf("label length = %d, want %d", len(got), MaxLabel)
	}

	// A multi-byte rune straddling the limit is dropped whole.
	q.Reset()
	q.Push("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa→", 20, 30, epoch)
	if got := q.Tokens()[0].Text; got != "aaaaaaaaaaaaaaaaaaaaaaaaaaaaaa" {
		t.Fatalf("label = %q", got)
	}
}
