package worker

import (
	"context"
	"testing"
	"time"

	"github.com/lgbarn/termchess-go/internal/engine"
	"github.com/lgbarn/termchess-go/internal/hashing"
	"github.com/lgbarn/termchess-go/internal/testutil"
)

func TestDivide_MatchesSerial(t *testing.T) {
	for _, workers := range []int{1, 4} {
		board := engine.NewInitialBoard()

		got, err := Divide(context.Background(), board, 3, WithWorkers(workers))
		testutil.AssertNoError(t, err)

		want := engine.PerftDivide(board, 3)
		testutil.AssertEqual(t, got, want, "%d workers", workers)
		if total := Total(got); total != 8902 {
			t.Errorf("Total() with %d workers = %d; want 8902", workers, total)
		}
	}
}

func TestDivide_LeavesBoardUnchanged(t *testing.T) {
	board := engine.NewInitialBoard()
	before := board.Copy()

	if _, err := Divide(context.Background(), board, 2, WithWorkers(3)); err != nil {
		t.Fatalf("Divide() error = %v", err)
	}
	testutil.AssertBoardEqual(t, board, before)
}

func TestDivide_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Divide(ctx, engine.NewInitialBoard(), 3, WithWorkers(2))
	if err == nil {
		t.Skip("all root moves finished before cancellation was observed")
	}
	testutil.AssertErrorIs(t, err, context.Canceled)
}

func TestCountNodes(t *testing.T) {
	board := engine.NewInitialBoard()
	moves := engine.LegalMoves(board)

	result := CountNodes(WorkItem{Index: 7, Board: board, Move: moves[0], Depth: 2})
	testutil.AssertNoError(t, result.Error)
	if result.Nodes != 20 {
		t.Errorf("CountNodes(depth 2).Nodes = %d; want 20", result.Nodes)
	}
	if result.Index != 7 {
		t.Errorf("CountNodes().Index = %d; want 7", result.Index)
	}

	if bad := CountNodes(WorkItem{Board: board, Move: moves[0], Depth: 0}); bad.Error == nil {
		t.Error("CountNodes(depth 0) returned no error")
	}
}

func TestDivideWith_SharedCache(t *testing.T) {
	if testing.Short() {
		t.Skip("depth 4 perft in short mode")
	}
	board := engine.NewInitialBoard()
	cache := hashing.NewThreadSafeTable(0)

	for run := 0; run < 2; run++ {
		got, err := DivideWith(context.Background(), board, 4, CachedCounter(cache), WithWorkers(4))
		testutil.AssertNoError(t, err, "run %d", run)
		if total := Total(got); total != 197281 {
			t.Errorf("run %d: Total() = %d; want 197281", run, total)
		}
	}
	if cache.Hits() == 0 {
		t.Error("second run never hit the shared cache")
	}
}

func TestCachedCounter_BadDepth(t *testing.T) {
	board := engine.NewInitialBoard()
	moves := engine.LegalMoves(board)

	result := CachedCounter(hashing.NewTable(0))(WorkItem{Board: board, Move: moves[0], Depth: 0})
	if result.Error == nil {
		t.Error("CachedCounter(depth 0) returned no error")
	}
}

func TestCachedCounter_NilTable(t *testing.T) {
	board := engine.NewInitialBoard()
	moves := engine.LegalMoves(board)

	result := CachedCounter((*hashing.ThreadSafeTable)(nil))(WorkItem{Board: board, Move: moves[0], Depth: 3})
	testutil.AssertNoError(t, result.Error)
	if want := engine.Perft(engine.Successor(board, moves[0]), 2); result.Nodes != want {
		t.Errorf("CachedCounter(nil table).Nodes = %d; want %d", result.Nodes, want)
	}
}

// A caller buffer smaller than the root move count must not block Submit.
func TestDivide_SmallBuffer(t *testing.T) {
	type outcome struct {
		entries []engine.DivideEntry
		err     error
	}
	done := make(chan outcome, 1)
	go func() {
		entries, err := Divide(context.Background(), engine.NewInitialBoard(), 2, WithWorkers(1), WithBufferSize(1))
		done <- outcome{entries, err}
	}()

	select {
	case got := <-done:
		testutil.AssertNoError(t, got.err)
		if total := Total(got.entries); total != 400 {
			t.Errorf("Total() = %d; want 400", total)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("Divide() with WithBufferSize(1) did not return")
	}
}
