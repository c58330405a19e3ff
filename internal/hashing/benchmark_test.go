package hashing

import (
	"testing"

	"github.com/lgbarn/termchess-go/internal/engine"
)

func BenchmarkKey(b *testing.B) {
	board := engine.NewInitialBoard()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Key(board)
	}
}

func BenchmarkPerft(b *testing.B) {
	b.Run("Uncached", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			engine.Perft(engine.NewInitialBoard(), 3)
		}
	})
	b.Run("Cached", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			Perft(engine.NewInitialBoard(), 3, NewTable(0))
		}
	})
}
