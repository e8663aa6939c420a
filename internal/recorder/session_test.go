package recorder

import (
	"context"
	"path/filepath"
	"testing"

	cube "github.com/arjwilde/cubesolve"
	"github.com/arjwilde/cubesolve/internal/storage"
)

func TestSessionRunPersistsRecord(t *testing.T) {
	db, err := storage.Open(filepath.Join(t.TempDir(), "cubesolve.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	defer db.Close()
	repo := storage.NewSolveRepository(db)

	c := cube.New()
	scramble := c.Scramble(8)

	s := NewSession(repo, nil)
	moves, err := s.Run(context.Background(), c, scramble)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	c.ApplySequence(moves)
	if !c.IsSolved() {
		t.Fatal("recorded solution did not solve the cube")
	}

	rec, err := repo.Get(s.ID)
	if err != nil {
		t.Fatalf("Get persisted record: %v", err)
	}
	if rec.MoveCount != len(moves) {
		t.Fatalf("persisted move_count = %d, want %d", rec.MoveCount, len(moves))
	}
	if s.Progress.Nodes.Load() == 0 {
		t.Fatal("session progress was never updated")
	}
}

func TestSessionRunWithoutRepo(t *testing.T) {
	c := cube.New()
	scramble := c.Scramble(8)

	s := NewSession(nil, nil)
	moves, err := s.Run(context.Background(), c, scramble)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	c.ApplySequence(moves)
	if !c.IsSolved() {
		t.Fatal("solution did not solve the cube")
	}
}
