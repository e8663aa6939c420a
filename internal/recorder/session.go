// Package recorder wraps one solver invocation end to end: it times the
// search, drives solver.Solve with a live progress handle, and persists
// the outcome as a storage.SolveRecord.
package recorder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	cube "github.com/arjwilde/cubesolve"
	"github.com/arjwilde/cubesolve/internal/storage"
	"github.com/arjwilde/cubesolve/solver"
)

// Session is a single solve attempt: a UUID, the live solver.Progress the
// caller can poll, and (once Run returns) the persisted record.
type Session struct {
	ID       string
	Progress solver.Progress

	repo *storage.SolveRepository
	log  *logrus.Entry
}

// NewSession creates a session backed by repo. repo may be nil to skip
// persistence (e.g. for bench runs). log may be nil, in which case a
// disabled logger is used.
func NewSession(repo *storage.SolveRepository, log *logrus.Logger) *Session {
	if log == nil {
		log = logrus.New()
		log.SetLevel(logrus.PanicLevel)
	}
	id := uuid.New().String()
	return &Session{
		ID:   id,
		repo: repo,
		log:  log.WithField("solve_id", id),
	}
}

// Run solves c and, when the solver succeeds, records the attempt against
// scramble. A solver error is returned without persisting anything. It
// returns the solution (nil if c was already solved) and any error from the
// solver or the store.
func (s *Session) Run(ctx context.Context, c *cube.Cube, scramble []cube.Move) ([]cube.Move, error) {
	s.log.WithField("scramble", cube.FormatMoves(scramble)).Info("solve started")

	start := time.Now()
	moves, err := solver.Solve(ctx, c, &s.Progress)
	duration := time.Since(start)

	if err != nil {
		s.log.WithError(err).Warn("solve failed")
		return nil, err
	}

	rec := storage.SolveRecord{
		ID:          s.ID,
		Scramble:    cube.FormatMoves(scramble),
		Solution:    cube.FormatMoves(moves),
		MoveCount:   len(moves),
		Nodes:       int64(s.Progress.Nodes.Load()),
		Phase1Depth: int(s.Progress.Depth.Load()),
		DurationMs:  duration.Milliseconds(),
		CreatedAt:   start.UTC().Format(time.RFC3339),
	}
	if s.repo != nil {
		if err := s.repo.Create(rec); err != nil {
			return moves, fmt.Errorf("recorder: persist solve %s: %w", s.ID, err)
		}
	}

	s.log.WithFields(logrus.Fields{
		"move_count":  rec.MoveCount,
		"nodes":       rec.Nodes,
		"duration_ms": rec.DurationMs,
	}).Info("solve finished")

	return moves, nil
}
