package storage

import "fmt"

// SolveRecord is one persisted solve run.
type SolveRecord struct {
	ID          string
	Scramble    string
	Solution    string
	MoveCount   int
	Nodes       int64
	Phase1Depth int
	DurationMs  int64
	CreatedAt   string // RFC 3339
}

// SolveRepository provides CRUD operations over the solves table.
type SolveRepository struct {
	db *DB
}

// NewSolveRepository returns a repository backed by db.
func NewSolveRepository(db *DB) *SolveRepository {
	return &SolveRepository{db: db}
}

// Create inserts a new solve record.
func (r *SolveRepository) Create(rec SolveRecord) error {
	_, err := r.db.Exec(`
		INSERT INTO solves (id, scramble, solution, move_count, nodes, phase1_depth, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Scramble, rec.Solution, rec.MoveCount, rec.Nodes, rec.Phase1Depth, rec.DurationMs, rec.CreatedAt)
	if err != nil {
		return fmt.Errorf("storage: create solve record: %w", err)
	}
	return nil
}

// Get retrieves a single solve record by id.
func (r *SolveRepository) Get(id string) (SolveRecord, error) {
	var rec SolveRecord
	err := r.db.QueryRow(`
		SELECT id, scramble, solution, move_count, nodes, phase1_depth, duration_ms, created_at
		FROM solves WHERE id = ?
	`, id).Scan(&rec.ID, &rec.Scramble, &rec.Solution, &rec.MoveCount, &rec.Nodes, &rec.Phase1Depth, &rec.DurationMs, &rec.CreatedAt)
	if err != nil {
		return SolveRecord{}, fmt.Errorf("storage: get solve %s: %w", id, err)
	}
	return rec, nil
}

// List returns the most recent solve records, newest first, bounded by limit.
func (r *SolveRepository) List(limit int) ([]SolveRecord, error) {
	rows, err := r.db.Query(`
		SELECT id, scramble, solution, move_count, nodes, phase1_depth, duration_ms, created_at
		FROM solves ORDER BY created_at DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("storage: list solves: %w", err)
	}
	defer rows.Close()

	var records []SolveRecord
	for rows.Next() {
		var rec SolveRecord
		if err := rows.Scan(&rec.ID, &rec.Scramble, &rec.Solution, &rec.MoveCount, &rec.Nodes, &rec.Phase1Depth, &rec.DurationMs, &rec.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: scan solve record: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: list solves: %w", err)
	}
	return records, nil
}

// Count returns the total number of stored solve records.
func (r *SolveRepository) Count() (int, error) {
	var n int
	if err := r.db.QueryRow("SELECT COUNT(*) FROM solves").Scan(&n); err != nil {
		return 0, fmt.Errorf("storage: count solves: %w", err)
	}
	return n, nil
}
