package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/memok/pkg/types"
)

// noteRow is one row of the notes table.
type noteRow struct {
	id, title, content   string
	createdAt, updatedAt string
}

// LoadNotes returns every note ordered by position.
func (b *Backend) LoadNotes() ([]*types.Note, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.handle()
	if err != nil {
		return nil, err
	}

	rows, err := queryNotes(db)
	if err != nil {
		return nil, err
	}
	tags, err := queryTags(db)
	if err != nil {
		return nil, err
	}

	notes := make([]*types.Note, 0, len(rows))
	for _, row := range rows {
		n, err := hydrateNote(row, tags[row.id])
		if err != nil {
			return nil, fmt.Errorf("note %s: %w: %w", row.id, types.ErrCorruptData, err)
		}
		notes = append(notes, n)
	}
	b.logger.Debug("notes loaded", zap.Int("count", len(notes)))
	return notes, nil
}

func queryNotes(db *sql.DB) ([]noteRow, error) {
	rows, err := db.Query(`SELECT note_id, title, content, created_at, updated_at FROM notes ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query notes: %w", err)
	}
	defer rows.Close()

	var out []noteRow
	for rows.Next() {
		var row noteRow
		if err := rows.Scan(&row.id, &row.title, &row.content, &row.createdAt, &row.updatedAt); err != nil {
			return nil, fmt.Errorf("scan note: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func queryTags(db *sql.DB) (map[string][]string, error) {
	rows, err := db.Query(`SELECT note_id, tag FROM note_tags`)
	if err != nil {
		return nil, fmt.Errorf("query note tags: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]string)
	for rows.Next() {
		var id, tag string
		if err := rows.Scan(&id, &tag); err != nil {
			return nil, fmt.Errorf("scan note tag: %w", err)
		}
		out[id] = append(out[id], tag)
	}
	return out, rows.Err()
}

func hydrateNote(row noteRow, tags []string) (*types.Note, error) {
	createdAt, err := time.Parse(time.RFC3339Nano, row.createdAt)
	if err != nil {
		return nil, err
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, row.updatedAt)
	if err != nil {
		return nil, err
	}
	return types.RestoreNote(row.id, row.title, row.content, tags, createdAt, updatedAt)
}

// SaveNotes replaces the notes and note_tags tables in one transaction.
func (b *Backend) SaveNotes(notes []*types.Note) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.handle()
	if err != nil {
		return err
	}

	err = withTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM note_tags`); err != nil {
			return fmt.Errorf("clear note tags: %w", err)
		}
		if _, err := tx.Exec(`DELETE FROM notes`); err != nil {
			return fmt.Errorf("clear notes: %w", err)
		}
		for i, n := range notes {
			if err := insertNote(tx, i, n); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	b.logger.Debug("notes saved", zap.Int("count", len(notes)))
	return nil
}

func insertNote(tx *sql.Tx, position int, n *types.Note) error {
	_, err := tx.Exec(
		`INSERT INTO notes (note_id, position, title, content, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`,
		n.ID(), position, n.Title(), n.Content(),
		n.CreatedAt().Format(time.RFC3339Nano), n.UpdatedAt().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert note %q: %w", n.Title(), err)
	}
	for _, tag := range n.Tags() {
		if _, err := tx.Exec(`INSERT INTO note_tags (note_id, tag) VALUES (?, ?)`, n.ID(), tag); err != nil {
			return fmt.Errorf("insert tag %q: %w", tag, err)
		}
	}
	return nil
}
