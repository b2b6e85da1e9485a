package sqlite

import (
	"database/sql"
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/memok/pkg/types"
)

// contactRow is one row of the contacts table.
type contactRow struct {
	id, name, email, address, birthday string
}

// LoadContacts returns every contact ordered by position.
func (b *Backend) LoadContacts() ([]*types.Record, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	db, err := b.handle()
	if err != nil {
		return nil, err
	}

	rows, err := queryContacts(db)
	if err != nil {
		return nil, err
	}
	records := make([]*types.Record, 0, len(rows))
	byID := make(map[string]*types.Record, len(rows))
	for _, row := range rows {
		r, err := hydrateContact(row)
		if err != nil {
			return nil, fmt.Errorf("contact %s: %w: %w", row.id, types.ErrCorruptData, err)
		}
		records = append(records, r)
		byID[row.id] = r
	}

	if err := loadPhones(db, byID); err != nil {
		return nil, err
	}
	b.logger.Debug("contacts loaded", zap.Int("count", len(records)))
	return records, nil
}

func queryContacts(db *sql.DB) ([]contactRow, error) {
	rows, err := db.Query(`SELECT contact_id, name, email, address, birthday FROM contacts ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var out []contactRow
	for rows.Next() {
		var row contactRow
		if err := rows.Scan(&row.id, &row.name, &row.email, &row.address, &row.birthday); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func hydrateContact(row contactRow) (*types.Record, error) {
	r, err := types.RestoreRecord(row.id, row.name)
	if err != nil {
		return nil, err
	}
	if row.email != "" {
		if err := r.SetEmail(row.email); err != nil {
			return nil, err
		}
	}
	if row.address != "" {
		if err := r.SetAddress(row.address); err != nil {
			return nil, err
		}
	}
	if row.birthday != "" {
		if err := r.SetBirthday(row.birthday); err != nil {
			return nil, err
		}
	}
	return r, nil
}

func loadPhones(db *sql.DB, byID map[string]*types.Record) error {
	rows, err := db.Query(`SELECT contact_id, phone FROM phones ORDER BY contact_id, position`)
	if err != nil {
		return fmt.Errorf("query phones: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var id, phone string
		if err := rows.Scan(&id, &phone); err != nil {
			return fmt.Errorf("scan phone: %w", err)
		}
		r, ok := byID[id]
		if !ok {
			return fmt.Errorf("phone %s references unknown contact %s: %w", phone, id, types.ErrCorruptData)
		}
		if err := r.AddPhone(phone); err != nil {
			return fmt.Errorf("contact %s: %w: %w", id, types.ErrCorruptData, err)
		}
	}
	return rows.Err()
}

// SaveContacts replaces the contacts and phones tables in one transaction.
func (b *Backend) SaveContacts(records []*types.Record) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	db, err := b.handle()
	if err != nil {
		return err
	}

	err = withTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`DELETE FROM phones`); err != nil {
			return fmt.Errorf("clear phones: %w", err)
		}
		if _, err := tx.Exec(`DELETE FROM contacts`); err != nil {
			return fmt.Errorf("clear contacts: %w", err)
		}
		for i, r := range records {
			if err := insertContact(tx, i, r); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	b.logger.Debug("contacts saved", zap.Int("count", len(records)))
	return nil
}

func insertContact(tx *sql.Tx, position int, r *types.Record) error {
	var email, address, birthday string
	if e, ok := r.Email(); ok {
		email = e.String()
	}
	if a, ok := r.Address(); ok {
		address = a.String()
	}
	if bd, ok := r.Birthday(); ok {
		birthday = bd.String()
	}

	_, err := tx.Exec(
		`INSERT INTO contacts (contact_id, position, name, email, address, birthday) VALUES (?, ?, ?, ?, ?, ?)`,
		r.ID(), position, r.Name().String(), email, address, birthday,
	)
	if err != nil {
		return fmt.Errorf("insert contact %s: %w", r.Name(), err)
	}
	for i, p := range r.Phones() {
		if _, err := tx.Exec(
			`INSERT INTO phones (contact_id, position, phone) VALUES (?, ?, ?)`,
			r.ID(), i, p.String(),
		); err != nil {
			return fmt.Errorf("insert phone %s: %w", p, err)
		}
	}
	return nil
}
