// JSON record structures for Record and Note. These define the on-disk
// schema shared by the storage backends; decoding re-runs every field
// validator so a stored file can never produce an invalid entity.
package types

import (
	"encoding/json"
	"time"
)

// recordJSON is the stored form of a Record.
type recordJSON struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Phones   []string `json:"phones"`
	Email    string   `json:"email,omitempty"`
	Address  string   `json:"address,omitempty"`
	Birthday string   `json:"birthday,omitempty"` // DD.MM.YYYY
}

// noteJSON is the stored form of a Note.
type noteJSON struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Content   string   `json:"content"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"created_at"` // RFC 3339 with nanoseconds
	UpdatedAt string   `json:"updated_at"`
}

// MarshalJSON implements json.Marshaler.
func (r *Record) MarshalJSON() ([]byte, error) {
	rec := recordJSON{
		ID:     r.id,
		Name:   r.name.value,
		Phones: make([]string, len(r.phones)),
	}
	for i, p := range r.phones {
		rec.Phones[i] = p.digits
	}
	if r.email != nil {
		rec.Email = r.email.value
	}
	if r.address != nil {
		rec.Address = r.address.value
	}
	if r.birthday != nil {
		rec.Birthday = r.birthday.String()
	}
	return json.Marshal(rec)
}

// UnmarshalJSON implements json.Unmarshaler. Every field is validated.
func (r *Record) UnmarshalJSON(data []byte) error {
	var rec recordJSON
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	restored, err := RestoreRecord(rec.ID, rec.Name)
	if err != nil {
		return err
	}
	for _, p := range rec.Phones {
		if err := restored.AddPhone(p); err != nil {
			return err
		}
	}
	if rec.Email != "" {
		if err := restored.SetEmail(rec.Email); err != nil {
			return err
		}
	}
	if rec.Address != "" {
		if err := restored.SetAddress(rec.Address); err != nil {
			return err
		}
	}
	if rec.Birthday != "" {
		if err := restored.SetBirthday(rec.Birthday); err != nil {
			return err
		}
	}
	*r = *restored
	return nil
}

// MarshalJSON implements json.Marshaler.
func (n *Note) MarshalJSON() ([]byte, error) {
	return json.Marshal(noteJSON{
		ID:        n.id,
		Title:     n.title,
		Content:   n.content,
		Tags:      n.Tags(),
		CreatedAt: n.createdAt.Format(time.RFC3339Nano),
		UpdatedAt: n.updatedAt.Format(time.RFC3339Nano),
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *Note) UnmarshalJSON(data []byte) error {
	var rec noteJSON
	if err := json.Unmarshal(data, &rec); err != nil {
		return err
	}
	createdAt, err := time.Parse(time.RFC3339Nano, rec.CreatedAt)
	if err != nil {
		return invalid("created_at", rec.CreatedAt, err.Error())
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, rec.UpdatedAt)
	if err != nil {
		return invalid("updated_at", rec.UpdatedAt, err.Error())
	}
	restored, err := RestoreNote(rec.ID, rec.Title, rec.Content, rec.Tags, createdAt, updatedAt)
	if err != nil {
		return err
	}
	*n = *restored
	return nil
}
