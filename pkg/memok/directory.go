package memok

import (
	"slices"
	"strings"

	"github.com/mesh-intelligence/memok/pkg/types"
)

// Directory maps contact names to records. Iteration follows insertion
// order, which after a restart is the order the store returned.
type Directory struct {
	records map[string]*types.Record
	order   []string
}

// NewDirectory returns a directory holding records in the given order.
// A later record with the same name replaces an earlier one.
func NewDirectory(records ...*types.Record) *Directory {
	d := &Directory{records: make(map[string]*types.Record, len(records))}
	for _, r := range records {
		d.Add(r)
	}
	return d
}

// Add inserts r under its name, overwriting any record with that name.
// An overwritten record keeps its original position.
func (d *Directory) Add(r *types.Record) {
	key := r.Name().String()
	if _, ok := d.records[key]; !ok {
		d.order = append(d.order, key)
	}
	d.records[key] = r
}

// Find returns the record stored under name.
func (d *Directory) Find(name string) (*types.Record, bool) {
	r, ok := d.records[strings.TrimSpace(name)]
	return r, ok
}

// Delete removes the record stored under name. Deleting an absent name is
// a no-op.
func (d *Directory) Delete(name string) {
	key := strings.TrimSpace(name)
	if _, ok := d.records[key]; !ok {
		return
	}
	delete(d.records, key)
	d.order = slices.DeleteFunc(d.order, func(k string) bool { return k == key })
}

// FindByPhone returns the first record, in directory order, that holds the
// phone raw normalizes to.
func (d *Directory) FindByPhone(raw string) (*types.Record, bool) {
	for _, key := range d.order {
		r := d.records[key]
		if _, ok := r.FindPhone(raw); ok {
			return r, true
		}
	}
	return nil, false
}

// Search returns the records matching query in directory order.
func (d *Directory) Search(query string) []*types.Record {
	var out []*types.Record
	for _, key := range d.order {
		if r := d.records[key]; r.Matches(query) {
			out = append(out, r)
		}
	}
	return out
}

// All returns every record in directory order.
func (d *Directory) All() []*types.Record {
	out := make([]*types.Record, 0, len(d.order))
	for _, key := range d.order {
		out = append(out, d.records[key])
	}
	return out
}

// Len returns the number of records.
func (d *Directory) Len() int { return len(d.order) }
