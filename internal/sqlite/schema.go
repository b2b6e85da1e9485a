package sqlite

// Schema DDL. Positions keep the collection order across saves.
const (
	createContacts = `CREATE TABLE IF NOT EXISTS contacts (
    contact_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    name TEXT NOT NULL UNIQUE,
    email TEXT NOT NULL DEFAULT '',
    address TEXT NOT NULL DEFAULT '',
    birthday TEXT NOT NULL DEFAULT ''
);`

	createPhones = `CREATE TABLE IF NOT EXISTS phones (
    contact_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    phone TEXT NOT NULL,
    PRIMARY KEY (contact_id, position),
    UNIQUE (contact_id, phone),
    FOREIGN KEY (contact_id) REFERENCES contacts(contact_id)
);`

	createNotes = `CREATE TABLE IF NOT EXISTS notes (
    note_id TEXT PRIMARY KEY,
    position INTEGER NOT NULL,
    title TEXT NOT NULL UNIQUE,
    content TEXT NOT NULL,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL
);`

	createNoteTags = `CREATE TABLE IF NOT EXISTS note_tags (
    note_id TEXT NOT NULL,
    tag TEXT NOT NULL,
    PRIMARY KEY (note_id, tag),
    FOREIGN KEY (note_id) REFERENCES notes(note_id)
);`

	createIndexes = `
CREATE INDEX IF NOT EXISTS idx_phones_phone ON phones(phone);
CREATE INDEX IF NOT EXISTS idx_note_tags_tag ON note_tags(tag);
`
)

// schemaStatements returns the DDL in execution order.
func schemaStatements() []string {
	return []string{createContacts, createPhones, createNotes, createNoteTags, createIndexes}
}
