// Package memok holds the in-memory collections of the assistant: the
// contact Directory with its birthday scheduler, the NoteBook with tag and
// text search, and the Session that ties both to a types.Store.
package memok
