// Package types defines the validated contact fields, the Record and Note
// entities, the Store persistence interface, and the standard errors shared
// by the memok packages.
package types
