package domain

import "time"

// FileStat is the raw storage view of one directory entry, before any
// catalog filtering or id derivation is applied.
type FileStat struct {
	Name      string
	Path      string
	SizeBytes uint64
	ModTime   time.Time
}
