// Package repository holds one repository per aggregate, each issuing
// hand-written SQL against the shared pool. Reads come in two modes: the
// plain Get* methods take no locks, while updates re-read the row with
// SELECT ... FOR UPDATE inside their own transaction. Every operation
// commits independently; there is no cross-call transaction and no caching.
package repository

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("resource not found")
)

func lower(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
