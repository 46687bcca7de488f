package domain

import (
	"strings"

	"github.com/google/uuid"
)

// NameKey is the comparison key for domain names. Two domains whose keys are
// equal are duplicates.
func NameKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// CleanExamples trims every example and drops the empty ones. It never
// returns nil so the wire format always carries an array.
func CleanExamples(examples []string) []string {
	out := make([]string, 0, len(examples))
	for _, e := range examples {
		if e = strings.TrimSpace(e); e != "" {
			out = append(out, e)
		}
	}
	return out
}

func UniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
