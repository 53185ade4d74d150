package cli

import "github.com/google/uuid"

// newRunToken returns a time-sortable UUIDv7 identifying one CLI run.
// Tokens appear in verbose logs so interleaved runs can be told apart.
//
// Panics if UUID generation fails (should never happen in practice).
func newRunToken() string {
	return uuid.Must(uuid.NewV7()).String()
}
