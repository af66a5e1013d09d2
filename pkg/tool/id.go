package tool

import "github.com/google/uuid"

// GenerateUUIDV7 returns a time-ordered UUID, used as the primary key for
// every persisted row so index order follows insertion order.
func GenerateUUIDV7() string {
	return uuid.Must(uuid.NewV7()).String()
}
