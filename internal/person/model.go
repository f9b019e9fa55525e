package person

import "time"

// Person represents a participant in the system. People are identified by
// their unique name and are created implicitly the first time a name appears
// as a payer or splitter; they are never deleted.
type Person struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
