package chat

import "time"

// Role labels the author of a message.
type Role string

const (
	RoleUser   Role = "user"
	RoleModel  Role = "model"
	RoleSystem Role = "system"
)

// GreetingMessageID is the fixed id of the seeded greeting. It is the only
// message whose text may be rewritten after creation, and only while it is
// still the sole message of its session (a language switch relocalizes it).
const GreetingMessageID = "init"

// Message is a single turn in a conversation. Immutable once created;
// messages are only ever removed together with their whole session.
type Message struct {
	ID        string    `json:"id"`
	Role      Role      `json:"role"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}
