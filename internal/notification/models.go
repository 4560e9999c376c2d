package notification

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification represents a scheduled email notice — a roster excerpt, a
// duty reminder, or a report-ready message — addressed directly to a list
// of recipient emails rather than resolved through platform accounts, since
// duty captains and group captains are staff-sheet rows, not necessarily
// registered users.
type Notification struct {
	ID         primitive.ObjectID `bson:"_id,omitempty"`
	Subject    string             `bson:"subject"`
	Message    string             `bson:"message"`
	SendTime   time.Time          `bson:"send_time"`
	Recipients []string           `bson:"recipients"`
	Status     string             `bson:"status"`
	CreatedAt  time.Time          `bson:"created_at"`
	UpdatedAt  time.Time          `bson:"updated_at"`
	SentTo     []string           `bson:"sent_to"`
}
