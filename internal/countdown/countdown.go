package countdown

import (
	"time"
)

// Snapshot is the client-facing view of the time left until a payment
// deadline. Urgent flips on below 30 minutes so the UI can switch to its
// warning treatment.
type Snapshot struct {
	Hours   int  `json:"hours"`
	Minutes int  `json:"minutes"`
	Seconds int  `json:"seconds"`
	Expired bool `json:"expired"`
	Urgent  bool `json:"is_urgent"`
}

const urgentThreshold = 30 * time.Minute

// Compute derives the remaining time against a deadline. Once the deadline
// passes, all fields are zero and Expired is true.
func Compute(deadline, now time.Time) Snapshot {
	remaining := deadline.Sub(now)
	if remaining <= 0 {
		return Snapshot{Expired: true}
	}

	total := int(remaining / time.Second)
	h := total / 3600
	return Snapshot{
		Hours:   h,
		Minutes: (total % 3600) / 60,
		Seconds: total % 60,
		Urgent:  h == 0 && remaining < urgentThreshold,
	}
}
