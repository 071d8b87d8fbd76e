package domain

// MinSplit is the smallest party size any channel will emit.
const MinSplit = 1

// SessionState captures the latest known value of each input channel.
// It is owned by the caller of the engine, never by the engine itself.
type SessionState struct {
	Bill  Bill         `json:"bill"`
	Tip   TipSelection `json:"tip"`
	Split int          `json:"split"`
}

// NewSessionState returns the state at attach time and after every reset.
func NewSessionState() SessionState {
	return SessionState{
		Bill:  NoBill,
		Tip:   NoTip,
		Split: MinSplit,
	}
}

// ClampSplit keeps a party size at or above MinSplit.
func ClampSplit(n int) int {
	if n < MinSplit {
		return MinSplit
	}
	return n
}
