package logic

import "time"

// CopyAck marks an item whose payload was just copied
type CopyAck struct {
	ItemID  string
	Seq     uint64
	Expires time.Time
}

// AckTracker holds at most one CopyAck. Every copy request gets a sequence
// number; results and expiry timers carry it so that late arrivals from an
// older request never touch a newer acknowledgment.
type AckTracker struct {
	nextSeq uint64
	applied uint64
	active  *CopyAck
}

// Begin allocates the sequence number for a new copy request
func (t *AckTracker) Begin() uint64 {
	t.nextSeq++
	return t.nextSeq
}

// Succeed records a successful copy. Results older than the newest applied
// one are dropped; it reports whether the acknowledgment was set.
func (t *AckTracker) Succeed(itemID string, seq uint64, now time.Time, ttl time.Duration) bool {
	if seq <= t.applied {
		return false
	}
	t.applied = seq
	t.active = &CopyAck{ItemID: itemID, Seq: seq, Expires: now.Add(ttl)}
	return true
}

// Expire clears the acknowledgment only if it is still the one the timer was
// started for.
func (t *AckTracker) Expire(itemID string, seq uint64) bool {
	if t.active == nil || t.active.ItemID != itemID || t.active.Seq != seq {
		return false
	}
	t.active = nil
	return true
}

// Active returns the current acknowledgment
func (t *AckTracker) Active() (CopyAck, bool) {
	if t.active == nil {
		return CopyAck{}, false
	}
	return *t.active, true
}

// IsCopied reports whether itemID carries the active acknowledgment
func (t *AckTracker) IsCopied(itemID string) bool {
	return t.active != nil && t.active.ItemID == itemID
}

// Reset drops the acknowledgment; pending timers become no-ops
func (t *AckTracker) Reset() {
	t.active = nil
}
