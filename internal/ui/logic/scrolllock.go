package logic

import "sync"

// ScrollLock is a reference-counted lock on background scrolling shared by
// every mounted browser. It is held while any modal is open.
type ScrollLock struct {
	mu       sync.Mutex
	holders  int
	acquired int
	released int
}

// NewScrollLock creates an unlocked ScrollLock
func NewScrollLock() *ScrollLock {
	return &ScrollLock{}
}

// Acquire takes a hold and returns its release func. Calling release more
// than once has no further effect.
func (l *ScrollLock) Acquire() (release func()) {
	l.mu.Lock()
	l.holders++
	l.acquired++
	l.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			l.mu.Lock()
			l.holders--
			l.released++
			l.mu.Unlock()
		})
	}
}

// Locked reports whether anyone holds the lock
func (l *ScrollLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders > 0
}

// Holders returns the number of outstanding holds
func (l *ScrollLock) Holders() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.holders
}

// Counts returns how many holds were taken and released in total
func (l *ScrollLock) Counts() (acquired, released int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.acquired, l.released
}
