package editor

import "sync"

const (
	LevelSuccess = "success"
	LevelWarning = "warning"
	LevelError   = "error"
)

// Notice is a transient user-facing notification, the toast of the editor UI.
type Notice struct {
	Level   string
	Title   string
	Message string
}

// Notifier receives notices. Every failure surfaces here; nothing is
// silently swallowed.
type Notifier interface {
	Notify(Notice)
}

// NoticeLog is a Notifier that records notices, used by hosts that drain
// them into their own UI and by tests.
type NoticeLog struct {
	mu      sync.Mutex
	notices []Notice
}

func (l *NoticeLog) Notify(n Notice) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.notices = append(l.notices, n)
}

// Drain returns and clears the recorded notices.
func (l *NoticeLog) Drain() []Notice {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.notices
	l.notices = nil
	return out
}
