package game

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/plus3/blockfall/piece"
)

// NoticeKind identifies what a Notice reports.
type NoticeKind uint8

const (
	NoticeStarted NoticeKind = iota
	NoticeLocked
	NoticeCleared
	NoticeLevelUp
	NoticeLost
)

var noticeNames = [...]string{
	NoticeStarted: "started",
	NoticeLocked:  "locked",
	NoticeCleared: "cleared",
	NoticeLevelUp: "level_up",
	NoticeLost:    "lost",
}

func (k NoticeKind) String() string {
	if int(k) < len(noticeNames) {
		return noticeNames[k]
	}
	return "unknown"
}

// Notice describes something a frame changed. Notices are delivered after
// every system of the frame has run.
type Notice struct {
	Kind      NoticeKind
	SessionID uuid.UUID
	Score     int
	Level     int
	Lines     int
	Shape     piece.Shape
	// Rows is the number of rows removed by a NoticeCleared.
	Rows int
}

func (s *Session) notice(kind NoticeKind) Notice {
	return Notice{
		Kind:      kind,
		SessionID: s.ID,
		Score:     s.Score,
		Level:     s.Level,
		Lines:     s.Lines,
	}
}

// Observer receives game notices.
type Observer interface {
	Observe(Notice)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Notice)

func (f ObserverFunc) Observe(n Notice) { f(n) }

type observers []Observer

func (o observers) notify(n Notice) {
	for _, observer := range o {
		observer.Observe(n)
	}
}

// LogObserver writes notices to a zap logger. Session start and loss are
// logged at info level, everything else at debug.
type LogObserver struct {
	Logger *zap.Logger
}

func (l LogObserver) Observe(n Notice) {
	fields := []zap.Field{
		zap.Stringer("session", n.SessionID),
		zap.Int("score", n.Score),
		zap.Int("level", n.Level),
		zap.Int("lines", n.Lines),
	}

	switch n.Kind {
	case NoticeStarted:
		l.Logger.Info("session started", fields...)
	case NoticeLost:
		l.Logger.Info("session lost", fields...)
	case NoticeLocked:
		l.Logger.Debug("piece locked", append(fields, zap.Stringer("shape", n.Shape))...)
	case NoticeCleared:
		l.Logger.Debug("rows cleared", append(fields, zap.Int("rows", n.Rows))...)
	case NoticeLevelUp:
		l.Logger.Debug("level up", fields...)
	}
}
