package game_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/plus3/blockfall/game"
	"github.com/plus3/blockfall/piece"
)

func TestLogObserver(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	obs := game.LogObserver{Logger: zap.New(core)}
	id := uuid.New()

	obs.Observe(game.Notice{Kind: game.NoticeStarted, SessionID: id})
	obs.Observe(game.Notice{Kind: game.NoticeLocked, SessionID: id, Shape: piece.T})
	obs.Observe(game.Notice{Kind: game.NoticeCleared, SessionID: id, Rows: 2, Score: 20})
	obs.Observe(game.Notice{Kind: game.NoticeLost, SessionID: id, Score: 20})

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)

	assert.Equal(t, "session started", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, id.String(), entries[0].ContextMap()["session"])

	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, "T", entries[1].ContextMap()["shape"])

	assert.Equal(t, int64(2), entries[2].ContextMap()["rows"])
	assert.Equal(t, zapcore.InfoLevel, entries[3].Level)
	assert.Equal(t, int64(20), entries[3].ContextMap()["score"])
}

func TestNoticeKindString(t *testing.T) {
	assert.Equal(t, "level_up", game.NoticeLevelUp.String())
	assert.Equal(t, "unknown", game.NoticeKind(99).String())
}
