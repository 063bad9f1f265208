package main

import "github.com/plus3/blockfall/game"

// tally counts the notices of every session played.
type tally struct {
	Sessions  int
	Locks     int
	Clears    int
	Lines     int
	LevelUps  int
	Losses    int
	BestScore int
	MaxLevel  int
}

func (t *tally) Observe(n game.Notice) {
	switch n.Kind {
	case game.NoticeStarted:
		t.Sessions++
	case game.NoticeLocked:
		t.Locks++
	case game.NoticeCleared:
		t.Clears++
		t.Lines += n.Rows
	case game.NoticeLevelUp:
		t.LevelUps++
	case game.NoticeLost:
		t.Losses++
	}
	t.BestScore = max(t.BestScore, n.Score)
	t.MaxLevel = max(t.MaxLevel, n.Level)
}
