package debugui

import (
	"fmt"
	"time"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/engine"
	"github.com/plus3/blockfall/game"
)

// SessionInspector shows the live state of the current session.
func SessionInspector(g *game.Game) Item {
	return Item{Render: func() {
		imgui.SetNextWindowPosV(imgui.NewVec2(10, 10), imgui.CondOnce, imgui.NewVec2(0, 0))
		imgui.SetNextWindowSizeV(imgui.NewVec2(230, 300), imgui.CondOnce)

		if !imgui.BeginV("Session", nil, imgui.WindowFlagsNone) {
			imgui.End()
			return
		}
		defer imgui.End()

		imgui.Text(fmt.Sprintf("Phase: %s", g.Phase()))
		for _, line := range inspectLines(g.Session()) {
			if line == "" {
				imgui.Separator()
				continue
			}
			imgui.Text(line)
		}
	}}
}

func inspectLines(s *game.Session) []string {
	if s == nil {
		return []string{"No session yet"}
	}
	return []string{
		fmt.Sprintf("ID: %s", s.ID),
		fmt.Sprintf("Score: %d", s.Score),
		fmt.Sprintf("Level: %d", s.Level),
		fmt.Sprintf("Lines: %d", s.Lines),
		"",
		fmt.Sprintf("Fall speed: %.3f s", s.FallSpeed),
		fmt.Sprintf("Fall timer: %.0f ms", s.FallTimer),
		fmt.Sprintf("Level timer: %.0f ms", s.LevelTimer),
		fmt.Sprintf("Elapsed: %s", s.Elapsed.Round(time.Second)),
		"",
		fmt.Sprintf("Locked cells: %d", s.Locked.Len()),
		fmt.Sprintf("Pieces: %d", s.Pieces),
		fmt.Sprintf("Current: %s at (%d,%d) r%d", s.Current.Shape, s.Current.Col, s.Current.Row, s.Current.Rotation),
		fmt.Sprintf("Next: %s", s.Next.Shape),
		fmt.Sprintf("Lock pending: %t", s.LockPending()),
	}
}

// PerformanceStats plots frame times and lists per-system timings.
type PerformanceStats struct {
	game   *game.Game
	frames *history
	last   time.Time
	now    func() time.Time
}

// NewPerformanceStats tracks frame times of g over historyFrames frames.
func NewPerformanceStats(g *game.Game, historyFrames int) *PerformanceStats {
	return &PerformanceStats{
		game:   g,
		frames: newHistory(historyFrames),
		now:    time.Now,
	}
}

// Item returns the window as an overlay item.
func (ps *PerformanceStats) Item() Item {
	return Item{Render: ps.Render}
}

func (ps *PerformanceStats) tick() {
	now := ps.now()
	if !ps.last.IsZero() {
		ps.frames.push(float32(now.Sub(ps.last).Seconds() * 1000))
	}
	ps.last = now
}

// Render draws the frame-time plot and the system table.
func (ps *PerformanceStats) Render() {
	ps.tick()

	imgui.SetNextWindowPosV(imgui.NewVec2(10, 320), imgui.CondOnce, imgui.NewVec2(0, 0))
	imgui.SetNextWindowSizeV(imgui.NewVec2(420, 300), imgui.CondOnce)

	if !imgui.BeginV("Performance Stats", nil, imgui.WindowFlagsNone) {
		imgui.End()
		return
	}

	avg := ps.frames.average()
	if avg > 0 {
		imgui.Text(fmt.Sprintf("Avg Frame Time: %.2f ms (%.0f FPS)", avg, 1000.0/avg))
	}

	samples := ps.frames.ordered()
	if len(samples) > 0 {
		imgui.Separator()
		imgui.Text("Frame Time Graph (ms)")
		imgui.PlotLinesFloatPtr("##frametime", &samples[0], int32(len(samples)))
	}

	stats := ps.game.Stats()
	imgui.Text(fmt.Sprintf("Frames: %d", stats.Frames))

	const tableFlags = imgui.TableFlagsBorders | imgui.TableFlagsRowBg
	if imgui.BeginTableV("SystemStatsTable", 5, tableFlags, imgui.NewVec2(0, 0), 0) {
		imgui.TableSetupColumn("System")
		imgui.TableSetupColumn("Runs")
		imgui.TableSetupColumn("Avg")
		imgui.TableSetupColumn("Max")
		imgui.TableSetupColumn("Last")
		imgui.TableHeadersRow()

		for _, row := range systemRows(stats) {
			imgui.TableNextRow()
			for _, cell := range row {
				imgui.TableNextColumn()
				imgui.Text(cell)
			}
		}

		imgui.EndTable()
	}

	imgui.End()
}

func systemRows(stats *engine.SchedulerStats) [][5]string {
	rows := make([][5]string, 0, len(stats.Systems))
	for _, s := range stats.Systems {
		rows = append(rows, [5]string{
			s.Name,
			fmt.Sprintf("%d", s.ExecutionCount),
			s.AvgDuration.String(),
			s.MaxDuration.String(),
			s.LastDuration.String(),
		})
	}
	return rows
}
