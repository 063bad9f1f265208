// Package debugui draws Dear ImGui debug windows over the desktop frontend.
package debugui

import (
	"time"

	ebitenbackend "github.com/AllenDang/cimgui-go/backend/ebiten-backend"
	"github.com/AllenDang/cimgui-go/imgui"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/plus3/blockfall/engine"
)

// Item holds a Dear ImGui render function. Items render once per update.
type Item struct {
	Render func()
}

// InputState tracks whether ImGui is consuming mouse or keyboard input.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// frameState is what the overlay systems share during one update.
type frameState struct {
	DeltaTime time.Duration
	Input     InputState
	Items     []Item
}

// ImguiSystem updates the input capture state and defers every item's
// render function.
type ImguiSystem struct{}

func (ImguiSystem) Execute(frame *engine.UpdateFrame[frameState]) {
	io := imgui.CurrentIO()
	frame.State.Input.WantCaptureMouse = io.WantCaptureMouse()
	frame.State.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range frame.State.Items {
		frame.Commands.Defer(item.Render)
	}
}

// Overlay owns the ImGui ebiten backend. It implements display.Overlay.
type Overlay struct {
	backend   *ebitenbackend.EbitenBackend
	state     *frameState
	scheduler *engine.Scheduler[frameState]
}

// New creates the backend window and an overlay without items.
func New(title string, width, height int) *Overlay {
	backend := ebitenbackend.NewEbitenBackend()
	backend.CreateWindow(title, width, height)
	imgui.CurrentIO().SetIniFilename("")

	state := &frameState{}
	scheduler := engine.NewScheduler(state)
	scheduler.Register(ImguiSystem{})

	return &Overlay{
		backend:   backend,
		state:     state,
		scheduler: scheduler,
	}
}

// Add registers an item.
func (o *Overlay) Add(item Item) {
	o.state.Items = append(o.state.Items, item)
}

// Update runs one imgui frame with every item.
func (o *Overlay) Update(dt time.Duration) {
	o.state.DeltaTime = dt
	o.backend.BeginFrame()
	o.scheduler.Once(float64(dt) / float64(time.Millisecond))
	o.backend.EndFrame()
}

// Draw renders the imgui frame onto screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	o.backend.Draw(screen)
}

// Layout resizes the imgui display.
func (o *Overlay) Layout(width, height int) {
	o.backend.Layout(width, height)
}

// WantsKeyboard reports whether an imgui widget has keyboard focus.
func (o *Overlay) WantsKeyboard() bool {
	return o.state.Input.WantCaptureKeyboard
}
