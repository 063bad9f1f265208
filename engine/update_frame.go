package engine

// UpdateFrame is handed to every system during one Scheduler.Once call.
type UpdateFrame[S any] struct {
	// DeltaTime is the elapsed time since the previous frame in milliseconds.
	DeltaTime float64
	State     *S
	Commands  *Commands
}

func newUpdateFrame[S any](dt float64, state *S, commands *Commands) *UpdateFrame[S] {
	return &UpdateFrame[S]{
		DeltaTime: dt,
		State:     state,
		Commands:  commands,
	}
}
