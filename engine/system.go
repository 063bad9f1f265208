package engine

// System is one step of a frame. Systems run in registration order and may
// keep their own fields between frames.
type System[S any] interface {
	Execute(frame *UpdateFrame[S])
}
