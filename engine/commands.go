package engine

// Commands buffers work that must happen after every system of the frame has
// run, such as notifying observers about what the frame changed.
type Commands struct {
	defers []func()
}

// NewCommands returns an empty command buffer.
func NewCommands() *Commands {
	return &Commands{}
}

// Defer queues fn for the next Flush.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Flush runs the queued functions in order and resets the buffer. Functions
// queued while flushing run in the same Flush.
func (c *Commands) Flush() {
	for i := 0; i < len(c.defers); i++ {
		c.defers[i]()
	}
	clear(c.defers)
	c.defers = c.defers[:0]
}
