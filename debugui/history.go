package debugui

// history is a fixed-size ring of frame times in milliseconds.
type history struct {
	samples []float32
	index   int
	filled  int
}

// newHistory keeps the last size samples, at least one.
func newHistory(size int) *history {
	return &history{samples: make([]float32, max(size, 1))}
}

func (h *history) push(ms float32) {
	h.samples[h.index] = ms
	h.index = (h.index + 1) % len(h.samples)
	if h.filled < len(h.samples) {
		h.filled++
	}
}

// average returns the mean over the pushed samples, zero when empty.
func (h *history) average() float32 {
	if h.filled == 0 {
		return 0
	}
	var sum float32
	for _, ms := range h.samples[:h.filled] {
		sum += ms
	}
	return sum / float32(h.filled)
}

// ordered returns the samples oldest first.
func (h *history) ordered() []float32 {
	out := make([]float32, 0, h.filled)
	if h.filled < len(h.samples) {
		return append(out, h.samples[:h.filled]...)
	}
	out = append(out, h.samples[h.index:]...)
	return append(out, h.samples[:h.index]...)
}
