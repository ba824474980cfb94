package model

import (
	"fmt"

	"beanmap/internal/common"
	"beanmap/internal/typeresolve"
)

// HintContainer holds a deferred type hint. The names are not loaded at
// compile time; the engine calls Resolve when it needs the types.
type HintContainer struct {
	// Text is the hint as written, possibly a comma-separated chain.
	Text string
}

// NewHintContainer returns nil for blank text.
func NewHintContainer(text string) *HintContainer {
	if common.IsBlank(text) {
		return nil
	}

	return &HintContainer{Text: text}
}

// Names returns the hinted type names in order.
func (h *HintContainer) Names() []string {
	if h == nil {
		return nil
	}

	return common.SplitList(h.Text)
}

// Resolve loads every hinted type through r.
func (h *HintContainer) Resolve(r typeresolve.Resolver) ([]*typeresolve.Handle, error) {
	names := h.Names()
	out := make([]*typeresolve.Handle, 0, len(names))

	for _, name := range names {
		handle, err := r.Resolve(name)
		if err != nil {
			return nil, fmt.Errorf("hint %q: %w", h.Text, err)
		}

		out = append(out, handle)
	}

	return out, nil
}
