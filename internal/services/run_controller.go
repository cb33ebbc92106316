package services

import (
	"topo-schedule/internal/models"
)

// DefaultWindowSize is the number of MTU rows in one comparison window.
const DefaultWindowSize = 24

// RunState tracks pending edits and completed powerflow runs of one session.
// The zero value is a Clean state with no runs.
type RunState struct {
	runCount int
	dirty    bool
}

func (s *RunState) RunCount() int { return s.runCount }
func (s *RunState) Dirty() bool   { return s.dirty }

// MarkDirty records an accepted schedule change. Dirty -> Dirty is a no-op.
func (s *RunState) MarkDirty() {
	s.dirty = true
}

// RunController drives the Clean/Dirty run state machine and derives the flow
// windows shown for the current run count.
type RunController struct {
	WindowSize int
}

func NewRunController(windowSize int) *RunController {
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}
	return &RunController{WindowSize: windowSize}
}

// RunPowerflow accepts a run only from Dirty: it increments the run count and
// returns to Clean. From Clean it returns ErrNoChanges and leaves state untouched.
// The "Converged" message stands in for a real load-flow solve.
func (c *RunController) RunPowerflow(state *RunState) (models.RunResult, error) {
	if !state.dirty {
		return models.RunResult{
			Success:  false,
			Message:  "No changes to elements. Cross-border flows are not updated.",
			RunCount: state.runCount,
		}, ErrNoChanges
	}
	state.runCount++
	state.dirty = false
	return models.RunResult{
		Success:  true,
		Message:  "LF Calculation started... Converged",
		RunCount: state.runCount,
		Rerender: true,
	}, nil
}

// InitialWindow is always the first window of the dataset.
func (c *RunController) InitialWindow() models.Window {
	return models.Window{Start: 0, End: c.WindowSize}
}

// UpdatedWindow derives the updated row range for runCount. Run 0 maps to
// [W, 2W) and run n >= 1 maps to [W(n+1), W(n+2)), so the first run skips
// [W, 2W). A window running past length also returns *WindowExhaustedError.
func (c *RunController) UpdatedWindow(runCount, length int) (models.Window, error) {
	w := c.WindowSize
	win := models.Window{Start: w, End: 2 * w}
	if runCount >= 1 {
		win = models.Window{Start: w * (runCount + 1), End: w * (runCount + 2)}
	}
	if win.End > length {
		return win, &WindowExhaustedError{Window: win, Length: length}
	}
	return win, nil
}
