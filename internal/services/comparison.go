package services

import (
	"errors"

	"topo-schedule/internal/models"
)

const (
	msgNoData          = "No data available."
	msgWindowExhausted = "No more data available for updated flows. Showing initial data."
)

// BuildComparison assembles the initial and updated flow slices for runCount.
// Before the first run the updated slice repeats the initial rows. When the
// updated window runs past the dataset the initial rows are shown instead and
// the returned error is the *WindowExhaustedError behind the warning.
func BuildComparison(ds *FlowDataset, ctrl *RunController, runCount int) (models.Comparison, error) {
	initialWin := ctrl.InitialWindow()
	updatedWin, winErr := ctrl.UpdatedWindow(runCount, ds.Len())

	cmp := models.Comparison{
		RunCount:      runCount,
		InitialWindow: initialWin,
		UpdatedWindow: updatedWin,
		Initial:       ds.SliceWindow(initialWin),
	}

	if ds.Len() == 0 {
		cmp.Updated = cmp.Initial
		cmp.UpdatedFromInitial = true
		cmp.Warning = msgNoData
		return cmp, nil
	}

	if runCount == 0 {
		cmp.Updated = cmp.Initial
		cmp.UpdatedFromInitial = true
		return cmp, nil
	}

	var exhausted *WindowExhaustedError
	if errors.As(winErr, &exhausted) {
		cmp.Updated = cmp.Initial
		cmp.UpdatedFromInitial = true
		cmp.Warning = msgWindowExhausted
		return cmp, winErr
	}

	cmp.Updated = ds.SliceWindow(updatedWin)
	return cmp, nil
}
