package services

import (
	"topo-schedule/internal/models"
)

// TopologyService runs the core operations against an explicit session. The
// flow dataset and run controller are shared and read-only.
type TopologyService struct {
	dataset *FlowDataset
	ctrl    *RunController
}

func NewTopologyService(dataset *FlowDataset, ctrl *RunController) *TopologyService {
	if dataset == nil {
		dataset = EmptyFlowDataset()
	}
	return &TopologyService{dataset: dataset, ctrl: ctrl}
}

// Dataset returns the shared flow dataset.
func (s *TopologyService) Dataset() *FlowDataset { return s.dataset }

// FilterElements returns the filtered element table of type t.
func (s *TopologyService) FilterElements(sess *Session, t models.ElementType, params models.ElementFilterParams) []models.SwitchingElement {
	var out []models.SwitchingElement
	sess.Do(func(reg *ElementRegistry, _ *RunState) {
		out = FilterElements(reg.Table(t), params)
	})
	return out
}

// ProposeUpdate returns the current status of one schedule slot.
func (s *TopologyService) ProposeUpdate(sess *Session, t models.ElementType, name, hour string) (models.StatusProposal, error) {
	var (
		p   models.StatusProposal
		err error
	)
	sess.Do(func(reg *ElementRegistry, run *RunState) {
		p, err = NewStatusUpdateTransaction(reg, run).Propose(t, name, hour)
	})
	return p, err
}

// CommitUpdate applies a status change to one schedule slot.
func (s *TopologyService) CommitUpdate(sess *Session, t models.ElementType, name, hour string, status models.Status) (models.CommitResult, error) {
	var (
		res models.CommitResult
		err error
	)
	sess.Do(func(reg *ElementRegistry, run *RunState) {
		res, err = NewStatusUpdateTransaction(reg, run).Commit(t, name, hour, status)
	})
	return res, err
}

// RunPowerflow advances the session's run counter if it has pending changes.
func (s *TopologyService) RunPowerflow(sess *Session) (models.RunResult, error) {
	var (
		res models.RunResult
		err error
	)
	sess.Do(func(_ *ElementRegistry, run *RunState) {
		res, err = s.ctrl.RunPowerflow(run)
	})
	return res, err
}

// RunStatus reports the session's run count and dirty flag.
func (s *TopologyService) RunStatus(sess *Session) (runCount int, dirty bool) {
	sess.Do(func(_ *ElementRegistry, run *RunState) {
		runCount, dirty = run.RunCount(), run.Dirty()
	})
	return runCount, dirty
}

// Comparison builds the initial/updated flow comparison for the session.
func (s *TopologyService) Comparison(sess *Session) (models.Comparison, error) {
	runCount, _ := s.RunStatus(sess)
	return BuildComparison(s.dataset, s.ctrl, runCount)
}
