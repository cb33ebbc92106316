package services

import (
	"fmt"

	"topo-schedule/internal/models"
)

// StatusUpdateTransaction is the pick-element, pick-hour, submit flow over one
// session's registry and run state.
type StatusUpdateTransaction struct {
	registry *ElementRegistry
	state    *RunState
}

func NewStatusUpdateTransaction(registry *ElementRegistry, state *RunState) *StatusUpdateTransaction {
	return &StatusUpdateTransaction{registry: registry, state: state}
}

// Propose looks up the current status of the slot without changing anything.
func (tx *StatusUpdateTransaction) Propose(t models.ElementType, name, hour string) (models.StatusProposal, error) {
	status, err := tx.registry.Status(t, name, hour)
	if err != nil {
		return models.StatusProposal{}, err
	}
	return models.StatusProposal{
		ElementType:   t,
		ElementName:   name,
		Hour:          hour,
		CurrentStatus: status,
	}, nil
}

// Commit applies newStatus to the slot. An applied change marks the run state
// dirty; resubmitting the current value reports Applied=false.
func (tx *StatusUpdateTransaction) Commit(t models.ElementType, name, hour string, newStatus models.Status) (models.CommitResult, error) {
	res, err := tx.registry.SetStatus(t, name, hour, newStatus)
	if err != nil {
		return models.CommitResult{}, err
	}
	if !res.Changed {
		return models.CommitResult{Applied: false, Message: "No changes were made."}, nil
	}
	tx.state.MarkDirty()
	return models.CommitResult{
		Applied:  true,
		Message:  fmt.Sprintf("Status of %s at %s updated to %s.", name, hour, newStatus),
		Rerender: true,
	}, nil
}
