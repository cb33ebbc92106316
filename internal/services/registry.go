package services

import (
	"topo-schedule/internal/models"
)

// SetStatusResult reports whether a status update mutated the schedule.
type SetStatusResult struct {
	Changed bool
}

// ElementRegistry holds one ordered table of switching elements per element type.
// It is the only owner allowed to mutate element schedules.
type ElementRegistry struct {
	tables map[models.ElementType][]models.SwitchingElement
}

// NewElementRegistry builds a registry from the generator's tables. Types the
// generator leaves out get an empty table, and schedules missing an hour slot are
// filled with closed so every element carries exactly one entry per slot.
func NewElementRegistry(gen ElementGenerator) *ElementRegistry {
	src := gen.Generate()
	tables := make(map[models.ElementType][]models.SwitchingElement, len(models.ElementTypes))

	for _, t := range models.ElementTypes {
		rows := make([]models.SwitchingElement, 0, len(src[t]))
		for _, el := range src[t] {
			el = el.Clone()
			for _, h := range models.Hours {
				if !el.Schedule[h].Valid() {
					el.Schedule[h] = models.StatusClosed
				}
			}
			for h := range el.Schedule {
				if !models.ValidHour(h) {
					delete(el.Schedule, h)
				}
			}
			rows = append(rows, el)
		}
		tables[t] = rows
	}

	return &ElementRegistry{tables: tables}
}

// Table returns a copy of the element table for t in its original order.
func (r *ElementRegistry) Table(t models.ElementType) []models.SwitchingElement {
	rows := r.tables[t]
	out := make([]models.SwitchingElement, len(rows))
	for i, el := range rows {
		out[i] = el.Clone()
	}
	return out
}

// Status returns the scheduled status of one element at one hour.
func (r *ElementRegistry) Status(t models.ElementType, name, hour string) (models.Status, error) {
	el, err := r.lookup(t, name, hour)
	if err != nil {
		return "", err
	}
	return el.Schedule[hour], nil
}

// SetStatus applies newStatus at hour. Setting the current value is a no-op that
// reports Changed=false. The caller marks the run state dirty on Changed=true.
func (r *ElementRegistry) SetStatus(t models.ElementType, name, hour string, newStatus models.Status) (SetStatusResult, error) {
	el, err := r.lookup(t, name, hour)
	if err != nil {
		return SetStatusResult{}, err
	}
	if !newStatus.Valid() {
		return SetStatusResult{}, &InvalidStatusError{Value: string(newStatus)}
	}
	if el.Schedule[hour] == newStatus {
		return SetStatusResult{Changed: false}, nil
	}
	el.Schedule[hour] = newStatus
	return SetStatusResult{Changed: true}, nil
}

// lookup returns a pointer into the table so SetStatus can mutate in place.
func (r *ElementRegistry) lookup(t models.ElementType, name, hour string) (*models.SwitchingElement, error) {
	if !models.ValidHour(hour) {
		return nil, &NotFoundError{ElementType: t, ElementName: name, Hour: hour}
	}
	rows := r.tables[t]
	for i := range rows {
		if rows[i].ElementName == name {
			return &rows[i], nil
		}
	}
	return nil, &NotFoundError{ElementType: t, ElementName: name, Hour: hour}
}
