package models

import "fmt"

// ElementType names one of the fixed switching element tables.
type ElementType string

const (
	ElementSwitch        ElementType = "Switch"
	ElementBreaker       ElementType = "Breaker"
	ElementDisconnector  ElementType = "Disconnector"
	ElementBusbarCoupler ElementType = "BusbarCoupler"
)

// ElementTypes lists the closed set of element types in display order.
var ElementTypes = []ElementType{ElementSwitch, ElementBreaker, ElementDisconnector, ElementBusbarCoupler}

// ParseElementType matches the exact type name.
func ParseElementType(s string) (ElementType, bool) {
	for _, t := range ElementTypes {
		if string(t) == s {
			return t, true
		}
	}
	return "", false
}

// Status is the open/closed position of a switching element for one hour.
type Status string

const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

// Statuses lists the valid status values.
var Statuses = []Status{StatusOpen, StatusClosed}

func (s Status) Valid() bool {
	return s == StatusOpen || s == StatusClosed
}

// Groups is the enumerated set of operator groups an element can belong to.
var Groups = []string{"VIE", "ROE", "HH"}

// Hours holds the 24 schedule slot labels "00:00" .. "23:00".
var Hours = func() []string {
	h := make([]string, 24)
	for i := range h {
		h[i] = fmt.Sprintf("%02d:00", i)
	}
	return h
}()

// ValidHour reports whether hour is one of the 24 schedule slots.
func ValidHour(hour string) bool {
	for _, h := range Hours {
		if h == hour {
			return true
		}
	}
	return false
}

// SwitchingElement is one physical switching device and its day schedule.
type SwitchingElement struct {
	ElementName string            `json:"elementName"`
	MRID        string            `json:"mRID"`
	InService   bool              `json:"inService"`
	Group       string            `json:"group"`
	Schedule    map[string]Status `json:"schedule"`
}

// Clone returns a copy that shares no schedule map with e.
func (e SwitchingElement) Clone() SwitchingElement {
	c := e
	c.Schedule = make(map[string]Status, len(e.Schedule))
	for h, s := range e.Schedule {
		c.Schedule[h] = s
	}
	return c
}

// ElementFilterParams holds optional substring predicates; empty strings impose no constraint.
type ElementFilterParams struct {
	MRIDContains  string
	GroupContains string
	NameContains  string
}

// StatusProposal is the read-only result of looking up one schedule slot.
type StatusProposal struct {
	ElementType   ElementType `json:"elementType"`
	ElementName   string      `json:"elementName"`
	Hour          string      `json:"hour"`
	CurrentStatus Status      `json:"currentStatus"`
}

// CommitResult reports the outcome of a status update. Rerender is set when the
// caller should refresh its element and flow views.
type CommitResult struct {
	Applied  bool   `json:"applied"`
	Message  string `json:"message"`
	Rerender bool   `json:"rerender"`
}

// RunResult reports the outcome of a powerflow run request.
type RunResult struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	RunCount int    `json:"runCount"`
	Rerender bool   `json:"rerender"`
}
