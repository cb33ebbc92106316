package services

import (
	"fmt"
	"sort"
	"time"
)

// Acknowledgment is the canned reply of an external integration action.
type Acknowledgment struct {
	Action  string   `json:"action"`
	Steps   []string `json:"steps,omitempty"`
	Message string   `json:"message"`
	Ref     string   `json:"ref,omitempty"`
}

type ackFunc func(now time.Time, newID func() string) Acknowledgment

// IntegrationService answers the import/export buttons. None of them touch
// session or flow state.
type IntegrationService struct {
	now   func() time.Time
	newID func() string
	acks  map[string]ackFunc
}

func NewIntegrationService() *IntegrationService {
	return &IntegrationService{
		now:   time.Now,
		newID: NewMRID,
		acks: map[string]ackFunc{
			"crosa-results": func(_ time.Time, id func() string) Acknowledgment {
				return Acknowledgment{Steps: []string{"Download CGM ..."}, Message: "RemedialActionSchedule.xml imported", Ref: "ID:" + id()}
			},
			"lf-report": func(now time.Time, _ func() string) Acknowledgment {
				return Acknowledgment{Steps: []string{"Download ..."}, Message: fmt.Sprintf(`\RSA_%s\LF_%s`, now.Format("20060102"), now.Format("15_04_05"))}
			},
			"difference-model": func(_ time.Time, id func() string) Acknowledgment {
				return Acknowledgment{Steps: []string{"Generating ..."}, Message: "DiffModel created dependent on: " + id(), Ref: "ID:" + id()}
			},
			"model-improvements": func(time.Time, func() string) Acknowledgment {
				return Acknowledgment{Message: "DACF Topo Changes imported"}
			},
			"asp-import": func(time.Time, func() string) Acknowledgment {
				return Acknowledgment{Message: "Ausschaltplanung imported"}
			},
			"pst-ceps": func(time.Time, func() string) Acknowledgment {
				return Acknowledgment{Steps: []string{"Connecting to OPDE..."}, Message: "PST imported as Group"}
			},
			"pst-tennet": func(time.Time, func() string) Acknowledgment {
				return Acknowledgment{Steps: []string{"Connecting to OPDE..."}, Message: "PST imported as Group"}
			},
			"validation": func(time.Time, func() string) Acknowledgment {
				return Acknowledgment{
					Steps:   []string{"Checking Header, Version, mRID and References", "Consistency Check ..."},
					Message: "Validation passed (QoDOC 2.2)",
				}
			},
			"mft-transfer": func(time.Time, func() string) Acknowledgment {
				return Acknowledgment{Message: "Local File Transfer (MFT)", Ref: "/TPSchedule/#_7336296309712345"}
			},
			"opde-export": func(time.Time, func() string) Acknowledgment {
				return Acknowledgment{Steps: []string{"OPDE Export ..."}, Message: "Upload confirmed.", Ref: "ID: #_7336296309712345"}
			},
		},
	}
}

// Actions lists the supported action names in sorted order.
func (s *IntegrationService) Actions() []string {
	out := make([]string, 0, len(s.acks))
	for name := range s.acks {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Acknowledge returns the canned reply for action.
func (s *IntegrationService) Acknowledge(action string) (Acknowledgment, bool) {
	fn, ok := s.acks[action]
	if !ok {
		return Acknowledgment{}, false
	}
	ack := fn(s.now(), s.newID)
	ack.Action = action
	return ack, true
}
