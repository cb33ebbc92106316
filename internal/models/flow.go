package models

// TimestampColumn is the interval label column of the cross-border flow dataset.
const TimestampColumn = "MTU"

// Net border columns derived at load time as inbound minus outbound.
const (
	NetPL = "PL Total"
	NetCZ = "CZ Total"
	NetDK = "DK Total"
)

// NetFlow describes how one net column is derived from two raw columns.
type NetFlow struct {
	Column   string
	Inbound  string
	Outbound string
}

// NetFlows are the derived border columns in output order.
var NetFlows = []NetFlow{
	{Column: NetPL, Inbound: "50H -> PL", Outbound: "PL -> 50H"},
	{Column: NetCZ, Inbound: "50H -> CZ", Outbound: "CZ -> 50H"},
	{Column: NetDK, Inbound: "50H -> DK", Outbound: "DK -> 50H"},
}

// RawTable is a pre-parsed source table: a header row and string cells.
type RawTable struct {
	Header []string
	Rows   [][]string
}

// FlowRecord is one MTU row with every numeric column keyed by name.
type FlowRecord struct {
	MTU   string             `json:"mtu"`
	Flows map[string]float64 `json:"flows"`
}

// Window is a half-open row range [Start, End).
type Window struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of rows the window spans.
func (w Window) Len() int {
	if w.End < w.Start {
		return 0
	}
	return w.End - w.Start
}

// FlowSlice is an ordered sub-table of the flow dataset.
type FlowSlice struct {
	Columns []string     `json:"columns"`
	Rows    []FlowRecord `json:"rows"`
}

// Comparison holds the initial and updated flow slices handed to the renderer.
type Comparison struct {
	RunCount      int       `json:"runCount"`
	InitialWindow Window    `json:"initialWindow"`
	UpdatedWindow Window    `json:"updatedWindow"`
	Initial       FlowSlice `json:"initial"`
	Updated       FlowSlice `json:"updated"`
	// UpdatedFromInitial is set when the updated slice repeats the initial rows
	UpdatedFromInitial bool   `json:"updatedFromInitial"`
	Warning            string `json:"warning,omitempty"`
}
