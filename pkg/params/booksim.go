package params

import (
	"fmt"
	"maps"
	"sync"
)

// Parameter names of the booksim2 component.
const (
	BookSimClock    = "booksim_clock"
	LinkClock       = "booksim_link_clock"
	NumMotifNodes   = "num_motif_nodes"
	Topology        = "topology"
	RoutingFunction = "routing_function"
	PacketSize      = "packet_size"
	NumVCs          = "num_vcs"
)

// MaxVirtualChannels is the largest VC count the simulator's routers accept.
const MaxVirtualChannels = 16

// bookSimRouting lists the routing functions booksim registers per topology.
// booksim looks routing functions up as "<routing_function>_<topology>".
// Values are the minimum VC count: routing functions that split the VC
// space into classes cannot run on fewer.
var bookSimRouting = RoutingTable{
	"mesh": {
		"dim_order":      1,
		"dim_order_ni":   1,
		"dim_order_pni":  1,
		"xy_yx":          2,
		"adaptive_xy_yx": 2,
		"romm":           2,
		"romm_ni":        2,
		"planar_adapt":   1,
		"valiant":        2,
		"chaos":          1,
	},
	"torus": {
		"dim_order":     1,
		"dim_order_ni":  1,
		"dim_order_bal": 2,
		"valiant":       2,
		"valiant_ni":    2,
		"min_adapt":     2,
		"chaos":         1,
	},
	"cmesh": {
		"dor":              1,
		"dor_no_express":   1,
		"xy_yx":            2,
		"xy_yx_no_express": 2,
	},
	"flatfly": {
		"ran_min":           1,
		"xyyx":              2,
		"adaptive_xyyx":     2,
		"valiant":           2,
		"ugal":              2,
		"ugal_xyyx":         2,
		"ugal_inflight_avg": 2,
		"ugal_pni":          2,
		"par_inflight_avg":  2,
		"dgb":               2,
	},
	"dragonfly": {
		"min":               1,
		"min_adapt":         1,
		"ugal":              2,
		"valn":              2,
		"ugal_inflight_avg": 2,
		"par_inflight_avg":  2,
		"dgb":               2,
	},
	"fattree": {
		"nca":  1,
		"anca": 1,
	},
	"tree4": {
		"nca":  1,
		"anca": 1,
	},
	"anynet": {
		"min": 1,
	},
}

// BookSimRouting returns a copy of the booksim2 topology/routing table.
func BookSimRouting() RoutingTable {
	out := make(RoutingTable, len(bookSimRouting))
	for topology, fns := range bookSimRouting {
		out[topology] = maps.Clone(fns)
	}
	return out
}

func int64Ptr(v int64) *int64 { return &v }

// BookSimParameters returns the parameter table of the booksim2 component.
func BookSimParameters() []ParameterSpec {
	return []ParameterSpec{
		{
			Name:        BookSimClock,
			Type:        KindClock,
			Description: "BookSim clock frequency",
			Default:     "1GHz",
		},
		{
			Name:        LinkClock,
			Type:        KindClock,
			Description: "Link clock between the motif interface and BookSim",
			DefaultFrom: BookSimClock,
		},
		{
			Name:        NumMotifNodes,
			Type:        KindNonNegative,
			Description: "Number of motif nodes",
			Default:     0,
		},
		{
			Name:        Topology,
			Type:        KindEnum,
			Description: "Network topology",
			Default:     "dragonfly",
			Options:     bookSimRouting.Topologies(),
		},
		{
			Name:        RoutingFunction,
			Type:        KindEnum,
			Description: "Routing function algorithm",
			Default:     "min_adapt",
			Options:     bookSimRouting.RoutingFunctions(),
		},
		{
			Name:        PacketSize,
			Type:        KindPositive,
			Description: "Packet size in flits",
			Default:     1,
		},
		{
			Name:        NumVCs,
			Type:        KindPositive,
			Description: "Number of virtual channels",
			Default:     1,
			Max:         int64Ptr(MaxVirtualChannels),
		},
	}
}

// NewBookSimSchema builds a fresh booksim2 schema.
func NewBookSimSchema() (*Schema, error) {
	return NewSchema(BookSimParameters(), RoutingConstraint{
		Topology: Topology,
		Routing:  RoutingFunction,
		VCs:      NumVCs,
		Table:    BookSimRouting(),
	})
}

// Default returns the process-wide booksim2 schema. It is built on first use
// and never modified afterwards.
var Default = sync.OnceValue(func() *Schema {
	s, err := NewBookSimSchema()
	if err != nil {
		panic(fmt.Sprintf("params: built-in booksim2 schema is invalid: %v", err))
	}
	return s
})

// BindDefault binds sets against the default booksim2 schema.
func BindDefault(sets ...ParameterSet) (*Resolved, error) {
	return Bind(Default(), sets...)
}
