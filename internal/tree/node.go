package tree

import "zonetree/internal/model"

type Kind int

const (
	KindRoot Kind = iota
	KindZone
	KindRecord
	KindPlaceholder
	KindError
)

// LoadState tracks lazy loading per zone node. A zone has at most one
// in-flight load; re-entrant triggers while Loading are ignored.
type LoadState int

const (
	LoadUnloaded LoadState = iota
	LoadLoading
	LoadLoaded
	LoadFailed
)

// Node is one entry in the zone/record hierarchy. Payload access goes
// through Kind: Zone is set only for KindZone, Record only for KindRecord.
// Parent is a non-owning back-reference maintained by ReplaceChildren.
type Node struct {
	ID       string
	Label    string
	Kind     Kind
	Children []*Node
	Parent   *Node

	Zone   *model.Zone
	Record *model.Record

	State LoadState
	// LoadSeq distinguishes loads against the same node: results stamped
	// with a stale sequence are dropped on receipt.
	LoadSeq int
}

func NewZoneNode(z model.Zone) *Node {
	zone := z
	return &Node{ID: z.ID, Label: z.Name, Kind: KindZone, Zone: &zone}
}

func NewRecordNode(r model.Record) *Node {
	rec := r
	return &Node{ID: r.ID, Label: rec.Summary(), Kind: KindRecord, Record: &rec}
}

// NewPlaceholder returns the lazy-load marker a fresh zone node carries. It
// doubles as the informational leaf for a zone that loaded empty, with a
// different label.
func NewPlaceholder(zoneID, label string) *Node {
	return &Node{ID: "placeholder:" + zoneID, Label: label, Kind: KindPlaceholder}
}

func NewErrorLeaf(zoneID, message string) *Node {
	return &Node{ID: "error:" + zoneID, Label: message, Kind: KindError}
}
