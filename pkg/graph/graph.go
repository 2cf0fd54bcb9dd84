// Package graph implements breadth-first traversal over the directed,
// weighted criminal relationship graph. Edges are fetched lazily through
// an EdgeSource so the engine stays independent of the storage backend.
package graph

import (
	"context"
	"errors"
)

// DefaultMaxDepth bounds a traversal when the caller does not pick one.
const DefaultMaxDepth = 6

// ErrStoreUnavailable wraps any edge-fetch failure during a traversal.
var ErrStoreUnavailable = errors.New("relationship store unavailable")

// Edge is a single directed relationship leaving a node.
type Edge struct {
	TargetID     int64  `json:"target_id"`
	RelationType string `json:"relation_type"`
	Strength     int32  `json:"strength"`
}

// EdgeSource supplies the outgoing edges of a node.
type EdgeSource interface {
	OutgoingEdges(ctx context.Context, sourceID int64) ([]Edge, error)
}

// ReachableNode is the representative path to one reachable target.
// Strength is the bottleneck of the path: the weakest edge along it.
type ReachableNode struct {
	TargetID     int64   `json:"target_id"`
	RelationType string  `json:"relation_type"`
	Strength     int32   `json:"strength"`
	Depth        int32   `json:"depth"`
	Path         []int64 `json:"path"`
	RiskCost     int32   `json:"risk_cost"`
}

// Options configures a traversal.
type Options struct {
	// MaxDepth bounds path length in hops. A value <= 0 disables the
	// traversal entirely and yields an empty result.
	MaxDepth int

	// IncludeSelfLoops keeps a root self edge as a depth-1 result.
	// Self loops deeper in a path are always excluded by the cycle rule.
	IncludeSelfLoops bool
}
