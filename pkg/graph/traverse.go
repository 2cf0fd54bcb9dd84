package graph

import (
	"context"
	"fmt"
	"slices"
	"sort"
)

type pathState struct {
	nodeID       int64
	relationType string
	strength     int32
	depth        int32
	path         []int64
}

// FindNetwork walks every cycle-free path of up to opts.MaxDepth hops
// starting at rootID and returns one representative per reachable target:
// the shallowest path, with bottleneck strength breaking depth ties.
// Results are ordered by target id ascending.
func FindNetwork(ctx context.Context, src EdgeSource, rootID int64, opts Options) ([]ReachableNode, error) {
	if opts.MaxDepth <= 0 {
		return []ReachableNode{}, nil
	}

	best := make(map[int64]ReachableNode)

	// FIFO worklist of partial paths. Each state carries its own visited
	// set (the path), so two branches never block each other.
	worklist := []pathState{{
		nodeID: rootID,
		path:   []int64{rootID},
	}}

	for len(worklist) > 0 {
		cur := worklist[0]
		worklist = worklist[1:]

		if cur.depth >= int32(opts.MaxDepth) {
			continue
		}

		edges, err := src.OutgoingEdges(ctx, cur.nodeID)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrStoreUnavailable, err)
		}

		for _, edge := range edges {
			if slices.Contains(cur.path, edge.TargetID) {
				// A root self edge is only a result when explicitly wanted.
				// Every other revisit would close a cycle.
				if !opts.IncludeSelfLoops || cur.depth != 0 || edge.TargetID != rootID {
					continue
				}
			}

			strength := edge.Strength
			if cur.depth > 0 && cur.strength < strength {
				strength = cur.strength
			}

			next := pathState{
				nodeID:       edge.TargetID,
				relationType: edge.RelationType,
				strength:     strength,
				depth:        cur.depth + 1,
				path:         append(slices.Clone(cur.path), edge.TargetID),
			}

			record(best, next)

			// A self loop terminates its path; everything else keeps walking.
			if edge.TargetID != rootID {
				worklist = append(worklist, next)
			}
		}
	}

	results := make([]ReachableNode, 0, len(best))
	for _, node := range best {
		results = append(results, node)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].TargetID < results[j].TargetID
	})
	return results, nil
}

// record keeps the better of the stored representative and the candidate:
// lower depth wins, then higher bottleneck strength. Equal candidates keep
// the earlier arrival so traversal order stays deterministic.
func record(best map[int64]ReachableNode, cand pathState) {
	existing, ok := best[cand.nodeID]
	if ok {
		if existing.Depth < cand.depth {
			return
		}
		if existing.Depth == cand.depth && existing.Strength >= cand.strength {
			return
		}
	}
	best[cand.nodeID] = ReachableNode{
		TargetID:     cand.nodeID,
		RelationType: cand.relationType,
		Strength:     cand.strength,
		Depth:        cand.depth,
		Path:         cand.path,
		RiskCost:     cand.depth * (11 - cand.strength),
	}
}
