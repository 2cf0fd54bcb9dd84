package graph

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
)

type mapSource struct {
	edges map[int64][]Edge
	err   error
	calls int
}

func (m *mapSource) OutgoingEdges(ctx context.Context, sourceID int64) ([]Edge, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.edges[sourceID], nil
}

func TestFindNetwork_DirectBeatsIndirect(t *testing.T) {
	// A links B with strength 8, B links C with strength 5 and A links C
	// directly with strength 3. C must be reported once, at depth 1 with
	// the direct strength, not via the stronger two-hop path.
	src := &mapSource{edges: map[int64][]Edge{
		1: {{TargetID: 2, RelationType: "associate", Strength: 8}, {TargetID: 3, RelationType: "rival", Strength: 3}},
		2: {{TargetID: 3, RelationType: "associate", Strength: 5}},
	}}

	got, err := FindNetwork(context.Background(), src, 1, Options{MaxDepth: DefaultMaxDepth})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []ReachableNode{
		{TargetID: 2, RelationType: "associate", Strength: 8, Depth: 1, Path: []int64{1, 2}, RiskCost: 3},
		{TargetID: 3, RelationType: "rival", Strength: 3, Depth: 1, Path: []int64{1, 3}, RiskCost: 8},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestFindNetwork_BottleneckStrength(t *testing.T) {
	// Path strength is the weakest edge along the path.
	src := &mapSource{edges: map[int64][]Edge{
		1: {{TargetID: 2, RelationType: "gang", Strength: 9}},
		2: {{TargetID: 3, RelationType: "gang", Strength: 2}},
		3: {{TargetID: 4, RelationType: "gang", Strength: 7}},
	}}

	got, err := FindNetwork(context.Background(), src, 1, Options{MaxDepth: DefaultMaxDepth})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(got))
	}

	byTarget := make(map[int64]ReachableNode)
	for _, n := range got {
		byTarget[n.TargetID] = n
	}
	if byTarget[3].Strength != 2 {
		t.Fatalf("expected bottleneck 2 for node 3, got %d", byTarget[3].Strength)
	}
	if byTarget[4].Strength != 2 {
		t.Fatalf("expected bottleneck 2 for node 4, got %d", byTarget[4].Strength)
	}
	if byTarget[4].RiskCost != 3*(11-2) {
		t.Fatalf("expected risk cost 27 for node 4, got %d", byTarget[4].RiskCost)
	}
}

func TestFindNetwork_EqualDepthPrefersStronger(t *testing.T) {
	// Two 2-hop routes to node 4; the one with the higher bottleneck wins.
	src := &mapSource{edges: map[int64][]Edge{
		1: {{TargetID: 2, RelationType: "associate", Strength: 4}, {TargetID: 3, RelationType: "associate", Strength: 9}},
		2: {{TargetID: 4, RelationType: "associate", Strength: 9}},
		3: {{TargetID: 4, RelationType: "family", Strength: 8}},
	}}

	got, err := FindNetwork(context.Background(), src, 1, Options{MaxDepth: DefaultMaxDepth})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var node4 *ReachableNode
	for i := range got {
		if got[i].TargetID == 4 {
			node4 = &got[i]
		}
	}
	if node4 == nil {
		t.Fatal("node 4 not reached")
	}
	if node4.Strength != 8 {
		t.Fatalf("expected bottleneck 8 via node 3, got %d", node4.Strength)
	}
	if !reflect.DeepEqual(node4.Path, []int64{1, 3, 4}) {
		t.Fatalf("expected path through node 3, got %v", node4.Path)
	}
}

func TestFindNetwork_CyclesDoNotLoop(t *testing.T) {
	src := &mapSource{edges: map[int64][]Edge{
		1: {{TargetID: 2, RelationType: "gang", Strength: 5}},
		2: {{TargetID: 3, RelationType: "gang", Strength: 5}},
		3: {{TargetID: 1, RelationType: "gang", Strength: 5}, {TargetID: 2, RelationType: "gang", Strength: 5}},
	}}

	got, err := FindNetwork(context.Background(), src, 1, Options{MaxDepth: 10})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The root never reappears and each path stays cycle free.
	for _, n := range got {
		if n.TargetID == 1 {
			t.Fatal("root must not appear as a reachable target")
		}
		seen := make(map[int64]bool)
		for _, id := range n.Path {
			if seen[id] {
				t.Fatalf("cycle in path %v", n.Path)
			}
			seen[id] = true
		}
	}
	if len(got) != 2 {
		t.Fatalf("expected nodes 2 and 3, got %+v", got)
	}
}

func TestFindNetwork_MaxDepthBound(t *testing.T) {
	chain := map[int64][]Edge{
		1: {{TargetID: 2, RelationType: "gang", Strength: 5}},
		2: {{TargetID: 3, RelationType: "gang", Strength: 5}},
		3: {{TargetID: 4, RelationType: "gang", Strength: 5}},
	}

	tests := []struct {
		name     string
		maxDepth int
		want     int
	}{
		{"zero disables traversal", 0, 0},
		{"negative disables traversal", -3, 0},
		{"one hop", 1, 1},
		{"two hops", 2, 2},
		{"beyond chain length", 10, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FindNetwork(context.Background(), &mapSource{edges: chain}, 1, Options{MaxDepth: tt.maxDepth})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(got) != tt.want {
				t.Fatalf("expected %d nodes, got %d", tt.want, len(got))
			}
		})
	}
}

func TestFindNetwork_SelfLoops(t *testing.T) {
	edges := map[int64][]Edge{
		1: {{TargetID: 1, RelationType: "self", Strength: 6}, {TargetID: 2, RelationType: "gang", Strength: 4}},
	}

	got, err := FindNetwork(context.Background(), &mapSource{edges: edges}, 1, Options{MaxDepth: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].TargetID != 2 {
		t.Fatalf("self loop must be excluded by default, got %+v", got)
	}

	got, err = FindNetwork(context.Background(), &mapSource{edges: edges}, 1, Options{MaxDepth: 3, IncludeSelfLoops: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected self loop and neighbor, got %+v", got)
	}
	if got[0].TargetID != 1 || got[0].Depth != 1 || got[0].Strength != 6 {
		t.Fatalf("unexpected self loop representative: %+v", got[0])
	}
}

func TestFindNetwork_SortedByTargetID(t *testing.T) {
	src := &mapSource{edges: map[int64][]Edge{
		1: {
			{TargetID: 9, RelationType: "gang", Strength: 5},
			{TargetID: 3, RelationType: "gang", Strength: 5},
			{TargetID: 7, RelationType: "gang", Strength: 5},
		},
	}}

	got, err := FindNetwork(context.Background(), src, 1, Options{MaxDepth: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1].TargetID >= got[i].TargetID {
			t.Fatalf("results not sorted by target id: %+v", got)
		}
	}
}

func TestFindNetwork_IsolatedRoot(t *testing.T) {
	// A root with no outgoing edges yields an empty list, never nil,
	// so the handler serializes it as [] rather than dropping the key.
	got, err := FindNetwork(context.Background(), &mapSource{}, 1, Options{MaxDepth: DefaultMaxDepth})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	encoded, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(encoded) != "[]" {
		t.Fatalf("expected empty JSON array, got %s", encoded)
	}
}

func TestFindNetwork_StoreFailure(t *testing.T) {
	src := &mapSource{err: errors.New("connection refused")}

	_, err := FindNetwork(context.Background(), src, 1, Options{MaxDepth: 4})
	if !errors.Is(err, ErrStoreUnavailable) {
		t.Fatalf("expected ErrStoreUnavailable, got %v", err)
	}
}

func TestFindNetwork_Deterministic(t *testing.T) {
	src := func() *mapSource {
		return &mapSource{edges: map[int64][]Edge{
			1: {{TargetID: 2, RelationType: "a", Strength: 6}, {TargetID: 3, RelationType: "b", Strength: 6}},
			2: {{TargetID: 4, RelationType: "c", Strength: 6}},
			3: {{TargetID: 4, RelationType: "d", Strength: 6}},
		}}
	}

	first, err := FindNetwork(context.Background(), src(), 1, Options{MaxDepth: 4})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 25; i++ {
		again, err := FindNetwork(context.Background(), src(), 1, Options{MaxDepth: 4})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("traversal not deterministic: %+v vs %+v", first, again)
		}
	}
}
