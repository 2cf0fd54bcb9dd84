// Package graphpgx adapts the relationships table to the traversal engine.
package graphpgx

import (
	"context"

	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"
	"github.com/black-vein/oracle/backend/pkg/graph"
)

type Source struct {
	q *pgdb.Queries
}

// NewSource builds an EdgeSource reading from the given pool or transaction.
func NewSource(db pgdb.DBTX) *Source {
	return &Source{q: pgdb.New(db)}
}

func (s *Source) OutgoingEdges(ctx context.Context, sourceID int64) ([]graph.Edge, error) {
	rows, err := s.q.GetOutgoingRelationships(ctx, sourceID)
	if err != nil {
		return nil, err
	}
	edges := make([]graph.Edge, 0, len(rows))
	for _, r := range rows {
		edges = append(edges, graph.Edge{
			TargetID:     r.TargetID,
			RelationType: r.RelationType,
			Strength:     r.Strength,
		})
	}
	return edges, nil
}
