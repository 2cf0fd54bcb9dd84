package util

import (
	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"
)

type JailCell struct {
	ID         int64  `json:"id"`
	CellNumber string `json:"cell_number"`
	Capacity   int32  `json:"capacity"`
	Occupants  int64  `json:"occupants"`
}

type JailBlock struct {
	ID    int64      `json:"id"`
	Name  string     `json:"name"`
	Floor *int32     `json:"floor,omitempty"`
	Cells []JailCell `json:"cells"`
}

// BuildJailTree folds the flat block/cell rows into a nested hierarchy.
// Rows arrive ordered by block then cell, so a block's cells are always
// contiguous. Blocks without cells produce an empty cell list.
func BuildJailTree(rows []pgdb.JailHierarchyRow) []JailBlock {
	blocks := []JailBlock{}
	index := map[int64]int{}

	for _, row := range rows {
		pos, ok := index[row.BlockID]
		if !ok {
			block := JailBlock{
				ID:    row.BlockID,
				Name:  row.BlockName,
				Cells: []JailCell{},
			}
			if row.Floor.Valid {
				floor := row.Floor.Int32
				block.Floor = &floor
			}
			blocks = append(blocks, block)
			pos = len(blocks) - 1
			index[row.BlockID] = pos
		}

		if !row.CellID.Valid {
			continue
		}
		blocks[pos].Cells = append(blocks[pos].Cells, JailCell{
			ID:         row.CellID.Int64,
			CellNumber: row.CellNumber.String,
			Capacity:   row.Capacity.Int32,
			Occupants:  row.Occupants,
		})
	}

	return blocks
}
