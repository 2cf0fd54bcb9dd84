package util

import (
	"database/sql"
	"testing"

	pgdb "github.com/black-vein/oracle/backend/pkg/db/pgx"
)

func TestBuildJailTreeEmpty(t *testing.T) {
	tree := BuildJailTree(nil)
	if tree == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(tree) != 0 {
		t.Fatalf("expected no blocks, got %d", len(tree))
	}
}

func TestBuildJailTreeGroupsCellsByBlock(t *testing.T) {
	rows := []pgdb.JailHierarchyRow{
		{
			BlockID:    1,
			BlockName:  "Block A",
			Floor:      sql.NullInt32{Int32: 1, Valid: true},
			CellID:     sql.NullInt64{Int64: 10, Valid: true},
			CellNumber: sql.NullString{String: "A-101", Valid: true},
			Capacity:   sql.NullInt32{Int32: 4, Valid: true},
			Occupants:  3,
		},
		{
			BlockID:    1,
			BlockName:  "Block A",
			Floor:      sql.NullInt32{Int32: 1, Valid: true},
			CellID:     sql.NullInt64{Int64: 11, Valid: true},
			CellNumber: sql.NullString{String: "A-102", Valid: true},
			Capacity:   sql.NullInt32{Int32: 2, Valid: true},
			Occupants:  0,
		},
		{
			BlockID:    2,
			BlockName:  "Block B",
			CellID:     sql.NullInt64{Int64: 20, Valid: true},
			CellNumber: sql.NullString{String: "B-201", Valid: true},
			Capacity:   sql.NullInt32{Int32: 6, Valid: true},
			Occupants:  6,
		},
	}

	tree := BuildJailTree(rows)
	if len(tree) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(tree))
	}
	if tree[0].Name != "Block A" || len(tree[0].Cells) != 2 {
		t.Fatalf("unexpected first block: %+v", tree[0])
	}
	if tree[0].Floor == nil || *tree[0].Floor != 1 {
		t.Fatalf("expected floor 1 on first block, got %v", tree[0].Floor)
	}
	if tree[0].Cells[1].CellNumber != "A-102" {
		t.Fatalf("expected A-102 second, got %s", tree[0].Cells[1].CellNumber)
	}
	if tree[1].Name != "Block B" || len(tree[1].Cells) != 1 {
		t.Fatalf("unexpected second block: %+v", tree[1])
	}
	if tree[1].Floor != nil {
		t.Fatalf("expected nil floor on second block, got %v", *tree[1].Floor)
	}
	if tree[1].Cells[0].Occupants != 6 {
		t.Fatalf("expected 6 occupants, got %d", tree[1].Cells[0].Occupants)
	}
}

func TestBuildJailTreeBlockWithoutCells(t *testing.T) {
	rows := []pgdb.JailHierarchyRow{
		{BlockID: 3, BlockName: "Block C"},
	}

	tree := BuildJailTree(rows)
	if len(tree) != 1 {
		t.Fatalf("expected 1 block, got %d", len(tree))
	}
	if tree[0].Cells == nil || len(tree[0].Cells) != 0 {
		t.Fatalf("expected empty cell list, got %+v", tree[0].Cells)
	}
}
