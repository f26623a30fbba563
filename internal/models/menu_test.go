package models

import "testing"

func intPtr(v int) *int { return &v }

func TestBuildMenuTreeThreeLevels(t *testing.T) {
	rows := []Menu{
		{ID: 1, Title: "Home"},
		{ID: 2, Title: "Products", ParentID: intPtr(1)},
		{ID: 3, Title: "Widgets", ParentID: intPtr(2)},
	}

	tree := BuildMenuTree(rows)

	if len(tree) != 1 {
		t.Fatalf("expected 1 top-level node, got %d", len(tree))
	}
	root := tree[0]
	if root.ID != 1 {
		t.Errorf("expected root id 1, got %d", root.ID)
	}
	if len(root.Children) != 1 || root.Children[0].ID != 2 {
		t.Fatalf("expected node 1 to have children [2], got %+v", root.Children)
	}
	mid := root.Children[0]
	if len(mid.Children) != 1 || mid.Children[0].ID != 3 {
		t.Fatalf("expected node 2 to have children [3], got %+v", mid.Children)
	}
	if len(mid.Children[0].Children) != 0 {
		t.Errorf("expected node 3 to be a leaf")
	}
}

func TestBuildMenuTreeDropsOrphans(t *testing.T) {
	rows := []Menu{
		{ID: 1, Title: "Home"},
		{ID: 2, Title: "Lost", ParentID: intPtr(99)},
	}

	tree := BuildMenuTree(rows)

	if len(tree) != 1 || tree[0].ID != 1 {
		t.Fatalf("expected only node 1 at top level, got %+v", tree)
	}
	if len(tree[0].Children) != 0 {
		t.Errorf("orphan must not appear under an unrelated parent")
	}
}

func TestBuildMenuTreePreservesOrder(t *testing.T) {
	rows := []Menu{
		{ID: 5, Title: "First", SortOrder: 0},
		{ID: 2, Title: "Second", SortOrder: 1},
		{ID: 7, Title: "A", ParentID: intPtr(5), SortOrder: 2},
		{ID: 3, Title: "B", ParentID: intPtr(5), SortOrder: 3},
	}

	tree := BuildMenuTree(rows)

	if len(tree) != 2 || tree[0].ID != 5 || tree[1].ID != 2 {
		t.Fatalf("expected top level [5 2], got %+v", tree)
	}
	children := tree[0].Children
	if len(children) != 2 || children[0].ID != 7 || children[1].ID != 3 {
		t.Fatalf("expected children of 5 to be [7 3], got %+v", children)
	}
}

func TestBuildMenuTreeEmpty(t *testing.T) {
	tree := BuildMenuTree(nil)
	if tree == nil || len(tree) != 0 {
		t.Fatalf("expected empty non-nil tree, got %v", tree)
	}
}
