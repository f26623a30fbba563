package models

// Menu is a single navigation_menus row. ParentID is nil for top-level
// items; the flat table is the source of truth and the tree is derived at
// read time.
type Menu struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	URL       *string `json:"url"`
	ParentID  *int    `json:"parent_id"`
	SortOrder int     `json:"sort_order"`
	IsActive  bool    `json:"is_active"`
	Target    string  `json:"target"`
	Icon      *string `json:"icon"`
	CreatedAt string  `json:"created_at,omitempty"`
	UpdatedAt string  `json:"updated_at,omitempty"`
}

// MenuNode is a Menu with its resolved children, as served to the UI.
type MenuNode struct {
	Menu
	Children []*MenuNode `json:"children"`
}

// BuildMenuTree turns flat menu rows into the nested parent/children view.
// Input order is preserved: callers pass rows sorted by (sort_order, id) and
// both the top level and every children list come out in that order. Rows
// whose parent_id points at a row that is not present are dropped — they are
// unreachable from the top level and have no place to hang.
func BuildMenuTree(menus []Menu) []*MenuNode {
	nodes := make(map[int]*MenuNode, len(menus))
	for _, m := range menus {
		nodes[m.ID] = &MenuNode{Menu: m, Children: []*MenuNode{}}
	}

	tree := []*MenuNode{}
	for _, m := range menus {
		if m.ParentID == nil {
			tree = append(tree, nodes[m.ID])
			continue
		}
		if parent, ok := nodes[*m.ParentID]; ok {
			parent.Children = append(parent.Children, nodes[m.ID])
		}
	}
	return tree
}
