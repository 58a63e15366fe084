package timeline

import (
	"cmp"
	"log/slog"
	"slices"
	"strconv"

	"trialboard/internal/model"
)

// Node is a render-only projection of a task in the parent/child forest.
type Node struct {
	Task     model.Task
	Number   string
	Level    int
	Children []*Node
}

// Tree is the hierarchy built from a flat task list.
type Tree struct {
	Roots []*Node
	// Excluded holds tasks that could not be placed because their parent
	// chain loops back on itself.
	Excluded []string
}

// BuildTree groups tasks under their parents, sorts siblings by start date
// and numbers them depth-first ("1", "1.1", "1.2", "2"). A task whose
// parent is not in the list is placed at the root.
func BuildTree(tasks []model.Task) Tree {
	known := make(map[string]bool, len(tasks))
	for _, t := range tasks {
		known[t.ID] = true
	}

	children := make(map[string][]model.Task)
	for _, t := range tasks {
		parent := ""
		if t.ParentID != nil && known[*t.ParentID] {
			parent = *t.ParentID
		} else if t.ParentID != nil {
			slog.Warn("task parent not found, placing at root", "task", t.ID, "parent", *t.ParentID)
		}
		children[parent] = append(children[parent], t)
	}
	for _, siblings := range children {
		slices.SortStableFunc(siblings, func(a, b model.Task) int {
			if c := a.StartDate.Compare(b.StartDate); c != 0 {
				return c
			}
			return cmp.Compare(a.ID, b.ID)
		})
	}

	visited := make(map[string]bool, len(tasks))
	var build func(parent, prefix string, level int) []*Node
	build = func(parent, prefix string, level int) []*Node {
		var nodes []*Node
		for _, t := range children[parent] {
			if visited[t.ID] {
				slog.Warn("task revisited while building hierarchy", "task", t.ID)
				continue
			}
			visited[t.ID] = true

			number := strconv.Itoa(len(nodes) + 1)
			if prefix != "" {
				number = prefix + "." + number
			}
			n := &Node{Task: t, Number: number, Level: level}
			n.Children = build(t.ID, number, level+1)
			nodes = append(nodes, n)
		}
		return nodes
	}

	tree := Tree{Roots: build("", "", 0)}
	for _, t := range tasks {
		if !visited[t.ID] {
			tree.Excluded = append(tree.Excluded, t.ID)
		}
	}
	if len(tree.Excluded) > 0 {
		slog.Warn("cyclic parent references excluded from timeline", "tasks", tree.Excluded)
	}
	return tree
}

// Walk visits nodes depth-first in render order. Returning false from fn
// skips the node's children.
func Walk(nodes []*Node, fn func(*Node) bool) {
	for _, n := range nodes {
		if fn(n) {
			Walk(n.Children, fn)
		}
	}
}
