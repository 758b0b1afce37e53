package vfs

import (
	"cmp"
	"slices"
	"strings"

	"github.com/marmos91/vfsemu/internal/logger"
)

// Container is the view of an item holding children: the drive or a directory.
type Container struct {
	Item
}

func (c Container) mustNode() *node {
	n, ok := c.node()
	if !ok {
		return &node{}
	}
	return n
}

// Len returns the number of direct children.
func (c Container) Len() int {
	return len(c.mustNode().children)
}

// IsEmpty reports whether the container has no children.
func (c Container) IsEmpty() bool {
	return c.Len() == 0
}

// Iterate calls fn for each direct child with its position and the number of
// children. When sorted is true children are visited in case-insensitive
// name order, otherwise in insertion order. Iteration stops as soon as fn
// returns false, in which case Iterate returns false.
func (c Container) Iterate(fn func(child Item, index, size int) bool, sorted bool) bool {
	children := c.Children(sorted)
	for i, child := range children {
		if !fn(child, i, len(children)) {
			return false
		}
	}
	return true
}

// Children returns a snapshot of the direct children.
func (c Container) Children(sorted bool) []Item {
	n := c.mustNode()
	items := make([]Item, 0, len(n.children))
	for _, h := range n.children {
		if child, ok := c.tree.nodes[h]; ok {
			items = append(items, c.tree.item(child))
		}
	}

	if sorted {
		names := make(map[Handle]string, len(items))
		for _, item := range items {
			names[item.handle] = item.Name()
		}
		slices.SortStableFunc(items, func(a, b Item) int {
			nameA, nameB := names[a.handle], names[b.handle]
			if r := cmp.Compare(strings.ToLower(nameA), strings.ToLower(nameB)); r != 0 {
				return r
			}
			return cmp.Compare(nameA, nameB)
		})
	}
	return items
}

// FindChild looks a direct child up by name, case-insensitively.
func (c Container) FindChild(name string) (Item, bool) {
	for _, h := range c.mustNode().children {
		child, ok := c.tree.nodes[h]
		if ok && EqualNames(c.tree.name(child), name) {
			return c.tree.item(child), true
		}
	}
	return Item{}, false
}

// Contains reports whether item is this container or one of its descendants.
func (c Container) Contains(item Item) bool {
	for cur, ok := item.node(); ok; cur, ok = c.tree.nodes[cur.parent] {
		if cur.handle == c.handle {
			return true
		}
	}
	return false
}

// AddChild appends a detached item and makes this container its parent.
//
// Fails without mutation when:
//   - a child with the same case-insensitive name exists (ErrAlreadyExists)
//   - the item is this container or one of its ancestors (ErrInvalidMove)
//   - the item is the drive, already attached or gone (ErrInvalidArgument)
func (c Container) AddChild(child Item) error {
	n, ok := c.node()
	if !ok {
		return NewError(ErrNotFound, "container does not exist")
	}
	if child.tree != c.tree {
		return NewError(ErrInvalidArgument, "item belongs to another tree")
	}
	cn, ok := child.node()
	if !ok {
		return NewError(ErrInvalidArgument, "item does not exist")
	}
	if cn.handle == c.tree.root {
		return NewError(ErrInvalidArgument, "the drive cannot be a child")
	}
	if _, attached := c.tree.nodes[cn.parent]; attached {
		return &Error{Code: ErrInvalidArgument, Message: "item already has a parent", Path: c.tree.fullPath(cn)}
	}
	if (Container{Item: child}).Contains(c.Item) {
		return &Error{Code: ErrInvalidMove, Message: "cannot move a directory into itself", Path: c.tree.fullPath(cn)}
	}

	name := c.tree.name(cn)
	if _, exists := c.FindChild(name); exists {
		return &Error{Code: ErrAlreadyExists, Message: "directory or file already exists", Path: name}
	}

	n.children = append(n.children, cn.handle)
	cn.parent = n.handle
	return nil
}

// RemoveChild detaches child from this container by identity. The detached
// item stays alive: pass it to Tree.Destroy to release it, or insert it
// elsewhere.
func (c Container) RemoveChild(child Item) (Item, bool) {
	n, ok := c.node()
	if !ok {
		return Item{}, false
	}
	if !slices.Contains(n.children, child.handle) {
		return Item{}, false
	}

	n.children = removeHandle(n.children, child.handle)
	if cn, ok := child.node(); ok {
		cn.parent = Handle{}
	}
	return child, true
}

// RemoveChildren prunes the subtree below this container.
//
// Every descendant that is deletable and, for containers, empty once its own
// subtree has been pruned is detached and destroyed. Blocked items (hard-link
// targets, the current directory and everything above them) stay in place.
func (c Container) RemoveChildren() {
	n, ok := c.node()
	if !ok {
		return
	}
	c.tree.prune(n)
}

func (t *Tree) prune(n *node) {
	// Destroying a target can remove dynamic links from this very container,
	// so walk a snapshot and skip entries that are no longer our children.
	for _, h := range slices.Clone(n.children) {
		child, ok := t.nodes[h]
		if !ok || child.parent != n.handle {
			continue
		}

		if child.kind.IsContainer() {
			t.prune(child)
			if len(child.children) > 0 {
				continue
			}
		}

		if !t.deletable(child) {
			logger.Debug("prune: keeping %s", t.fullPath(child))
			continue
		}

		n.children = removeHandle(n.children, h)
		child.parent = Handle{}
		t.destroy(h)
	}
}

// AllDescendantsDeletable reports whether every item below this container is
// deletable.
func (c Container) AllDescendantsDeletable() bool {
	n, ok := c.node()
	if !ok {
		return false
	}
	return c.tree.allDeletable(n)
}

func (t *Tree) allDeletable(n *node) bool {
	for _, h := range n.children {
		child, ok := t.nodes[h]
		if !ok {
			continue
		}
		if !t.deletable(child) {
			return false
		}
		if child.kind.IsContainer() && !t.allDeletable(child) {
			return false
		}
	}
	return true
}
