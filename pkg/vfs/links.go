package vfs

import "slices"

// LinkTarget is the view of an item that links can alias: the drive, a
// directory or a file.
type LinkTarget struct {
	Item
}

// AddAlias registers link with this target, as a hard or dynamic alias
// depending on the link's type. Registering the same link twice is a no-op.
func (lt LinkTarget) AddAlias(link Item) error {
	n, ok := lt.node()
	if !ok {
		return NewError(ErrNotFound, "link target does not exist")
	}
	if !link.kind.IsLink() || link.tree != lt.tree {
		return NewError(ErrInvalidArgument, "only links can alias an item")
	}

	switch link.kind {
	case ItemHardLink:
		if !slices.Contains(n.hard, link.handle) {
			n.hard = append(n.hard, link.handle)
		}
	case ItemDynamicLink:
		if !slices.Contains(n.dynamic, link.handle) {
			n.dynamic = append(n.dynamic, link.handle)
		}
	}
	return nil
}

// RemoveAlias deregisters link. Removing an unknown link is a no-op.
func (lt LinkTarget) RemoveAlias(link Item) {
	if n, ok := lt.node(); ok {
		n.removeAlias(link.handle, link.kind)
	}
}

// IsHardLinked reports whether at least one hard link aliases this target.
func (lt LinkTarget) IsHardLinked() bool {
	n, ok := lt.node()
	return ok && len(n.hard) > 0
}

// Aliases returns the registered links of the given kind (ItemHardLink or
// ItemDynamicLink) in registration order.
func (lt LinkTarget) Aliases(kind ItemType) []Item {
	n, ok := lt.node()
	if !ok {
		return nil
	}

	handles := n.dynamic
	if kind == ItemHardLink {
		handles = n.hard
	}

	items := make([]Item, 0, len(handles))
	for _, h := range handles {
		if alias, ok := lt.tree.nodes[h]; ok {
			items = append(items, lt.tree.item(alias))
		}
	}
	return items
}

// Link is the view of a hard or dynamic link.
type Link struct {
	Item
}

// Hard reports whether this is a hard link.
func (l Link) Hard() bool {
	return l.kind == ItemHardLink
}

// LinkTo points the link at target and registers it there. Relinking first
// deregisters the link from its previous target.
func (l Link) LinkTo(target Item) error {
	n, ok := l.node()
	if !ok {
		return NewError(ErrNotFound, "link does not exist")
	}

	lt, ok := target.LinkTarget()
	if !ok || target.tree != l.tree {
		return &Error{Code: ErrNotLinkable, Message: "source object not linkable", Path: target.FullPath()}
	}

	if previous, ok := l.tree.nodes[n.target]; ok && previous.handle != target.handle {
		previous.removeAlias(n.handle, n.kind)
	}

	if err := lt.AddAlias(l.Item); err != nil {
		return err
	}
	n.target = target.handle
	return nil
}

// Target returns the aliased item, if it still exists.
func (l Link) Target() (Item, bool) {
	n, ok := l.node()
	if !ok {
		return Item{}, false
	}
	return l.tree.Lookup(n.target)
}
