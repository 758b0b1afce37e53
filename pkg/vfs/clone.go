package vfs

// Clone returns a detached copy of the item.
//
//   - Directory: deep copy, children cloned recursively in insertion order
//   - File: new file with the same name
//   - HardLink, DynamicLink: new link aimed at the same target
//   - Drive: not clonable (ErrNotSupported)
//
// The copy has no aliases of its own and is not pinned. Whether a copied link
// registers with its target is decided by Config.RegisterClonedLinks.
func (i Item) Clone() (Item, error) {
	n, ok := i.node()
	if !ok {
		return Item{}, NewError(ErrNotFound, "item does not exist")
	}
	if n.kind == ItemDrive {
		return Item{}, &Error{Code: ErrNotSupported, Message: "source is not copyable", Path: i.tree.fullPath(n)}
	}

	return i.tree.item(i.tree.clone(n)), nil
}

func (t *Tree) clone(n *node) *node {
	c := &node{
		handle: newHandle(),
		kind:   n.kind,
		name:   n.name,
	}
	t.nodes[c.handle] = c

	switch {
	case n.kind.IsLink():
		c.target = n.target
		if target, ok := t.nodes[n.target]; ok && t.registerClonedLinks {
			if n.kind == ItemHardLink {
				target.hard = append(target.hard, c.handle)
			} else {
				target.dynamic = append(target.dynamic, c.handle)
			}
		}
	case n.kind.IsContainer():
		c.children = make([]Handle, 0, len(n.children))
		for _, h := range n.children {
			child, ok := t.nodes[h]
			if !ok {
				continue
			}
			cc := t.clone(child)
			cc.parent = c.handle
			c.children = append(c.children, cc.handle)
		}
	}

	return c
}
