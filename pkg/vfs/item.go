package vfs

// Item is a view of one node of a Tree.
//
// Items are small values and compare equal exactly when they denote the same
// node. An Item keeps working after its node is destroyed: Exists reports
// false and accessors return zero values.
type Item struct {
	tree   *Tree
	handle Handle
	kind   ItemType
}

// Handle returns the identity of the item.
func (i Item) Handle() Handle {
	return i.handle
}

// Type returns the variant of the item.
func (i Item) Type() ItemType {
	return i.kind
}

// Tree returns the tree owning the item.
func (i Item) Tree() *Tree {
	return i.tree
}

// Exists reports whether the item is still part of its tree.
func (i Item) Exists() bool {
	_, ok := i.node()
	return ok
}

func (i Item) node() (*node, bool) {
	if i.tree == nil {
		return nil, false
	}
	n, ok := i.tree.nodes[i.handle]
	return n, ok
}

// Name returns the canonical name. Link names are derived from the target:
// "hlink[C:\DIR\file.txt]", or "hlink[<none>]" once the target is gone.
func (i Item) Name() string {
	n, ok := i.node()
	if !ok {
		return ""
	}
	return i.tree.name(n)
}

// FullPath returns the parent's full path joined with the item name.
// An item without a parent returns its own name.
func (i Item) FullPath() string {
	n, ok := i.node()
	if !ok {
		return ""
	}
	return i.tree.fullPath(n)
}

func (i Item) String() string {
	return i.FullPath()
}

// Parent returns the containing drive or directory.
func (i Item) Parent() (Item, bool) {
	n, ok := i.node()
	if !ok {
		return Item{}, false
	}
	return i.tree.Lookup(n.parent)
}

// Rename validates name against the rules of the item's variant and stores
// its canonical form. Links cannot be renamed.
func (i Item) Rename(name string) error {
	n, ok := i.node()
	if !ok {
		return NewError(ErrNotFound, "item does not exist")
	}

	canonical, err := canonicalName(n.kind, name)
	if err != nil {
		return err
	}

	if parent, ok := i.tree.nodes[n.parent]; ok {
		for _, sibling := range parent.children {
			s := i.tree.nodes[sibling]
			if sibling != n.handle && EqualNames(i.tree.name(s), canonical) {
				return &Error{Code: ErrAlreadyExists, Message: "directory or file already exists", Path: canonical}
			}
		}
	}

	n.name = canonical
	return nil
}

// Deletable reports whether the item may be removed from its container:
//   - the drive never
//   - a directory when it is neither hard-linked nor the current directory
//   - a file when it is not hard-linked
//   - links always
func (i Item) Deletable() bool {
	n, ok := i.node()
	if !ok {
		return false
	}
	return i.tree.deletable(n)
}

// Container returns the container view of drives and directories.
func (i Item) Container() (Container, bool) {
	if !i.kind.IsContainer() || !i.Exists() {
		return Container{}, false
	}
	return Container{Item: i}, true
}

// LinkTarget returns the link-target view of drives, directories and files.
func (i Item) LinkTarget() (LinkTarget, bool) {
	if !i.kind.IsLinkTarget() || !i.Exists() {
		return LinkTarget{}, false
	}
	return LinkTarget{Item: i}, true
}

// Link returns the link view of hard and dynamic links.
func (i Item) Link() (Link, bool) {
	if !i.kind.IsLink() || !i.Exists() {
		return Link{}, false
	}
	return Link{Item: i}, true
}
