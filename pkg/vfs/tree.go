// Package vfs implements the in-memory filesystem tree: a single drive holding
// directories, files, hard links and dynamic links.
//
// Storage Model:
//
// A Tree is an arena. Every item lives in one map keyed by Handle, and every
// relationship between items is expressed with handles:
//
//   - parent: the handle of the containing drive or directory (zero for the
//     drive and for detached items)
//   - children: ordered child handles of a container, in insertion order
//   - hard, dynamic: handles of the links aliasing a link target
//   - target: the handle a link points at
//
// Handles never own anything. Destroying an item removes it from the arena
// and every handle referring to it stops resolving, which is how a link whose
// target is gone ends up displaying "<none>".
//
// Consistency Guarantees:
//   - Sibling names are unique under case-insensitive comparison
//   - The parent chain of an attached item ends at the drive (no cycles)
//   - A target with a registered hard link is never deletable
//   - Destroying a target detaches and destroys every dynamic link aliasing it
//
// Thread Safety:
// A Tree is not safe for concurrent use. The command engine drives it from a
// single goroutine.
package vfs

import (
	"slices"

	"github.com/marmos91/vfsemu/internal/logger"
)

// Config controls the construction of a Tree.
type Config struct {
	// DriveName is the name of the root drive (default "C:")
	DriveName string

	// RegisterClonedLinks registers copied links with their target as if
	// they had been created with mhl/mdl. When false, a copied link keeps its
	// target but neither protects it from deletion nor follows it on removal.
	RegisterClonedLinks bool
}

type node struct {
	handle Handle
	kind   ItemType

	// name is the canonical name; empty for links, whose name is derived
	name string

	parent   Handle
	children []Handle

	hard    []Handle
	dynamic []Handle

	target Handle
}

// Tree is an arena of items rooted at a single drive.
type Tree struct {
	nodes map[Handle]*node
	root  Handle

	// pinned holds the items shared with the filesystem state (the current
	// directory). A pinned directory is not deletable.
	pinned map[Handle]struct{}

	registerClonedLinks bool
}

// NewTree creates a tree containing only the drive named by cfg.
func NewTree(cfg Config) (*Tree, error) {
	driveName := cfg.DriveName
	if driveName == "" {
		driveName = DefaultDriveName
	}

	name, err := canonicalName(ItemDrive, driveName)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		nodes:               make(map[Handle]*node),
		pinned:              make(map[Handle]struct{}),
		registerClonedLinks: cfg.RegisterClonedLinks,
	}

	drive := &node{handle: newHandle(), kind: ItemDrive, name: name}
	t.nodes[drive.handle] = drive
	t.root = drive.handle

	return t, nil
}

// Root returns the drive.
func (t *Tree) Root() Item {
	return t.item(t.nodes[t.root])
}

// Lookup returns the item identified by h, if it still exists.
func (t *Tree) Lookup(h Handle) (Item, bool) {
	n, ok := t.nodes[h]
	if !ok {
		return Item{}, false
	}
	return t.item(n), true
}

// Len returns the number of live items, the drive and detached items included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// NewItem creates a detached item of the given kind. Drives and directories
// are named in uppercase, files in lowercase; links must be created with an
// empty name because their name is derived from their target.
//
// The returned item must be inserted with Container.AddChild or released with
// Destroy.
func (t *Tree) NewItem(kind ItemType, name string) (Item, error) {
	n := &node{handle: newHandle(), kind: kind}

	switch {
	case kind == ItemDrive:
		return Item{}, NewError(ErrNotSupported, "a tree has exactly one drive")
	case kind.IsLink():
		if name != "" {
			return Item{}, NewError(ErrNotSupported, "link names are derived from their target")
		}
	case kind == ItemDirectory || kind == ItemFile:
		canonical, err := canonicalName(kind, name)
		if err != nil {
			return Item{}, err
		}
		n.name = canonical
	default:
		return Item{}, NewError(ErrInvalidArgument, "unknown item type")
	}

	t.nodes[n.handle] = n
	return t.item(n), nil
}

// Pin marks item as shared with the filesystem state.
func (t *Tree) Pin(item Item) error {
	if _, ok := t.nodes[item.handle]; !ok {
		return NewError(ErrNotFound, "item does not exist")
	}
	t.pinned[item.handle] = struct{}{}
	return nil
}

// Unpin releases a pin taken with Pin. Unpinning an unpinned item is a no-op.
func (t *Tree) Unpin(item Item) {
	delete(t.pinned, item.handle)
}

// IsPinned reports whether item is pinned.
func (t *Tree) IsPinned(item Item) bool {
	_, ok := t.pinned[item.handle]
	return ok
}

// Destroy releases a detached item and everything below it.
//
// Before the item leaves the arena:
//   - every dynamic link aliasing it is detached from its parent and destroyed
//   - if it is a link, it is deregistered from its target
//   - its children are destroyed in the same way
//
// Destroying the drive, an attached item or a subtree holding a pinned item
// is refused.
func (t *Tree) Destroy(item Item) error {
	n, ok := t.nodes[item.handle]
	if !ok {
		return nil
	}

	if n.handle == t.root {
		return NewError(ErrNotDeletable, "unable to remove drive")
	}
	if _, attached := t.nodes[n.parent]; attached {
		return &Error{Code: ErrInvalidArgument, Message: "item is still attached", Path: t.fullPath(n)}
	}
	if t.subtreePinned(n) {
		return &Error{Code: ErrNotDeletable, Message: "item is in use", Path: t.fullPath(n)}
	}

	t.destroy(n.handle)
	return nil
}

func (t *Tree) destroy(h Handle) {
	n, ok := t.nodes[h]
	if !ok {
		return
	}

	// Leave the arena first so cascades reaching this node again stop here.
	delete(t.nodes, h)
	delete(t.pinned, h)

	for _, aliasHandle := range n.dynamic {
		link, ok := t.nodes[aliasHandle]
		if !ok {
			continue
		}
		link.target = Handle{}
		if parent, ok := t.nodes[link.parent]; ok {
			parent.children = removeHandle(parent.children, aliasHandle)
			link.parent = Handle{}
		}
		logger.Debug("destroy: dropping dynamic link %s with its target", aliasHandle)
		t.destroy(aliasHandle)
	}

	if n.kind.IsLink() {
		if target, ok := t.nodes[n.target]; ok {
			target.removeAlias(h, n.kind)
		}
	}

	for _, child := range n.children {
		t.destroy(child)
	}
}

func (t *Tree) subtreePinned(n *node) bool {
	if _, ok := t.pinned[n.handle]; ok {
		return true
	}
	for _, child := range n.children {
		if c, ok := t.nodes[child]; ok && t.subtreePinned(c) {
			return true
		}
	}
	return false
}

func (t *Tree) item(n *node) Item {
	return Item{tree: t, handle: n.handle, kind: n.kind}
}

// deletable implements the per-variant deletability rule.
func (t *Tree) deletable(n *node) bool {
	switch n.kind {
	case ItemDrive:
		return false
	case ItemDirectory:
		_, pinned := t.pinned[n.handle]
		return len(n.hard) == 0 && !pinned
	case ItemFile:
		return len(n.hard) == 0
	default:
		return true
	}
}

func (t *Tree) name(n *node) string {
	switch n.kind {
	case ItemHardLink:
		return "hlink[" + t.targetPath(n) + "]"
	case ItemDynamicLink:
		return "dlink[" + t.targetPath(n) + "]"
	default:
		return n.name
	}
}

func (t *Tree) targetPath(link *node) string {
	target, ok := t.nodes[link.target]
	if !ok {
		return "<none>"
	}
	return t.fullPath(target)
}

func (t *Tree) fullPath(n *node) string {
	if parent, ok := t.nodes[n.parent]; ok {
		return t.fullPath(parent) + PathSeparator + t.name(n)
	}
	return t.name(n)
}

func (n *node) removeAlias(link Handle, kind ItemType) {
	if kind == ItemHardLink {
		n.hard = removeHandle(n.hard, link)
		return
	}
	n.dynamic = removeHandle(n.dynamic, link)
}

func removeHandle(handles []Handle, h Handle) []Handle {
	if i := slices.Index(handles, h); i >= 0 {
		return slices.Delete(handles, i, i+1)
	}
	return handles
}
