package vfs

import "github.com/google/uuid"

// ItemType identifies the variant of an item.
type ItemType int

const (
	ItemDrive ItemType = iota
	ItemDirectory
	ItemFile
	ItemHardLink
	ItemDynamicLink
)

func (t ItemType) String() string {
	switch t {
	case ItemDrive:
		return "drive"
	case ItemDirectory:
		return "directory"
	case ItemFile:
		return "file"
	case ItemHardLink:
		return "hardlink"
	case ItemDynamicLink:
		return "dynamiclink"
	default:
		return "unknown"
	}
}

// IsContainer reports whether items of this type hold children.
func (t ItemType) IsContainer() bool {
	return t == ItemDrive || t == ItemDirectory
}

// IsLinkTarget reports whether items of this type can be aliased by links.
func (t ItemType) IsLinkTarget() bool {
	return t == ItemDrive || t == ItemDirectory || t == ItemFile
}

// IsLink reports whether items of this type are links.
func (t ItemType) IsLink() bool {
	return t == ItemHardLink || t == ItemDynamicLink
}

// Handle is the opaque identity of an item inside a Tree.
//
// Handles are random UUIDs: two items are the same item exactly when their
// handles are equal. A handle outlives its item; once the item is destroyed
// the handle simply stops resolving.
type Handle uuid.UUID

// newHandle generates a fresh random handle.
func newHandle() Handle {
	return Handle(uuid.New())
}

// IsZero reports whether h is the zero handle, used for "no item".
func (h Handle) IsZero() bool {
	return h == Handle{}
}

func (h Handle) String() string {
	return uuid.UUID(h).String()
}
