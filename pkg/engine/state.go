package engine

import (
	"github.com/marmos91/vfsemu/pkg/vfs"
)

// State is the filesystem state shared by all commands: the tree with its
// drive, and the current directory.
//
// The current directory is pinned in the tree for as long as it is current,
// which keeps it (and every directory above it) from being removed or moved.
type State struct {
	tree    *vfs.Tree
	current vfs.Item
}

// NewState creates a tree holding a single drive and makes the drive current.
func NewState(cfg vfs.Config) (*State, error) {
	tree, err := vfs.NewTree(cfg)
	if err != nil {
		return nil, err
	}

	s := &State{tree: tree}
	if err := s.SetCurrent(tree.Root()); err != nil {
		return nil, err
	}
	return s, nil
}

// Tree returns the underlying tree.
func (s *State) Tree() *vfs.Tree {
	return s.tree
}

// Root returns the drive.
func (s *State) Root() vfs.Item {
	return s.tree.Root()
}

// Current returns the current directory.
func (s *State) Current() vfs.Item {
	return s.current
}

// SetCurrent makes item the current directory, moving the pin.
func (s *State) SetCurrent(item vfs.Item) error {
	if _, ok := item.Container(); !ok {
		return &vfs.Error{Code: vfs.ErrNotDirectory, Message: "invalid path", Path: item.FullPath()}
	}
	if err := s.tree.Pin(item); err != nil {
		return err
	}
	if s.current != item {
		s.tree.Unpin(s.current)
	}
	s.current = item
	return nil
}

// Resolve walks parsed path tokens to an item.
//
// An empty token list resolves to the current directory. A leading drive
// token makes the path absolute; it must name this tree's drive. Every
// intermediate item must be a container holding the next token.
func (s *State) Resolve(tokens []string) (vfs.Item, bool) {
	if len(tokens) == 0 {
		return s.current, true
	}

	cur := s.current
	if vfs.ValidDriveName(tokens[0]) {
		if !vfs.EqualNames(s.Root().Name(), tokens[0]) {
			return vfs.Item{}, false
		}
		cur = s.Root()
		tokens = tokens[1:]
	}

	for _, token := range tokens {
		container, ok := cur.Container()
		if !ok {
			return vfs.Item{}, false
		}
		next, ok := container.FindChild(token)
		if !ok {
			return vfs.Item{}, false
		}
		cur = next
	}
	return cur, true
}

// resolveContainer resolves tokens and requires the result to be a container.
func (s *State) resolveContainer(tokens []string) (vfs.Container, bool) {
	item, ok := s.Resolve(tokens)
	if !ok {
		return vfs.Container{}, false
	}
	return item.Container()
}
