package engine

import (
	"github.com/marmos91/vfsemu/internal/logger"
	"github.com/marmos91/vfsemu/pkg/vfs"
)

// commandMD creates a directory: md [C:\]path\NAME
func commandMD(s *State, args []string) error {
	paths, err := parseArgs(args, 1)
	if err != nil {
		return err
	}

	path := paths[0]
	dirName := path[len(path)-1]
	if !vfs.ValidDirectoryName(dirName) {
		return &vfs.Error{Code: vfs.ErrSyntax, Message: "bad directory name", Path: dirName}
	}

	parent, ok := s.resolveContainer(path[:len(path)-1])
	if !ok {
		return errInvalidPath(args[0])
	}

	dir, err := s.tree.NewItem(vfs.ItemDirectory, dirName)
	if err != nil {
		return err
	}
	if err := parent.AddChild(dir); err != nil {
		_ = s.tree.Destroy(dir)
		return err
	}

	logger.Debug("md: created %s", dir.FullPath())
	return nil
}

// commandCD changes the current directory: cd path
func commandCD(s *State, args []string) error {
	paths, err := parseArgs(args, 1)
	if err != nil {
		return err
	}

	dir, ok := s.resolveContainer(paths[0])
	if !ok {
		return errInvalidPath(args[0])
	}
	return s.SetCurrent(dir.Item)
}

// commandRD removes an empty directory: rd path
func commandRD(s *State, args []string) error {
	paths, err := parseArgs(args, 1)
	if err != nil {
		return err
	}

	dir, ok := s.resolveContainer(paths[0])
	if !ok {
		return errInvalidPath(args[0])
	}

	if !dir.Deletable() {
		return &vfs.Error{Code: vfs.ErrNotDeletable, Message: "unable to remove drive, current or hard-linked directory", Path: dir.FullPath()}
	}
	if !dir.IsEmpty() {
		return &vfs.Error{Code: vfs.ErrNotEmpty, Message: "unable to remove non-empty directory", Path: dir.FullPath()}
	}

	_, removed, err := detach(dir.Item, "directory")
	if err != nil {
		return err
	}
	return s.tree.Destroy(removed)
}

// commandDELTREE removes everything removable below a directory, then the
// directory itself when it ends up empty and deletable: deltree path
//
// Items that cannot be removed (hard-link targets, the current directory and
// its ancestors, the drive) are kept without raising an error.
func commandDELTREE(s *State, args []string) error {
	paths, err := parseArgs(args, 1)
	if err != nil {
		return err
	}

	dir, ok := s.resolveContainer(paths[0])
	if !ok {
		return errInvalidPath(args[0])
	}

	dir.RemoveChildren()

	if !dir.Deletable() || !dir.IsEmpty() {
		logger.Debug("deltree: keeping %s", dir.FullPath())
		return nil
	}

	_, removed, err := detach(dir.Item, "directory")
	if err != nil {
		return err
	}
	return s.tree.Destroy(removed)
}
