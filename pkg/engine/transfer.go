package engine

import (
	"github.com/marmos91/vfsemu/internal/logger"
	"github.com/marmos91/vfsemu/pkg/vfs"
)

func resolveTransfer(s *State, args []string) (vfs.Item, vfs.Container, error) {
	paths, err := parseArgs(args, 2)
	if err != nil {
		return vfs.Item{}, vfs.Container{}, err
	}

	source, ok := s.Resolve(paths[0])
	if !ok {
		return vfs.Item{}, vfs.Container{}, &vfs.Error{Code: vfs.ErrNotFound, Message: "invalid source path", Path: args[0]}
	}

	target, ok := s.resolveContainer(paths[1])
	if !ok {
		return vfs.Item{}, vfs.Container{}, &vfs.Error{Code: vfs.ErrNotFound, Message: "invalid target path", Path: args[1]}
	}

	return source, target, nil
}

func checkNameFree(source vfs.Item, target vfs.Container) error {
	if _, exists := target.FindChild(source.Name()); exists {
		return &vfs.Error{
			Code:    vfs.ErrAlreadyExists,
			Message: "target path already contains file or directory with same name",
			Path:    source.Name(),
		}
	}
	return nil
}

// commandMOVE moves source into target: move source target
//
// Before anything is detached the move is refused, in this order, when the
// source (or anything below it) is not deletable, when the name is taken in
// the target, or when the target lies inside the source.
func commandMOVE(s *State, args []string) error {
	// ===== Step 1: Resolve and validate =====
	source, target, err := resolveTransfer(s, args)
	if err != nil {
		return err
	}

	sourceDir, isContainer := source.Container()
	if !source.Deletable() || (isContainer && !sourceDir.AllDescendantsDeletable()) {
		return &vfs.Error{Code: vfs.ErrNotDeletable, Message: "unable to move drive, current or hard-linked directory or file", Path: source.FullPath()}
	}

	if err := checkNameFree(source, target); err != nil {
		return err
	}

	if isContainer && sourceDir.Contains(target.Item) {
		return &vfs.Error{Code: vfs.ErrInvalidMove, Message: "invalid target path, cannot move into itself", Path: target.FullPath()}
	}

	// ===== Step 2: Detach from the old parent =====
	parent, moved, err := detach(source, "file or directory")
	if err != nil {
		return err
	}

	// ===== Step 3: Attach to the new parent, restoring on failure =====
	if err := target.AddChild(moved); err != nil {
		if restoreErr := parent.AddChild(moved); restoreErr != nil {
			logger.Error("move: failed to restore %s: %v", moved.Name(), restoreErr)
		}
		return err
	}

	logger.Debug("move: %s now at %s", moved.Name(), moved.FullPath())
	return nil
}

// commandCOPY copies source into target: copy source target
//
// Directories are copied with their whole subtree. The drive cannot be copied.
func commandCOPY(s *State, args []string) error {
	source, target, err := resolveTransfer(s, args)
	if err != nil {
		return err
	}
	if err := checkNameFree(source, target); err != nil {
		return err
	}

	clone, err := source.Clone()
	if err != nil {
		return err
	}

	if err := target.AddChild(clone); err != nil {
		_ = s.tree.Destroy(clone)
		return err
	}

	logger.Debug("copy: %s copied to %s", source.FullPath(), clone.FullPath())
	return nil
}
