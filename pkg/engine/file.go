package engine

import (
	"github.com/marmos91/vfsemu/internal/logger"
	"github.com/marmos91/vfsemu/pkg/vfs"
)

// commandMF creates a file: mf [C:\]path\name.ext
func commandMF(s *State, args []string) error {
	paths, err := parseArgs(args, 1)
	if err != nil {
		return err
	}

	path := paths[0]
	fileName := path[len(path)-1]
	if !vfs.ValidFileName(fileName) {
		return &vfs.Error{Code: vfs.ErrSyntax, Message: "bad file name", Path: fileName}
	}

	parent, ok := s.resolveContainer(path[:len(path)-1])
	if !ok {
		return errInvalidPath(args[0])
	}

	file, err := s.tree.NewItem(vfs.ItemFile, fileName)
	if err != nil {
		return err
	}
	if err := parent.AddChild(file); err != nil {
		_ = s.tree.Destroy(file)
		return err
	}

	logger.Debug("mf: created %s", file.FullPath())
	return nil
}

// commandDEL removes a file or a link: del path
func commandDEL(s *State, args []string) error {
	paths, err := parseArgs(args, 1)
	if err != nil {
		return err
	}

	item, ok := s.Resolve(paths[0])
	if !ok {
		return errInvalidPath(args[0])
	}
	if _, isContainer := item.Container(); isContainer {
		return &vfs.Error{Code: vfs.ErrIsDirectory, Message: "invalid path", Path: args[0]}
	}

	if !item.Deletable() {
		return &vfs.Error{Code: vfs.ErrNotDeletable, Message: "unable to remove hard-linked file", Path: item.FullPath()}
	}

	_, removed, err := detach(item, "file")
	if err != nil {
		return err
	}
	return s.tree.Destroy(removed)
}
