package engine

import (
	"github.com/marmos91/vfsemu/pkg/syntax"
	"github.com/marmos91/vfsemu/pkg/vfs"
)

func errArgumentCount() error {
	return vfs.NewError(vfs.ErrInvalidArgument, "incorrect number of arguments")
}

func errBadPath(path string) error {
	return &vfs.Error{Code: vfs.ErrSyntax, Message: "bad path format", Path: path}
}

func errInvalidPath(path string) error {
	return &vfs.Error{Code: vfs.ErrNotFound, Message: "invalid path", Path: path}
}

// parseArgs checks the argument count and parses every argument as a path.
func parseArgs(args []string, want int) ([][]string, error) {
	if len(args) != want {
		return nil, errArgumentCount()
	}

	paths := make([][]string, 0, want)
	for _, arg := range args {
		tokens, ok := syntax.ParsePath(arg)
		if !ok {
			return nil, errBadPath(arg)
		}
		paths = append(paths, tokens)
	}
	return paths, nil
}

// detach removes item from its parent, reporting orphans and vanished
// children with the given nouns ("directory", "file").
func detach(item vfs.Item, noun string) (vfs.Container, vfs.Item, error) {
	parent, ok := item.Parent()
	if !ok {
		return vfs.Container{}, vfs.Item{}, &vfs.Error{Code: vfs.ErrOrphaned, Message: "orphaned " + noun + " (no parent)", Path: item.FullPath()}
	}
	container, _ := parent.Container()

	removed, ok := container.RemoveChild(item)
	if !ok {
		return vfs.Container{}, vfs.Item{}, &vfs.Error{Code: vfs.ErrNotFound, Message: noun + " not found", Path: item.FullPath()}
	}
	return container, removed, nil
}
