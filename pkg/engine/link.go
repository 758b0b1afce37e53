package engine

import (
	"github.com/marmos91/vfsemu/internal/logger"
	"github.com/marmos91/vfsemu/pkg/vfs"
)

// commandMHL creates a hard link to source inside target: mhl source target
func commandMHL(s *State, args []string) error {
	return createLink(s, args, vfs.ItemHardLink)
}

// commandMDL creates a dynamic link to source inside target: mdl source target
func commandMDL(s *State, args []string) error {
	return createLink(s, args, vfs.ItemDynamicLink)
}

func createLink(s *State, args []string, kind vfs.ItemType) error {
	paths, err := parseArgs(args, 2)
	if err != nil {
		return err
	}

	source, ok := s.Resolve(paths[0])
	if !ok {
		return &vfs.Error{Code: vfs.ErrNotFound, Message: "invalid source path", Path: args[0]}
	}

	target, ok := s.resolveContainer(paths[1])
	if !ok {
		return &vfs.Error{Code: vfs.ErrNotFound, Message: "invalid target path", Path: args[1]}
	}

	item, err := s.tree.NewItem(kind, "")
	if err != nil {
		return err
	}
	link, _ := item.Link()

	// ===== Step 1: Register with the source =====
	if err := link.LinkTo(source); err != nil {
		_ = s.tree.Destroy(item)
		return err
	}

	// ===== Step 2: Insert into the target directory =====
	// An identical link already in target makes the command a no-op.
	if err := target.AddChild(item); err != nil {
		_ = s.tree.Destroy(item)
		if vfs.IsCode(err, vfs.ErrAlreadyExists) {
			logger.Debug("%s: %s already links %s", kind, target.FullPath(), source.FullPath())
			return nil
		}
		return err
	}

	logger.Debug("%s: created %s", kind, item.FullPath())
	return nil
}
