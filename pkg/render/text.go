package render

import (
	"bufio"
	"io"

	"github.com/marmos91/vfsemu/pkg/vfs"
)

// Text draws the tree as an indented diagram, children sorted by name:
//
//	C:
//	|_A
//	|   |_B
//	|
//	|_f.txt
type Text struct{}

func (Text) Render(w io.Writer, root vfs.Item) error {
	bw := bufio.NewWriter(w)
	p := &textPrinter{w: bw}

	dirLast := false
	p.print(root, "", 0, true, true, &dirLast)

	return bw.Flush()
}

type textPrinter struct {
	w *bufio.Writer
}

func (p *textPrinter) line(parts ...string) {
	for _, part := range parts {
		_, _ = p.w.WriteString(part)
	}
	_ = p.w.WriteByte('\n')
}

// print writes item and its subtree. dirLast carries, across siblings,
// whether the previously printed sibling was a container: such a sibling is
// followed by a spacer line.
func (p *textPrinter) print(item vfs.Item, indent string, level int, last, lineToBottom bool, dirLast *bool) {
	root := level == 0

	if *dirLast {
		p.line(indent, "|")
	}
	if root {
		p.line(item.Name())
	} else {
		p.line(indent, "|_", item.Name())
	}

	container, ok := item.Container()
	*dirLast = ok
	if !ok {
		return
	}

	nextIndent := ""
	if !root {
		if last && !lineToBottom {
			nextIndent = indent + "   "
		} else {
			nextIndent = indent + "|   "
		}
	}

	nextDirLast := false
	container.Iterate(func(child vfs.Item, index, size int) bool {
		childLast := index == size-1
		p.print(child, nextIndent, level+1, childLast, lineToBottom && childLast, &nextDirLast)
		return true
	}, true)
}
