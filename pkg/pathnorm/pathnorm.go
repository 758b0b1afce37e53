// Package pathnorm rewrites '/'-delimited paths, removing "." and ".."
// segments.
//
// Rules:
//   - consecutive delimiters collapse into one: "///bar////foo//" -> "/bar/foo/"
//   - a trailing delimiter is kept only if the input has one
//   - ".." never climbs above the root: "/foo/../../baz" -> "/baz"
//   - a path not starting with "/" treats its first segment as a virtual
//     root (a domain): "bar/../foo" -> "bar/foo"
//
// Unlike path.Clean, an empty result stays empty and relative prefixes such
// as "../" resolve against the root.
package pathnorm

import "strings"

const delimiter = '/'

// Normalize returns path with "." and ".." segments resolved.
func Normalize(path string) string {
	// Each kept segment carries its leading delimiter, except a domain root.
	var segments []string
	rootIdx := 0

	prev, cur := 0, 0
	add := func(pos int) {
		switch seg := path[prev:pos]; seg {
		case "", ".", "/.":
		case "..", "/..":
			if len(segments) > rootIdx {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, seg)
			if prev == 0 && path[0] != delimiter {
				rootIdx = 1
			}
		}

		cur = pos + 1
		for cur < len(path) && path[cur] == delimiter {
			cur++
		}
		prev = cur - 1
	}

	for {
		i := strings.IndexByte(path[cur:], delimiter)
		if i < 0 {
			break
		}
		add(cur + i)
	}
	add(len(path))

	return strings.Join(segments, "")
}
