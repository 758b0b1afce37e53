package pathnorm

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"../bar", "/bar"},
		{"/foo/bar", "/foo/bar"},
		{"/foo/bar/../baz", "/foo/baz"},
		{"/foo/bar/./baz/", "/foo/bar/baz/"},
		{"/foo/../../baz", "/baz"},
		{"", ""},
		{"/", "/"},
		{"///", "/"},
		{"/../.", ""},
		{"/.././", "/"},
		{"./.././bee", "/bee"},
		{"foo/bar/", "foo/bar/"},
		{"foo////bar///", "foo/bar/"},
		{"../bar/../bor/foo", "/bor/foo"},
		{"..", ""},
		{".", ""},
		{"./bar/././", "/bar/"},
		{"/bar/foo/bor/../../..", ""},
		{"/bar/foo/bor/../../../", "/"},
		{"/bar/foo/bor////../../../", "/"},
		{"domain.com/../foo", "domain.com/foo"},
		{"domain.com/./../foo/../bb/./../../../././skip_me/./../cool/./././", "domain.com/cool/"},
		{"domain.com/./../foo/../bb/./../../../././skip_me/./../cool/./././../more_cool", "domain.com/more_cool"},
		{"/domain.com/./../foo/../bb/./../../../././skip_me/./../cool/./././../still_cool", "/still_cool"},
		// Only exact "." and ".." segments are special.
		{"domain.com/.../foo", "domain.com/.../foo"},
		{".../domain.com/.../foo", ".../domain.com/.../foo"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	for _, in := range []string{"/a/./b/../c/", "x/../y//z", "../../q", "///"} {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), in)
	}
}

// generatePath builds a long path mixing names and relative segments.
func generatePath(seed, maxLen int) string {
	var b strings.Builder
	for b.Len() < maxLen {
		if seed%2 == 0 {
			b.WriteString("/")
		}
		if seed%3 == 0 {
			b.WriteString("bar")
		}
		if seed%5 == 0 {
			b.WriteString("baz")
		}
		if seed%6 == 0 {
			b.WriteString("/../")
		}
		if seed%7 == 0 {
			b.WriteString("/./")
		}
		if seed%9 == 0 {
			b.WriteString("/.././")
		}
		seed++
	}
	return b.String()
}

func BenchmarkNormalize(b *testing.B) {
	path := generatePath(1, 4096)
	b.SetBytes(int64(len(path)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Normalize(path)
	}
}
