package engine

import (
	"testing"

	"github.com/marmos91/vfsemu/pkg/vfs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ============================================================================
// md / cd
// ============================================================================

func TestMD(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\docs`, `md docs\sub`, `md c:\DOCS\SUB\deep`)

	assert.Equal(t, "DOCS", assertExists(t, e, `C:\docs`).Name())
	assertExists(t, e, `C:\DOCS\SUB\DEEP`)
}

func TestMD_Errors(t *testing.T) {
	tests := []struct {
		name   string
		script []string
		code   vfs.ErrorCode
	}{
		{"BadDirectoryName", []string{`md C:\a.txt`}, vfs.ErrSyntax},
		{"DriveAsName", []string{`md C:`}, vfs.ErrSyntax},
		{"MissingParent", []string{`md C:\A\B`}, vfs.ErrNotFound},
		{"WrongDrive", []string{`md D:\A`}, vfs.ErrNotFound},
		{"ParentIsFile", []string{`mf C:\f`, `md C:\f\B`}, vfs.ErrNotFound},
		{"CaseInsensitiveCollision", []string{`md C:\A`, `md C:\a`}, vfs.ErrAlreadyExists},
		{"CollidesWithFile", []string{`mf C:\x`, `md C:\X`}, vfs.ErrAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			err := run(t, e, tt.script...)
			assertLineError(t, err, len(tt.script), tt.code)
		})
	}
}

func TestMD_CollisionLeavesNoGarbage(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`)
	before := e.State().Tree().Len()

	require.Error(t, run(t, e, `md C:\A`))
	assert.Equal(t, before, e.State().Tree().Len())
}

func TestCD(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`, `md C:\A\B`, `cd C:\A`, `cd B`)

	assert.Equal(t, `C:\A\B`, e.State().Current().FullPath())

	mustRun(t, e, `cd C:`)
	assert.Equal(t, "C:", e.State().Current().FullPath())
}

func TestCD_Errors(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `mf C:\f`)

	assertLineError(t, run(t, e, `cd C:\missing`), 1, vfs.ErrNotFound)
	assertLineError(t, run(t, e, `cd C:\f`), 1, vfs.ErrNotFound)
	assert.Equal(t, "C:", e.State().Current().Name())
}

func TestRelativePathsResolveFromCurrent(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`, `cd A`, `mf f.txt`, `md B`, `mhl f.txt B`)

	assertExists(t, e, `C:\A\f.txt`)
	assertChild(t, e, `C:\A\B`, `hlink[C:\A\f.txt]`)
}

// ============================================================================
// rd / deltree
// ============================================================================

func TestRD_NonEmptyThenEmpty(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`, `mf C:\A\f.txt`)

	err := run(t, e, `rd C:\A`)
	assertLineError(t, err, 1, vfs.ErrNotEmpty)
	assert.Contains(t, err.Error(), "unable to remove non-empty directory")

	mustRun(t, e, `del C:\A\f.txt`, `rd C:\A`)
	assertMissing(t, e, `C:\A`)
	assert.Equal(t, 1, e.State().Tree().Len())
}

func TestRD_NotDeletable(t *testing.T) {
	tests := []struct {
		name   string
		script []string
	}{
		{"Drive", []string{`rd C:`}},
		{"CurrentDirectory", []string{`md C:\A`, `cd C:\A`, `rd C:\A`}},
		{"HardLinked", []string{`md C:\A`, `md C:\B`, `mhl C:\A C:\B`, `rd C:\A`}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			err := run(t, e, tt.script...)
			assertLineError(t, err, len(tt.script), vfs.ErrNotDeletable)
			assert.Contains(t, err.Error(), "unable to remove drive, current or hard-linked directory")
		})
	}
}

func TestRD_FileIsInvalidPath(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `mf C:\f`)
	assertLineError(t, run(t, e, `rd C:\f`), 1, vfs.ErrNotFound)
}

func TestRD_CurrentDirectoryAfterLeaving(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`, `cd C:\A`, `cd C:`, `rd C:\A`)
	assertMissing(t, e, `C:\A`)
}

func TestRD_DynamicLinksFollowTheDirectory(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e,
		`md C:\A`, `md C:\B`, `md C:\C`,
		`mdl C:\A C:\B`, `mdl C:\A C:\C`, `mdl C:\A C:`,
		`rd C:\A`,
	)

	for _, dir := range []string{`C:\B`, `C:\C`} {
		c, _ := assertExists(t, e, dir).Container()
		assert.True(t, c.IsEmpty(), "%s should hold no dangling link", dir)
	}

	root, _ := e.State().Root().Container()
	assert.Equal(t, 2, root.Len())
	assert.Equal(t, 3, e.State().Tree().Len(), "drive, B and C")
}

func TestDELTREE_RemovesSubtree(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e,
		`md C:\A`, `md C:\A\B`, `mf C:\A\B\f`, `mf C:\A\g`, `mdl C:\A\g C:`,
		`deltree C:\A`,
	)

	assertMissing(t, e, `C:\A`)
	assertNoChild(t, e, `C:`, `dlink[C:\A\g]`)
	assert.Equal(t, 1, e.State().Tree().Len())
}

func TestDELTREE_KeepsBlockedItems(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e,
		`md C:\A`, `md C:\A\B`, `md C:\A\K`, `mf C:\A\kept`, `mf C:\A\gone`,
		`mhl C:\A\kept C:`, `cd C:\A\K`,
		`deltree C:\A`,
	)

	assertExists(t, e, `C:\A`)
	assertExists(t, e, `C:\A\K`)
	assertExists(t, e, `C:\A\kept`)
	assertMissing(t, e, `C:\A\B`)
	assertMissing(t, e, `C:\A\gone`)
}

func TestDELTREE_DriveIsPrunedButKept(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`, `mf C:\f`, `deltree C:`)

	root, _ := e.State().Root().Container()
	assert.True(t, root.IsEmpty())
}

func TestDELTREE_CurrentDirectoryIsPrunedButKept(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`, `mf C:\A\f`, `cd C:\A`, `deltree C:\A`)

	dir := assertExists(t, e, `C:\A`)
	c, _ := dir.Container()
	assert.True(t, c.IsEmpty())
}

func TestDELTREE_InvalidPath(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `mf C:\f`)
	assertLineError(t, run(t, e, `deltree C:\f`), 1, vfs.ErrNotFound)
	assertLineError(t, run(t, e, `deltree C:\none`), 1, vfs.ErrNotFound)
}

// ============================================================================
// mf / del
// ============================================================================

func TestMF(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`, `mf C:\A\README.TXT`, `mf top`)

	assert.Equal(t, "readme.txt", assertExists(t, e, `C:\A\readme.txt`).Name())
	assertExists(t, e, `C:\top`)
}

func TestMF_Errors(t *testing.T) {
	tests := []struct {
		name   string
		script []string
		code   vfs.ErrorCode
	}{
		{"BadFileName", []string{`mf C:\a.bcde`}, vfs.ErrSyntax},
		{"MissingParent", []string{`mf C:\A\f`}, vfs.ErrNotFound},
		{"ParentIsFile", []string{`mf C:\f`, `mf C:\f\g`}, vfs.ErrNotFound},
		{"Collision", []string{`mf C:\f.txt`, `mf C:\F.TXT`}, vfs.ErrAlreadyExists},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			assertLineError(t, run(t, e, tt.script...), len(tt.script), tt.code)
		})
	}
}

func TestDEL_HardLinkBlocksUntilLinkRemoved(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\L`, `mf C:\f.txt`, `mhl C:\f.txt C:\L`)

	err := run(t, e, `del C:\f.txt`)
	assertLineError(t, err, 1, vfs.ErrNotDeletable)
	assert.Contains(t, err.Error(), "unable to remove hard-linked file")

	mustRun(t, e, `deltree C:\L`, `del C:\f.txt`)
	assertMissing(t, e, `C:\f.txt`)
}

func TestDEL_Errors(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`)

	assertLineError(t, run(t, e, `del C:\A`), 1, vfs.ErrIsDirectory)
	assertLineError(t, run(t, e, `del C:\nothing`), 1, vfs.ErrNotFound)
}

// ============================================================================
// mhl / mdl
// ============================================================================

func TestLinks_Create(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`, `md C:\B`, `mf C:\A\f`, `mhl C:\A\f C:\B`, `mdl C:\A C:\B`)

	hard := assertChild(t, e, `C:\B`, `hlink[C:\A\f]`)
	assert.Equal(t, vfs.ItemHardLink, hard.Type())
	dynamic := assertChild(t, e, `C:\B`, `dlink[C:\A]`)
	assert.Equal(t, vfs.ItemDynamicLink, dynamic.Type())
}

func TestLinks_Errors(t *testing.T) {
	tests := []struct {
		name   string
		script []string
		code   vfs.ErrorCode
	}{
		{"MissingSource", []string{`mhl C:\none C:`}, vfs.ErrNotFound},
		{"MissingTarget", []string{`mf C:\f`, `mdl C:\f C:\none`}, vfs.ErrNotFound},
		{"TargetIsFile", []string{`mf C:\f`, `mhl C:\f C:\f`}, vfs.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			err := run(t, e, tt.script...)
			assertLineError(t, err, len(tt.script), tt.code)
		})
	}
}

func TestLinks_DuplicateIsIgnored(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `mf C:\f`, `md C:\L`, `mhl C:\f C:\L`, `mhl C:\f C:\L`, `mdl C:\f C:\L`, `mdl C:\f C:\L`)

	dir, ok := assertExists(t, e, `C:\L`).Container()
	require.True(t, ok)
	assert.Equal(t, 2, dir.Len())
	assertChild(t, e, `C:\L`, `hlink[C:\f]`)
	assertChild(t, e, `C:\L`, `dlink[C:\f]`)

	target, _ := assertExists(t, e, `C:\f`).LinkTarget()
	assert.Len(t, target.Aliases(vfs.ItemHardLink), 1)
	assert.Len(t, target.Aliases(vfs.ItemDynamicLink), 1)
}

func TestLinks_DiscardedDuplicateDoesNotProtectTarget(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `mf C:\f`, `md C:\L`, `mhl C:\f C:\L`, `mhl C:\f C:\L`)

	mustRun(t, e, `deltree C:\L`, `del C:\f`)
	assertMissing(t, e, `C:\f`)
}

func TestLinks_ToDrive(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`, `mhl C: C:\A`)

	assertChild(t, e, `C:\A`, `hlink[C:]`)

	mustRun(t, e, `deltree C:`)
	root, _ := e.State().Root().Container()
	assert.True(t, root.IsEmpty())
}

func TestMOVE(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`, `md C:\B`, `mf C:\A\f`, `md C:\A\sub`, `move C:\A C:\B`)

	assertMissing(t, e, `C:\A`)
	assertExists(t, e, `C:\B\A\f`)
	assertExists(t, e, `C:\B\A\SUB`)
}

func TestMOVE_IntoItselfLeavesTreeIntact(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`, `md C:\A\B`)
	before := e.State().Tree().Len()

	err := run(t, e, `move C:\A C:\A\B`)
	assertLineError(t, err, 1, vfs.ErrInvalidMove)
	assert.Contains(t, err.Error(), "cannot move into itself")

	assertExists(t, e, `C:\A\B`)
	assert.Equal(t, before, e.State().Tree().Len())

	assertLineError(t, run(t, e, `move C:\A C:\A`), 1, vfs.ErrInvalidMove)
	assertExists(t, e, `C:\A`)
}

func TestMOVE_Errors(t *testing.T) {
	tests := []struct {
		name   string
		script []string
		code   vfs.ErrorCode
	}{
		{"MissingSource", []string{`move C:\none C:`}, vfs.ErrNotFound},
		{"TargetIsFile", []string{`mf C:\f`, `md C:\A`, `move C:\A C:\f`}, vfs.ErrNotFound},
		{"Drive", []string{`md C:\A`, `move C: C:\A`}, vfs.ErrNotDeletable},
		{"CurrentDirectory", []string{`md C:\A`, `md C:\B`, `cd C:\A`, `move C:\A C:\B`}, vfs.ErrNotDeletable},
		{"AncestorOfCurrent", []string{`md C:\A`, `md C:\A\X`, `md C:\B`, `cd C:\A\X`, `move C:\A C:\B`}, vfs.ErrNotDeletable},
		{"HardLinkedFile", []string{`mf C:\f`, `md C:\A`, `mhl C:\f C:\A`, `move C:\f C:\A`}, vfs.ErrNotDeletable},
		{"HardLinkedDescendant", []string{`md C:\A`, `mf C:\A\f`, `md C:\B`, `mhl C:\A\f C:\B`, `move C:\A C:\B`}, vfs.ErrNotDeletable},
		{"NameTaken", []string{`md C:\A`, `md C:\B`, `md C:\B\A`, `move C:\A C:\B`}, vfs.ErrAlreadyExists},
		{"SameParent", []string{`mf C:\f`, `move C:\f C:`}, vfs.ErrAlreadyExists},
		{"HardLinkedAndNameTaken", []string{`mf C:\f`, `md C:\B`, `mf C:\B\f`, `mhl C:\f C:\B`, `move C:\f C:\B`}, vfs.ErrNotDeletable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			err := run(t, e, tt.script...)
			assertLineError(t, err, len(tt.script), tt.code)
		})
	}
}

func TestMOVE_LinksKeepTheirTarget(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`, `md C:\B`, `mf C:\A\f`, `mdl C:\A\f C:`, `move C:\A C:\B`)

	assertNoChild(t, e, `C:`, `dlink[C:\A\f]`)
	assertChild(t, e, `C:`, `dlink[C:\B\A\f]`)
}

// ============================================================================
// copy
// ============================================================================

func TestCOPY(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`, `md C:\A\sub`, `mf C:\A\f.txt`, `md C:\B`, `copy C:\A C:\B`)

	original := assertExists(t, e, `C:\A`)
	copied := assertExists(t, e, `C:\B\A`)
	assert.NotEqual(t, original.Handle(), copied.Handle())
	assertExists(t, e, `C:\B\A\SUB`)
	assertExists(t, e, `C:\B\A\f.txt`)
}

func TestCOPY_IntoOwnSubtree(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`, `md C:\A\B`, `copy C:\A C:\A\B`)

	assertExists(t, e, `C:\A\B\A\B`)
	assertMissing(t, e, `C:\A\B\A\B\A`)
}

func TestCOPY_Errors(t *testing.T) {
	tests := []struct {
		name   string
		script []string
		code   vfs.ErrorCode
	}{
		{"MissingSource", []string{`copy C:\none C:`}, vfs.ErrNotFound},
		{"MissingTarget", []string{`mf C:\f`, `copy C:\f C:\none`}, vfs.ErrNotFound},
		{"NameTaken", []string{`mf C:\f`, `copy C:\f C:`}, vfs.ErrAlreadyExists},
		{"Drive", []string{`md C:\A`, `copy C: C:\A`}, vfs.ErrNotSupported},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(t)
			assertLineError(t, run(t, e, tt.script...), len(tt.script), tt.code)
		})
	}
}

func TestCOPY_HardLinkCloneDoesNotProtectTarget(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e,
		`mf C:\f`, `md C:\A`, `md C:\B`,
		`mhl C:\f C:\A`, `copy C:\A C:\B`,
		`deltree C:\A`,
		`del C:\f`,
	)

	clone := assertChild(t, e, `C:\B\A`, `hlink[<none>]`)
	assert.Equal(t, vfs.ItemHardLink, clone.Type())
}

func TestCOPY_RegisteredLinkClonesProtectTarget(t *testing.T) {
	e, err := New(vfs.Config{RegisterClonedLinks: true}, nil)
	require.NoError(t, err)

	mustRun(t, e,
		`mf C:\f`, `md C:\A`, `md C:\B`,
		`mhl C:\f C:\A`, `copy C:\A C:\B`,
		`deltree C:\A`,
	)
	assertLineError(t, run(t, e, `del C:\f`), 1, vfs.ErrNotDeletable)
}

func TestCOPY_DynamicLinkClonesFollowPolicy(t *testing.T) {
	e := newTestEngine(t)
	// Copying A into itself nests a clone holding an unregistered dlink copy.
	mustRun(t, e, `md C:\A`, `mf C:\f`, `mdl C:\f C:\A`, `copy C:\A C:\A`, `del C:\f`)

	assertNoChild(t, e, `C:\A`, `dlink[C:\f]`)
	assertNoChild(t, e, `C:\A`, `dlink[<none>]`)
	assertChild(t, e, `C:\A\A`, `dlink[<none>]`)
}

// ============================================================================
// End-to-end scenarios
// ============================================================================

func TestScenario_CreateAndRemoveLeavesOnlyDrive(t *testing.T) {
	e := newTestEngine(t)
	mustRun(t, e, `md C:\A`, `mf C:\A\f.txt`, `del C:\A\f.txt`, `rd C:\A`)

	root, _ := e.State().Root().Container()
	assert.True(t, root.IsEmpty())
	assert.Equal(t, 1, e.State().Tree().Len())
}

func TestScenario_DuplicateDirectoryFailsAtLineTwo(t *testing.T) {
	e := newTestEngine(t)
	err := run(t, e, `md C:\A`, `md C:\A`)

	assertLineError(t, err, 2, vfs.ErrAlreadyExists)
	assert.Contains(t, err.Error(), "error at line 2: directory or file already exists")
}
