// Package engine executes batch scripts of filesystem commands against an
// in-memory tree.
//
// Each command line is tokenized, dispatched by name (case-insensitively) to
// a handler from the command table, and applied to the shared State. A batch
// stops at the first failing command; mutations made by the commands before
// it are kept.
package engine

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/marmos91/vfsemu/internal/logger"
	"github.com/marmos91/vfsemu/pkg/metrics"
	"github.com/marmos91/vfsemu/pkg/syntax"
	"github.com/marmos91/vfsemu/pkg/vfs"
)

// CommandFunc applies one command to the state. args excludes the command name.
type CommandFunc func(s *State, args []string) error

// LineError reports the command line at which a batch stopped.
type LineError struct {
	// Line is the 1-based number of the command line, blank lines not counted
	Line int

	// Command is the raw text of the failing line
	Command string

	// Err is the underlying failure, usually a *vfs.Error
	Err error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("error at line %d: %v", e.Line, e.Err)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// Engine holds the filesystem state and the command table.
type Engine struct {
	state    *State
	commands map[string]CommandFunc
	metrics  metrics.EngineMetrics
}

var builtinCommands = []struct {
	name string
	fn   CommandFunc
}{
	{"md", commandMD},
	{"cd", commandCD},
	{"rd", commandRD},
	{"mf", commandMF},
	{"del", commandDEL},
	{"mhl", commandMHL},
	{"mdl", commandMDL},
	{"move", commandMOVE},
	{"copy", commandCOPY},
	{"deltree", commandDELTREE},
}

// New creates an engine over a fresh tree configured by cfg, with the
// built-in commands registered. A nil metrics collector disables metrics.
func New(cfg vfs.Config, m metrics.EngineMetrics) (*Engine, error) {
	state, err := NewState(cfg)
	if err != nil {
		return nil, err
	}

	if m == nil {
		m = metrics.NewNoopEngineMetrics()
	}

	e := &Engine{
		state:    state,
		commands: make(map[string]CommandFunc, len(builtinCommands)),
		metrics:  m,
	}

	for _, cmd := range builtinCommands {
		if err := e.Register(cmd.name, cmd.fn); err != nil {
			return nil, err
		}
	}

	m.SetItemCount(state.Tree().Len())
	return e, nil
}

// Register adds a command under a case-insensitive name. Registering a name
// twice is an error.
func (e *Engine) Register(name string, fn CommandFunc) error {
	key := strings.ToLower(name)
	if !vfs.ValidCommandName(key) {
		return &vfs.Error{Code: vfs.ErrSyntax, Message: "invalid command name", Path: name}
	}
	if _, exists := e.commands[key]; exists {
		return vfs.NewError(vfs.ErrDuplicateCommand, "duplicate command: "+key)
	}
	e.commands[key] = fn
	return nil
}

// Commands returns the registered command names in alphabetical order.
func (e *Engine) Commands() []string {
	names := make([]string, 0, len(e.commands))
	for name := range e.commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// State returns the filesystem state.
func (e *Engine) State() *State {
	return e.state
}

// Execute runs a single command line. Failures are returned as *LineError
// carrying the given line number.
func (e *Engine) Execute(ctx context.Context, line int, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	start := time.Now()
	name, err := e.dispatch(text)
	e.metrics.RecordCommand(name, time.Since(start), err)
	e.metrics.SetItemCount(e.state.Tree().Len())

	if err != nil {
		logger.Debug("line %d: %q failed: %v", line, text, err)
		return &LineError{Line: line, Command: text, Err: err}
	}

	logger.Debug("line %d: %q ok (current: %s)", line, text, e.state.Current().FullPath())
	return nil
}

func (e *Engine) dispatch(text string) (string, error) {
	tokens, ok := syntax.ParseCommand(text)
	if !ok {
		return "invalid", vfs.NewError(vfs.ErrSyntax, "invalid command format")
	}

	name := strings.ToLower(tokens[0])
	fn, ok := e.commands[name]
	if !ok {
		return "unknown", vfs.NewError(vfs.ErrUnknownCommand, "unknown command: "+name)
	}

	return name, fn(e.state, tokens[1:])
}

// Run reads commands from r line by line and executes them in order.
//
// Blank and whitespace-only lines are skipped and do not advance the line
// counter. The first failing command stops the run and its *LineError is
// returned.
func (e *Engine) Run(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	defer func() { e.metrics.RecordLines(line) }()

	for scanner.Scan() {
		text := scanner.Text()
		if syntax.TrimSpaces(text) == "" {
			continue
		}

		line++
		if err := e.Execute(ctx, line, text); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read commands: %w", err)
	}

	logger.Info("executed %d command(s), %d item(s) in tree", line, e.state.Tree().Len())
	return nil
}
