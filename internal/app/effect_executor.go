// Package app contains the application layer - service implementations and effect execution.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"

	"github.com/example/frodo/internal/core/effects"
	"github.com/example/frodo/internal/ctxutil"
	"github.com/example/frodo/internal/ports/secondary"
)

// EffectExecutor interprets and executes effects.
// This is the "Imperative Shell" - the only place I/O happens.
type EffectExecutor interface {
	Execute(ctx context.Context, effs []effects.Effect) (*ExecutionResult, error)
}

// ExecutionResult records what an execution touched, in order.
type ExecutionResult struct {
	Directories []string // directories created
	Created     []string // files created or written
	Existing    []string // files left untouched because they exist
	Commands    []string // commands run
	Routes      []string // route statements added
}

// Status verbs printed for each executed effect.
const (
	StatusCreate = "create"
	StatusExists = "exists"
	StatusWrite  = "write"
	StatusRun    = "run"
	StatusRoute  = "route"
)

var statusColors = map[string]color.Attribute{
	StatusCreate: color.FgGreen,
	StatusExists: color.FgBlue,
	StatusWrite:  color.FgYellow,
	StatusRun:    color.FgCyan,
	StatusRoute:  color.FgMagenta,
}

// DefaultEffectExecutor implements EffectExecutor over the workspace and shell ports.
// Each step is reported on out with paths relative to baseDir.
type DefaultEffectExecutor struct {
	workspace secondary.WorkspaceAdapter
	shell     secondary.ShellAdapter
	out       io.Writer
	baseDir   string
}

// NewEffectExecutor creates a new DefaultEffectExecutor.
func NewEffectExecutor(workspace secondary.WorkspaceAdapter, shell secondary.ShellAdapter, out io.Writer, baseDir string) *DefaultEffectExecutor {
	return &DefaultEffectExecutor{
		workspace: workspace,
		shell:     shell,
		out:       out,
		baseDir:   baseDir,
	}
}

// Execute processes a slice of effects, executing each in sequence.
// It stops at the first failure; effects already executed are not undone.
func (e *DefaultEffectExecutor) Execute(ctx context.Context, effs []effects.Effect) (*ExecutionResult, error) {
	result := &ExecutionResult{}
	for _, eff := range effs {
		if err := e.executeOne(ctx, eff, result); err != nil {
			return result, fmt.Errorf("failed to execute %s effect: %w", eff.EffectType(), err)
		}
	}
	return result, nil
}

func (e *DefaultEffectExecutor) executeOne(ctx context.Context, eff effects.Effect, result *ExecutionResult) error {
	switch typed := eff.(type) {
	case effects.FileEffect:
		return e.executeFile(ctx, typed, result)
	case effects.ExecEffect:
		return e.executeExec(ctx, typed, result)
	case effects.RouteEffect:
		for _, line := range typed.Lines {
			e.report(StatusRoute, line)
		}
		result.Routes = append(result.Routes, typed.Lines...)
		return nil
	case effects.LogEffect:
		ctxutil.Logger(ctx).Log(ctx, logLevel(typed.Level), typed.Message, logArgs(typed.Fields)...)
		return nil
	case effects.NoEffect:
		return nil
	default:
		return fmt.Errorf("unknown effect type: %T", eff)
	}
}

func (e *DefaultEffectExecutor) executeFile(ctx context.Context, eff effects.FileEffect, result *ExecutionResult) error {
	logger := ctxutil.Logger(ctx)

	switch eff.Operation {
	case effects.OpMkdir:
		if err := e.workspace.CreateDirectory(ctx, eff.Path); err != nil {
			return err
		}
		e.report(StatusCreate, eff.Path)
		result.Directories = append(result.Directories, eff.Path)
	case effects.OpEnsureDir:
		created, err := e.workspace.EnsureDirectory(ctx, eff.Path)
		if err != nil {
			return err
		}
		if !created {
			logger.Debug("directory exists", "path", eff.Path)
			return nil
		}
		e.report(StatusCreate, eff.Path)
		result.Directories = append(result.Directories, eff.Path)
	case effects.OpCreate:
		created, err := e.workspace.CreateFile(ctx, eff.Path, eff.Content)
		if err != nil {
			return err
		}
		if !created {
			e.report(StatusExists, eff.Path)
			result.Existing = append(result.Existing, eff.Path)
			return nil
		}
		e.report(StatusCreate, eff.Path)
		result.Created = append(result.Created, eff.Path)
	case effects.OpWrite:
		if err := e.workspace.WriteFile(ctx, eff.Path, eff.Content); err != nil {
			return err
		}
		e.report(StatusWrite, eff.Path)
		result.Created = append(result.Created, eff.Path)
	default:
		return fmt.Errorf("unknown file operation: %s", eff.Operation)
	}

	logger.Debug("file effect", "op", eff.Operation, "path", eff.Path, "bytes", len(eff.Content))
	return nil
}

func (e *DefaultEffectExecutor) executeExec(ctx context.Context, eff effects.ExecEffect, result *ExecutionResult) error {
	command := strings.Join(append([]string{eff.Name}, eff.Args...), " ")
	e.report(StatusRun, command)
	ctxutil.Logger(ctx).Debug("running command", "dir", eff.Dir, "command", command)

	if err := e.shell.Run(ctx, eff.Dir, eff.Name, eff.Args...); err != nil {
		return err
	}
	result.Commands = append(result.Commands, command)
	return nil
}

// report prints a right-aligned colored status verb followed by target.
func (e *DefaultEffectExecutor) report(status, target string) {
	verb := color.New(statusColors[status]).Sprintf("%12s", status)
	fmt.Fprintf(e.out, "%s  %s\n", verb, e.relative(target))
}

func (e *DefaultEffectExecutor) relative(path string) string {
	if e.baseDir == "" || !filepath.IsAbs(path) {
		return path
	}
	rel, err := filepath.Rel(e.baseDir, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func logLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func logArgs(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	args := make([]any, 0, len(fields)*2)
	for _, k := range keys {
		args = append(args, k, fields[k])
	}
	return args
}
