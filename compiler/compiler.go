// Package compiler ties together parsing, validation and code generation
// of wcgen schemas.
package compiler

import (
	"context"

	"github.com/brimdata/wcgen/compiler/ast"
	"github.com/brimdata/wcgen/compiler/cpp"
	"github.com/brimdata/wcgen/compiler/semantic"
	"github.com/brimdata/wcgen/compiler/sexpr"
	"github.com/brimdata/wcgen/compiler/srcfiles"
	"github.com/brimdata/wcgen/pkg/storage"
	"go.uber.org/zap"
)

// Load parses and validates every file under dir whose name ends in
// "."+ext.
func Load(dir, ext string) (*semantic.Environment, error) {
	src, err := srcfiles.Load(dir, ext)
	if err != nil {
		return nil, err
	}
	return ParseFiles(src)
}

func ParseFiles(src *srcfiles.List) (*semantic.Environment, error) {
	lists, err := sexpr.Parse(src)
	if err != nil {
		return nil, err
	}
	return semantic.Build(lists)
}

func ParseString(name, text string) (*semantic.Environment, error) {
	return ParseFiles(srcfiles.FromString(name, text))
}

// Outputs returns the outputs a run generates.  A non-empty override
// replaces the folder of every output and adds a C++ output when env
// declares none.
func Outputs(env *semantic.Environment, override string) []*ast.Output {
	if override == "" {
		return env.Outputs
	}
	if len(env.Outputs) == 0 {
		return []*ast.Output{{Language: ast.Cpp, Folder: override}}
	}
	var outputs []*ast.Output
	seen := make(map[ast.Language]bool)
	for _, o := range env.Outputs {
		if !seen[o.Language] {
			seen[o.Language] = true
			outputs = append(outputs, &ast.Output{Loc: o.Loc, Language: o.Language, Folder: override})
		}
	}
	return outputs
}

// Run generates every output of env.
func Run(ctx context.Context, logger *zap.Logger, engine storage.Engine, env *semantic.Environment, override string) error {
	outputs := Outputs(env, override)
	if len(outputs) == 0 {
		logger.Warn("no output declared")
		return nil
	}
	for _, o := range outputs {
		logger.Info("generating", zap.Stringer("language", o.Language), zap.String("folder", o.Folder))
		if err := cpp.Generate(ctx, logger, engine, o.Folder, env); err != nil {
			return err
		}
	}
	return nil
}
