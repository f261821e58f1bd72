// Package ztest runs formulaic tests of wcgen code generation described
// by YAML files.
//
// A ztest is a YAML file holding a schema, optional input files placed
// in the output folder before generation, and the expected contents of
// output files or the expected error:
//
//	schema: |
//	  (struct Point (fields (x i32) (y i32)))
//	outputs:
//	  - name: Point.hpp
//	    data: |
//	      #pragma once
//	      ...
//
// The schema is compiled as a single file named schema.scm and generated
// into a temporary directory that overrides every output folder.  runs
// sets how many times generation is repeated over the same directory,
// which checks that regeneration leaves files unchanged.  An output with
// a regexp instead of data matches when the regular expression matches
// the file.  An output with absent set must not exist.
package ztest

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/brimdata/wcgen/compiler"
	"github.com/brimdata/wcgen/pkg/storage"
	"github.com/goccy/go-yaml"
	yamlparser "github.com/goccy/go-yaml/parser"
	"github.com/pmezard/go-difflib/difflib"
	"go.uber.org/zap"
)

// SchemaName is the file name errors report for a ztest schema.
const SchemaName = "schema.scm"

type Bundle struct {
	TestName string
	FileName string
	Test     *ZTest
	Error    error
}

func Load(dirname string) ([]Bundle, error) {
	var bundles []Bundle
	fileinfos, err := os.ReadDir(dirname)
	if err != nil {
		return nil, err
	}
	for _, fi := range fileinfos {
		filename := fi.Name()
		const dotyaml = ".yaml"
		if !strings.HasSuffix(filename, dotyaml) {
			continue
		}
		testname := strings.TrimSuffix(filename, dotyaml)
		filename = filepath.Join(dirname, filename)
		zt, err := FromYAMLFile(filename)
		bundles = append(bundles, Bundle{testname, filename, zt, err})
	}
	return bundles, nil
}

// Run runs the ztests in the directory named dirname.  For each file f.yaml in
// the directory, Run calls FromYAMLFile to load a ztest and then runs it in
// subtest named f.
func Run(t *testing.T, dirname string) {
	bundles, err := Load(dirname)
	if err != nil {
		t.Fatal(err)
	}
	for _, b := range bundles {
		t.Run(b.TestName, func(t *testing.T) {
			t.Parallel()
			if b.Error != nil {
				t.Fatalf("%s: %s", b.FileName, b.Error)
			}
			b.Test.Run(t, b.FileName)
		})
	}
}

type File struct {
	// Name is the slash separated path of the file relative to the
	// output folder.
	Name string `yaml:"name"`
	// Data is the contents of the file.
	Data *string `yaml:"data,omitempty"`
	// Re is a regular expression describing the contents of the file,
	// which is only applicable to output files.
	Re string `yaml:"regexp,omitempty"`
	// Absent says an output file must not exist.
	Absent bool `yaml:"absent,omitempty"`
}

func (f *File) check() error {
	cnt := 0
	if f.Data != nil {
		cnt++
	}
	if f.Re != "" {
		cnt++
	}
	if f.Absent {
		cnt++
	}
	if cnt != 1 {
		return fmt.Errorf("%s: must specify exactly one of data, regexp or absent", f.Name)
	}
	return nil
}

func (f *File) path(dir string) string {
	return filepath.Join(dir, filepath.FromSlash(f.Name))
}

// ZTest defines a ztest.
type ZTest struct {
	Skip string `yaml:"skip,omitempty"`

	Schema  string `yaml:"schema"`
	Runs    int    `yaml:"runs,omitempty"`
	Inputs  []File `yaml:"inputs,omitempty"`
	Outputs []File `yaml:"outputs,omitempty"`
	Error   string `yaml:"error,omitempty"`
}

func (z *ZTest) check() error {
	if z.Schema == "" {
		return errors.New("schema field missing")
	}
	if z.Error == "" && z.Outputs == nil {
		return errors.New("either an outputs field or an error field must be present")
	}
	for _, f := range z.Inputs {
		if f.Data == nil {
			return fmt.Errorf("%s: input must have data", f.Name)
		}
	}
	for _, f := range z.Outputs {
		if err := f.check(); err != nil {
			return err
		}
	}
	return nil
}

// FromYAMLFile loads a ZTest from the YAML file named filename.
func FromYAMLFile(filename string) (*ZTest, error) {
	f, err := yamlparser.ParseFile(filename, 0)
	if err != nil {
		return nil, err
	}
	if len(f.Docs) != 1 {
		return nil, errors.New("file must contain one YAML document")
	}
	var z ZTest
	if err := yaml.NodeToValue(f.Docs[0].Body, &z, yaml.DisallowUnknownField()); err != nil {
		return nil, err
	}
	return &z, nil
}

func (z *ZTest) Run(t *testing.T, filename string) {
	if z.Skip != "" {
		t.Skip("skipping test:", z.Skip)
	}
	if err := z.RunInternal(t, t.TempDir()); err != nil {
		t.Fatalf("%s: %s", filename, err)
	}
}

// RunInternal generates the schema into dir and compares the results.
func (z *ZTest) RunInternal(t testing.TB, dir string) error {
	if err := z.check(); err != nil {
		return fmt.Errorf("bad yaml format: %w", err)
	}
	for _, f := range z.Inputs {
		path := f.path(dir)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(path, []byte(*f.Data), 0644); err != nil {
			return err
		}
	}
	err := z.generate(t, dir)
	var errStr string
	if err != nil {
		// Append newline if err doesn't end with one.
		errStr = strings.TrimSuffix(err.Error(), "\n") + "\n"
	}
	if z.Error != errStr {
		return diffErr("error", z.Error, errStr)
	}
	var errs []error
	for _, f := range z.Outputs {
		errs = append(errs, f.compare(dir))
	}
	return errors.Join(errs...)
}

func (z *ZTest) generate(t testing.TB, dir string) error {
	env, err := compiler.ParseString(SchemaName, z.Schema)
	if err != nil {
		return err
	}
	engine := storage.NewFileSystem()
	for range max(z.Runs, 1) {
		if err := compiler.Run(t.Context(), zap.NewNop(), engine, env, dir); err != nil {
			return err
		}
	}
	return nil
}

func (f *File) compare(dir string) error {
	b, err := os.ReadFile(f.path(dir))
	if f.Absent {
		if err == nil {
			return fmt.Errorf("%s: file should not exist", f.Name)
		}
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if err != nil {
		return err
	}
	if f.Re != "" {
		re, err := regexp.Compile(f.Re)
		if err != nil {
			return err
		}
		if !re.Match(b) {
			return fmt.Errorf("%s: regular expression %q does not match:\n%s", f.Name, f.Re, b)
		}
		return nil
	}
	if actual := string(b); actual != *f.Data {
		return diffErr(f.Name, *f.Data, actual)
	}
	return nil
}

func diffErr(name, expected, actual string) error {
	if !utf8.ValidString(expected) {
		expected = hex.Dump([]byte(expected))
		actual = hex.Dump([]byte(actual))
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(expected),
		FromFile: "expected",
		B:        difflib.SplitLines(actual),
		ToFile:   "actual",
		Context:  5,
	})
	if err != nil {
		panic("ztest: " + err.Error())
	}
	return fmt.Errorf("expected and actual %s differ:\n%s", name, diff)
}
