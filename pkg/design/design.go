// Package design turns TOML module descriptions into Verilog source.
package design

import (
	"fmt"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/iancoleman/strcase"
)

// Dialect selects the language revision modules are rendered in.
type Dialect string

const (
	V05 Dialect = "v05"
	V17 Dialect = "v17"
)

// ParseDialect accepts a dialect by package name, year or language name.
// The empty string selects V05.
func ParseDialect(s string) (Dialect, error) {
	switch strings.ToLower(s) {
	case "", "v05", "2005", "verilog":
		return V05, nil
	case "v17", "2017", "systemverilog":
		return V17, nil
	default:
		return "", fmt.Errorf("unknown dialect %q", s)
	}
}

// Ext is the conventional source file extension for the dialect.
func (d Dialect) Ext() string {
	if d == V17 {
		return ".sv"
	}
	return ".v"
}

// Design is a file of module descriptions.
type Design struct {
	Dialect string `toml:"dialect"`

	// NormalizeNames rewrites signal, module and instance names to
	// snake_case and parameter names to SCREAMING_SNAKE_CASE.
	NormalizeNames bool `toml:"normalize_names"`

	Modules []ModuleConfig `toml:"module"`
}

type ModuleConfig struct {
	Name      string           `toml:"name"`
	Params    []ParamConfig    `toml:"params"`
	Ports     []PortConfig     `toml:"ports"`
	Decls     []DeclConfig     `toml:"decls"`
	Assigns   []AssignConfig   `toml:"assigns"`
	Always    []AlwaysConfig   `toml:"always"`
	Instances []InstanceConfig `toml:"instances"`
}

// ParamConfig is a parameter whose value is either an integer or a string.
type ParamConfig struct {
	Name  string `toml:"name"`
	Value any    `toml:"value"`
}

type PortConfig struct {
	Name  string  `toml:"name"`
	Dir   string  `toml:"dir"`
	Width *uint64 `toml:"width,omitempty"`

	// Reg makes an output driven from a behavioral block.
	Reg bool `toml:"reg,omitempty"`
}

type DeclConfig struct {
	Kind  string  `toml:"kind"`
	Name  string  `toml:"name"`
	Width *uint64 `toml:"width,omitempty"`
}

// AssignConfig drives Target with Op applied to Args. With no Op, Args must
// hold exactly one operand. Operands are signal names or decimal integers.
type AssignConfig struct {
	Target string   `toml:"target"`
	Op     string   `toml:"op,omitempty"`
	Args   []string `toml:"args"`
}

// AlwaysConfig is a behavioral block. With no Edge it is combinational and
// its assignments are blocking; otherwise it triggers on Edge of Signal and
// its assignments are non-blocking.
type AlwaysConfig struct {
	Edge    string         `toml:"edge,omitempty"`
	Signal  string         `toml:"signal,omitempty"`
	Assigns []AssignConfig `toml:"assigns"`
}

type InstanceConfig struct {
	Module string            `toml:"module"`
	Name   string            `toml:"name"`
	Params map[string]any    `toml:"params,omitempty"`
	Ports  map[string]string `toml:"ports,omitempty"`
}

// Load decodes a design file. Unknown keys are rejected so that typos don't
// silently drop parts of a module.
func Load(path string) (*Design, error) {
	var d Design
	md, err := toml.DecodeFile(path, &d)
	if err := checkDecoded(md, err); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &d, nil
}

// Parse decodes a design from TOML source, rejecting unknown keys like Load.
func Parse(src string) (*Design, error) {
	var d Design
	md, err := toml.Decode(src, &d)
	if err := checkDecoded(md, err); err != nil {
		return nil, fmt.Errorf("parsing design: %w", err)
	}
	return &d, nil
}

func checkDecoded(md toml.MetaData, err error) error {
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

type namer struct {
	normalize bool
}

func (n namer) signal(name string) string {
	if !n.normalize {
		return name
	}
	return strcase.ToSnake(name)
}

func (n namer) param(name string) string {
	if !n.normalize {
		return name
	}
	return strcase.ToScreamingSnake(name)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
