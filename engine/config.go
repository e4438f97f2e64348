package engine

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/npillmayer/boxer/dom/style"
	"gopkg.in/yaml.v3"
)

// ErrConfig is returned for invalid configurations.
var ErrConfig = errors.New("invalid configuration")

// Stylesheet front-ends
const (
	FrontEndNative  = "native"  // package cssom
	FrontEndDouceur = "douceur" // package douceuradapter
)

// Formats for box tree dumps
const (
	DumpTree = "tree" // indented tree, see frame.Dump
	DumpDot  = "dot"  // GraphViz digraph, see framedbg.ToGraphViz
)

// Config holds the settings of an engine.
type Config struct {
	TraceLevel       string            `yaml:"trace-level" toml:"trace-level"`             // error, info or debug
	TraceLevels      map[string]string `yaml:"trace-levels" toml:"trace-levels"`           // per tracer key
	TraceDestination string            `yaml:"trace-destination" toml:"trace-destination"` // Stderr, Stdout or file URI
	UserAgentCSS     string            `yaml:"user-agent-css" toml:"user-agent-css"`
	CSSFrontEnd      string            `yaml:"css-front-end" toml:"css-front-end"`
	DumpFormat       string            `yaml:"dump-format" toml:"dump-format"`
	TextAdvance      float64           `yaml:"text-advance" toml:"text-advance"` // points per character
	LineHeight       float64           `yaml:"line-height" toml:"line-height"`   // points
}

// DefaultConfig returns the configuration used if clients do not provide one.
func DefaultConfig() Config {
	return Config{
		TraceLevel:   "error",
		UserAgentCSS: style.UserAgentCSS(),
		CSSFrontEnd:  FrontEndNative,
		DumpFormat:   DumpTree,
		TextAdvance:  6,
		LineHeight:   12,
	}
}

// LoadConfig reads a configuration file. Files with extension .yaml or .yml
// are read as YAML, files with extension .toml as TOML. Settings missing
// from the file keep their default value. Unknown settings are an error.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" && ext != ".toml" {
		return config, fmt.Errorf("%w: unsupported configuration file type %q", ErrConfig, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("reading configuration: %w", err)
	}
	if ext == ".toml" {
		md, err := toml.Decode(string(data), &config)
		if err != nil {
			return config, fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return config, fmt.Errorf("%w: %s: unknown keys %v", ErrConfig, path, undecoded)
		}
	} else {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&config); err != nil && !errors.Is(err, io.EOF) {
			return config, fmt.Errorf("%w: %s: %v", ErrConfig, path, err)
		}
	}
	tracer().P("file", path).Infof("configuration loaded")
	return config, config.Validate()
}

// Validate checks the settings of a configuration.
func (config Config) Validate() error {
	if !isTraceLevel(config.TraceLevel) {
		return fmt.Errorf("%w: unknown trace level %q", ErrConfig, config.TraceLevel)
	}
	for key, level := range config.TraceLevels {
		if !isTraceLevel(level) {
			return fmt.Errorf("%w: unknown trace level %q for %s", ErrConfig, level, key)
		}
	}
	switch config.CSSFrontEnd {
	case FrontEndNative, FrontEndDouceur:
	default:
		return fmt.Errorf("%w: unknown stylesheet front-end %q", ErrConfig, config.CSSFrontEnd)
	}
	switch config.DumpFormat {
	case DumpTree, DumpDot:
	default:
		return fmt.Errorf("%w: unknown dump format %q", ErrConfig, config.DumpFormat)
	}
	if config.TextAdvance < 0 || config.LineHeight < 0 {
		return fmt.Errorf("%w: negative text metrics", ErrConfig)
	}
	return nil
}

func isTraceLevel(l string) bool {
	switch strings.ToLower(l) {
	case "", "error", "info", "debug":
		return true
	}
	return false
}
