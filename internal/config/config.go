// Package config loads the optional YAML run config (--config).
//
// Every field is optional. Values act as defaults: a flag given explicitly on
// the command line always wins over the file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrNotFound      = errors.New("config file not found")
	ErrInvalidFormat = errors.New("invalid config format")
)

// File mirrors the CLI flags. Pointers distinguish "unset" from zero values.
type File struct {
	Maps           []string `yaml:"maps"`
	Part           string   `yaml:"part"`
	Threads        *int     `yaml:"threads"`
	Output         string   `yaml:"output"`
	Positions      *bool    `yaml:"positions"`
	Pretty         *bool    `yaml:"pretty"`
	Header         *bool    `yaml:"header"`
	NoLoopExitCode *int     `yaml:"no_loop_exit_code"`
	Quiet          *bool    `yaml:"quiet"`
	Verbose        *bool    `yaml:"verbose"`
}

// LoadFile reads and decodes path. ${VAR} references are expanded from the
// environment before decoding.
func LoadFile(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("access config file: %w", err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%w: %s is a directory", ErrInvalidFormat, path)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config file: %w", err)
	}
	defer f.Close()

	cfg, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Load decodes a YAML document from r. Unknown keys are rejected; an empty
// document yields an empty File.
func Load(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	data = []byte(os.ExpandEnv(string(data)))

	cfg := &File{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return cfg, nil
}
