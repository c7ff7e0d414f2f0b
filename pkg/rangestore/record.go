package rangestore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v2"
	"headsup-analyzer/pkg/combo"
	"headsup-analyzer/pkg/preflop"
)

// Record is a range pattern as it appears in configuration
type Record struct {
	Name     string `json:"name" yaml:"name"`
	Action   string `json:"action" yaml:"action"`
	Me       string `json:"me" yaml:"me"`
	Opponent string `json:"opponent" yaml:"opponent"`
	Hands    string `json:"hands" yaml:"hands"`
}

// File is the top level shape of a range file
type File struct {
	Patterns []Record `json:"patterns" yaml:"patterns"`
}

// ReadFile decodes the records of a JSON (.json) or YAML (.yaml, .yml) range file
func ReadFile(path string) ([]Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, &ConfigLoadError{Source: path, Err: err}
	}
	defer file.Close()

	var f File
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.NewDecoder(file).Decode(&f)
	case ".json":
		err = json.NewDecoder(file).Decode(&f)
	default:
		err = fmt.Errorf("unsupported file extension %q", ext)
	}

	if err != nil {
		return nil, &ConfigLoadError{Source: path, Err: err}
	}

	return f.Patterns, nil
}

// pattern parses the record into a Pattern
func (r Record) pattern() (*Pattern, error) {
	action, err := preflop.ParseAction(r.Action)
	if err != nil {
		return nil, err
	}

	me, err := preflop.ParsePosition(r.Me)
	if err != nil {
		return nil, err
	}

	opponent, err := preflop.ParsePosition(r.Opponent)
	if err != nil {
		return nil, err
	}

	combos, err := combo.ParseRange(r.Hands)
	if err != nil {
		return nil, err
	}

	return &Pattern{
		Name:     r.Name,
		Action:   action,
		Me:       me,
		Opponent: opponent,
		Raw:      r.Hands,
		Combos:   combos,
	}, nil
}
