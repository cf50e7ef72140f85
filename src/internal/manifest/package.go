// Package manifest reads project manifest files (package.json and
// friends) through a modification-time-validated parse cache, so
// repeated lookups do not re-parse unchanged files.
package manifest

import (
	"encoding/json"
	"fmt"
)

// Shape selects which view of a manifest a lookup wants. Distinct
// shapes of the same file are cached independently.
type Shape int

const (
	// ShapeMeta decodes the identifying fields: name, version, engines.
	ShapeMeta Shape = iota
	// ShapeDependencies decodes dependencies and devDependencies.
	ShapeDependencies
	// ShapeScripts decodes the scripts map.
	ShapeScripts
)

// String returns the shape name for logs and cache diagnostics.
func (s Shape) String() string {
	switch s {
	case ShapeMeta:
		return "meta"
	case ShapeDependencies:
		return "dependencies"
	case ShapeScripts:
		return "scripts"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// Document is a parsed manifest view. Only the fields selected by
// the requesting Shape are populated; the rest stay zero.
type Document struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Engines         map[string]string `json:"engines"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
	Scripts         map[string]string `json:"scripts"`
}

// ParseError reports malformed manifest content. It is never
// fatal: the command layer surfaces it and proceeds, and the cache
// keeps any prior entry for the same key.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// parseShape decodes the requested view of the raw manifest bytes.
func parseShape(path string, data []byte, shape Shape) (*Document, error) {
	var full Document
	if err := json.Unmarshal(data, &full); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	doc := &Document{}
	switch shape {
	case ShapeMeta:
		doc.Name = full.Name
		doc.Version = full.Version
		doc.Engines = full.Engines
	case ShapeDependencies:
		doc.Dependencies = full.Dependencies
		doc.DevDependencies = full.DevDependencies
	case ShapeScripts:
		doc.Scripts = full.Scripts
	default:
		return nil, &ParseError{Path: path, Err: fmt.Errorf("unsupported shape %v", shape)}
	}
	return doc, nil
}
