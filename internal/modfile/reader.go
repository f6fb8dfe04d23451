// Package modfile reads a module description from disk: the HTML
// resource files that make up the module's content and the single YAML
// file carrying its metadata.
package modfile

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"modupload/internal/model"
)

var (
	ErrNoDescription       = errors.New("no module yaml configuration file found")
	ErrMultipleDescription = errors.New("multiple yaml configuration files found for this module")
)

var validate = validator.New()

// moduleFile mirrors the YAML description file layout:
//
//	module:
//	  name: ...
//	  description: ...
type moduleFile struct {
	Module struct {
		Name        string `yaml:"name" validate:"required"`
		Description string `yaml:"description" validate:"required"`
	} `yaml:"module"`
}

// Resources returns all *.html files directly under dir, sorted by
// filename ascending. That ordering is the module's declared upload
// order. Content is read up front so a missing or unreadable file
// fails here, before anything touches the database.
func Resources(dir string) ([]model.Resource, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.html"))
	if err != nil {
		return nil, fmt.Errorf("scan resources in %s: %w", dir, err)
	}

	resources := make([]model.Resource, 0, len(matches))
	for _, path := range matches {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read resource %s: %w", path, err)
		}
		resources = append(resources, model.Resource{
			Name:    filepath.Base(path),
			Content: string(content),
		})
	}

	sort.Slice(resources, func(i, j int) bool {
		return resources[i].Name < resources[j].Name
	})
	return resources, nil
}

// Module locates the module's YAML description file anywhere under dir
// and parses it. Exactly one .yml/.yaml file must exist.
func Module(dir string) (*model.Module, error) {
	path, err := findDescription(dir)
	if err != nil {
		return nil, err
	}
	return parseDescription(path)
}

// ModuleFromFile parses the given YAML description file directly,
// skipping discovery.
func ModuleFromFile(path string) (*model.Module, error) {
	return parseDescription(path)
}

func findDescription(dir string) (string, error) {
	var found []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".yml", ".yaml":
			found = append(found, path)
		}
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("scan module directory %s: %w", dir, err)
	}

	switch len(found) {
	case 0:
		return "", ErrNoDescription
	case 1:
		return found[0], nil
	default:
		return "", ErrMultipleDescription
	}
}

func parseDescription(path string) (*model.Module, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read module configuration %s: %w", path, err)
	}

	var mf moduleFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&mf); err != nil {
		return nil, fmt.Errorf("parse module configuration %s: %w", path, err)
	}

	if err := validate.Struct(&mf); err != nil {
		return nil, fmt.Errorf(`unable to read "name" and "description" properties of the module (are the keys missing?): %w`, err)
	}

	return &model.Module{
		Name:        mf.Module.Name,
		Description: mf.Module.Description,
	}, nil
}
