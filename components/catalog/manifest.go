package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	manifestVersionV1 = "1"
	// ManifestVersion exposes the current manifest format version for tooling.
	ManifestVersion = manifestVersionV1
)

// RailManifestDocument models a YAML manifest describing storefront rails.
// Manifests replace or extend the built-in rails without a rebuild.
type RailManifestDocument struct {
	Version string           `yaml:"version"`
	Name    string           `yaml:"name,omitempty"`
	Rails   []RailDefinition `yaml:"rails"`
	Source  string           `yaml:"-"`
}

// LoadManifestFile reads a manifest from disk and registers its rails.
func (r *Registry) LoadManifestFile(path string) (*RailManifestDocument, error) {
	doc, err := ReadManifest(path)
	if err != nil {
		return nil, err
	}
	if err := r.LoadManifestDocument(doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadManifestDocument registers every rail from a decoded manifest.
func (r *Registry) LoadManifestDocument(doc *RailManifestDocument) error {
	if doc == nil {
		return fmt.Errorf("catalog: manifest document is nil")
	}
	for _, def := range doc.Rails {
		if err := r.Register(def); err != nil {
			return fmt.Errorf("catalog: register rail %s from %s: %w", def.Code, doc.Source, err)
		}
	}
	return nil
}

// ReadManifest loads a manifest file from disk without registering it.
func ReadManifest(path string) (*RailManifestDocument, error) {
	f, err := os.Open(path) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("catalog: open manifest %s: %w", path, err)
	}
	defer f.Close()
	doc, err := DecodeManifest(f)
	if err != nil {
		return nil, fmt.Errorf("catalog: decode manifest %s: %w", path, err)
	}
	doc.Source = path
	return doc, nil
}

// DecodeManifest reads a manifest from any reader. Unknown fields are
// rejected so typos surface at load time instead of as silently ignored
// configuration.
func DecodeManifest(r io.Reader) (*RailManifestDocument, error) {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	var doc RailManifestDocument
	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("catalog: decode manifest: %w", err)
	}
	if doc.Version != manifestVersionV1 {
		return nil, fmt.Errorf("catalog: unsupported manifest version %q", doc.Version)
	}
	return &doc, nil
}
