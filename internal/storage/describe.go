package storage

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// OptionsView is the serialisable form of EngineOptions.
type OptionsView struct {
	CreateIfMissing bool   `json:"createIfMissing" yaml:"createIfMissing"`
	ParanoidChecks  bool   `json:"paranoidChecks" yaml:"paranoidChecks"`
	VerifyChecksums bool   `json:"verifyChecksums" yaml:"verifyChecksums"`
	CompressionType int    `json:"compressionType" yaml:"compressionType"`
	Compression     string `json:"compression" yaml:"compression"`
	BlockSize       int    `json:"blockSize" yaml:"blockSize"`
	WriteBufferSize int    `json:"writeBufferSize" yaml:"writeBufferSize"`
	CacheSize       int64  `json:"cacheSize" yaml:"cacheSize"`
	MaxOpenFiles    int    `json:"maxOpenFiles" yaml:"maxOpenFiles"`
}

// PropertyView is the serialisable form of Property.
type PropertyView struct {
	Name    string      `json:"name" yaml:"name"`
	Path    string      `json:"path,omitempty" yaml:"path,omitempty"`
	Options OptionsView `json:"options" yaml:"options"`
}

// RegistryView is the serialisable form of Registry, properties in declaration order.
type RegistryView struct {
	DBDirectory    string         `json:"dbDirectory" yaml:"dbDirectory"`
	IndexDirectory string         `json:"indexDirectory" yaml:"indexDirectory"`
	Properties     []PropertyView `json:"properties" yaml:"properties"`
}

// View converts the options into their serialisable form.
func (o EngineOptions) View() OptionsView {
	return OptionsView{
		CreateIfMissing: o.createIfMissing,
		ParanoidChecks:  o.paranoidChecks,
		VerifyChecksums: o.verifyChecksums,
		CompressionType: o.compression.PersistentID(),
		Compression:     o.compression.String(),
		BlockSize:       o.blockSize,
		WriteBufferSize: o.writeBufferSize,
		CacheSize:       o.cacheSize,
		MaxOpenFiles:    o.maxOpenFiles,
	}
}

// View converts the registry into its serialisable form.
func (r *Registry) View() RegistryView {
	view := RegistryView{
		DBDirectory:    r.DBDirectory(),
		IndexDirectory: r.IndexDirectory(),
		Properties:     []PropertyView{},
	}
	for _, name := range r.Names() {
		property, _ := r.Property(name)
		view.Properties = append(view.Properties, PropertyView{
			Name:    property.Name,
			Path:    property.Path,
			Options: property.Options.View(),
		})
	}
	return view
}

// Describe renders the registry as YAML. Output is stable for equal registries.
func (r *Registry) Describe() (string, error) {
	data, err := yaml.Marshal(r.View())
	if err != nil {
		return "", fmt.Errorf("failed to render storage registry: %w", err)
	}
	return string(data), nil
}
