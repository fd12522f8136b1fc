package config

// BuildFile represents the structure of the adapt-build.yaml configuration
// file.
type BuildFile struct {
	Entry    string          `yaml:"entry"`
	Base     string          `yaml:"base"`
	Remap    []RemapDTO      `yaml:"remap"`
	External []ExternalDTO   `yaml:"external"`
	Plugins  PluginsDTO      `yaml:"plugins"`
	Cache    string          `yaml:"cache"`
	Output   OutputDTO       `yaml:"output"`
}

// RemapDTO is one namespace remap rule. Rules are matched first-match-wins in
// file order, so more specific prefixes belong first.
type RemapDTO struct {
	Prefix  string `yaml:"prefix"`
	Replace string `yaml:"replace"`
}

// ExternalDTO declares a namespace prefix as external. The marker "empty:"
// requests an empty stub.
type ExternalDTO struct {
	Prefix string `yaml:"prefix"`
	Marker string `yaml:"marker"`
}

// PluginsDTO configures plugin discovery and the manifest module.
type PluginsDTO struct {
	Sources  []string `yaml:"sources"`
	Filter   string   `yaml:"filter"`
	Manifest string   `yaml:"manifest"`
}

// OutputDTO configures the bundle artifact.
type OutputDTO struct {
	File       string `yaml:"file"`
	SourceMaps bool   `yaml:"sourceMaps"`
}
