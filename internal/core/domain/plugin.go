package domain

// PluginEntry is the root-relative, extension-stripped module path of a
// discovered plugin's main entry point. Entries are collected once per build
// in discovery order over the configured plugin source locations.
type PluginEntry string

// String returns the entry as a plain module path.
func (e PluginEntry) String() string {
	return string(e)
}
