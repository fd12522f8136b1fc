package bundler

import (
	"fmt"

	"github.com/Milun/adapt-framework/internal/core/domain"
	"github.com/cespare/xxhash/v2"
)

// Fingerprint hashes the resolution-relevant parts of the build
// configuration. A cache blob carrying a different fingerprint was produced
// under tables that may resolve the same identifiers differently and is
// discarded on restore.
func Fingerprint(cfg *domain.BuildConfig) string {
	h := xxhash.New()
	write := func(s string) {
		_, _ = h.WriteString(s)
		_, _ = h.Write([]byte{0}) // Separator
	}

	write(cfg.Entry)
	write(cfg.BaseDir)
	for _, rule := range cfg.Remap {
		write(rule.Prefix)
		write(rule.Replace)
	}
	_, _ = h.Write([]byte{0}) // Section separator
	for _, rule := range cfg.External {
		write(rule.Prefix)
		write(rule.Marker)
	}
	_, _ = h.Write([]byte{0})
	for _, source := range cfg.PluginSources {
		write(source)
	}
	write(cfg.PluginFilter)
	write(cfg.ManifestSuffix)

	return fmt.Sprintf("%016x", h.Sum64())
}
