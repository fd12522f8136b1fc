package bundler

import "regexp"

var (
	// depArray matches the dependency array of define(...) and require([...])
	// calls.
	depArray = regexp.MustCompile(`(?s)\b(?:define|require)\s*\(\s*\[(.*?)\]`)

	// depSingle matches single-identifier require('...') calls.
	depSingle = regexp.MustCompile(`\brequire\s*\(\s*['"]([^'"]+)['"]\s*\)`)

	// depString extracts the quoted identifiers inside a dependency array.
	depString = regexp.MustCompile(`['"]([^'"]+)['"]`)
)

// scanDependencies extracts the module identifiers a body depends on, in
// source order, deduplicated. This is deliberately a textual scan: full
// parsing belongs to the transpilation engine, which is outside this
// repository.
func scanDependencies(body []byte) []string {
	var deps []string
	seen := make(map[string]bool)

	add := func(id string) {
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		deps = append(deps, id)
	}

	for _, array := range depArray.FindAllSubmatch(body, -1) {
		for _, s := range depString.FindAllSubmatch(array[1], -1) {
			add(string(s[1]))
		}
	}
	for _, s := range depSingle.FindAllSubmatch(body, -1) {
		add(string(s[1]))
	}

	return deps
}
