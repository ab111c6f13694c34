package inspect

import (
	"fmt"

	"nvgtls/internal/diag"
	"nvgtls/internal/source"
	"nvgtls/internal/symbols"
	"nvgtls/internal/token"
)

// resolveIncludes returns the scopes visible to target: the predefined
// scope first (unless target is the predefined file), then one scope per
// resolvable include in directive order. Targets not inspected yet are
// inspected recursively; a target whose pipeline is still running (an
// include cycle) contributes its empty placeholder scope.
func (in *Inspector) resolveIncludes(target, predefined source.FileID, refs []token.Token) ([]*symbols.AnalyzedScope, []source.FileID) {
	scopes := make([]*symbols.AnalyzedScope, 0, len(refs)+1)
	targets := make([]source.FileID, 0, len(refs))
	if predefined != "" && target != predefined {
		if res, ok := in.cache.Get(predefined); ok {
			scopes = append(scopes, res.Scope)
		}
	}

	for _, ref := range refs {
		rel := ref.Unquoted()
		uri, ok := source.ResolveURI(target, rel)
		if !ok || rel == "" {
			in.sessions.Report(diag.IncMalformed, diag.SevError, ref.Location, fmt.Sprintf("Invalid include path %s", ref.Text))
			continue
		}

		switch in.cache.state(uri) {
		case notStarted:
			content, found := in.opts.Reader(uri)
			if !found {
				libURI, _ := source.ResolveURI(in.opts.StdlibRoot, rel)
				content, found = in.opts.Reader(libURI)
				if !found {
					in.sessions.Report(diag.IncNotFound, diag.SevError, ref.Location, fmt.Sprintf(
						"Could not find file in the following locations: \"%s\", \"%s\"",
						source.DisplayPath(uri), source.DisplayPath(libURI),
					))
					continue
				}
				log.Debugf("%q found under the standard library root", rel)
			}
			in.cache.begin(uri)
			in.cache.Put(uri, in.run(content, uri, predefined))
		case inProgress:
			log.Debugf("include cycle: %q re-entered from %q", uri, target)
			if in.opts.DiagnoseCycles {
				diag.ReportWarning(in.sessions, diag.IncCycle, ref.Location,
					fmt.Sprintf("Circular include of \"%s\"", source.DisplayPath(uri)))
			}
		}

		res, _ := in.cache.Get(uri)
		scopes = append(scopes, res.Scope)
		targets = append(targets, uri)
	}
	return scopes, targets
}
