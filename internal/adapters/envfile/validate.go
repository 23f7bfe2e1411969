package envfile

import (
	"gopkg.in/yaml.v3"

	"go.trai.ch/pinhooks/internal/core/domain"
	"go.trai.ch/zerr"
)

// document is the part of an environment file whose shape must survive a rewrite.
type document struct {
	Dependencies []any `yaml:"dependencies"`
}

// shape counts the top-level dependencies and the entries of the pip sub-list.
func (d document) shape() (deps, pip int) {
	for _, entry := range d.Dependencies {
		m, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		if sub, ok := m["pip"].([]any); ok {
			pip += len(sub)
		}
	}
	return len(d.Dependencies), pip
}

// validate checks that rewritten still parses and declares as many dependencies as original.
// Files that are not valid YAML to begin with are not checked.
func validate(original, rewritten []byte) error {
	var before document
	if err := yaml.Unmarshal(original, &before); err != nil {
		return nil //nolint:nilerr // only YAML inputs have a shape to preserve
	}

	var after document
	if err := yaml.Unmarshal(rewritten, &after); err != nil {
		return zerr.Wrap(err, domain.ErrRewriteCorrupt.Error())
	}

	wantDeps, wantPip := before.shape()
	gotDeps, gotPip := after.shape()
	if wantDeps != gotDeps || wantPip != gotPip {
		err := zerr.With(domain.ErrRewriteCorrupt, "dependencies_before", wantDeps)
		err = zerr.With(err, "dependencies_after", gotDeps)
		err = zerr.With(err, "pip_before", wantPip)
		return zerr.With(err, "pip_after", gotPip)
	}
	return nil
}
