package envfile

import (
	"regexp"
	"strings"
	"unicode"

	"go.trai.ch/pinhooks/internal/core/domain"
	"go.trai.ch/zerr"
)

var (
	// tokenPattern captures the package name with any extras of a list item.
	tokenPattern = regexp.MustCompile(`-\s*([\w\-\[\],.]+)`)
	// namePattern captures the base name of a normalized token.
	namePattern = regexp.MustCompile(`[\w-]+`)
)

// Stats counts what a transform changed.
type Stats struct {
	Annotated int
	Pinned    int
}

// Transform rewrites the dependency lines of an environment file.
//
// Lines keep their line endings, and emitted lines reuse the ending of the
// line they annotate. Every dependency gets a tracking comment and,
// when the snapshot resolves it, a pinned version. A tracking comment directly
// above a dependency is replaced rather than duplicated.
func Transform(lines []string, snapshot *domain.Snapshot, overrides domain.Overrides) ([]string, Stats, error) {
	var stats Stats
	out := make([]string, 0, len(lines)+len(lines)/2)
	st := outsideList
	newline := detectNewline(lines)

	for i, raw := range lines {
		line := strings.TrimSpace(raw)
		st = st.next(line)

		if st == outsideList || !isDependency(line) {
			out = append(out, raw)
			continue
		}

		m := tokenPattern.FindStringSubmatch(line)
		if m == nil {
			err := zerr.With(domain.ErrLineParseFailed, "line", i+1)
			return nil, stats, zerr.With(err, "content", line)
		}
		token := domain.NormalizeName(m[1])

		if len(out) > 0 && domain.IsTrackingComment(out[len(out)-1]) {
			out = out[:len(out)-1]
		}

		if isBypass(token) {
			out = append(out, raw)
			continue
		}

		name := namePattern.FindString(token)
		if name == "" {
			err := zerr.With(domain.ErrLineParseFailed, "line", i+1)
			return nil, stats, zerr.With(err, "content", line)
		}

		ns := st.namespace()
		indent := strings.Repeat(" ", len(strings.TrimRightFunc(raw, unicode.IsSpace))-len(line))
		dep, resolved := snapshot.Lookup(ns, name)
		eol := lineEnding(raw)

		commentEOL := eol
		if commentEOL == "" {
			commentEOL = newline
		}
		out = append(out, indent+trackingComment(ns, name, dep, resolved, overrides).String()+commentEOL)
		stats.Annotated++

		if !resolved {
			out = append(out, raw)
			continue
		}

		if ns == domain.PyPI {
			out = append(out, indent+"- "+token+"=="+dep.Version+eol)
		} else {
			out = append(out, indent+"- "+name+"="+dep.Version+eol)
		}
		stats.Pinned++
	}

	return out, stats, nil
}

// isBypass reports whether a token references a local path or an editable install.
func isBypass(token string) bool {
	return strings.HasPrefix(token, ".") || strings.HasPrefix(token, "-e")
}

func trackingComment(
	ns domain.Namespace,
	name string,
	dep domain.Dependency,
	resolved bool,
	overrides domain.Overrides,
) domain.TrackingComment {
	c := domain.TrackingComment{Datasource: ns.Datasource()}

	if ns == domain.PyPI {
		if url, ok := overrides.Registry(name); ok {
			c.RegistryURL = url
		}
		return c
	}

	channel := domain.DefaultChannel
	if ch, ok := overrides.Channel(name); ok {
		channel = ch
	} else if resolved {
		channel = dep.Channel
	}
	c.DepName = channel + "/" + name
	return c
}

// lineEnding returns the line terminator of line, if any.
func lineEnding(line string) string {
	switch {
	case strings.HasSuffix(line, "\r\n"):
		return "\r\n"
	case strings.HasSuffix(line, "\n"):
		return "\n"
	default:
		return ""
	}
}

// detectNewline returns the terminator of the first terminated line, or "\n".
func detectNewline(lines []string) string {
	for _, l := range lines {
		if eol := lineEnding(l); eol != "" {
			return eol
		}
	}
	return "\n"
}

// splitLines splits content into lines, keeping line endings.
func splitLines(content string) []string {
	lines := strings.SplitAfter(content, "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
