package domain

import "strings"

// TrackingCommentPrefix starts every comment read by the renovate bot.
const TrackingCommentPrefix = "# renovate"

// TrackingComment is the machine-readable annotation placed above a pinned dependency.
type TrackingComment struct {
	Datasource  string
	DepName     string
	RegistryURL string
}

// String renders the comment without indentation or newline.
func (c TrackingComment) String() string {
	var b strings.Builder
	b.WriteString(TrackingCommentPrefix)
	b.WriteString(": datasource=")
	b.WriteString(c.Datasource)
	switch {
	case c.DepName != "":
		b.WriteString(" depName=")
		b.WriteString(c.DepName)
	case c.RegistryURL != "":
		b.WriteString(" registryUrl=")
		b.WriteString(c.RegistryURL)
	}
	return b.String()
}

// IsTrackingComment reports whether a line, ignoring surrounding whitespace, is a tracking comment.
func IsTrackingComment(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), TrackingCommentPrefix)
}
