package shell

import (
	"strings"

	"go.trai.ch/pinhooks/internal/core/domain"
	"go.trai.ch/zerr"
	"mvdan.cc/sh/v3/syntax"
)

// Split splits a command string into words following POSIX shell quoting rules.
// Quotes and escapes are removed. Parameters, substitutions and tildes are kept
// as written; nothing is expanded from the environment.
func Split(command string) ([]string, error) {
	parser := syntax.NewParser()

	var words []string
	for w, err := range parser.WordsSeq(strings.NewReader(command)) {
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInvalidCommand.Error()), "command", command)
		}
		words = append(words, literalWord(command, w.Parts, false))
	}
	if len(words) == 0 {
		return nil, zerr.With(domain.ErrEmptyCommand, "command", command)
	}
	return words, nil
}

func literalWord(src string, parts []syntax.WordPart, quoted bool) string {
	var b strings.Builder
	for _, part := range parts {
		switch p := part.(type) {
		case *syntax.Lit:
			b.WriteString(unescape(p.Value, quoted))
		case *syntax.SglQuoted:
			if p.Dollar {
				b.WriteString(source(src, p))
				continue
			}
			b.WriteString(p.Value)
		case *syntax.DblQuoted:
			b.WriteString(literalWord(src, p.Parts, true))
		default:
			b.WriteString(source(src, p))
		}
	}
	return b.String()
}

// unescape removes backslash escapes the way the shell does outside of
// single quotes. Inside double quotes only \\, \$, \" and \` are escapes.
func unescape(s string, quoted bool) string {
	if !strings.Contains(s, `\`) {
		return s
	}

	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i+1 == len(s) {
			b.WriteByte(c)
			continue
		}
		next := s[i+1]
		switch {
		case next == '\n':
			i++
		case !quoted, next == '\\', next == '$', next == '"', next == '`':
			b.WriteByte(next)
			i++
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func source(src string, n syntax.Node) string {
	return src[n.Pos().Offset():n.End().Offset()]
}
