// Package envfile rewrites conda environment files with tracking comments and pinned versions.
package envfile

import (
	"bytes"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/pinhooks/internal/core/domain"
	"go.trai.ch/zerr"
)

// Rewriter implements ports.EnvFileRewriter on the local filesystem.
type Rewriter struct{}

// NewRewriter creates a new Rewriter.
func NewRewriter() *Rewriter {
	return &Rewriter{}
}

// Rewrite annotates and pins the dependencies of the file at path.
// The file is replaced atomically and only when its content changes. A file
// edited by someone else while it was being rewritten is left alone.
func (r *Rewriter) Rewrite(path string, snapshot *domain.Snapshot, overrides domain.Overrides) (domain.RewriteResult, error) {
	result := domain.RewriteResult{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		return result, zerr.With(zerr.Wrap(err, domain.ErrEnvFileReadFailed.Error()), "file", path)
	}

	original, err := os.ReadFile(path)
	if err != nil {
		return result, zerr.With(zerr.Wrap(err, domain.ErrEnvFileReadFailed.Error()), "file", path)
	}

	digest := xxhash.Sum64(original)

	lines, stats, err := Transform(splitLines(string(original)), snapshot, overrides)
	if err != nil {
		return result, zerr.With(err, "file", path)
	}
	result.Annotated = stats.Annotated
	result.Pinned = stats.Pinned

	rewritten := joinLines(lines)
	if bytes.Equal(rewritten, original) {
		return result, nil
	}

	if err := validate(original, rewritten); err != nil {
		return result, zerr.With(err, "file", path)
	}

	perm := info.Mode().Perm()
	if perm == 0 {
		perm = domain.FilePerm
	}
	if err := replaceFile(path, rewritten, perm, digest); err != nil {
		return result, zerr.With(zerr.Wrap(err, domain.ErrEnvFileWriteFailed.Error()), "file", path)
	}

	result.Changed = true
	return result, nil
}

func joinLines(lines []string) []byte {
	size := 0
	for _, l := range lines {
		size += len(l)
	}
	buf := make([]byte, 0, size)
	for _, l := range lines {
		buf = append(buf, l...)
	}
	return buf
}
