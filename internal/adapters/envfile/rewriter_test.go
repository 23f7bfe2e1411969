package envfile_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinhooks/internal/adapters/envfile"
	"go.trai.ch/pinhooks/internal/core/domain"
)

func testSnapshot(t *testing.T) *domain.Snapshot {
	t.Helper()
	snap, err := domain.NewSnapshot([]domain.Dependency{
		{Name: "python", Channel: "pkgs/main", Version: "3.10.14"},
		{Name: "numpy", Channel: "conda-forge", Version: "1.26.4"},
		{Name: "ruamel_yaml", Channel: "conda-forge", Version: "0.17.21"},
		{Name: "pip", Channel: "pkgs/main", Version: "24.0"},
		{Name: "click", Channel: "pypi", Version: "8.1.7"},
		{Name: "internal-lib", Channel: "pypi", Version: "0.2.0"},
	})
	require.NoError(t, err)
	return snap
}

func testOverrides() domain.Overrides {
	return domain.Overrides{
		Channels:   map[string]string{"internal-tool": "my-channel"},
		Registries: domain.RegistryOverrides("https://pypi.internal/simple", []string{"internal-lib"}),
	}
}

func transform(t *testing.T, input string, snap *domain.Snapshot, overrides domain.Overrides) string {
	t.Helper()
	out, _, err := envfile.Transform(envfile.SplitLines(input), snap, overrides)
	require.NoError(t, err)
	return strings.Join(out, "")
}

func TestTransform_Examples(t *testing.T) {
	snap := testSnapshot(t)

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "stale comment replaced and conda pin rewritten",
			input: "dependencies:\n# renovate: stale\n- python=3.10\n",
			want:  "dependencies:\n# renovate: datasource=conda depName=main/python\n- python=3.10.14\n",
		},
		{
			name:  "pip entry keeps extras",
			input: "dependencies:\n  - pip:\n    - click[extras]\n",
			want:  "dependencies:\n  - pip:\n    # renovate: datasource=pypi\n    - click[extras]==8.1.7\n",
		},
		{
			name:  "unresolved conda package defaults to main",
			input: "dependencies:\n  - missing=1.0\n",
			want:  "dependencies:\n  # renovate: datasource=conda depName=main/missing\n  - missing=1.0\n",
		},
		{
			name:  "channel override wins over snapshot",
			input: "dependencies:\n  - numpy\n",
			want:  "dependencies:\n  # renovate: datasource=conda depName=my-numpy/numpy\n  - numpy=1.26.4\n",
		},
		{
			name:  "registry override on pip entry",
			input: "dependencies:\n  - pip:\n    - internal-lib\n",
			want:  "dependencies:\n  - pip:\n    # renovate: datasource=pypi registryUrl=https://pypi.internal/simple\n    - internal-lib==0.2.0\n",
		},
		{
			name:  "lines outside the list are untouched",
			input: "channels:\n  - python\ndependencies:\n  - python\n\nother:\n  - numpy\n",
			want:  "channels:\n  - python\ndependencies:\n  # renovate: datasource=conda depName=main/python\n  - python=3.10.14\n\nother:\n  - numpy\n",
		},
		{
			name:  "regular comments are kept",
			input: "dependencies:\n  # the interpreter\n  - python\n",
			want:  "dependencies:\n  # the interpreter\n  # renovate: datasource=conda depName=main/python\n  - python=3.10.14\n",
		},
		{
			name:  "last line without newline",
			input: "dependencies:\n  - python",
			want:  "dependencies:\n  # renovate: datasource=conda depName=main/python\n  - python=3.10.14",
		},
		{
			name:  "crlf line endings are kept",
			input: "dependencies:\r\n  - python=3.10\r\nname: x\r\n",
			want:  "dependencies:\r\n  # renovate: datasource=conda depName=main/python\r\n  - python=3.10.14\r\nname: x\r\n",
		},
		{
			name:  "crlf file without final newline",
			input: "dependencies:\r\n  - pip:\r\n    - click",
			want:  "dependencies:\r\n  - pip:\r\n    # renovate: datasource=pypi\r\n    - click==8.1.7",
		},
	}

	overrides := testOverrides()
	overrides.Channels["numpy"] = "my-numpy"

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, transform(t, tt.input, snap, overrides))
		})
	}
}

func TestTransform_BypassEntries(t *testing.T) {
	snap := testSnapshot(t)
	input := "dependencies:\n" +
		"  - pip:\n" +
		"    # renovate: datasource=pypi\n" +
		"    - -e .\n" +
		"    - .\n" +
		"    - ../sibling\n"
	want := "dependencies:\n" +
		"  - pip:\n" +
		"    - -e .\n" +
		"    - .\n" +
		"    - ../sibling\n"

	out, stats, err := envfile.Transform(envfile.SplitLines(input), snap, domain.Overrides{})
	require.NoError(t, err)
	assert.Equal(t, want, strings.Join(out, ""))
	assert.Zero(t, stats.Annotated)
	assert.Zero(t, stats.Pinned)
}

func TestTransform_Idempotent(t *testing.T) {
	snap := testSnapshot(t)
	input, err := os.ReadFile(filepath.Join("testdata", "environment.yml"))
	require.NoError(t, err)

	once := transform(t, string(input), snap, testOverrides())
	twice := transform(t, once, snap, testOverrides())
	assert.Equal(t, once, twice)
}

func TestTransform_Stats(t *testing.T) {
	input, err := os.ReadFile(filepath.Join("testdata", "environment.yml"))
	require.NoError(t, err)

	_, stats, err := envfile.Transform(envfile.SplitLines(string(input)), testSnapshot(t), testOverrides())
	require.NoError(t, err)
	assert.Equal(t, 8, stats.Annotated)
	assert.Equal(t, 6, stats.Pinned)
}

func TestTransform_ParseError(t *testing.T) {
	input := "dependencies:\n  - python\n  - >=1.0\n"

	_, _, err := envfile.Transform(envfile.SplitLines(input), testSnapshot(t), domain.Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrLineParseFailed.Error())
}

func TestRewriter_Rewrite_Golden(t *testing.T) {
	input, err := os.ReadFile(filepath.Join("testdata", "environment.yml"))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "environment.yml")
	require.NoError(t, os.WriteFile(path, input, 0o600))

	rewriter := envfile.NewRewriter()
	res, err := rewriter.Rewrite(path, testSnapshot(t), testOverrides())
	require.NoError(t, err)
	assert.True(t, res.Changed)
	assert.Equal(t, path, res.Path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "environment", got)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestRewriter_Rewrite_Unchanged(t *testing.T) {
	content := "dependencies:\n  # renovate: datasource=conda depName=main/python\n  - python=3.10.14\n"
	path := filepath.Join(t.TempDir(), "environment.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	before, err := os.Stat(path)
	require.NoError(t, err)

	rewriter := envfile.NewRewriter()
	res, err := rewriter.Rewrite(path, testSnapshot(t), domain.Overrides{})
	require.NoError(t, err)
	assert.False(t, res.Changed)
	assert.Equal(t, 1, res.Annotated)
	assert.Equal(t, 1, res.Pinned)

	after, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, before.ModTime(), after.ModTime())
}

func TestRewriter_Rewrite_ParseErrorLeavesFile(t *testing.T) {
	content := "dependencies:\n  - python=3.10\n  - >=1.0\n"
	path := filepath.Join(t.TempDir(), "environment.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	rewriter := envfile.NewRewriter()
	_, err := rewriter.Rewrite(path, testSnapshot(t), domain.Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrLineParseFailed.Error())

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestReplaceFile_ChangedOnDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), "environment.yml")
	require.NoError(t, os.WriteFile(path, []byte("dependencies:\n  - python\n"), 0o600))

	digest, err := envfile.FileDigest(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("dependencies:\n  - python\n  - numpy\n"), 0o600))

	err = envfile.ReplaceFile(path, []byte("rewritten\n"), 0o600, digest)
	require.ErrorIs(t, err, domain.ErrEnvFileChanged)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "dependencies:\n  - python\n  - numpy\n", string(got))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp file left behind")
}

func TestReplaceFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "environment.yml")
	require.NoError(t, os.WriteFile(path, []byte("dependencies:\n  - python\n"), 0o600))

	digest, err := envfile.FileDigest(path)
	require.NoError(t, err)

	require.NoError(t, envfile.ReplaceFile(path, []byte("rewritten\n"), 0o640, digest))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "rewritten\n", string(got))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o640), info.Mode().Perm())
}

func TestRewriter_Rewrite_MissingFile(t *testing.T) {
	rewriter := envfile.NewRewriter()
	_, err := rewriter.Rewrite(filepath.Join(t.TempDir(), "missing.yml"), testSnapshot(t), domain.Overrides{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrEnvFileReadFailed.Error())
}

func TestValidate(t *testing.T) {
	original := []byte("dependencies:\n  - python\n  - pip:\n    - click\n")

	require.NoError(t, envfile.Validate(original, []byte("dependencies:\n  # c\n  - python=3.10\n  - pip:\n    # c\n    - click==8.1.7\n")))

	err := envfile.Validate(original, []byte("dependencies:\n  - python\n  - pip:\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrRewriteCorrupt.Error())

	err = envfile.Validate(original, []byte("dependencies: [\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrRewriteCorrupt.Error())

	require.NoError(t, envfile.Validate([]byte("dependencies: [\n"), []byte("anything")))
}
