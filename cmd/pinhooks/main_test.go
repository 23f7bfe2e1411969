package main

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pinhooks/internal/adapters/telemetry"
	"go.trai.ch/pinhooks/internal/app"
	"go.trai.ch/pinhooks/internal/core/domain"
	"go.trai.ch/pinhooks/internal/core/ports/mocks"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	runner *mocks.MockCommandRunner
	logger *mocks.MockLogger
	app    *app.App
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		runner: mocks.NewMockCommandRunner(ctrl),
		logger: mocks.NewMockLogger(ctrl),
	}
	f.app = app.New(
		mocks.NewMockSnapshotLoader(ctrl),
		mocks.NewMockEnvFileRewriter(ctrl),
		f.runner,
		f.logger,
		mocks.NewMockTracer(ctrl),
	).WithOutput(new(bytes.Buffer), new(bytes.Buffer))
	return f
}

func (f *fixture) provider(_ context.Context) (*app.Components, func(), error) {
	return &app.Components{App: f.app, Logger: f.logger}, func() {}, nil
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	f := newFixture(t)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), f.provider)

	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "pinhooks version")
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that a plain failure is logged and exits with 1.
func TestRun_ExecutionError(t *testing.T) {
	f := newFixture(t)

	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).Return(nil, errors.New("make not found"))
	f.logger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Contains(t, err.Error(), domain.ErrMakeHelpFailed.Error())
	})

	exitCode := run(context.Background(), []string{"make-table"}, new(bytes.Buffer), new(bytes.Buffer), f.provider)
	assert.Equal(t, 1, exitCode)
}

// TestRun_PropagatesSubprocessExitCode verifies that the exit code of a failed
// subprocess becomes the exit code of the hook.
func TestRun_PropagatesSubprocessExitCode(t *testing.T) {
	f := newFixture(t)

	exitErr := exec.Command("sh", "-c", "exit 3").Run()
	require.Error(t, exitErr)

	f.runner.EXPECT().Run(gomock.Any(), gomock.Any()).
		Return(&domain.CommandResult{ExitCode: 3}, zerr.Wrap(exitErr, domain.ErrCommandFailed.Error()))
	f.logger.EXPECT().Error(gomock.Any())

	exitCode := run(context.Background(), []string{"cog", "README.md"}, new(bytes.Buffer), new(bytes.Buffer), f.provider)
	assert.Equal(t, 3, exitCode)
}

type recordingLogger struct {
	*mocks.MockLogger
	json bool
}

func (l *recordingLogger) SetJSON(enable bool) {
	l.json = enable
}

// TestRun_LogJSON verifies that the log-json flag reaches the logger.
func TestRun_LogJSON(t *testing.T) {
	f := newFixture(t)
	log := &recordingLogger{MockLogger: f.logger}

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: f.app, Logger: log}, func() {}, nil
	}

	exitCode := run(context.Background(), []string{"--log-json", "version"}, new(bytes.Buffer), new(bytes.Buffer), provider)
	assert.Equal(t, 0, exitCode)
	assert.True(t, log.json)
}

// TestRun_TraceReportsSpans verifies that --trace logs the annotate spans.
func TestRun_TraceReportsSpans(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := mocks.NewMockSnapshotLoader(ctrl)
	rewriter := mocks.NewMockEnvFileRewriter(ctrl)
	log := mocks.NewMockLogger(ctrl)

	tracer := telemetry.NewOTelTracer(log, telemetry.InstrumentationName)
	application := app.New(loader, rewriter, mocks.NewMockCommandRunner(ctrl), log, tracer)

	snap, err := domain.NewSnapshot(nil)
	require.NoError(t, err)

	loader.EXPECT().Load(gomock.Any(), ".", gomock.Any()).Return(snap, nil)
	rewriter.EXPECT().Rewrite("environment.yml", snap, gomock.Any()).
		Return(domain.RewriteResult{Path: "environment.yml"}, nil)

	var messages []string
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		messages = append(messages, msg)
	}).AnyTimes()

	provider := func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: log, Tracer: tracer}, func() {
			_ = tracer.Shutdown(context.Background())
		}, nil
	}

	exitCode := run(context.Background(), []string{"--trace", "annotate", "--no-create", "environment.yml"},
		new(bytes.Buffer), new(bytes.Buffer), provider)
	require.Equal(t, 0, exitCode)

	hasPrefix := func(prefix string) bool {
		for _, m := range messages {
			if strings.HasPrefix(m, prefix) {
				return true
			}
		}
		return false
	}
	assert.True(t, hasPrefix("annotate.file file=environment.yml changed=false ("), messages)
	assert.True(t, hasPrefix("annotate.directory directory=. packages=0 ("), messages)
	assert.True(t, hasPrefix("annotate files=1 ("), messages)
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(errors.New("boom")))

	exitErr := exec.Command("sh", "-c", "exit 7").Run()
	require.Error(t, exitErr)
	assert.Equal(t, 7, exitCode(zerr.With(zerr.Wrap(exitErr, domain.ErrCogFailed.Error()), "file", "README.md")))
}
