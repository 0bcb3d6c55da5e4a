package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/nupin/internal/adapters/nupkg"
	"go.trai.ch/nupin/internal/adapters/nuspec"
	"go.trai.ch/nupin/internal/app"
	"go.trai.ch/nupin/internal/core/ports/mocks"
	"go.trai.ch/nupin/internal/engine/pinner"
	"go.trai.ch/nupin/internal/testutil"
	"go.uber.org/mock/gomock"
)

type harness struct {
	provider  ComponentProvider
	logger    *mocks.MockLogger
	telemetry *mocks.MockTelemetry
	vertex    *mocks.MockVertex
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)

	h := &harness{
		logger:    mocks.NewMockLogger(ctrl),
		telemetry: mocks.NewMockTelemetry(ctrl),
		vertex:    mocks.NewMockVertex(ctrl),
	}
	h.vertex.EXPECT().Log(gomock.Any(), gomock.Any()).AnyTimes()
	h.telemetry.EXPECT().Close().Return(nil)

	opener := nupkg.NewOpener()
	editor := nuspec.NewEditor()
	application := app.New(
		pinner.New(opener, editor),
		mocks.NewMockPlanLoader(ctrl),
		opener,
		editor,
		h.logger,
		h.telemetry,
	)
	h.provider = func(_ context.Context) (*app.Components, func(), error) {
		return &app.Components{App: application, Logger: h.logger}, func() {}, nil
	}
	return h
}

func TestRun_Version(t *testing.T) {
	h := newHarness(t)
	stdout := new(bytes.Buffer)

	exitCode := run(context.Background(), []string{"version"}, stdout, new(bytes.Buffer), h.provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, stdout.String(), "nupin version")
}

func TestRun_Pin(t *testing.T) {
	h := newHarness(t)
	path := testutil.WriteNupkg(t, t.TempDir(), "Cake.Example.1.0.0.nupkg",
		testutil.PackageEntries(testutil.Nuspec(`      <dependency id="Cake.Core" version="1.0.0" />`)))

	h.telemetry.EXPECT().Record(gomock.Any(), path).Return(h.vertex)
	h.vertex.EXPECT().Complete(nil)
	h.logger.EXPECT().Info(gomock.Any())

	exitCode := run(context.Background(), []string{"pin", path, "Cake.Core"}, new(bytes.Buffer), new(bytes.Buffer), h.provider)
	assert.Equal(t, 0, exitCode)
	assert.Contains(t, testutil.ReadEntry(t, path, "Cake.Example.nuspec"), `version="[1.0.0]"`)
}

func TestRun_NoMatchSucceeds(t *testing.T) {
	h := newHarness(t)
	path := testutil.WriteNupkg(t, t.TempDir(), "Cake.Example.1.0.0.nupkg",
		testutil.PackageEntries(testutil.Nuspec(`      <dependency id="Cake.Core" version="1.0.0" />`)))

	h.telemetry.EXPECT().Record(gomock.Any(), path).Return(h.vertex)
	h.vertex.EXPECT().Cached()
	h.vertex.EXPECT().Complete(nil)

	exitCode := run(context.Background(), []string{"pin", path, "Cake.Other"}, new(bytes.Buffer), new(bytes.Buffer), h.provider)
	assert.Equal(t, 0, exitCode)
}

func TestRun_ExecutionError(t *testing.T) {
	h := newHarness(t)
	path := filepath.Join(t.TempDir(), "Missing.nupkg")

	h.telemetry.EXPECT().Record(gomock.Any(), path).Return(h.vertex)
	h.vertex.EXPECT().Complete(gomock.Any())
	h.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"pin", path, "Cake.Core"}, new(bytes.Buffer), new(bytes.Buffer), h.provider)
	assert.Equal(t, 1, exitCode)
}

func TestRun_UsageError(t *testing.T) {
	h := newHarness(t)
	h.logger.EXPECT().Error(gomock.Any()).Times(1)

	exitCode := run(context.Background(), []string{"pin"}, new(bytes.Buffer), new(bytes.Buffer), h.provider)
	assert.Equal(t, 1, exitCode)
}

func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, new(bytes.Buffer), stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}
