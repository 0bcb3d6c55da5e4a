package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nupin/internal/adapters/config"
	"go.trai.ch/nupin/internal/core/domain"
	"go.trai.ch/nupin/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writePlan(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, config.DefaultFilename)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write plan file: %v", err)
	}
	return path
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte("PK"), 0o600))
}

func TestLoad_Success(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "artifacts", "B.1.0.0.nupkg"))
	touch(t, filepath.Join(tmpDir, "artifacts", "A.1.0.0.nupkg"))
	touch(t, filepath.Join(tmpDir, "artifacts", "A.1.0.0.snupkg"))
	touch(t, filepath.Join(tmpDir, "tools", "Tool.2.0.0.nupkg"))

	path := writePlan(t, tmpDir, `
version: "1"
pins:
  - package: "artifacts/*.nupkg"
    dependencies: ["Cake.Core", "Cake.Common"]
  - package: "tools/Tool.2.0.0.nupkg"
    dependencies: ["Cake.Core"]
`)

	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	requests, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []domain.PinRequest{
		{Package: filepath.Join(tmpDir, "artifacts", "A.1.0.0.nupkg"), Dependencies: []string{"Cake.Core", "Cake.Common"}},
		{Package: filepath.Join(tmpDir, "artifacts", "B.1.0.0.nupkg"), Dependencies: []string{"Cake.Core", "Cake.Common"}},
		{Package: filepath.Join(tmpDir, "tools", "Tool.2.0.0.nupkg"), Dependencies: []string{"Cake.Core"}},
	}, requests)
}

func TestLoad_SkipsDirectories(t *testing.T) {
	tmpDir := t.TempDir()
	touch(t, filepath.Join(tmpDir, "out", "A.nupkg"))
	require.NoError(t, os.MkdirAll(filepath.Join(tmpDir, "out", "weird.nupkg"), 0o750))

	path := writePlan(t, tmpDir, `
version: "1"
pins:
  - package: "out/*.nupkg"
    dependencies: ["A"]
`)

	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	requests, err := config.NewLoader(mockLogger).Load(path)
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, filepath.Join(tmpDir, "out", "A.nupkg"), requests[0].Package)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
		errContains string
	}{
		{
			name:        "invalid yaml",
			content:     "version: [",
			expectedErr: domain.ErrPlanParseFailed,
		},
		{
			name:        "unsupported version",
			content:     "version: \"2\"\npins:\n  - package: a.nupkg\n    dependencies: [A]\n",
			expectedErr: domain.ErrPlanInvalid,
			errContains: "unsupported plan version",
		},
		{
			name:        "no pins",
			content:     "version: \"1\"\n",
			expectedErr: domain.ErrPlanInvalid,
		},
		{
			name:        "missing package",
			content:     "version: \"1\"\npins:\n  - dependencies: [A]\n",
			expectedErr: domain.ErrPlanInvalid,
			errContains: "no package pattern",
		},
		{
			name:        "missing dependencies",
			content:     "version: \"1\"\npins:\n  - package: a.nupkg\n",
			expectedErr: domain.ErrPlanInvalid,
			errContains: "no dependencies",
		},
		{
			name:        "blank dependency",
			content:     "version: \"1\"\npins:\n  - package: a.nupkg\n    dependencies: [\"  \"]\n",
			expectedErr: domain.ErrPlanInvalid,
			errContains: "blank dependency",
		},
		{
			name:        "no match",
			content:     "version: \"1\"\npins:\n  - package: \"*.nupkg\"\n    dependencies: [A]\n",
			expectedErr: domain.ErrNoPackagesMatched,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockLogger := mocks.NewMockLogger(ctrl)
			mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()

			path := writePlan(t, t.TempDir(), tt.content)

			requests, err := config.NewLoader(mockLogger).Load(path)
			require.ErrorIs(t, err, tt.expectedErr)
			if tt.errContains != "" {
				require.ErrorContains(t, err, tt.errContains)
			}
			assert.Nil(t, requests)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	ctrl := gomock.NewController(t)
	loader := config.NewLoader(mocks.NewMockLogger(ctrl))

	_, err := loader.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.ErrorIs(t, err, domain.ErrPlanReadFailed)
}
