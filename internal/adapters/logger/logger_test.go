package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nupin/internal/adapters/logger"
)

func TestLogger_Levels(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		name string
		log  func(l *logger.Logger)
		want string
	}{
		{
			name: "info",
			log:  func(l *logger.Logger) { l.Info("pinned Cake.Core to [1.0.0]") },
			want: "pinned Cake.Core to [1.0.0]\n",
		},
		{
			name: "warn",
			log:  func(l *logger.Logger) { l.Warn("package is signed") },
			want: "! package is signed\n",
		},
		{
			name: "error",
			log:  func(l *logger.Logger) { l.Error(os.ErrPermission) },
			want: "✗ Error: permission denied\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(logger.NewWithWriter(&buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestLogger_ErrorNil(t *testing.T) {
	var buf bytes.Buffer
	logger.NewWithWriter(&buf).Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	lg := logger.NewWithWriter(&buf)
	lg.SetJSON(true)

	lg.Error(errors.New("boom"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "ERROR", record["level"])
	assert.Equal(t, "boom", record["error"])
}

func TestLogger_SetOutput(t *testing.T) {
	var first, second bytes.Buffer
	lg := logger.NewWithWriter(&first)

	lg.Info("one")
	lg.SetOutput(&second)
	lg.Info("two")

	assert.Contains(t, first.String(), "one")
	assert.NotContains(t, first.String(), "two")
	assert.Contains(t, second.String(), "two")
}

type lockedBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *lockedBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func TestLogger_ConcurrentUse(t *testing.T) {
	out := &lockedBuffer{}
	lg := logger.NewWithWriter(out)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			lg.Warn("boom")
			lg.SetOutput(out)
		}()
	}
	wg.Wait()

	out.mu.Lock()
	defer out.mu.Unlock()
	assert.Contains(t, out.buf.String(), "boom")
}

func TestCollectMessages(t *testing.T) {
	sentinel := errors.New("package not found")
	cause := errors.New("stat A.nupkg: no such file or directory")

	tests := []struct {
		name string
		err  error
		want []string
	}{
		{name: "nil", err: nil, want: nil},
		{name: "plain", err: sentinel, want: []string{"package not found"}},
		{
			name: "joined",
			err:  errors.Join(sentinel, cause),
			want: []string{"package not found", "stat A.nupkg: no such file or directory"},
		},
		{
			name: "wrapped by fmt keeps full text",
			err:  fmt.Errorf("outer: %w", sentinel),
			want: []string{"outer: package not found"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectMessages(tt.err))
		})
	}
}

func TestFormatChain(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     string
	}{
		{name: "empty", messages: nil, want: ""},
		{name: "single", messages: []string{"boom"}, want: "Error: boom"},
		{
			name:     "causes",
			messages: []string{"outer", "middle", "root"},
			want:     "Error: outer\n\n  Caused by:\n    → middle\n    → root",
		},
		{
			name:     "multiline",
			messages: []string{"line1\nline2", "cause1\ncause2"},
			want:     "Error: line1\n       line2\n\n  Caused by:\n    → cause1\n      cause2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatChain(tt.messages))
		})
	}
}

func TestNew(t *testing.T) {
	assert.NotNil(t, logger.New())
}
