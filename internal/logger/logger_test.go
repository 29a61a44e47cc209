package logger

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "test.log")
	l := NewAt(path)
	l.Log("window open")
	l.Logf("solids: %d", 3)

	lines := l.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "["))
	assert.True(t, strings.HasSuffix(lines[0], "] window open"))
	assert.True(t, strings.HasSuffix(lines[1], "] solids: 3"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(lines, "\n")+"\n", string(data))
}

func TestLinesIsACopy(t *testing.T) {
	l := NewAt(filepath.Join(t.TempDir(), "a.log"))
	l.Log("x")
	lines := l.Lines()
	lines[0] = "changed"
	assert.NotEqual(t, "changed", l.Lines()[0])
}

func TestConcurrentLog(t *testing.T) {
	l := NewAt(filepath.Join(t.TempDir(), "c.log"))
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Log("line")
		}()
	}
	wg.Wait()
	assert.Len(t, l.Lines(), 8)
}
