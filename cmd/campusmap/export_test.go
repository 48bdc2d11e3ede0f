package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"campusmap/internal/catalog"
	"campusmap/internal/config"
)

type memUploader struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memUploader) EnsureBucket(context.Context, string, string) error { return nil }

func (m *memUploader) PutHTML(_ context.Context, bucket, key string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.objects == nil {
		m.objects = map[string][]byte{}
	}
	m.objects[bucket+"/"+key] = data
	return nil
}

func TestRunExport(t *testing.T) {
	logger = zap.NewNop()
	repo := catalog.NewMemoryRepository(catalog.Seed())
	c := config.DefaultConfig()

	t.Run("file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "map.html")
		require.NoError(t, runExport(context.Background(), repo, c, nil, out, nil))

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), "<title>ISU campus map</title>")
		assert.Contains(t, string(data), "Scientific Library")
	})

	t.Run("stdout", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, runExport(context.Background(), repo, c, nil, "-", &buf))
		assert.Contains(t, buf.String(), "ISU Canteen")
	})

	t.Run("upload", func(t *testing.T) {
		up := &memUploader{}
		out := filepath.Join(t.TempDir(), "map.html")
		require.NoError(t, runExport(context.Background(), repo, c, up, out, nil))

		written, err := os.ReadFile(out)
		require.NoError(t, err)
		require.Len(t, up.objects, 2)
		for key, data := range up.objects {
			assert.Contains(t, key, c.S3.Bucket+"/exports/")
			assert.Equal(t, written, data)
		}
	})
}
