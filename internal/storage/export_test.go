package storage

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUploader struct {
	buckets []string
	objects map[string][]byte
	failOn  string
}

func (f *fakeUploader) EnsureBucket(_ context.Context, bucket, _ string) error {
	f.buckets = append(f.buckets, bucket)
	return nil
}

func (f *fakeUploader) PutHTML(_ context.Context, bucket, key string, data []byte) error {
	if key == f.failOn {
		return errors.New("access denied")
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[bucket+"/"+key] = data
	return nil
}

func TestUploadExport(t *testing.T) {
	up := &fakeUploader{}
	at := time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

	written, err := UploadExport(context.Background(), up, "maps", "ISU campus map", []byte("<html></html>"), at)
	require.NoError(t, err)

	assert.Equal(t, []string{"maps"}, up.buckets)
	assert.Equal(t, []string{
		"exports/isu-campus-map/20250901-120000.html",
		"exports/isu-campus-map/latest.html",
	}, written)
	assert.Equal(t, []byte("<html></html>"), up.objects["maps/exports/isu-campus-map/latest.html"])
}

func TestUploadExport_PartialFailure(t *testing.T) {
	up := &fakeUploader{failOn: "exports/isu-campus-map/latest.html"}

	written, err := UploadExport(context.Background(), up, "maps", "ISU campus map", []byte("x"), time.Now())
	require.Error(t, err)
	assert.Len(t, written, 1)
}

func TestNewS3Service_RequiresCredentials(t *testing.T) {
	_, err := NewS3Service(S3Config{Endpoint: "localhost:9000"}, nil)
	require.Error(t, err)
}
