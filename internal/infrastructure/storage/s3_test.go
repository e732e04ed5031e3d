package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"careergps/internal/config"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePutter struct {
	failures int
	calls    int
	inputs   []*s3.PutObjectInput
	bodies   []string
}

func (f *fakePutter) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.calls++
	if f.calls <= f.failures {
		return nil, errors.New("transient")
	}
	b, _ := io.ReadAll(in.Body)
	f.inputs = append(f.inputs, in)
	f.bodies = append(f.bodies, string(b))
	return &s3.PutObjectOutput{}, nil
}

func newArchive(p ObjectPutter) *ResumeArchive {
	a := NewResumeArchiveWithClient(p, "resumes-bucket", "resumes")
	a.now = func() time.Time { return time.Date(2025, 3, 9, 12, 0, 0, 0, time.UTC) }
	a.wait = func(int) time.Duration { return time.Millisecond }
	return a
}

func TestPutWritesObject(t *testing.T) {
	p := &fakePutter{}
	a := newArchive(p)

	key, err := a.Put(context.Background(), "My CV.PDF", "application/pdf", []byte("%PDF-1.4"))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(key, "resumes/2025/03/09/"), key)
	assert.True(t, strings.HasSuffix(key, ".pdf"), key)
	require.Len(t, p.inputs, 1)
	assert.Equal(t, "resumes-bucket", *p.inputs[0].Bucket)
	assert.Equal(t, key, *p.inputs[0].Key)
	assert.Equal(t, "application/pdf", *p.inputs[0].ContentType)
	assert.Equal(t, int64(8), *p.inputs[0].ContentLength)
	assert.Equal(t, "%PDF-1.4", p.bodies[0])
}

func TestPutRetriesTransientFailures(t *testing.T) {
	p := &fakePutter{failures: 2}
	_, err := newArchive(p).Put(context.Background(), "cv.txt", "text/plain", []byte("go"))
	require.NoError(t, err)
	assert.Equal(t, 3, p.calls)
}

func TestPutGivesUp(t *testing.T) {
	p := &fakePutter{failures: 10}
	_, err := newArchive(p).Put(context.Background(), "cv.txt", "text/plain", []byte("go"))
	assert.ErrorContains(t, err, "after 3 attempts")
	assert.Equal(t, putAttempts, p.calls)
}

func TestPutStopsOnCancel(t *testing.T) {
	p := &fakePutter{failures: 10}
	a := newArchive(p)
	a.wait = func(int) time.Duration { return time.Hour }

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := a.Put(ctx, "cv.txt", "text/plain", []byte("go"))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, p.calls)
}

func TestNewResumeArchiveRequiresBucket(t *testing.T) {
	_, err := NewResumeArchive(context.Background(), config.StorageConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestNewResumeArchiveWithStaticCredentials(t *testing.T) {
	a, err := NewResumeArchive(context.Background(), config.StorageConfig{
		Bucket:    "b",
		Region:    "auto",
		Endpoint:  "http://127.0.0.1:9000",
		AccessKey: "key",
		SecretKey: "secret",
		Prefix:    "resumes",
	})
	require.NoError(t, err)
	assert.Equal(t, "b", a.bucket)
}
