package output

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readmecraft/readmecraft/internal/errors"
)

type fakeS3 struct {
	input *s3.PutObjectInput
	body  string
	err   error
}

func (f *fakeS3) PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.input = params
	data, err := io.ReadAll(params.Body)
	if err != nil {
		return nil, err
	}
	f.body = string(data)
	return &s3.PutObjectOutput{}, nil
}

func TestWrite_Stdout(t *testing.T) {
	for _, dest := range []string{"", "-"} {
		var buf bytes.Buffer
		w := New(&buf)
		require.NoError(t, w.Write(context.Background(), dest, "# hello\n"))
		assert.Equal(t, "# hello\n", buf.String())
	}
}

func TestWrite_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	w := New(io.Discard)
	require.NoError(t, w.Write(context.Background(), path, "# new\n"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "# new\n", string(data))
}

func TestWrite_FileMode(t *testing.T) {
	dir := t.TempDir()
	w := New(io.Discard)

	created := filepath.Join(dir, "README.md")
	require.NoError(t, w.Write(context.Background(), created, "# x\n"))
	info, err := os.Stat(created)
	require.NoError(t, err)
	assert.Equal(t, FileMode, info.Mode().Perm())

	existing := filepath.Join(dir, "BADGES.md")
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0600))
	require.NoError(t, os.Chmod(existing, 0640))
	require.NoError(t, w.Write(context.Background(), existing, "new"))
	info, err = os.Stat(existing)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
}

func TestWrite_FileError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "README.md")

	err := New(io.Discard).Write(context.Background(), path, "x")
	require.Error(t, err)
	assert.True(t, errors.HasCode(err, "E005"), "error = %v", err)
	assert.Contains(t, err.Error(), path)
}

func TestWrite_S3(t *testing.T) {
	fake := &fakeS3{}
	w := New(io.Discard, WithS3Client(fake))

	require.NoError(t, w.Write(context.Background(), "s3://docs/projects/README.md", "# doc\n"))
	require.NotNil(t, fake.input)
	assert.Equal(t, "docs", aws.ToString(fake.input.Bucket))
	assert.Equal(t, "projects/README.md", aws.ToString(fake.input.Key))
	assert.Equal(t, ContentType, aws.ToString(fake.input.ContentType))
	assert.Equal(t, "# doc\n", fake.body)
}

func TestWrite_S3Errors(t *testing.T) {
	tests := []struct {
		name string
		dest string
		err  error
	}{
		{"no key", "s3://bucket", nil},
		{"directory key", "s3://bucket/dir/", nil},
		{"no bucket", "s3:///key", nil},
		{"put fails", "s3://bucket/key.md", fmt.Errorf("access denied")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := New(io.Discard, WithS3Client(&fakeS3{err: tt.err}))
			err := w.Write(context.Background(), tt.dest, "x")
			require.Error(t, err)
			assert.True(t, errors.HasCode(err, "E008"), "error = %v", err)
		})
	}
}

func TestParseS3(t *testing.T) {
	bucket, key, ok := ParseS3("s3://b/k/README.md")
	assert.True(t, ok)
	assert.Equal(t, "b", bucket)
	assert.Equal(t, "k/README.md", key)

	_, _, ok = ParseS3("README.md")
	assert.False(t, ok)
}
