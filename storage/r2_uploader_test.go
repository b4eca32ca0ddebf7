package storage

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeObjectAPI struct {
	putFn func(ctx context.Context, params *s3.PutObjectInput) (*s3.PutObjectOutput, error)
}

func (f *fakeObjectAPI) PutObject(ctx context.Context, params *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	return f.putFn(ctx, params)
}

func TestNewR2Uploader_RequiresAllFields(t *testing.T) {
	_, err := NewR2Uploader(context.Background(), R2Config{AccountID: "acc", BucketName: "b"})
	assert.Error(t, err)
}

func TestR2Uploader_Upload(t *testing.T) {
	var got *s3.PutObjectInput
	var body string
	api := &fakeObjectAPI{
		putFn: func(_ context.Context, params *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
			got = params
			b, err := io.ReadAll(params.Body)
			require.NoError(t, err)
			body = string(b)
			return &s3.PutObjectOutput{ETag: aws.String(`"abc123"`)}, nil
		},
	}
	u, err := newR2Uploader(api, "standings", "https://files.example.org/chess")
	require.NoError(t, err)

	res, err := u.Upload(context.Background(), "standings/t1/x.xlsx", "application/octet-stream", strings.NewReader("data"))
	require.NoError(t, err)

	assert.Equal(t, "standings", aws.ToString(got.Bucket))
	assert.Equal(t, "standings/t1/x.xlsx", aws.ToString(got.Key))
	assert.Equal(t, "application/octet-stream", aws.ToString(got.ContentType))
	assert.Equal(t, "data", body)
	assert.Equal(t, "abc123", res.ETag)
	assert.Equal(t, "https://files.example.org/chess/standings/t1/x.xlsx", res.Location)
}

func TestR2Uploader_UploadError(t *testing.T) {
	api := &fakeObjectAPI{
		putFn: func(context.Context, *s3.PutObjectInput) (*s3.PutObjectOutput, error) {
			return nil, errors.New("boom")
		},
	}
	u, err := newR2Uploader(api, "b", "https://files.example.org")
	require.NoError(t, err)

	_, err = u.Upload(context.Background(), "k", "text/plain", strings.NewReader(""))
	assert.ErrorContains(t, err, "boom")
}

func TestR2Uploader_PublicURL(t *testing.T) {
	u, err := newR2Uploader(&fakeObjectAPI{}, "b", "https://files.example.org/")
	require.NoError(t, err)

	assert.Equal(t, "https://files.example.org/a/b.xlsx", u.publicURL("/a/b.xlsx"))
	assert.Equal(t, "", u.publicURL(""))
}
