package backup

import (
	"bufio"
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
	"github.com/jordanlanch/salesagent/pkg/product"
	"github.com/jordanlanch/salesagent/pkg/testdata"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	class   map[string]types.StorageClass
	old     []types.Object
	deleted []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{objects: map[string][]byte{}, class: map[string]types.StorageClass{}}
}

func (f *fakeStore) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	body, err := io.ReadAll(in.Body)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[aws.ToString(in.Key)] = body
	f.class[aws.ToString(in.Key)] = in.StorageClass
	return &s3.PutObjectOutput{}, nil
}

func (f *fakeStore) ListObjectsV2(_ context.Context, _ *s3.ListObjectsV2Input, _ ...func(*s3.Options)) (*s3.ListObjectsV2Output, error) {
	return &s3.ListObjectsV2Output{Contents: f.old}, nil
}

func (f *fakeStore) DeleteObject(_ context.Context, in *s3.DeleteObjectInput, _ ...func(*s3.Options)) (*s3.DeleteObjectOutput, error) {
	f.deleted = append(f.deleted, aws.ToString(in.Key))
	return &s3.DeleteObjectOutput{}, nil
}

func countLines(t *testing.T, data []byte) int {
	t.Helper()
	gz, err := gzip.NewReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer gz.Close()
	n := 0
	sc := bufio.NewScanner(gz)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)
	for sc.Scan() {
		n++
	}
	require.NoError(t, sc.Err())
	return n
}

func seed(t *testing.T) *leads.Service {
	t.Helper()
	client := testdata.OpenDB(t)
	store := leads.NewService(client, nil, logger.Nop(), nil)
	ctx := context.Background()
	for i := 0; i < 3; i++ {
		l := testdata.NewLead(t, client)
		_, err := store.AppendMessage(ctx, leads.Message{
			LeadID:    l.ID,
			Product:   product.Occhiale,
			Direction: conversation.DirectionInbound,
			Content:   "oi",
		})
		require.NoError(t, err)
	}
	return store
}

func TestRun_UploadsToS3(t *testing.T) {
	store := seed(t)
	s3fake := newFakeStore()
	at := time.Date(2026, 5, 10, 3, 0, 0, 0, time.UTC)
	s3fake.old = []types.Object{
		{Key: aws.String("backups/2026-03-01/030000/leads.jsonl.gz"), LastModified: aws.Time(at.AddDate(0, -2, 0))},
		{Key: aws.String("backups/2026-05-09/030000/leads.jsonl.gz"), LastModified: aws.Time(at.AddDate(0, 0, -1))},
	}

	svc, err := NewService(store.Client(), s3fake, Config{S3Bucket: "salesagent", RetentionDays: 30}, logger.Nop())
	require.NoError(t, err)

	res, err := svc.Run(context.Background(), at)
	require.NoError(t, err)
	assert.True(t, res.UploadedToS3)
	assert.Equal(t, 3, res.Leads)
	assert.Equal(t, 3, res.Conversations)
	assert.Equal(t, 1, res.Deleted)
	assert.Equal(t, []string{"backups/2026-03-01/030000/leads.jsonl.gz"}, s3fake.deleted)

	leadKey := "backups/2026-05-10/030000/leads.jsonl.gz"
	convKey := "backups/2026-05-10/030000/conversations.jsonl.gz"
	assert.Equal(t, []string{leadKey, convKey}, res.Keys)
	assert.Equal(t, 3, countLines(t, s3fake.objects[leadKey]))
	assert.Equal(t, 3, countLines(t, s3fake.objects[convKey]))
	assert.Equal(t, types.StorageClassStandardIa, s3fake.class[leadKey])
	assert.Positive(t, res.Bytes)
}

func TestRun_LocalDirectory(t *testing.T) {
	store := seed(t)
	dir := t.TempDir()

	svc, err := NewService(store.Client(), nil, Config{LocalDir: dir}, logger.Nop())
	require.NoError(t, err)

	res, err := svc.Run(context.Background(), time.Date(2026, 5, 10, 3, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.False(t, res.UploadedToS3)

	data, err := os.ReadFile(filepath.Join(dir, "backups", "2026-05-10", "030000", "leads.jsonl.gz"))
	require.NoError(t, err)
	assert.Equal(t, 3, countLines(t, data))
}

func TestNewService_RequiresDestination(t *testing.T) {
	_, err := NewService(nil, nil, Config{}, logger.Nop())
	assert.Error(t, err)
}
