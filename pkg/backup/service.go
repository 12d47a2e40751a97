// Package backup exports leads and conversations as gzip JSON lines to S3.
package backup

import (
	"bytes"
	"compress/gzip"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/jordanlanch/salesagent/ent"
	"github.com/jordanlanch/salesagent/ent/conversation"
	"github.com/jordanlanch/salesagent/ent/lead"
	"github.com/jordanlanch/salesagent/pkg/leads"
	"github.com/jordanlanch/salesagent/pkg/logger"
)

const (
	prefix   = "backups/"
	pageSize = 500
)

// ObjectStore is the part of the S3 API the backup uses.
type ObjectStore interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, opts ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	ListObjectsV2(ctx context.Context, in *s3.ListObjectsV2Input, opts ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
	DeleteObject(ctx context.Context, in *s3.DeleteObjectInput, opts ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// Config holds backup configuration
type Config struct {
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	AWSRegion          string
	S3Bucket           string
	// Endpoint points at an S3-compatible store; empty uses AWS.
	Endpoint string
	// LocalDir receives the files when no bucket is configured.
	LocalDir      string
	RetentionDays int
}

// Service handles database backups
type Service struct {
	db            *ent.Client
	store         ObjectStore
	bucket        string
	localDir      string
	retentionDays int
	log           logger.Logger
}

// Result contains backup operation results
type Result struct {
	Keys          []string      `json:"keys"`
	Leads         int           `json:"leads"`
	Conversations int           `json:"conversations"`
	Bytes         int64         `json:"bytes"`
	Duration      time.Duration `json:"duration"`
	UploadedToS3  bool          `json:"uploaded_to_s3"`
	Deleted       int           `json:"deleted"`
}

// NewS3Client builds an S3 client from static credentials.
func NewS3Client(ctx context.Context, cfg Config) (*s3.Client, error) {
	awsCfg, err := config.LoadDefaultConfig(ctx,
		config.WithRegion(cfg.AWSRegion),
		config.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.AWSAccessKeyID,
			cfg.AWSSecretAccessKey,
			"",
		)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	}), nil
}

// NewService creates a backup service. store may be nil when only local
// backups are wanted.
func NewService(db *ent.Client, store ObjectStore, cfg Config, log logger.Logger) (*Service, error) {
	if store == nil || cfg.S3Bucket == "" {
		if cfg.LocalDir == "" {
			return nil, fmt.Errorf("backup needs an S3 bucket or a local directory")
		}
		if err := os.MkdirAll(cfg.LocalDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create backup directory: %w", err)
		}
		store = nil
	}
	return &Service{
		db:            db,
		store:         store,
		bucket:        cfg.S3Bucket,
		localDir:      cfg.LocalDir,
		retentionDays: cfg.RetentionDays,
		log:           log,
	}, nil
}

// Run exports every lead and conversation under backups/<date>/.
func (s *Service) Run(ctx context.Context, at time.Time) (*Result, error) {
	start := time.Now()
	stamp := at.UTC().Format("2006-01-02/150405")
	res := &Result{UploadedToS3: s.store != nil}

	s.log.Info("🔄 Starting backup", "stamp", stamp)

	leadFile, n, err := s.dumpLeads(ctx)
	if err != nil {
		return nil, err
	}
	res.Leads = n
	if err := s.write(ctx, prefix+stamp+"/leads.jsonl.gz", leadFile, res); err != nil {
		return nil, err
	}

	convFile, n, err := s.dumpConversations(ctx)
	if err != nil {
		return nil, err
	}
	res.Conversations = n
	if err := s.write(ctx, prefix+stamp+"/conversations.jsonl.gz", convFile, res); err != nil {
		return nil, err
	}

	if s.store != nil {
		deleted, err := s.cleanupOldBackups(ctx, at)
		if err != nil {
			s.log.Warn("⚠️ Failed to cleanup old backups", "error", err)
		}
		res.Deleted = deleted
	}

	res.Duration = time.Since(start)
	s.log.Info("✅ Backup completed", "leads", res.Leads, "conversations", res.Conversations,
		"bytes", res.Bytes, "duration", res.Duration)
	return res, nil
}

func (s *Service) dumpLeads(ctx context.Context) (*bytes.Buffer, int, error) {
	w := newJSONL()
	for offset := 0; ; offset += pageSize {
		page, err := s.db.Lead.Query().Order(ent.Asc(lead.FieldID)).Offset(offset).Limit(pageSize).All(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read leads: %w", err)
		}
		for _, l := range page {
			if err := w.add(leads.ToLeadResponse(l)); err != nil {
				return nil, 0, err
			}
		}
		if len(page) < pageSize {
			break
		}
	}
	return w.close()
}

func (s *Service) dumpConversations(ctx context.Context) (*bytes.Buffer, int, error) {
	w := newJSONL()
	for offset := 0; ; offset += pageSize {
		page, err := s.db.Conversation.Query().Order(ent.Asc(conversation.FieldID)).Offset(offset).Limit(pageSize).All(ctx)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to read conversations: %w", err)
		}
		for _, c := range page {
			if err := w.add(leads.ToConversationResponse(c)); err != nil {
				return nil, 0, err
			}
		}
		if len(page) < pageSize {
			break
		}
	}
	return w.close()
}

func (s *Service) write(ctx context.Context, key string, body *bytes.Buffer, res *Result) error {
	size := int64(body.Len())
	if s.store == nil {
		path := filepath.Join(s.localDir, filepath.FromSlash(key))
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("failed to create backup directory: %w", err)
		}
		if err := os.WriteFile(path, body.Bytes(), 0o600); err != nil {
			return fmt.Errorf("failed to write backup file: %w", err)
		}
	} else {
		_, err := s.store.PutObject(ctx, &s3.PutObjectInput{
			Bucket:          aws.String(s.bucket),
			Key:             aws.String(key),
			Body:            bytes.NewReader(body.Bytes()),
			ContentType:     aws.String("application/x-ndjson"),
			ContentEncoding: aws.String("gzip"),
			StorageClass:    types.StorageClassStandardIa,
		})
		if err != nil {
			return fmt.Errorf("failed to upload to S3: %w", err)
		}
	}
	res.Keys = append(res.Keys, key)
	res.Bytes += size
	return nil
}

// cleanupOldBackups deletes backups older than retention period
func (s *Service) cleanupOldBackups(ctx context.Context, now time.Time) (int, error) {
	if s.retentionDays <= 0 {
		return 0, nil
	}
	cutoff := now.UTC().AddDate(0, 0, -s.retentionDays)

	result, err := s.store.ListObjectsV2(ctx, &s3.ListObjectsV2Input{
		Bucket: aws.String(s.bucket),
		Prefix: aws.String(prefix),
	})
	if err != nil {
		return 0, fmt.Errorf("failed to list S3 objects: %w", err)
	}

	deleted := 0
	for _, obj := range result.Contents {
		if obj.LastModified == nil || !obj.LastModified.Before(cutoff) {
			continue
		}
		if _, err := s.store.DeleteObject(ctx, &s3.DeleteObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    obj.Key,
		}); err != nil {
			s.log.Warn("⚠️ Failed to delete old backup", "key", aws.ToString(obj.Key), "error", err)
			continue
		}
		deleted++
	}
	if deleted > 0 {
		s.log.Info("🗑️ Cleaned up old backups", "deleted", deleted, "retention_days", s.retentionDays)
	}
	return deleted, nil
}

type jsonl struct {
	buf *bytes.Buffer
	gz  *gzip.Writer
	enc *json.Encoder
	n   int
}

func newJSONL() *jsonl {
	buf := &bytes.Buffer{}
	gz := gzip.NewWriter(buf)
	return &jsonl{buf: buf, gz: gz, enc: json.NewEncoder(gz)}
}

func (j *jsonl) add(v any) error {
	if err := j.enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode backup row: %w", err)
	}
	j.n++
	return nil
}

func (j *jsonl) close() (*bytes.Buffer, int, error) {
	if err := j.gz.Close(); err != nil {
		return nil, 0, fmt.Errorf("failed to close gzip writer: %w", err)
	}
	return j.buf, j.n, nil
}
