// Package backup ships periodic JSON snapshots of every collection to an
// S3-compatible bucket.
package backup

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	appconfig "rms-backend/internal/config"
	"rms-backend/internal/store"
)

type Scheduler struct {
	store    store.Store
	client   *s3.Client
	bucket   string
	interval time.Duration
}

// NewScheduler builds the S3 client. Returns nil when backups are disabled
// or the client cannot be configured; callers treat nil as "no backups".
func NewScheduler(ctx context.Context, cfg *appconfig.Config, s store.Store) *Scheduler {
	if !cfg.Backup.Enabled {
		return nil
	}
	if cfg.Backup.Bucket == "" || cfg.Backup.AccessKey == "" || cfg.Backup.SecretKey == "" {
		log.Println("[Backup] Enabled but bucket or credentials missing, backups disabled")
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithRegion(cfg.Backup.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.Backup.AccessKey, cfg.Backup.SecretKey, ""),
		),
	)
	if err != nil {
		log.Printf("[Backup] Failed to configure S3 client, backups disabled: %v", err)
		return nil
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		if cfg.Backup.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Backup.Endpoint)
			o.UsePathStyle = true
		}
	})

	interval := time.Duration(cfg.Backup.IntervalMinutes) * time.Minute
	if interval <= 0 {
		interval = time.Hour
	}

	return &Scheduler{store: s, client: client, bucket: cfg.Backup.Bucket, interval: interval}
}

// Run uploads a snapshot immediately and then on every tick until ctx is
// cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	log.Printf("[Backup] Snapshot scheduler started (every %s)", s.interval)

	if err := s.Snapshot(ctx); err != nil {
		log.Printf("[Backup] Initial snapshot failed: %v", err)
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := s.Snapshot(ctx); err != nil {
				log.Printf("[Backup] Snapshot failed: %v", err)
			}
		}
	}
}

// Snapshot walks every collection and uploads one JSON document keyed by
// timestamp.
func (s *Scheduler) Snapshot(ctx context.Context) error {
	snapshot := make(map[string]json.RawMessage, len(store.All))
	for _, c := range store.All {
		var raw json.RawMessage
		ok, err := s.store.Get(ctx, c, &raw)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", c, err)
		}
		if !ok {
			continue
		}
		snapshot[string(c)] = raw
	}

	body, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot: %w", err)
	}

	key := fmt.Sprintf("snapshots/%s.json", time.Now().UTC().Format("2006-01-02T15-04-05Z"))
	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("application/json"),
	})
	if err != nil {
		return fmt.Errorf("failed to upload snapshot %s: %w", key, err)
	}

	log.Printf("[Backup] Uploaded snapshot %s (%d collections, %d bytes)", key, len(snapshot), len(body))
	return nil
}
