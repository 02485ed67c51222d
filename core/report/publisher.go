package report

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"time"

	"skin-catalog/core/catalog"
	"skin-catalog/core/reconcile"
	"skin-catalog/core/storage"

	"github.com/gofrs/flock"
	"go.uber.org/zap"
)

// ErrLocked means another run holds the lock for the same report file.
var ErrLocked = errors.New("report is locked by another run")

// Outcome describes what a publish did.
type Outcome struct {
	// Path is the written report file, empty when nothing was written.
	Path string
	// ObjectKey is the uploaded object, empty when uploads are off.
	ObjectKey string
}

// Publisher writes a plan's new entries to disk and optionally uploads them.
type Publisher struct {
	client storage.Client
	cfg    storage.Config
	logger *zap.Logger
	now    func() time.Time
}

// NewPublisher creates a publisher. A nil client disables uploads.
func NewPublisher(client storage.Client, cfg storage.Config, logger *zap.Logger) *Publisher {
	return &Publisher{client: client, cfg: cfg, logger: logger, now: time.Now}
}

// Publish writes the report to output and uploads it when storage is configured.
// Nothing is written for an empty plan. output never replaces source.
func (p *Publisher) Publish(ctx context.Context, output, source string, plan *reconcile.Plan) (*Outcome, error) {
	out := &Outcome{}
	if plan.Empty() {
		p.logger.Info("No new skins, report not written")
		return out, nil
	}

	if err := os.MkdirAll(filepath.Dir(output), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	lock := flock.New(output + ".lock")
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire report lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrLocked, output)
	}
	defer func() {
		if err := lock.Unlock(); err != nil {
			p.logger.Warn("Failed to release report lock", zap.Error(err))
		}
	}()

	entries := plan.Entries()
	if err := catalog.WriteFile(output, source, entries); err != nil {
		return nil, err
	}
	out.Path = output
	p.logger.Info("Report written", zap.String("path", output), zap.Int("entries", len(entries)))

	if p.client == nil {
		return out, nil
	}

	key, err := p.upload(ctx, entries)
	if err != nil {
		return out, err
	}
	out.ObjectKey = key
	return out, nil
}

func (p *Publisher) upload(ctx context.Context, entries []catalog.Entry) (string, error) {
	data, err := catalog.Encode(entries)
	if err != nil {
		return "", err
	}
	if err := storage.EnsureBucket(ctx, p.client, p.cfg.Bucket, p.cfg.Region); err != nil {
		return "", err
	}

	key := ObjectKey(p.cfg.Prefix, p.now())
	if _, err := storage.PutJSON(ctx, p.client, p.cfg.Bucket, key, data); err != nil {
		return "", err
	}
	p.logger.Info("Report uploaded", zap.String("bucket", p.cfg.Bucket), zap.String("key", key))
	return key, nil
}

// ObjectKey names an uploaded report: <prefix>new_skins-<UTC timestamp>.json.
func ObjectKey(prefix string, at time.Time) string {
	name := "new_skins-" + at.UTC().Format("20060102T150405Z") + ".json"
	if prefix == "" {
		return name
	}
	return path.Join(prefix, name)
}
