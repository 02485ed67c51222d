// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind a small Client interface used to publish
// reconciliation reports. Both AWS S3 and self-hosted MinIO instances are supported.
//
// # Operations
//
//   - BucketExists / MakeBucket: EnsureBucket creates the report bucket on first use.
//   - PutObject: PutJSON uploads an encoded report.
//   - GetObject: GetAll reads a previously uploaded report back.
//
// The interface is mocked in core/storage/mocks for unit tests.
//
// # Usage
//
//	client, err := storage.NewClient(cfg)
//	if err := storage.EnsureBucket(ctx, client, cfg.Bucket, cfg.Region); err != nil {
//	    return err
//	}
//	_, err = storage.PutJSON(ctx, client, cfg.Bucket, "reports/new_skins.json", data)
package storage
