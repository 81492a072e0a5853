// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small Client interface the ledger needs:
// the external tabular sources are exported as CSV objects into a bucket and
// read from there by core/source. Both AWS S3 and self-hosted MinIO work.
//
// The Client interface keeps storage interactions mockable in unit tests
// (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - GetObject: Retrieves content as a stream.
//   - StatObject: Checks an object exists without reading it.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	if err := storage.Ping(ctx, client, config.Bucket); err != nil {
//		// bucket unreachable or missing
//	}
package storage
