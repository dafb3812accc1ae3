// Package store abstracts where dataset files live.
//
// A Store hands out sequential read and write streams for named objects:
// reference panels pulled from object storage, imputed output pushed back.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - Local: local filesystem rooted at a directory
//   - s3.Store: Amazon S3 with managed multipart up/downloads
//   - minio.Store: MinIO and other S3-compatible services
//
// FetchMany mirrors a set of objects into a local directory with bounded
// parallelism, which is the usual prelude to dataset.ReadFile.
package store
