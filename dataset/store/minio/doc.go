// Package minio implements store.Store for MinIO and other S3-compatible
// object storage services.
//
//	client, _ := minio.New("play.min.io", &minio.Options{...})
//	st := miniostore.NewStore(client, "panels", "hap/")
package minio
