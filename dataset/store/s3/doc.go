// Package s3 implements store.Store on Amazon S3.
//
// Reads stream object bodies; writes go through the SDK upload manager so
// large imputed panels become multipart uploads. An optional client-side
// rate limit keeps batch fetches inside account request quotas.
package s3
