package store

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/imputego"
)

type fetchOptions struct {
	concurrency int
	logger      *imputego.Logger
}

// FetchOption configures FetchMany.
type FetchOption func(*fetchOptions)

// WithConcurrency bounds the number of parallel downloads (default 8).
func WithConcurrency(n int) FetchOption {
	return func(o *fetchOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}

// WithLogger sets the logger used for per-object fetch reporting.
func WithLogger(l *imputego.Logger) FetchOption {
	return func(o *fetchOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

// FetchMany mirrors the named objects from s into dir, preserving names as
// relative paths. Downloads run in parallel with bounded concurrency; the
// first failure cancels the remaining ones.
func FetchMany(ctx context.Context, s Store, dir string, names []string, opts ...FetchOption) error {
	o := fetchOptions{
		concurrency: 8,
		logger:      imputego.NoopLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for _, name := range names {
		name := name
		g.Go(func() error {
			n, err := fetchOne(ctx, s, dir, name)
			o.logger.LogFetch(ctx, name, n, err)
			return err
		})
	}

	return g.Wait()
}

func fetchOne(ctx context.Context, s Store, dir, name string) (int64, error) {
	rc, err := s.Open(ctx, name)
	if err != nil {
		return 0, err
	}
	defer rc.Close()

	path := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return 0, err
	}

	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}

	n, err := io.Copy(f, rc)
	cerr := f.Close()
	if err != nil {
		return n, err
	}
	return n, cerr
}
