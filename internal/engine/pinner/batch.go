package pinner

import (
	"context"
	"path/filepath"
	"runtime"

	"go.trai.ch/nupin/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// Observer is called when PinAll starts on a package. The returned function
// receives the outcome for that package. Observers run on worker goroutines.
type Observer func(path string) func(*domain.PinResult, error)

// PinAll pins every request, processing distinct packages concurrently.
//
// Requests naming the same file are merged so that each archive is opened and saved by
// exactly one goroutine. Results are returned in order of each package's first request.
// The first failure cancels packages that have not started yet; packages already being
// rewritten run to completion.
func (p *Pinner) PinAll(
	ctx context.Context,
	requests []domain.PinRequest,
	observers ...Observer,
) ([]*domain.PinResult, error) {
	groups := mergeRequests(requests)
	results := make([]*domain.PinResult, len(groups))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, req := range groups {
		g.Go(func() error {
			done := notify(observers, req.Package)
			res, err := p.PinMany(ctx, req.Package, req.Dependencies...)
			done(res, err)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// mergeRequests groups requests by the file they name, concatenating their dependency ids.
func mergeRequests(requests []domain.PinRequest) []domain.PinRequest {
	index := make(map[string]int, len(requests))
	var groups []domain.PinRequest

	for _, req := range requests {
		key := fileKey(req.Package)
		if i, ok := index[key]; ok {
			groups[i].Dependencies = append(groups[i].Dependencies, req.Dependencies...)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, domain.PinRequest{
			Package:      req.Package,
			Dependencies: append([]string(nil), req.Dependencies...),
		})
	}
	return groups
}

func fileKey(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return filepath.Clean(path)
}

func notify(observers []Observer, path string) func(*domain.PinResult, error) {
	finishers := make([]func(*domain.PinResult, error), 0, len(observers))
	for _, o := range observers {
		finishers = append(finishers, o(path))
	}
	return func(res *domain.PinResult, err error) {
		for _, f := range finishers {
			f(res, err)
		}
	}
}
