// Package catalog implements the catalog query subsystem: access-path
// selection over the music table and presigned-URL rewriting of externally
// hosted cover images.
package catalog

import (
	"context"
	"fmt"

	"github.com/okunev/musicbox/internal/logging"
)

// ImageResolver rewrites recognized external image references into
// presigned URLs. Unrecognized references report ok=false.
type ImageResolver interface {
	ResolveURL(ctx context.Context, raw string) (string, bool)
}

type Service struct {
	repo     Repository
	resolver ImageResolver
	logger   logging.Logger
}

func NewService(repo Repository, resolver ImageResolver, logger logging.Logger) *Service {
	return &Service{
		repo:     repo,
		resolver: resolver,
		logger:   logger.With("module", "catalog"),
	}
}

// Search picks the cheapest viable access path for the filter set and
// executes it, then swaps recognized external image references for
// presigned URLs. Result order is unspecified. Store failures surface as
// errors with no partial results.
func (s *Service) Search(ctx context.Context, f Filter) ([]Item, error) {
	plan, err := PlanFor(f)
	if err != nil {
		return nil, err
	}

	s.logger.Info(ctx, "executing catalog query", "plan", plan.Kind.String())

	var items []Item
	if plan.Kind == PlanScan {
		items, err = s.repo.ScanFilter(ctx, plan.Filter)
	} else {
		items, err = s.repo.QueryIndex(ctx, plan)
	}
	if err != nil {
		return nil, fmt.Errorf("error executing catalog query: %w", err)
	}

	for i := range items {
		if url, ok := s.resolver.ResolveURL(ctx, items[i].ImgURL); ok {
			items[i].ImgURL = url
		}
	}

	return items, nil
}
