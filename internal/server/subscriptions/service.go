// Package subscriptions manages a user's saved catalog items: listing with
// freshly presigned cover URLs, adding by exact (title, year) key, and
// idempotent removal by uuid.
package subscriptions

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/okunev/musicbox/internal/common"
	"github.com/okunev/musicbox/internal/server/catalog"
	"github.com/okunev/musicbox/internal/server/images"
)

// CatalogGetter fetches a catalog item by its exact (title, year) key.
type CatalogGetter interface {
	Get(ctx context.Context, title, year string) (*catalog.Item, error)
}

// ImageResolver derives storage keys from raw references and presigns
// stored keys. Both operations report ok=false instead of failing.
type ImageResolver interface {
	DeriveKey(raw string) (images.StorageKey, bool)
	ResolveKey(ctx context.Context, key images.StorageKey) (string, bool)
}

type Service struct {
	repo     Repository
	catalog  CatalogGetter
	resolver ImageResolver
}

func NewService(repo Repository, catalogGetter CatalogGetter, resolver ImageResolver) *Service {
	return &Service{
		repo:     repo,
		catalog:  catalogGetter,
		resolver: resolver,
	}
}

// List returns the user's subscriptions ordered by title, case-insensitively.
// Rows with a stored image key get a freshly presigned URL attached; the
// key was normalized at write time, so no domain recognition happens here.
func (s *Service) List(ctx context.Context, email string) ([]Subscription, error) {
	subscriptions, err := s.repo.ListByUser(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("error listing subscriptions: %w", err)
	}

	for i := range subscriptions {
		if subscriptions[i].ImgKey == "" {
			continue
		}
		if url, ok := s.resolver.ResolveKey(ctx, subscriptions[i].ImgKey); ok {
			subscriptions[i].ImgURL = url
		}
	}

	sort.SliceStable(subscriptions, func(i, j int) bool {
		return strings.ToLower(subscriptions[i].Title) < strings.ToLower(subscriptions[j].Title)
	})

	return subscriptions, nil
}

// Add subscribes the user to the catalog item identified by the exact
// (title, year) key. The title is HTML-unescaped first, since titles may
// arrive entity-encoded. A missing item fails with common.ErrorNotFound.
// Duplicate subscriptions are not checked for; each call creates a new row
// with a fresh uuid, which is returned.
func (s *Service) Add(ctx context.Context, email, title, year string) (string, error) {
	title = html.UnescapeString(title)

	item, err := s.catalog.Get(ctx, title, year)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorNotFound
		}
		return "", fmt.Errorf("error fetching catalog item: %w", err)
	}

	subscription := &Subscription{
		UserEmail: email,
		UUID:      uuid.NewString(),
		Title:     item.Title,
		Year:      item.Year,
		Album:     item.Album,
		Artist:    item.Artist,
	}
	if key, ok := s.resolver.DeriveKey(item.ImgURL); ok {
		subscription.ImgKey = key
	}

	if err := s.repo.Put(ctx, subscription); err != nil {
		return "", fmt.Errorf("error creating subscription: %w", err)
	}
	return subscription.UUID, nil
}

// Remove deletes the subscription keyed by (email, uuid). Removing a row
// that does not exist succeeds.
func (s *Service) Remove(ctx context.Context, email, id string) error {
	if id == "" {
		return common.ErrMissingUUID
	}
	if err := s.repo.Delete(ctx, email, id); err != nil {
		return fmt.Errorf("error deleting subscription: %w", err)
	}
	return nil
}
