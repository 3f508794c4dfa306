package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okunev/musicbox/internal/common"
	"github.com/okunev/musicbox/internal/logging"
)

type fakeRepository struct {
	queriedPlan   *Plan
	scannedFilter *Filter
	items         []Item
	err           error
}

func (r *fakeRepository) Get(_ context.Context, title, year string) (*Item, error) {
	return nil, common.ErrorNotFound
}

func (r *fakeRepository) QueryIndex(_ context.Context, plan Plan) ([]Item, error) {
	r.queriedPlan = &plan
	return r.items, r.err
}

func (r *fakeRepository) ScanFilter(_ context.Context, f Filter) ([]Item, error) {
	r.scannedFilter = &f
	return r.items, r.err
}

type fakeResolver struct{}

func (fakeResolver) ResolveURL(_ context.Context, raw string) (string, bool) {
	if strings.Contains(raw, "githubusercontent.com") {
		return "https://signed.example/" + raw, true
	}
	return "", false
}

func TestService_Search_IndexPath(t *testing.T) {
	repo := &fakeRepository{items: []Item{{Title: "One Vision", Artist: "Queen"}}}
	svc := NewService(repo, fakeResolver{}, logging.NewNopLogger())

	items, err := svc.Search(context.Background(), Filter{Artist: "Queen"})
	require.NoError(t, err)
	require.Len(t, items, 1)

	require.NotNil(t, repo.queriedPlan, "a single attribute must go through an index")
	assert.Nil(t, repo.scannedFilter)
	assert.Equal(t, PlanArtistIndex, repo.queriedPlan.Kind)
	assert.Equal(t, "Queen", repo.queriedPlan.Value)
}

func TestService_Search_ScanPath(t *testing.T) {
	repo := &fakeRepository{}
	svc := NewService(repo, fakeResolver{}, logging.NewNopLogger())

	_, err := svc.Search(context.Background(), Filter{Artist: "Queen", Year: "1975"})
	require.NoError(t, err)

	require.NotNil(t, repo.scannedFilter, "multiple attributes must go through a scan")
	assert.Nil(t, repo.queriedPlan)
	assert.Equal(t, Filter{Artist: "Queen", Year: "1975"}, *repo.scannedFilter)
}

func TestService_Search_EmptyFilter(t *testing.T) {
	svc := NewService(&fakeRepository{}, fakeResolver{}, logging.NewNopLogger())
	_, err := svc.Search(context.Background(), Filter{})
	assert.ErrorIs(t, err, common.ErrNoFilter)
}

func TestService_Search_RewritesRecognizedImages(t *testing.T) {
	repo := &fakeRepository{items: []Item{
		{Title: "a", ImgURL: "https://raw.githubusercontent.com/x/images/cover.jpg"},
		{Title: "b", ImgURL: "https://elsewhere.example/cover.jpg"},
		{Title: "c"},
	}}
	svc := NewService(repo, fakeResolver{}, logging.NewNopLogger())

	items, err := svc.Search(context.Background(), Filter{Title: "x"})
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.True(t, strings.HasPrefix(items[0].ImgURL, "https://signed.example/"))
	assert.Equal(t, "https://elsewhere.example/cover.jpg", items[1].ImgURL)
	assert.Empty(t, items[2].ImgURL)
}

func TestService_Search_RepositoryError(t *testing.T) {
	repoErr := errors.New("dynamodb is down")
	repo := &fakeRepository{err: repoErr}
	svc := NewService(repo, fakeResolver{}, logging.NewNopLogger())

	items, err := svc.Search(context.Background(), Filter{Title: "x"})
	assert.ErrorIs(t, err, repoErr)
	assert.Nil(t, items)
}
