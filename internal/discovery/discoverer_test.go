package discovery_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/ryanjosephkamp/openlist/internal/discovery"
	mock_discovery "github.com/ryanjosephkamp/openlist/internal/mocks/discovery"
)

func TestDiscoverer_Discover(t *testing.T) {
	ctrl := gomock.NewController(t)
	rss := mock_discovery.NewMockSource(ctrl)
	rss.EXPECT().Name().Return("rss").AnyTimes()
	rss.EXPECT().Words(gomock.Any()).
		Return([]string{"Oaf", "serendipity", "don't", "a1b2"}, nil)
	page := mock_discovery.NewMockSource(ctrl)
	page.EXPECT().Name().Return("page").AnyTimes()
	page.EXPECT().Words(gomock.Any()).
		Return([]string{"serendipity", "petrichor"}, nil)
	broken := mock_discovery.NewMockSource(ctrl)
	broken.EXPECT().Name().Return("broken").AnyTimes()
	broken.EXPECT().Words(gomock.Any()).
		Return(nil, errors.New("connection refused"))

	discoverer := discovery.NewDiscoverer(rss, page, broken)
	got, err := discoverer.Discover(context.Background())
	require.NoError(t, err)

	// Lowercased, deduplicated, structurally filtered and sorted; the
	// broken source is skipped, not fatal.
	assert.Equal(t, []string{"oaf", "petrichor", "serendipity"}, got)
}

func TestDiscoverer_Discover_cancellation(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock_discovery.NewMockSource(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	discoverer := discovery.NewDiscoverer(source)
	_, err := discoverer.Discover(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
