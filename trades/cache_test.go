package trades_test

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/astralfield/tradecore/trades"
	"github.com/astralfield/tradecore/trades/mocks"
	"github.com/astralfield/tradecore/types"
)

func TestCachedStore(t *testing.T) {
	t.Run("A get after add never hits the database", testCacheServesAfterAdd)
	t.Run("A cache miss falls through and populates", testCacheMissFallsThrough)
	t.Run("A failed update invalidates the cached copy", testCacheFailedUpdateInvalidates)
	t.Run("Two-party and multi-team trades do not collide", testCacheShapesDoNotCollide)
}

func testCacheServesAfterAdd(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	inner := mocks.NewMockTradeStore(ctrl)
	store, err := trades.NewCachedStore(inner, 8)
	require.NoError(t, err)

	p := pendingTrade()
	inner.EXPECT().Add(gomock.Any(), p).Times(1).Return(nil)
	require.NoError(t, store.Add(context.Background(), p))

	got, err := store.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Same(t, p, got)
}

func testCacheMissFallsThrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	inner := mocks.NewMockTradeStore(ctrl)
	store, err := trades.NewCachedStore(inner, 8)
	require.NoError(t, err)

	p := pendingTrade()
	inner.EXPECT().Get(gomock.Any(), p.ID).Times(1).Return(p, nil)

	got, err := store.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Same(t, p, got)

	// second read is cached
	got, err = store.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Same(t, p, got)
}

func testCacheFailedUpdateInvalidates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	inner := mocks.NewMockTradeStore(ctrl)
	store, err := trades.NewCachedStore(inner, 8)
	require.NoError(t, err)

	p := pendingTrade()
	inner.EXPECT().Add(gomock.Any(), p).Times(1).Return(nil)
	require.NoError(t, store.Add(context.Background(), p))

	inner.EXPECT().Update(gomock.Any(), p).Times(1).Return(errors.New("connection reset"))
	require.Error(t, store.Update(context.Background(), p))

	// the next read must consult the database again
	inner.EXPECT().Get(gomock.Any(), p.ID).Times(1).Return(p, nil)
	_, err = store.Get(context.Background(), p.ID)
	require.NoError(t, err)
}

func testCacheShapesDoNotCollide(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	inner := mocks.NewMockTradeStore(ctrl)
	store, err := trades.NewCachedStore(inner, 8)
	require.NoError(t, err)

	mt := pendingMultiTeamTrade()
	inner.EXPECT().AddMultiTeam(gomock.Any(), mt).Times(1).Return(nil)
	require.NoError(t, store.AddMultiTeam(context.Background(), mt))

	// asking for the same id as a two-party trade falls through to the
	// database rather than returning the wrong shape
	inner.EXPECT().Get(gomock.Any(), mt.ID).Times(1).Return(nil, trades.ErrTradeNotFound)
	_, err = store.Get(context.Background(), mt.ID)
	assert.ErrorIs(t, err, trades.ErrTradeNotFound)

	got, err := store.GetMultiTeam(context.Background(), mt.ID)
	require.NoError(t, err)
	assert.Equal(t, types.TradeStatusPending, got.Status)
}
