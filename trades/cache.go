package trades

import (
	"context"
	"time"

	lru "github.com/hashicorp/golang-lru"
	"github.com/pkg/errors"

	"github.com/astralfield/tradecore/types"
)

// CachedStore is a read-through LRU decorator over a TradeStore. Gets are
// served from memory when possible, every write refreshes the cached copy so
// a stale read can never resurrect an overwritten status. The two trade
// shapes share one cache keyed by trade id.
type CachedStore struct {
	inner TradeStore
	cache *lru.Cache
}

func NewCachedStore(inner TradeStore, size int) (*CachedStore, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, errors.Wrap(err, "creating trade cache")
	}
	return &CachedStore{
		inner: inner,
		cache: c,
	}, nil
}

func (s *CachedStore) Add(ctx context.Context, p *types.TradeProposal) error {
	if err := s.inner.Add(ctx, p); err != nil {
		return err
	}
	s.cache.Add(p.ID, p)
	return nil
}

func (s *CachedStore) Get(ctx context.Context, id string) (*types.TradeProposal, error) {
	if v, ok := s.cache.Get(id); ok {
		if p, ok := v.(*types.TradeProposal); ok {
			return p, nil
		}
	}
	p, err := s.inner.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Add(p.ID, p)
	return p, nil
}

func (s *CachedStore) Update(ctx context.Context, p *types.TradeProposal) error {
	if err := s.inner.Update(ctx, p); err != nil {
		// the cached copy may now disagree with the database, drop it
		s.cache.Remove(p.ID)
		return err
	}
	s.cache.Add(p.ID, p)
	return nil
}

func (s *CachedStore) ListExpired(ctx context.Context, asOf time.Time) ([]*types.TradeProposal, error) {
	return s.inner.ListExpired(ctx, asOf)
}

func (s *CachedStore) AddMultiTeam(ctx context.Context, t *types.MultiTeamTrade) error {
	if err := s.inner.AddMultiTeam(ctx, t); err != nil {
		return err
	}
	s.cache.Add(t.ID, t)
	return nil
}

func (s *CachedStore) GetMultiTeam(ctx context.Context, id string) (*types.MultiTeamTrade, error) {
	if v, ok := s.cache.Get(id); ok {
		if t, ok := v.(*types.MultiTeamTrade); ok {
			return t, nil
		}
	}
	t, err := s.inner.GetMultiTeam(ctx, id)
	if err != nil {
		return nil, err
	}
	s.cache.Add(t.ID, t)
	return t, nil
}

func (s *CachedStore) UpdateMultiTeam(ctx context.Context, t *types.MultiTeamTrade) error {
	if err := s.inner.UpdateMultiTeam(ctx, t); err != nil {
		s.cache.Remove(t.ID)
		return err
	}
	s.cache.Add(t.ID, t)
	return nil
}

func (s *CachedStore) ListExpiredMultiTeam(ctx context.Context, asOf time.Time) ([]*types.MultiTeamTrade, error) {
	return s.inner.ListExpiredMultiTeam(ctx, asOf)
}
