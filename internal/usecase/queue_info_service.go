package usecase

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"giramae/internal/domain/entities"

	"golang.org/x/sync/errgroup"
)

const queueBatchConcurrency = 8

// QueueInfoCache keeps queue summaries per user session. Entries expire after ttl so a
// missed invalidation cannot keep a stale position forever.
type QueueInfoCache struct {
	mu       sync.Mutex
	ttl      time.Duration
	now      func() time.Time
	sessions map[string]map[string]cachedQueueInfo
}

type cachedQueueInfo struct {
	info      entities.QueueInfo
	expiresAt time.Time
}

func NewQueueInfoCache(ttl time.Duration) *QueueInfoCache {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &QueueInfoCache{
		ttl:      ttl,
		now:      time.Now,
		sessions: make(map[string]map[string]cachedQueueInfo),
	}
}

func (c *QueueInfoCache) Get(userID, itemID string) (entities.QueueInfo, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	entry, ok := c.sessions[userID][itemID]
	if !ok {
		return entities.QueueInfo{}, false
	}
	if !c.now().Before(entry.expiresAt) {
		delete(c.sessions[userID], itemID)
		return entities.QueueInfo{}, false
	}
	return entry.info, true
}

func (c *QueueInfoCache) Set(userID, itemID string, info entities.QueueInfo) {
	c.mu.Lock()
	defer c.mu.Unlock()
	session, ok := c.sessions[userID]
	if !ok {
		session = make(map[string]cachedQueueInfo)
		c.sessions[userID] = session
	}
	session[itemID] = cachedQueueInfo{info: info, expiresAt: c.now().Add(c.ttl)}
}

func (c *QueueInfoCache) Invalidate(userID, itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions[userID], itemID)
}

// InvalidateItem drops the item from every session.
func (c *QueueInfoCache) InvalidateItem(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, session := range c.sessions {
		delete(session, itemID)
	}
}

func (c *QueueInfoCache) EvictUser(userID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.sessions, userID)
}

// IQueueInfoService is the read side used by pages listing items. It never fails:
// a lookup error degrades to the zero QueueInfo and is logged.

type IQueueInfoService interface {
	GetQueueInfo(ctx context.Context, userID, itemID string) entities.QueueInfo
	GetQueueInfoBatch(ctx context.Context, userID string, itemIDs []string) map[string]entities.QueueInfo
	Invalidate(userID, itemID string)
}

type QueueInfoService struct {
	source IQueueUseCase
	cache  *QueueInfoCache
}

var _ IQueueInfoService = (*QueueInfoService)(nil)

func NewQueueInfoService(source IQueueUseCase, cache *QueueInfoCache) *QueueInfoService {
	return &QueueInfoService{source: source, cache: cache}
}

func (s *QueueInfoService) GetQueueInfo(ctx context.Context, userID, itemID string) entities.QueueInfo {
	itemID = strings.TrimSpace(itemID)
	if itemID == "" {
		return entities.QueueInfo{}
	}
	if s.cache != nil {
		if info, ok := s.cache.Get(userID, itemID); ok {
			return info
		}
	}
	info, err := s.source.GetQueueInfo(ctx, itemID, userID)
	if err != nil {
		log.Printf("[queue][service] queue info lookup failed item_id=%s user_id=%s err=%v", itemID, userID, err)
		return entities.QueueInfo{}
	}
	if s.cache != nil {
		s.cache.Set(userID, itemID, info)
	}
	return info
}

// GetQueueInfoBatch looks every item up concurrently. Each item resolves on its own,
// so the result always carries one entry per distinct requested id.
func (s *QueueInfoService) GetQueueInfoBatch(ctx context.Context, userID string, itemIDs []string) map[string]entities.QueueInfo {
	ids := make([]string, 0, len(itemIDs))
	seen := make(map[string]struct{}, len(itemIDs))
	for _, id := range itemIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}

	results := make([]entities.QueueInfo, len(ids))
	var g errgroup.Group
	g.SetLimit(queueBatchConcurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			results[i] = s.GetQueueInfo(ctx, userID, id)
			return nil
		})
	}
	_ = g.Wait()

	out := make(map[string]entities.QueueInfo, len(ids))
	for i, id := range ids {
		out[id] = results[i]
	}
	return out
}

func (s *QueueInfoService) Invalidate(userID, itemID string) {
	if s.cache != nil {
		s.cache.Invalidate(userID, itemID)
	}
}
