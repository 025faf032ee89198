package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/buraksezer/olric"
	"github.com/shaj13/libcache"
	_ "github.com/shaj13/libcache/lru"
	log "github.com/sirupsen/logrus"
	"github.com/velora-app/velora-api/client"
)

const RevokedTokensDMapName = "revoked-tokens"

type TokenRevocationStore interface {
	Revoke(ctx context.Context, key string, ttl time.Duration) error
	IsRevoked(ctx context.Context, key string) (bool, error)
}

// NewOlricRevocationStore keeps revoked token keys in a cluster-wide olric
// DMap, fronted by a small local LRU of keys already known to be revoked.
func NewOlricRevocationStore(op client.OlricProvider) TokenRevocationStore {
	local := libcache.LRU.New(10000)
	local.SetTTL(time.Minute * 10)
	local.RegisterOnExpired(func(key, _ interface{}) {
		local.Delete(key)
	})
	return &olricRevocationStoreImpl{op: op, local: local}
}

type olricRevocationStoreImpl struct {
	op    client.OlricProvider
	local libcache.Cache

	mutex sync.Mutex
	dmap  *olric.DMap
}

func (s *olricRevocationStoreImpl) getDMap() (*olric.DMap, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.dmap != nil {
		return s.dmap, nil
	}
	dm, err := s.op.Get().NewDMap(RevokedTokensDMapName)
	if err != nil {
		return nil, fmt.Errorf("failed to create DMap %s: %w", RevokedTokensDMapName, err)
	}
	s.dmap = dm
	return dm, nil
}

func (s *olricRevocationStoreImpl) Revoke(ctx context.Context, key string, ttl time.Duration) error {
	dm, err := s.getDMap()
	if err != nil {
		return err
	}
	if err = dm.PutEx(key, true, ttl); err != nil {
		return fmt.Errorf("failed to store revoked token: %w", err)
	}
	s.local.StoreWithTTL(key, true, ttl)
	log.Debugf("Revocation %s stored for %v", shortKey(key), ttl)
	return nil
}

func (s *olricRevocationStoreImpl) IsRevoked(ctx context.Context, key string) (bool, error) {
	if _, ok := s.local.Load(key); ok {
		return true, nil
	}
	dm, err := s.getDMap()
	if err != nil {
		return false, err
	}
	_, err = dm.Get(key)
	if err != nil {
		if errors.Is(err, olric.ErrKeyNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check token revocation: %w", err)
	}
	s.local.Store(key, true)
	return true, nil
}

// NewLocalRevocationStore is a single-node store for setups without olric.
func NewLocalRevocationStore() TokenRevocationStore {
	return &localRevocationStoreImpl{cache: libcache.LRU.New(0)}
}

type localRevocationStoreImpl struct {
	cache libcache.Cache
}

func (l *localRevocationStoreImpl) Revoke(ctx context.Context, key string, ttl time.Duration) error {
	l.cache.StoreWithTTL(key, true, ttl)
	return nil
}

func (l *localRevocationStoreImpl) IsRevoked(ctx context.Context, key string) (bool, error) {
	_, ok := l.cache.Load(key)
	return ok, nil
}

func shortKey(key string) string {
	if len(key) > 16 {
		return key[:16] + "..."
	}
	return key
}
