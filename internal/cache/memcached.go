package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/IliaW/rank-api/config"
	"github.com/IliaW/rank-api/internal/model"
	"github.com/bradfitz/gomemcache/memcache"
)

const (
	keywordGapPrefix  = "keyword-gap"
	backlinkGapPrefix = "backlink-gap"
)

//go:generate go run github.com/vektra/mockery/v2@v2.50.0 --name CachedClient
type CachedClient interface {
	GetKeywordGap(model.GapQuery) (*model.KeywordGapSummary, bool)
	SaveKeywordGap(model.GapQuery, *model.KeywordGapSummary)
	GetBacklinkGap(model.GapQuery) (*model.BacklinkGapSummary, bool)
	SaveBacklinkGap(model.GapQuery, *model.BacklinkGapSummary)
	Close()
}

type MemcachedClient struct {
	client *memcache.Client
	cfg    *config.CacheConfig
	log    *slog.Logger
}

func NewMemcachedClient(cacheConfig *config.CacheConfig, log *slog.Logger) *MemcachedClient {
	log.Info("connecting to memcached...")
	ss := new(memcache.ServerList)
	servers := strings.Split(cacheConfig.Servers, ",")
	err := ss.SetServers(servers...)
	if err != nil {
		log.Error("failed to set memcached servers.", slog.String("err", err.Error()))
		os.Exit(1)
	}
	c := &MemcachedClient{
		client: memcache.NewFromSelector(ss),
		cfg:    cacheConfig,
		log:    log,
	}
	c.log.Info("pinging the memcached.")
	err = c.client.Ping()
	if err != nil {
		log.Error("connection to the memcached is failed.", slog.String("err", err.Error()))
		os.Exit(1)
	}
	c.log.Info("connected to memcached!")

	return c
}

func (mc *MemcachedClient) GetKeywordGap(q model.GapQuery) (*model.KeywordGapSummary, bool) {
	var summary model.KeywordGapSummary
	if ok := mc.get(gapKey(keywordGapPrefix, q), &summary); !ok {
		return nil, false
	}
	return &summary, true
}

func (mc *MemcachedClient) SaveKeywordGap(q model.GapQuery, summary *model.KeywordGapSummary) {
	mc.save(gapKey(keywordGapPrefix, q), summary)
}

func (mc *MemcachedClient) GetBacklinkGap(q model.GapQuery) (*model.BacklinkGapSummary, bool) {
	var summary model.BacklinkGapSummary
	if ok := mc.get(gapKey(backlinkGapPrefix, q), &summary); !ok {
		return nil, false
	}
	return &summary, true
}

func (mc *MemcachedClient) SaveBacklinkGap(q model.GapQuery, summary *model.BacklinkGapSummary) {
	mc.save(gapKey(backlinkGapPrefix, q), summary)
}

func (mc *MemcachedClient) Close() {
	mc.log.Info("closing memcached connection.")
	err := mc.client.Close()
	if err != nil {
		mc.log.Error("failed to close memcached connection.", slog.String("err", err.Error()))
	}
}

func (mc *MemcachedClient) get(key string, v any) bool {
	item, err := mc.client.Get(key)
	if err != nil {
		if errors.Is(err, memcache.ErrCacheMiss) {
			mc.log.Debug("cache not found.", slog.String("key", key))
		} else {
			mc.log.Error("failed to read gap report from cache.", slog.String("key", key),
				slog.String("err", err.Error()))
		}
		return false
	}
	if err = json.Unmarshal(item.Value, v); err != nil {
		mc.log.Error("failed to decode cached gap report.", slog.String("key", key),
			slog.String("err", err.Error()))
		return false
	}
	mc.log.Debug("cache found.", slog.String("key", key))

	return true
}

func (mc *MemcachedClient) save(key string, v any) {
	if err := mc.set(key, v, int32(mc.cfg.TtlForGapReport.Seconds())); err != nil {
		mc.log.Error("failed to save gap report to cache.", slog.String("key", key),
			slog.String("err", err.Error()))
		return
	}
	mc.log.Debug("gap report saved to cache.", slog.String("key", key))
}

func (mc *MemcachedClient) set(key string, value any, expiration int32) error {
	byteValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	item := &memcache.Item{
		Key:        key,
		Value:      byteValue,
		Expiration: expiration,
	}

	return mc.client.Set(item)
}

// gapKey does not depend on the order of the competitors.
func gapKey(prefix string, q model.GapQuery) string {
	competitors := slices.Clone(q.Competitors)
	slices.Sort(competitors)
	return fmt.Sprintf("%s-%s", prefix, hash(q.Primary+"|"+strings.Join(competitors, ",")))
}

func hash(s string) string {
	h := sha256.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}
