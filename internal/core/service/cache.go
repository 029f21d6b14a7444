package service

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/studyshare/campus-portal/internal/core/domain"
)

var cacheLookups = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "portal",
		Name:      "file_cache_lookups_total",
		Help:      "File metadata cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)

// FileCache is an expiring LRU over file metadata records. Values are stored
// by value and handed out as fresh copies, so no caller ever holds a live
// reference into the cache.
type FileCache struct {
	lru *expirable.LRU[string, domain.FileItem]
}

// NewFileCache creates a cache holding up to size records for at most ttl.
func NewFileCache(size int, ttl time.Duration) *FileCache {
	return &FileCache{
		lru: expirable.NewLRU[string, domain.FileItem](size, nil, ttl),
	}
}

func (c *FileCache) Get(fileID string) (*domain.FileItem, bool) {
	record, ok := c.lru.Get(fileID)
	if !ok {
		cacheLookups.WithLabelValues("miss").Inc()
		return nil, false
	}
	cacheLookups.WithLabelValues("hit").Inc()
	clone := record
	clone.Tags = append([]string(nil), record.Tags...)
	return &clone, true
}

func (c *FileCache) Set(file *domain.FileItem) {
	clone := *file
	clone.Tags = append([]string(nil), file.Tags...)
	c.lru.Add(file.ID, clone)
}

// Invalidate drops the cached record, if any. Called after every download
// counter increment so stale counts are never served.
func (c *FileCache) Invalidate(fileID string) {
	c.lru.Remove(fileID)
}
