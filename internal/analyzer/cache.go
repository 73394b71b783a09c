package analyzer

import "time"

const (
	tickerTTL = 24 * time.Hour
	quoteTTL  = 2 * time.Minute
)

// Cache is an optional lookup cache for ticker resolutions and quotes.
// A nil cache disables caching.
type Cache interface {
	Get(key string) (string, bool)
	Set(key string, value string, ttl time.Duration)
}

func (p *Pipeline) cacheGet(key string) (string, bool) {
	if p.cache == nil {
		return "", false
	}
	return p.cache.Get(key)
}

func (p *Pipeline) cacheSet(key, value string, ttl time.Duration) {
	if p.cache == nil {
		return
	}
	p.cache.Set(key, value, ttl)
}
