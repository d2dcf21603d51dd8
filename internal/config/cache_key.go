package config

import (
	"fmt"
)

type CacheKeyStruct struct{}

func NewCacheKeyStruct() *CacheKeyStruct {
	return &CacheKeyStruct{}
}

// ClassListKey returns the cache key for the full class listing.
func (r *CacheKeyStruct) ClassListKey() string {
	return "classes:list"
}

// ClassKey returns the cache key for a single class record.
func (r *CacheKeyStruct) ClassKey(id int) string {
	return fmt.Sprintf("classes:%d", id)
}

var CacheKey = NewCacheKeyStruct()
