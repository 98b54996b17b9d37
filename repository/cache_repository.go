package repository

import "context"

// CacheRepository stores computed estimates by input key. A miss and a
// backend failure look the same to Get.
type CacheRepository interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string) error
}
