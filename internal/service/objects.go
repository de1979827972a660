package service

import (
	"context"

	"github.com/sefazor/mygallery-backend/pkg/storage"
	"go.uber.org/zap"
)

// removeObjects deletes the stored files behind urls. URLs outside the bucket
// are skipped; failures are logged because the rows are already gone.
func removeObjects(ctx context.Context, store storage.ObjectStorage, log *zap.Logger, urls ...string) {
	if store == nil {
		return
	}
	for _, url := range urls {
		key, ok := store.KeyFromURL(url)
		if !ok {
			continue
		}
		if err := store.Delete(ctx, key); err != nil {
			log.Warn("failed to remove stored image", zap.String("key", key), zap.Error(err))
		}
	}
}
