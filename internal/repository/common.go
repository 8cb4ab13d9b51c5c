package repository

import (
	"context"
	"time"
)

// StorageTimeout 单次存储调用的超时上限
const StorageTimeout = 3 * time.Second

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, StorageTimeout)
}
