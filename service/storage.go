package service

import (
	"fmt"

	"wacblog/app/catalog"
	"wacblog/app/repositories"
	"wacblog/app/repositories/memory"
	"wacblog/app/services"
	"wacblog/config"

	"go.uber.org/zap"
)

// OpenStore builds the repositories selected by cfg and seeds a store with
// the embedded catalog. The returned close function releases the backend.
func OpenStore(cfg config.StorageConfig, logger *zap.Logger, opts ...services.Option) (*services.Store, func() error, error) {
	var (
		posts    repositories.PostRepository
		comments repositories.CommentRepository
		closeFn  = func() error { return nil }
	)

	switch cfg.Driver {
	case config.DriverMemory, "":
		posts = memory.NewPostRepository()
		comments = memory.NewCommentRepository()
	case config.DriverBadger:
		db, err := repositories.Open(cfg.Path)
		if err != nil {
			return nil, nil, err
		}
		posts = repositories.NewBadgerPostRepository(db)
		comments = repositories.NewBadgerCommentRepository(db)
		closeFn = db.Close
	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
	}

	cat, err := catalog.Load()
	if err != nil {
		closeFn()
		return nil, nil, err
	}

	store := services.NewStore(posts, comments, append([]services.Option{services.WithLogger(logger)}, opts...)...)
	if err := store.Seed(cat); err != nil {
		closeFn()
		return nil, nil, fmt.Errorf("failed to seed store: %w", err)
	}
	logger.Info("store ready", zap.String("driver", cfg.Driver), zap.String("path", cfg.Path))
	return store, closeFn, nil
}
