package repository

import (
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"selection-assistant/internal/credential/repository/file"
	"selection-assistant/internal/credential/repository/memory"
	"selection-assistant/internal/credential/repository/redis"
)

var (
	_ Store = (*file.Store)(nil)
	_ Store = (*redis.Store)(nil)
	_ Store = (*memory.Store)(nil)
)

// New creates the Store selected by opt.Driver.
// The returned close function releases driver resources and is never nil.
func New(opt Options) (Store, func() error, error) {
	noop := func() error { return nil }

	switch opt.Driver {
	case DriverFile, "":
		if opt.FilePath == "" {
			return nil, noop, fmt.Errorf("credential store: file path is required")
		}
		return file.New(opt.FilePath), noop, nil

	case DriverRedis:
		if opt.Redis.Addr == "" {
			return nil, noop, fmt.Errorf("credential store: redis addr is required")
		}
		client := goredis.NewClient(&goredis.Options{
			Addr:     opt.Redis.Addr,
			Password: opt.Redis.Password,
			DB:       opt.Redis.DB,
		})
		return redis.New(client, opt.Redis.KeyPrefix), client.Close, nil

	case DriverMemory:
		return memory.New(), noop, nil

	default:
		return nil, noop, fmt.Errorf("credential store: unknown driver %q", opt.Driver)
	}
}
