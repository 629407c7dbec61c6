package repository

// Driver names accepted by New.
const (
	DriverFile   = "file"
	DriverRedis  = "redis"
	DriverMemory = "memory"
)

// Options selects and configures a Store driver.
type Options struct {
	Driver   string
	FilePath string
	Redis    RedisOptions
}

// RedisOptions configures the redis driver.
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}
