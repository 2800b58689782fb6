// Package config loads svgtree's optional configuration file.
//
// The file is TOML and every key is optional:
//
//	[cache]
//	backend = "file"          # file, redis or none
//	dir = "/tmp/svgtree"      # file backend; default $XDG_CACHE_HOME/svgtree
//	redis_url = "redis://localhost:6379/0"
//	ttl = "24h"
//
//	[server]
//	addr = ":8080"
//
//	[store]
//	backend = "memory"        # memory or mongo
//	mongo_uri = "mongodb://localhost:27017"
//	database = "svgtree"
//
// [Load] reads an explicit path; [LoadDefault] looks for svgtree.toml in
// $XDG_CONFIG_HOME/svgtree (or ~/.config/svgtree) and returns [Default]
// when there is none.
package config

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/svgtree/pkg/cache"
	"github.com/matzehuels/svgtree/pkg/errors"
	"github.com/matzehuels/svgtree/pkg/store"
)

// AppName is used for configuration and cache directories.
const AppName = "svgtree"

// FileName is the name of the configuration file.
const FileName = AppName + ".toml"

// Backend names.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendNone   = "none"
	BackendMemory = "memory"
	BackendMongo  = "mongo"
)

// Config is the decoded configuration file.
type Config struct {
	Cache  CacheConfig  `toml:"cache"`
	Server ServerConfig `toml:"server"`
	Store  StoreConfig  `toml:"store"`
}

// CacheConfig selects the render cache backend.
type CacheConfig struct {
	Backend  string        `toml:"backend"`
	Dir      string        `toml:"dir"`
	RedisURL string        `toml:"redis_url"`
	TTL      time.Duration `toml:"ttl"`
}

// ServerConfig configures svgtree serve.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// StoreConfig selects where uploaded scenes are kept.
type StoreConfig struct {
	Backend  string `toml:"backend"`
	MongoURI string `toml:"mongo_uri"`
	Database string `toml:"database"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Cache:  CacheConfig{Backend: BackendFile, TTL: 7 * 24 * time.Hour},
		Server: ServerConfig{Addr: ":8080"},
		Store:  StoreConfig{Backend: BackendMemory, Database: AppName},
	}
}

// Load reads the configuration at path. Keys missing from the file keep
// their [Default] values.
func Load(path string) (Config, error) {
	cfg := Default()
	if err := errors.ValidatePath(path); err != nil {
		return cfg, err
	}
	md, err := toml.DecodeFile(path, &cfg)
	if os.IsNotExist(err) {
		return cfg, errors.Wrap(errors.ErrCodeFileNotFound, err, "config %s", path)
	}
	if err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "decode config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, errors.New(errors.ErrCodeInvalidInput, "config %s: unknown key %q", path, undecoded[0].String())
	}
	return cfg, cfg.Validate()
}

// LoadDefault loads the configuration file from the default location, if any.
func LoadDefault() (Config, error) {
	dir, err := ConfigDir()
	if err != nil {
		return Default(), nil
	}
	path := filepath.Join(dir, FileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks backend names and required settings.
func (c *Config) Validate() error {
	c.Cache.Backend = strings.ToLower(c.Cache.Backend)
	c.Store.Backend = strings.ToLower(c.Store.Backend)
	if err := errors.ValidateFormat(c.Cache.Backend, BackendFile, BackendRedis, BackendNone); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "cache.backend")
	}
	if c.Cache.Backend == BackendRedis && c.Cache.RedisURL == "" {
		return errors.New(errors.ErrCodeInvalidInput, "cache.redis_url is required for the redis backend")
	}
	if c.Cache.TTL < 0 {
		return errors.New(errors.ErrCodeInvalidInput, "cache.ttl must not be negative")
	}
	if err := errors.ValidateFormat(c.Store.Backend, BackendMemory, BackendMongo); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "store.backend")
	}
	if c.Store.Backend == BackendMongo && c.Store.MongoURI == "" {
		return errors.New(errors.ErrCodeInvalidInput, "store.mongo_uri is required for the mongo backend")
	}
	return nil
}

// OpenCache creates the configured cache. A file cache without an explicit
// dir uses [CacheDir].
func (c CacheConfig) OpenCache() (cache.Cache, error) {
	switch c.Backend {
	case BackendNone:
		return cache.NewNullCache(), nil
	case BackendRedis:
		return cache.NewRedisCache(c.RedisURL)
	default:
		dir := c.Dir
		if dir == "" {
			d, err := CacheDir()
			if err != nil {
				return cache.NewNullCache(), nil
			}
			dir = d
		}
		return cache.NewFileCache(dir)
	}
}

// OpenStore creates the configured scene store.
func (c StoreConfig) OpenStore(ctx context.Context) (store.Store, error) {
	if c.Backend == BackendMongo {
		database := c.Database
		if database == "" {
			database = AppName
		}
		return store.NewMongoStore(ctx, c.MongoURI, database)
	}
	return store.NewMemoryStore(), nil
}

// CacheDir returns the cache directory using XDG standard (~/.cache/svgtree/).
func CacheDir() (string, error) {
	return xdgDir("XDG_CACHE_HOME", ".cache")
}

// ConfigDir returns the configuration directory (~/.config/svgtree/).
func ConfigDir() (string, error) {
	return xdgDir("XDG_CONFIG_HOME", ".config")
}

func xdgDir(env, fallback string) (string, error) {
	if base := os.Getenv(env); base != "" {
		return filepath.Join(base, AppName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, fallback, AppName), nil
}
