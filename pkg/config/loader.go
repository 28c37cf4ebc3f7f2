package config

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// entry holds the outcome of parsing one config type.
type entry struct {
	once  sync.Once
	value any
	err   error
}

var (
	entries   sync.Map // reflect.Type -> *entry
	dotenvRun sync.Once
)

// LoadDotenv reads the given .env files, or ./.env when none are given, into
// the process environment. It runs once; missing files are ignored and
// variables already set in the environment win.
func LoadDotenv(files ...string) {
	dotenvRun.Do(func() {
		_ = godotenv.Load(files...)
	})
}

// Load parses environment variables into v according to its env tags.
// Each config type is parsed once per process; later calls copy the cached
// value, or return the cached error.
//
//	var cfg routing.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}
	LoadDotenv()

	key := reflect.TypeFor[T]()
	actual, _ := entries.LoadOrStore(key, &entry{})
	e := actual.(*entry)

	e.once.Do(func() {
		var parsed T
		if err := env.Parse(&parsed); err != nil {
			e.err = errors.Join(ErrParsingConfig, fmt.Errorf("%s: %w", key, err))
			return
		}
		e.value = parsed
	})

	if e.err != nil {
		return e.err
	}
	*v = e.value.(T)
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](v *T) {
	if err := Load(v); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}
