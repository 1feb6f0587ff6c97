package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

var truthy = []string{"1", "true", "yes", "on"}

// Load reads a .env file into the process environment. Variables that are
// already set win over the file. A missing file is not an error.
func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load env file %s: %w", path, err)
	}

	return nil
}

// Get returns the value of key, or def when the variable is not set.
func Get(key, def string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	return val
}

// Bool reports whether key holds one of 1, true, yes or on, ignoring case.
// Any other present value is false; an absent key yields def.
func Bool(key string, def bool) bool {
	val, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	val = strings.ToLower(val)
	for _, t := range truthy {
		if val == t {
			return true
		}
	}

	return false
}

// Int parses key as a base 10 integer. Absent or unparsable values yield def.
func Int(key string, def int) int {
	val, ok := os.LookupEnv(key)
	if !ok {
		return def
	}

	i, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return def
	}

	return i
}

// List splits a comma separated variable. Unset and empty values fall back
// to def, which is split the same way.
func List(key, def string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		raw = def
	}

	var items []string
	for _, item := range strings.Split(raw, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}

	return items
}
