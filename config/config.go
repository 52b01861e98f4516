// Package config reads process settings from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
)

// New snapshots the environment into a map, the form every getter below reads from
func New() map[string]string {
	env := make(map[string]string)
	for _, entry := range os.Environ() {
		if key, value, ok := strings.Cut(entry, "="); ok && key != "" {
			env[key] = value
		}
	}
	return env
}

// lookup returns the value for key when it is set and non-empty. A nil map reads as empty.
func lookup(env map[string]string, key string) (string, bool) {
	value, ok := env[key]
	return value, ok && value != ""
}

func parsed[T any](env map[string]string, key string, defaultValue T, parse func(string) (T, error)) T {
	raw, ok := lookup(env, key)
	if !ok {
		return defaultValue
	}
	value, err := parse(strings.TrimSpace(raw))
	if err != nil {
		return defaultValue
	}
	return value
}

func GetString(env map[string]string, key string, defaultValue string) string {
	if value, ok := lookup(env, key); ok {
		return value
	}
	return defaultValue
}

// GetInt falls back to defaultValue when the value is missing or not an integer
func GetInt(env map[string]string, key string, defaultValue int) int {
	return parsed(env, key, defaultValue, strconv.Atoi)
}

func GetBool(env map[string]string, key string, defaultValue bool) bool {
	return parsed(env, key, defaultValue, strconv.ParseBool)
}

// GetStrings splits a comma separated value, dropping empty entries
func GetStrings(env map[string]string, key string, defaultValue []string) []string {
	raw, ok := lookup(env, key)
	if !ok {
		return defaultValue
	}

	var values []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			values = append(values, part)
		}
	}
	if len(values) == 0 {
		return defaultValue
	}
	return values
}
