package config

import (
	"os"
	"strconv"
	"strings"
)

// New snapshots the process environment. Callers read it through the Get
// helpers so a missing or malformed key always falls back to a default.
func New() map[string]string {
	c := make(map[string]string)
	for _, entry := range os.Environ() {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		c[key] = value
	}
	return c
}

func GetString(c map[string]string, key string, defaultValue string) string {
	if val, ok := c[key]; ok && val != "" {
		return val
	}
	return defaultValue
}

func GetInt(c map[string]string, key string, defaultValue int) int {
	asInt, err := strconv.Atoi(strings.TrimSpace(c[key]))
	if err != nil {
		return defaultValue
	}
	return asInt
}

// GetBool accepts anything strconv.ParseBool does ("1", "true", "TRUE", ...)
func GetBool(c map[string]string, key string, defaultValue bool) bool {
	asBool, err := strconv.ParseBool(strings.TrimSpace(c[key]))
	if err != nil {
		return defaultValue
	}
	return asBool
}

// GetList splits a comma separated value, dropping blank entries
func GetList(c map[string]string, key string) []string {
	var out []string
	for _, part := range strings.Split(c[key], ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
