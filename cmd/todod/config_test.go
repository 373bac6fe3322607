// Copyright 2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	filename := filepath.Join(dir, name)
	require.NoError(t, ioutil.WriteFile(filename, []byte(content), 0644))
	return filename
}

func TestConfigYaml(t *testing.T) {
	dir, err := ioutil.TempDir("", "todod")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	filename := writeFile(t, dir, "todod.yaml", `
http: ":8080"
backend: "postgres:dbname=todo"
cache_size: 16
log_requests: true
`)
	settings, err := loadConfigYaml(filename)
	require.NoError(t, err)

	config := DefaultConfig()
	if assert.NoError(t, config.Merge(settings)) {
		assert.Equal(t, ":8080", config.HTTP)
		assert.Equal(t, "postgres:dbname=todo", config.Backend)
		assert.Equal(t, 16, config.CacheSize)
		assert.True(t, config.LogRequests)
		assert.Equal(t, "info", config.LogLevel)
	}
}

func TestConfigInterval(t *testing.T) {
	config := DefaultConfig()
	interval, err := config.Interval()
	if assert.NoError(t, err) {
		assert.Equal(t, 15*time.Second, interval)
	}

	for _, value := range []string{"0s", "-5s", "soon"} {
		config.ObserveInterval = value
		_, err = config.Interval()
		assert.Error(t, err, value)
	}
}

func TestConfigYamlMissing(t *testing.T) {
	_, err := loadConfigYaml("/nonexistent/todod.yaml")
	assert.Error(t, err)
}

func TestEnvironSettings(t *testing.T) {
	settings := environSettings([]string{
		"HOME=/root",
		"TODOD_CACHE_SIZE=0",
		"TODOD_LOG_REQUESTS=true",
		"TODOD_BACKEND=postgres:host=db port=5432",
		"TODOD_EMPTY",
	})
	assert.Equal(t, map[string]interface{}{
		"cache_size":   "0",
		"log_requests": "true",
		"backend":      "postgres:host=db port=5432",
	}, settings)

	config := DefaultConfig()
	if assert.NoError(t, config.Merge(settings)) {
		assert.Equal(t, 0, config.CacheSize)
		assert.True(t, config.LogRequests)
		assert.Equal(t, "postgres:host=db port=5432", config.Backend)
		assert.Equal(t, ":3000", config.HTTP)
	}
}

func TestConfigMergeBadValue(t *testing.T) {
	config := DefaultConfig()
	err := config.Merge(map[string]interface{}{"cache_size": "lots"})
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir, err := ioutil.TempDir("", "todod")
	require.NoError(t, err)
	defer os.RemoveAll(dir)

	const key = "TODOD_TEST_DOTENV"
	os.Unsetenv(key)
	defer os.Unsetenv(key)

	filename := writeFile(t, dir, ".env", key+"=from-file\n")
	if assert.NoError(t, loadDotEnv(filename)) {
		assert.Equal(t, "from-file", os.Getenv(key))
	}

	// The existing environment wins
	os.Setenv(key, "from-env")
	if assert.NoError(t, loadDotEnv(filename)) {
		assert.Equal(t, "from-env", os.Getenv(key))
	}

	assert.NoError(t, loadDotEnv(filepath.Join(dir, "missing.env")))
	assert.NoError(t, loadDotEnv(""))
}
