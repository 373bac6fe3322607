// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

// Command todod serves the todo REST API over HTTP.
//
// Settings come from a YAML file named with -config, TODOD_*
// environment variables (also read from the file named by -env,
// default .env), and command-line flags, with flags taking precedence.
// For instance,
//
//     TODOD_BACKEND=postgres:dbname=todo todod -http :8080 -log-requests
package main

import (
	"flag"
	"os"

	"github.com/diffeo/go-todo/backend"
	"github.com/diffeo/go-todo/cache"
	"github.com/sirupsen/logrus"
)

func main() {
	var err error

	httpBind := flag.String("http", "", "[ip]:port for HTTP REST interface")
	var storage backend.Backend
	flag.Var(&storage, "backend", "impl[:address] of the storage backend")
	cacheSize := flag.Int("cache-size", 0, "number of records to cache, 0 to disable")
	configFile := flag.String("config", "", "global configuration YAML file")
	envFile := flag.String("env", ".env", "file of environment variables to load")
	logRequests := flag.Bool("log-requests", false, "log all requests")
	logLevel := flag.String("log-level", "", "minimum log level")
	flag.Parse()

	config := DefaultConfig()
	if *configFile != "" {
		var settings map[string]interface{}
		settings, err = loadConfigYaml(*configFile)
		if err == nil {
			err = config.Merge(settings)
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"err": err,
			}).Fatal("Could not load YAML configuration")
			return
		}
	}

	err = loadDotEnv(*envFile)
	if err == nil {
		err = config.Merge(environSettings(os.Environ()))
	}
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("Could not load environment configuration")
		return
	}

	// Only flags actually given override the other sources
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "http":
			config.HTTP = *httpBind
		case "backend":
			config.Backend = storage.String()
		case "cache-size":
			config.CacheSize = *cacheSize
		case "log-requests":
			config.LogRequests = *logRequests
		case "log-level":
			config.LogLevel = *logLevel
		}
	})

	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("Invalid log level")
		return
	}
	logrus.SetLevel(level)

	interval, err := config.Interval()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err": err,
		}).Fatal("Invalid observe interval")
		return
	}

	err = storage.Set(config.Backend)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err":     err,
			"backend": config.Backend,
		}).Fatal("Invalid backend")
		return
	}
	store, err := storage.Store()
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"err":     err,
			"backend": storage.Implementation,
		}).Fatal("Could not create todo backend")
		return
	}
	store = cache.NewWithSize(store, config.CacheSize)

	var reqLogger *logrus.Logger
	if config.LogRequests {
		stdlog := logrus.StandardLogger()
		reqLogger = &logrus.Logger{
			Out:       stdlog.Out,
			Formatter: stdlog.Formatter,
			Hooks:     stdlog.Hooks,
			Level:     logrus.DebugLevel,
		}
	}

	go observe(store, interval, make(chan struct{}))

	logrus.WithFields(logrus.Fields{
		"http":    config.HTTP,
		"backend": storage.Implementation,
	}).Info("Serving todo API")
	err = ServeHTTP(store, config.HTTP, reqLogger)
	logrus.WithFields(logrus.Fields{
		"err": err,
	}).Fatal("HTTP server failed")
}
