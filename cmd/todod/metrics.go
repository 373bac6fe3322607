// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"
	"strconv"
	"time"

	"github.com/diffeo/go-todo/todo"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

var todoCount = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Namespace: "diffeo",
		Subsystem: "todo",
		Name:      "todos",
		Help:      "Number of todos in the store",
	},
)

var requestCount = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "diffeo",
		Subsystem: "todo",
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by method and status",
	},
	[]string{
		"method",
		"status",
	},
)

var requestDuration = prometheus.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: "diffeo",
		Subsystem: "todo",
		Name:      "http_request_duration_seconds",
		Help:      "Time spent serving HTTP requests",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{
		"method",
	},
)

func init() {
	prometheus.MustRegister(todoCount)
	prometheus.MustRegister(requestCount)
	prometheus.MustRegister(requestDuration)
}

// observe periodically records the number of todos.  It runs until
// stop is closed.
func observe(store todo.Store, interval time.Duration, stop <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		todos, err := store.Todos()
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"err": err,
			}).Warn("Could not count todos")
		} else {
			todoCount.Set(float64(len(todos)))
		}
		select {
		case <-ticker.C:
		case <-stop:
			return
		}
	}
}

// instrument is negroni middleware that counts and times requests.
func instrument(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	start := time.Now()
	next(rw, req)
	status := rw.(negroni.ResponseWriter).Status()
	requestCount.With(prometheus.Labels{
		"method": req.Method,
		"status": strconv.Itoa(status),
	}).Inc()
	requestDuration.With(prometheus.Labels{
		"method": req.Method,
	}).Observe(time.Since(start).Seconds())
}
