// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"net/http"
	"time"

	"github.com/diffeo/go-todo/restserver"
	"github.com/diffeo/go-todo/todo"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/satori/go.uuid"
	"github.com/sirupsen/logrus"
	"github.com/urfave/negroni"
)

// requestIDHeader carries a per-request identifier.  A client-supplied
// value is passed through; otherwise a new one is generated.
const requestIDHeader = "X-Request-Id"

// NewHandler builds the complete HTTP handler for the daemon: the REST
// API, /metrics, and middleware around both.  If reqLogger is non-nil
// every request is logged to it.
func NewHandler(store todo.Store, reqLogger *logrus.Logger) http.Handler {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler())
	restserver.PopulateRouter(r, store)

	recovery := negroni.NewRecovery()
	recovery.Logger = logrus.StandardLogger()
	recovery.PrintStack = false

	n := negroni.New(recovery, negroni.HandlerFunc(requestID))
	if reqLogger != nil {
		n.Use(requestLogger(reqLogger))
	}
	n.Use(negroni.HandlerFunc(instrument))
	n.UseHandler(r)
	return n
}

// requestID is negroni middleware that makes sure every request and
// response carries an X-Request-Id header.
func requestID(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
	id := req.Header.Get(requestIDHeader)
	if id == "" {
		id = uuid.NewV4().String()
		req.Header.Set(requestIDHeader, id)
	}
	rw.Header().Set(requestIDHeader, id)
	next(rw, req)
}

// requestLogger returns negroni middleware that logs each request at
// info level.
func requestLogger(logger *logrus.Logger) negroni.Handler {
	return negroni.HandlerFunc(func(rw http.ResponseWriter, req *http.Request, next http.HandlerFunc) {
		start := time.Now()
		next(rw, req)
		res := rw.(negroni.ResponseWriter)
		logger.WithFields(logrus.Fields{
			"method":     req.Method,
			"path":       req.URL.Path,
			"status":     res.Status(),
			"size":       res.Size(),
			"duration":   time.Since(start),
			"request_id": req.Header.Get(requestIDHeader),
		}).Info("request")
	})
}

// ServeHTTP runs an HTTP server on the specified local address.  This
// serves connections until the server fails.
func ServeHTTP(store todo.Store, laddr string, reqLogger *logrus.Logger) error {
	return http.ListenAndServe(laddr, NewHandler(store, reqLogger))
}
