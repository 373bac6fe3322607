// Copyright 2015-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package restserver

// This file contains various HTTP-related helpers.  I sort of suspect
// most of them belong in some sort of standard library I haven't
// immediately found.

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

type urlBuilder struct {
	Router *mux.Router
	Params []string
	Error  error
}

func buildURLs(router *mux.Router, params ...string) *urlBuilder {
	return &urlBuilder{Router: router, Params: params}
}

// idParam formats an ID for use as a URL parameter.
func idParam(id int64) string {
	return strconv.FormatInt(id, 10)
}

func (u *urlBuilder) Route(route string) *mux.Route {
	if u.Error != nil {
		return nil
	}
	r := u.Router.Get(route)
	if r == nil {
		u.Error = fmt.Errorf("No such route %q", route)
	}
	return r
}

func (u *urlBuilder) URL(out *string, route string) *urlBuilder {
	var r *mux.Route
	var url *url.URL
	if u.Error == nil {
		r = u.Route(route)
	}
	if u.Error == nil {
		url, u.Error = r.URL(u.Params...)
	}
	if u.Error == nil {
		*out = url.String()
	}
	return u
}

// Template produces a URI template for a route, with each of the
// named params left as a {param} placeholder.
func (u *urlBuilder) Template(out *string, route string, params ...string) *urlBuilder {
	var r *mux.Route
	var url *url.URL
	if u.Error == nil {
		r = u.Route(route)
	}
	if u.Error == nil {
		var pairs []string
		for i, param := range params {
			pairs = append(pairs, param, placeholder(i))
		}
		url, u.Error = r.URL(append(pairs, u.Params...)...)
	}
	if u.Error == nil {
		s := url.String()
		for i, param := range params {
			s = strings.Replace(s, placeholder(i), "{"+param+"}", 1)
		}
		*out = s
	}
	return u
}

func placeholder(i int) string {
	return fmt.Sprintf("---%d---", i)
}

// absolute resolves a path produced by a urlBuilder against the URL
// the client used to reach this server.
func absolute(base *url.URL, path string) string {
	if base == nil {
		return path
	}
	ref, err := url.Parse(path)
	if err != nil {
		return path
	}
	return base.ResolveReference(ref).String()
}
