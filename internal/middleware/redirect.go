// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"teknoblogoji/internal/slug"
)

// CanonicalSlugRedirect fixes up incoming URLs whose path segments contain
// raw space characters — typically stale links created before slugs were
// normalized. Each affected segment is re-run through the slug generator
// and the client is redirected once to the corrected URL. The redirect is
// temporary: it is a one-shot fixup, not a permanent redirect record.
func CanonicalSlugRedirect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet && pathNeedsFixup(r.URL.Path) {
			http.Redirect(w, r, canonicalPath(r.URL.Path), http.StatusFound)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// pathNeedsFixup reports whether any decoded path segment contains a space.
func pathNeedsFixup(path string) bool {
	for _, seg := range strings.Split(path, "/") {
		decoded, err := url.PathUnescape(seg)
		if err != nil {
			continue
		}
		if strings.Contains(decoded, " ") {
			return true
		}
	}
	return false
}

// canonicalPath rewrites each space-containing segment through the slug
// generator, leaving clean segments untouched.
func canonicalPath(path string) string {
	segments := strings.Split(path, "/")
	for i, seg := range segments {
		decoded, err := url.PathUnescape(seg)
		if err != nil {
			continue
		}
		if strings.Contains(decoded, " ") {
			segments[i] = slug.Generate(decoded)
		}
	}
	return strings.Join(segments, "/")
}
