package middleware

import "net/http"

// MaxRequestBody caps inbound bodies. Generous because avatar uploads are
// base64 data URIs.
const MaxRequestBody = 10 << 20

func BodyLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, MaxRequestBody)
		}
		next.ServeHTTP(w, r)
	})
}
