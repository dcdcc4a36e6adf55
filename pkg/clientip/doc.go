// Package clientip resolves the address of the client that issued a request.
//
// Proxy headers are honored only with trustProxy set, i.e. when every request
// passes through a reverse proxy that overwrites them.
//
//	r.Use(clientip.Middleware(cfg.TrustProxy))
//	ip := clientip.FromContext(r.Context())
package clientip
