// Package http implements the HTTP transport layer of the application.
//
// Routes:
//
//	GET  /                 → redirect to /2/
//	GET  /{number}/        → HTML page with a random name of {number} words
//	GET  /{number}/raw     → the name as plain text
//	GET  /{number}/json    → the name as {"name": "..."}
//	GET  /*                → embedded static assets (CSS, images)
//
// HEAD is answered for every GET route. Cross-cutting concerns such as
// request tracing, access logging, concurrency limiting, response
// compression and asset caching are handled in this package before requests
// reach the name service.
package http
