// Package services implements the HTTP client for the degrees-of-separation search API.
//
// # Transport
//
// [APIService] performs raw requests against the API base URL and returns [APIResponse] values.
// Each request carries a generated X-Request-ID header. Two optional guards wrap the transport:
//   - a [rate.Limiter] that spaces requests when requests_per_second is configured
//   - a [gobreaker.CircuitBreaker] that fails fast with [shared.ErrServiceUnavailable] once the server keeps failing
//
// # Search Client
//
// [SearchClient] implements [SearchAPI] on top of [APIService]:
//
//	POST /api/search               → StartSearch
//	GET  /api/search/{id}/status   → Status
//	GET  /api/search/{id}/result   → Result
//	GET  /api/artists/search?q=... → SearchArtists
//
// # Error Handling
//
// Non-2xx answers become [*APIError], which wraps [shared.ErrAPIRequest] and keeps the server's {"error": ...} text.
// [ServerMessage] extracts that text for user-facing alerts, falling back to a generic message.
// Bodies that cannot be decoded wrap [shared.ErrDecode].
package services
