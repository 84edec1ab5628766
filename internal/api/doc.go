// Package api implements the HTTP transport for the Huefy client.
// It issues JSON requests over HTTPS with retry and exponential backoff,
// and translates error responses into the shared error taxonomy.
package api
