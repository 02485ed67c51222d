// Package middleware groups the HTTP middleware of the Fiber application.
//
//   - auth: rejects requests whose X-API-Key header does not match the configured key.
//   - rayid: tags each request with a UUID ray id, stored in the context under
//     "ray_id" and echoed in the X-Ray-ID response header.
//
// The serve command registers rayid first so every later log line can carry the id.
package middleware
