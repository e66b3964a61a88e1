// Package http implements the REST transport of the configuration server.
//
// It wires the chi router, the /api/admin/configuracion handlers and the
// middleware in front of them: request tracing, access logging, gzip and
// panic recovery. Every configuration endpoint answers with the
// {"success", "data", "message"} envelope; errors from the service layer are
// mapped to a status code and a user-facing message in errors_mapper.go.
package http
