// Package api implements the HTTP boundary of the application: request
// DTOs, chi handlers, and the mapping from internal errors to status
// codes and user-facing Hebrew messages. Every operation responds with
// the uniform envelope: {"success": true, ...} on success and
// {"success": false, "error": "..."} on failure. Internal error detail
// is logged server-side and never crosses this boundary.
package api
