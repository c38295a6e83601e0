// Package superdata implements the store interfaces against a generic
// key-value HTTP record service. Records live under
// {base}/databases/{databaseID}/texts and .../learning and are
// exchanged as JSON with bearer-token authentication. The service is
// schemaless: all data-shape guarantees come from domain validation on
// the way in and out.
package superdata
