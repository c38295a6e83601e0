// Package store defines the persistence contracts for text records and
// learning data, together with the sentinel errors every backend maps
// its failures onto. Two interchangeable backends implement these
// interfaces: platform/postgres (relational) and platform/superdata
// (generic key-value HTTP service). The backend is selected once at
// startup by configuration; call sites only ever see the interfaces.
package store
