// Package service provides application-level services orchestrating the
// generation core against external collaborators.
package service
