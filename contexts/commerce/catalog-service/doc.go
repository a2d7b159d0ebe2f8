// Package catalogservice holds the marketplace tool catalog: public listing
// and detail reads, admin-gated create and delete.
package catalogservice
