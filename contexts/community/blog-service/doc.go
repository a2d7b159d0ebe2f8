// Package blogservice serves editorial posts: public listing and reads,
// admin-gated publication.
package blogservice
