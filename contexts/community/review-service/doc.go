// Package reviewservice collects customer reviews: authenticated creation
// with rating validation and public listing.
package reviewservice
