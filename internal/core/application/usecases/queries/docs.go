// Package queries holds the read side of the package service: fetching one
// package, listing packages page by page, and counting packages per status.
// Handlers read through a non-transactional PackageRepository and return the
// response shapes built by the package mapper.
package queries
