// Package source adapts loosely structured external sheets into typed records.
//
// A sheet is a table whose first rows may be banners, whose header names vary
// between sheets, and whose cells are free text. Normalize resolves the header
// once through a Schema, drops rows without a key, and decodes the rest in
// chunks on a worker pool. ObjectSource reads the sheets as CSV objects from
// the storage bucket.
package source
