// Package utils holds conversions for loosely typed values, such as the rows
// returned by raw catalog queries, whose Go type depends on the SQL driver.
package utils
