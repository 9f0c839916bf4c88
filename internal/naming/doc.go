// Package naming validates component and package names before anything is
// written to disk, and derives the snake_case and CamelCase forms that
// generated file names and class names are built from.
package naming
