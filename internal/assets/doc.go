// Package assets holds the binary resources every new project receives
// (launcher icons at fixed density buckets). They are copied byte for byte,
// so their sizes double as an integrity signal: Verify compares a project's
// copies against the embedded originals.
package assets
