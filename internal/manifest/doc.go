// Package manifest edits the project's AndroidManifest.xml and reads the
// ruboto.yml project descriptor.
//
// Manifest edits are localized: registering a component inserts one element
// as the last child of <application> and leaves every other byte of the file
// untouched, so unrelated entries keep their order and formatting.
// Unregistering removes exactly that element again. Edits return a new
// AndroidManifest and never write to disk.
//
// The descriptor is validated against an embedded JSON Schema before use.
package manifest
