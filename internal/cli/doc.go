// Package cli defines the Cobra command tree for the ruboto CLI. Each file
// in this package registers one top-level command (gen, destroy, list, etc.)
// with the root command. Commands only parse flags and format output; the
// work is done by the generator, manifest, budget and assets packages.
package cli
