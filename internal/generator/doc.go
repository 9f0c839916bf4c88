// Package generator turns validated generation commands into files inside a
// project directory.
//
// Every operation moves through the same states: Validating, Rendering,
// Committing and finally Done or Failed. Nothing touches the filesystem
// before Committing. A commit writes every staged file atomically, replaces
// the application manifest last, and on any failure removes what it wrote,
// so a project is left either fully updated or exactly as it was. All
// filesystem access goes through an afero.Fs.
package generator
