// Package scaffold renders the embedded project and component templates.
// Rendering is purely in memory and deterministic: the same template and
// parameters always produce byte-identical output, and a template never
// yields a partial result. Persisting the output is the generator's job.
package scaffold
