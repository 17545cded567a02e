// Package docs maintains the local Manim documentation references: it keeps
// a clone of the upstream doc source fresh, builds markdown via Sphinx, and
// reorganizes the generated reference pages into grouped section files.
package docs
