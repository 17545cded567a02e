// Package render orchestrates a full frame refresh for a scene: stale frame
// cleanup, a synchronous Manim render, frame accounting, the optional
// contact-sheet chain, and the history ledger entry.
package render
