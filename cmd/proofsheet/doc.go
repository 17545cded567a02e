// Command proofsheet renders Manim scenes, composes labeled contact sheets
// from the resulting frames, and keeps the curated documentation set fresh.
package main
