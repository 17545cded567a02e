// Package manim wraps the Manim command line renderer.
package manim
