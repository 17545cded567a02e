// Package sheet composes contact sheets from rendered animation frames.
//
// A contact sheet lays out an evenly sampled subset of a scene's frames in a
// COLSxROWS grid with separator lines and per-frame labels, giving a quick
// visual review of a render in a single image. Frame order is the
// lexicographic filename order of the source directory; the sampled subset
// always spans the full sequence, so the first and last frame appear on
// every sheet.
//
// Two backends implement Renderer: the native compositor draws the full
// labeled grid in-process, and the montage backend shells out to ImageMagick
// when a degraded, label-free sheet is acceptable.
package sheet
