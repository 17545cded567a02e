// Package magick wraps the ImageMagick montage command used as the degraded
// contact-sheet backend.
package magick
