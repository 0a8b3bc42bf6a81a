// Package filter provides the whole-image filters used by background
// operations:
//   - Gaussian blur (separable, clamp-to-edge)
//   - Color matrix transformations (brightness)
//
// Filters read a source *image.RGBA and write a destination of the same
// size. Source and destination may not alias for blur; color matrices
// work in place.
package filter
