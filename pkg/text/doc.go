// Package text lays out styled, variable-interpolated text against
// signed-distance-field font atlases and turns the result into per-style quad
// geometry ready for GPU upload.
//
// The pipeline runs in three steps:
//
//	segments + variables -> resolved strings      (TextSegment.Text)
//	resolved strings     -> wrapped lines         (BuildLines)
//	lines                -> vertices and indices  (TextObject.Tesselate)
//
// Everything in this package is synchronous and allocation-bounded by the
// input size. A TextObject is meant to have a single owner per frame; it is
// not safe for concurrent use.
//
// Style indices used by segments must be valid indices into the style slice
// passed to BuildLines and Tesselate. Violations panic.
package text
