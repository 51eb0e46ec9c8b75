// Package pipeline runs one image through recognition and annotation.
//
// A run is strictly sequential:
//
//	load → preprocess → recognize → annotate → report → persist → display
//
// Each stage is also exposed as a method so it can be exercised on its own.
// The engine is supplied by the caller and may be reused across runs.
package pipeline
