// Package snapkit is the compositing core of a camera capture and
// photo-annotation tool.
//
// # Overview
//
// snapkit implements the two engines behind a capture-annotate-share
// pipeline: a pixel-level filter engine and a layer-compositing export
// engine. Both run entirely on the CPU so that a given input produces
// byte-identical output on every platform, independent of GPU or CSS
// filter primitives.
//
// # Quick Start
//
//	import "github.com/gogpu/snapkit"
//
//	// Apply a color filter to a captured frame, in place.
//	engine := snapkit.NewFilterEngine()
//	frame, _ = engine.Apply(frame, snapkit.FilterWarm)
//
//	// Flatten the frozen frame plus annotations into one artifact.
//	composer := snapkit.NewComposer()
//	art, err := composer.Compose(snapkit.CompositionRequest{
//	    Base:         frame,
//	    Strokes:      strokes,
//	    Elements:     elements,
//	    DisplayWidth: 390,
//	})
//	if err != nil {
//	    return err
//	}
//	_ = art.PNG // lossless bytes for the share sink
//
// # Data Flow
//
// Data flows one direction: capture produces a raw RGBA Pixmap, the
// filter engine mutates it in place, annotation layers accumulate
// outside the core, and Compose flattens a snapshot of everything into
// a single encoded raster. The core never persists annotation state and
// never references back into live UI collections.
//
// # Architecture
//
// The library is organized into:
//   - Public API: FilterEngine, Composer, Pixmap, Stroke, PlacedElement
//   - text/: font parsing, shaping, and glyph outline extraction
//   - internal/raster: path building, stroking, and antialiased filling
//   - internal/effects: blur kernels and drop-shadow compositing
//
// # Coordinate System
//
// Uses standard raster coordinates: origin at top-left, x right, y down.
// Element rotation is given in degrees, clockwise positive.
package snapkit

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
