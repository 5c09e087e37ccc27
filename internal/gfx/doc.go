// Package gfx defines the drawing collaborator the menu renders through and
// ships three implementations of it:
//
//   - [Recorder]: keeps the command stream, for tests and debugging
//   - [Canvas]: rasterises into a Braille character grid for terminals
//   - [SVG]: writes a standalone SVG document, for snapshots
//
// All painters share the same model: a current affine transform with a
// Save/Restore stack, a path that is built with BeginPath/MoveTo/LineTo/
// Circle/Rect and consumed by Fill or Stroke, and text placed at the origin
// of the current transform.
package gfx
