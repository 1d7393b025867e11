// Package mesh builds triangulated solids for the 3D half of the
// fabrication plan and serializes them to ASCII STL.
//
// Solids are plain triangle lists: a closed box for the base slab and
// segmented vertical cylinders for the dots. Watertightness beyond what
// this simple tessellation yields is not guaranteed, and facet normals
// are emitted as placeholders (see WriteASCII).
package mesh
