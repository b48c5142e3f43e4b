// Package frustum extracts view-frustum planes from a clip matrix and tests
// bounding spheres and ellipsoids against them.
package frustum
