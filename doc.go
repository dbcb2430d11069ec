// Package shapematch animates a 2d quad mesh using shape matching deformation
// (Müller et al. 2005).
//
// Every step each quad fits the rigid transform of its rest shape that best matches
// the predicted positions of its corners and pulls the corners onto that transform.
// Vertices on the bottom row are heavy and driven by a prescribed motion.
package shapematch
