// Package gm (stands for geometry math) provides some geometry primitives.
//
// It includes a simple 2d vector type called Vec, a 2d matrix type Mat and an
// affine transform matrix named Affine. All of them use float32 components.
//
// Mat can be factored into its singular value decomposition using Mat.SVD,
// which is the building block for fitting rigid transforms to point sets.
//
// There is also a type named Rad to represent angle values in radian.
package gm
