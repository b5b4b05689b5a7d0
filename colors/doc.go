// Package colors holds the plain RGB color type, the "(r, g, b)" spec parser
// and the immutable name to spec table the clear-color reactor samples from.
package colors
