// Package optional provides a minimal present/absent container.
//
// It is the vocabulary type for response parsing and stream
// projections: a parse function returns a present value when the body
// could be interpreted and an absent one when it could not, without
// resorting to nil pointers or sentinel values.
package optional
