// Package apt resolves menu choices and natural-language prompts into apt
// argument vectors.
//
// Resolution is table driven. Every selectable operation carries a Command,
// which is either fixed (the vector never changes) or parameterized (user
// tokens are appended to a fixed prefix). Tables are built once at startup
// and never mutated afterwards.
package apt
