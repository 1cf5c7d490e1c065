// Package model defines the data structures shared by the rewriter layers.
package model

// Path represents a file system path.
type Path string

// Source is one input file discovered by the tree walk.
type Source struct {
	// Path is the absolute location of the file.
	Path Path
	// Root is the walk root the file was found under. Mirror mode keeps the
	// file's position relative to it.
	Root Path
	// Rel is Path relative to Root.
	Rel Path
	// Err is set when the walk could not visit the entry. Such a source is
	// reported as failed without being read.
	Err error
}

// Document holds the lines of one file together with its line-ending state.
type Document struct {
	Lines []string
	// TrailingNewline records whether the last line was terminated.
	TrailingNewline bool
}
