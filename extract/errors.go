package extract

import "fmt"

// LoadError reports an EPUB that could not be opened or parsed. No output is
// written when it is returned.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to load EPUB '%s': %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// WriteError reports an outline that could not be saved.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("unable to write table of contents '%s': %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}
