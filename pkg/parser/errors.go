package parser

import "fmt"

type (
	// MalformedXMLError reports that the underlying XML decoder could not
	// produce a well-formed token stream (bad entity, broken quoting,
	// encoding trouble, and so on). It wraps the decoder's error.
	MalformedXMLError struct {
		// Line is the parser's line counter when decoding failed.
		Line uint

		cause error
	}

	// UnexpectedEndElementError reports an end tag with no corresponding
	// open start tag.
	UnexpectedEndElementError struct {
		// Name is the end tag's local name.
		Name string

		// Line is the parser's line counter when the tag was read.
		Line uint
	}

	// TagMismatchError reports an end tag whose name does not match the
	// innermost open start tag.
	TagMismatchError struct {
		// Expected is the innermost open start tag's local name.
		Expected string

		// Actual is the end tag's local name.
		Actual string

		// Line is the parser's line counter when the tag was read.
		Line uint
	}

	// UnterminatedElementError reports that input ended while one or more
	// elements remained open.
	UnterminatedElementError struct {
		// Name is the innermost still-open element's local name.
		Name string

		// Line is the parser's line counter at end of input.
		Line uint
	}

	// DataScanError reports a failure tokenizing a character-data chunk
	// into segments. It wraps the scanner's error, typically an
	// ast.UnterminatedPlaceholderError.
	DataScanError struct {
		// Line is the parser's line counter for the chunk.
		Line uint

		cause error
	}
)

func (e *MalformedXMLError) Error() string {
	return fmt.Sprintf("malformed xml near line %d: %v", e.Line, e.cause)
}

// Unwrap returns the underlying decoder error.
func (e *MalformedXMLError) Unwrap() error { return e.cause }

func (e *UnexpectedEndElementError) Error() string {
	return fmt.Sprintf("unexpected end element %q at line %d: no element is open", e.Name, e.Line)
}

func (e *TagMismatchError) Error() string {
	return fmt.Sprintf("mismatched end element at line %d: expected %q, got %q", e.Line, e.Expected, e.Actual)
}

func (e *UnterminatedElementError) Error() string {
	return fmt.Sprintf("unexpected end of input at line %d: element %q is still open", e.Line, e.Name)
}

func (e *DataScanError) Error() string {
	return fmt.Sprintf("cannot scan character data at line %d: %v", e.Line, e.cause)
}

// Unwrap returns the underlying scanner error.
func (e *DataScanError) Unwrap() error { return e.cause }
