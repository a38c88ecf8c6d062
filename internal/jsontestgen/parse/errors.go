package parse

import "errors"

var (
	// ErrUnsupportedElementKind reports a directive or member that cannot take
	// part in generation. The element is skipped with a warning.
	ErrUnsupportedElementKind = errors.New("unsupported element")

	// ErrUnsupportedFieldType reports a JSON field whose type has no sample
	// value. Generation of the enclosing type is aborted.
	ErrUnsupportedFieldType = errors.New("unsupported field type")

	// ErrDuplicateName reports two fields of a type sharing a JSON name.
	// Generation of the enclosing type is aborted.
	ErrDuplicateName = errors.New("duplicate JSON name")

	// ErrInvalidDirective reports a malformed directive. Generation of the
	// annotated type is aborted.
	ErrInvalidDirective = errors.New("invalid directive")

	// ErrMissingName reports an exported field which is encoded by its Go name
	// because it has no JSON name. It is advisory.
	ErrMissingName = errors.New("missing JSON name")
)
