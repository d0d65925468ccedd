package rel

import "gopkg.in/src-d/go-errors.v1"

var (
	// ErrTypeNotSupported is returned when a record literal names an element
	// type the layer does not know.
	ErrTypeNotSupported = errors.NewKind("element type not supported: %s")

	// ErrColumnNotFound is returned when an operation references a column
	// that is not present in its child's schema. The last argument carries
	// a similartext suggestion and may be empty.
	ErrColumnNotFound = errors.NewKind("column %q could not be found in schema %s%s")

	// ErrDuplicateColumn is returned when a schema would end up with two
	// fields of the same name.
	ErrDuplicateColumn = errors.NewKind("duplicate column name %q")

	// ErrNotBoolean is returned when a selection predicate does not have
	// boolean element type.
	ErrNotBoolean = errors.NewKind("selection predicate must be boolean, got %s")

	// ErrNotSingleColumn is returned when a node that consumes exactly one
	// column is built over a multi-column child.
	ErrNotSingleColumn = errors.NewKind("expected a single-column expression, got %d columns")

	// ErrKeyTypeMismatch is returned when join key columns have different
	// element types on the two sides.
	ErrKeyTypeMismatch = errors.NewKind("join keys %q and %q have mismatched types: %s vs %s")

	// ErrNotReduction is returned when a group-by apply expression does not
	// collapse the row dimension.
	ErrNotReduction = errors.NewKind("group-by apply expression must reduce, %T is row-shaped")

	// ErrMismatchedSource is returned when columnwise inputs trace back to
	// more than one source table.
	ErrMismatchedSource = errors.NewKind("all column inputs must derive from the same table, saw: %s")

	// ErrNoSourceTable is returned when a columnwise combination contains no
	// column input at all.
	ErrNoSourceTable = errors.NewKind("columnwise combination references no source table")

	// ErrUndeclaredSchema is returned when Schema is queried on a node whose
	// kind requires a declared record type that was never supplied.
	ErrUndeclaredSchema = errors.NewKind("schema was not declared for %T")

	// ErrNotTabular is returned when a declared shape is queried for a row
	// type but is not tagged as tabular.
	ErrNotTabular = errors.NewKind("declared shape of %T is not tabular")

	// ErrInvalidOperandType is returned when a scalar combinator is applied
	// to operands it cannot accept.
	ErrInvalidOperandType = errors.NewKind("invalid operand types: %s")

	// ErrInvalidChildrenNumber is returned when a node is rebuilt with the
	// wrong number of children.
	ErrInvalidChildrenNumber = errors.NewKind("%T requires %d children, got %d")

	// ErrFieldNotAvailable is returned by the optimizer when a requested
	// field is not produced by the node it was requested from.
	ErrFieldNotAvailable = errors.NewKind("requested field %q is not produced by %T")

	// ErrNoCommonAncestor is returned when two expressions expected to share
	// an originating subexpression do not.
	ErrNoCommonAncestor = errors.NewKind("expressions %s and %s share no common subexpression")

	// ErrInconsistentPrune is returned when the shared ancestor of a
	// group-by's sides exposes fewer columns than the pruned sides require.
	ErrInconsistentPrune = errors.NewKind("common ancestor exposes %d columns but %d are required")
)
