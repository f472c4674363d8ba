package runtime

// ModelOperation classifies a query against a model as a read or a write.
type ModelOperation interface {
	// Name returns the engine name of the operation.
	Name() string
	// Write reports whether the operation mutates data.
	Write() bool
}

// ReadOperation is a model operation that only reads.
type ReadOperation uint8

// Read operations.
const (
	OpFindUnique ReadOperation = iota
	OpFindFirst
	OpFindMany
	OpCount
)

// Name implements ModelOperation.
func (op ReadOperation) Name() string {
	switch op {
	case OpFindUnique:
		return "findUnique"
	case OpFindFirst:
		return "findFirst"
	case OpFindMany:
		return "findMany"
	case OpCount:
		return "aggregate"
	default:
		return ""
	}
}

// Write implements ModelOperation.
func (ReadOperation) Write() bool { return false }

func (op ReadOperation) String() string { return op.Name() }

// WriteOperation is a model operation that mutates data.
type WriteOperation uint8

// Write operations.
const (
	OpCreate WriteOperation = iota
	OpCreateMany
	OpUpdate
	OpUpdateMany
	OpDelete
	OpDeleteMany
	OpUpsert
)

// Name implements ModelOperation.
func (op WriteOperation) Name() string {
	switch op {
	case OpCreate:
		return "createOne"
	case OpCreateMany:
		return "createMany"
	case OpUpdate:
		return "updateOne"
	case OpUpdateMany:
		return "updateMany"
	case OpDelete:
		return "deleteOne"
	case OpDeleteMany:
		return "deleteMany"
	case OpUpsert:
		return "upsertOne"
	default:
		return ""
	}
}

// Write implements ModelOperation.
func (WriteOperation) Write() bool { return true }

func (op WriteOperation) String() string { return op.Name() }

var (
	_ ModelOperation = OpFindMany
	_ ModelOperation = OpCreate
)
