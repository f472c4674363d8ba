package generator

import (
	"errors"
	"fmt"
)

// ErrProtocol indicates a failure of the wire protocol itself. The driver
// cannot answer the host after such a failure.
var ErrProtocol = errors.New("generator: protocol error")

// ProtocolError is returned by Run for unreadable input, input closed
// before a generate request, malformed requests and undecodable generate
// params.
type ProtocolError struct {
	Op   string // read, decode, params or write
	Line int    // 1-based request line, 0 if unknown
	Err  error
}

// Error implements the error interface.
func (e *ProtocolError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("generator: %s request %d: %v", e.Op, e.Line, e.Err)
	}
	return fmt.Sprintf("generator: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *ProtocolError) Unwrap() error { return e.Err }

// Is reports whether target is ErrProtocol.
func (e *ProtocolError) Is(target error) bool { return target == ErrProtocol }

// IsProtocolError reports whether err is or wraps a ProtocolError.
func IsProtocolError(err error) bool {
	var pe *ProtocolError
	return errors.As(err, &pe)
}
