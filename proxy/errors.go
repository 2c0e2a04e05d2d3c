package proxy

import "fmt"

// NoSuchOperationError reports an operation name that neither the proxy
// surface nor the delegate can resolve. It is returned on every attempt and
// never cached.
type NoSuchOperationError struct {
	Operation string
}

// Error implements the error interface.
func (e *NoSuchOperationError) Error() string {
	return "proxy: no such operation: " + e.Operation
}

// BadArgumentsError reports an argument list that cannot be applied to the
// resolved delegate method.
type BadArgumentsError struct {
	Operation string
	Reason    string
}

// Error implements the error interface.
func (e *BadArgumentsError) Error() string {
	return fmt.Sprintf("proxy: bad arguments for %s: %s", e.Operation, e.Reason)
}

// UnsupportedSignatureError reports a delegate method whose return shape
// cannot be mapped onto the (result, error) invocation contract.
type UnsupportedSignatureError struct {
	Operation string
	Reason    string
}

// Error implements the error interface.
func (e *UnsupportedSignatureError) Error() string {
	return fmt.Sprintf("proxy: unsupported signature for %s: %s", e.Operation, e.Reason)
}
