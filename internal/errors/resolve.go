package errors

import (
	"fmt"
	"strings"
)

// Resolution-specific error constructors. Every failure on the resolver path
// is built here so callers (and tests) can match on error codes instead of
// message text.

// NewDocumentReadError creates an error for an unreadable introspection document
func NewDocumentReadError(path string, cause error) *BaseError {
	return Wrapf(DocumentReadErrorCode, cause, "failed to read introspection document %s", path)
}

// NewDocumentParseError creates an error for a document the XML decoder cannot interpret
func NewDocumentParseError(path string, cause error) *BaseError {
	return Wrapf(DocumentParseErrorCode, cause, "failed to parse introspection document %s", path)
}

// NewInterfaceNotFoundError creates an error for a missing interface,
// listing the interfaces the document actually declares
func NewInterfaceNotFoundError(name string, available []string) *BaseError {
	err := Newf(InterfaceNotFoundErrorCode, "no interface named %q in document", name)
	if len(available) > 0 {
		err.WithHint("available interfaces: %s", strings.Join(available, ", "))
	} else {
		err.WithHint("document declares no interfaces")
	}
	return err
}

// NewMemberNotFoundError creates an error for a missing method or signal.
// kind is "method" or "signal"; lookup is scoped per collection, so a method
// and a signal sharing a name never collide here.
func NewMemberNotFoundError(kind, iface, name string, available []string) *BaseError {
	err := Newf(MemberNotFoundErrorCode, "no %s named %q on interface %s", kind, name, iface)
	if len(available) > 0 {
		err.WithHint("available %ss: %s", kind, strings.Join(available, ", "))
	}
	return err
}

// NewArgumentNotFoundError creates an error for a signal argument lookup miss,
// naming the signal and the argument names it does declare
func NewArgumentNotFoundError(signal, arg string, available []string) *BaseError {
	err := Newf(ArgumentNotFoundErrorCode, "signal %s has no argument named %q", signal, arg)
	if len(available) > 0 {
		err.WithHint("declared arguments: %s", strings.Join(available, ", "))
	} else {
		err.WithHint("signal %s declares no arguments", signal)
	}
	return err
}

// NewNoOutputArgumentError creates an error for a method without any
// out-direction argument
func NewNoOutputArgumentError(method string, argCount int) *BaseError {
	return Newf(NoOutputArgumentErrorCode, "method %s declares no argument with direction \"out\"", method).
		WithHint(fmt.Sprintf("method declares %d argument(s), none tagged out", argCount))
}
