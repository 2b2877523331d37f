package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

const (
	malformedSpecPrefix    = "malformed spec"
	unknownComponentPrefix = "unknown component"
)

// malformedSpec reports a violated structural precondition of a spec
// tree. It is fatal for the whole load.
func malformedSpec(format string, args ...any) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(fmt.Sprintf("%s: %s", malformedSpecPrefix, fmt.Sprintf(format, args...)))
}

func unknownComponent(name string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("%s: %s", unknownComponentPrefix, name))
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

// IsMalformedSpec reports whether err was raised for a structurally
// invalid spec tree.
func IsMalformedSpec(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeInvalidArgument &&
		strings.HasPrefix(errorMessage(err), malformedSpecPrefix)
}

// IsUnknownComponent reports whether err was raised for a component
// reference that could not be expanded.
func IsUnknownComponent(err error) bool {
	return errbuilder.CodeOf(err) == errbuilder.CodeNotFound &&
		strings.HasPrefix(errorMessage(err), unknownComponentPrefix)
}

func errorMessage(err error) string {
	var builder *errbuilder.ErrBuilder
	if errors.As(err, &builder) && strings.TrimSpace(builder.Msg) != "" {
		return builder.Msg
	}
	if err == nil {
		return ""
	}
	return err.Error()
}
