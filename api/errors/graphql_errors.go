package api_errors

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/gqlerror"
)

const (
	CodeNotFound         = "NOT_FOUND"
	CodeBadInput         = "BAD_USER_INPUT"
	CodeInternal         = "INTERNAL_ERROR"
	CodeParseFailed      = "GRAPHQL_PARSE_FAILED"
	CodeValidationFailed = "GRAPHQL_VALIDATION_FAILED"
)

// NewError creates a standardized GraphQL error
func NewError(message string, code string, extensions map[string]interface{}) *gqlerror.Error {
	if extensions == nil {
		extensions = make(map[string]interface{})
	}
	extensions["code"] = code

	return &gqlerror.Error{
		Message:    message,
		Extensions: extensions,
	}
}

// NewParseError shapes a document parse failure, keeping source locations
// when the parser provided them.
func NewParseError(err error) *gqlerror.Error {
	if gqlErr, ok := err.(*gqlerror.Error); ok {
		if gqlErr.Extensions == nil {
			gqlErr.Extensions = make(map[string]interface{})
		}
		gqlErr.Extensions["code"] = CodeParseFailed
		return gqlErr
	}
	return NewError(err.Error(), CodeParseFailed, nil)
}

// NewDepthError reports an operation that nests deeper than the configured limit.
func NewDepthError(operation string, depth, limit int) *gqlerror.Error {
	if operation == "" {
		operation = "anonymous operation"
	}
	return NewError(
		fmt.Sprintf("'%s' exceeds maximum operation depth of %d", operation, limit),
		CodeValidationFailed,
		map[string]interface{}{"depth": depth, "maxDepth": limit},
	)
}
