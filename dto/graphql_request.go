package dto

import "github.com/vektah/gqlparser/v2/gqlerror"

// GraphQLRequest is the POST body accepted by the /graphql endpoint.
type GraphQLRequest struct {
	Query     string                 `json:"query" binding:"required"`
	Variables map[string]interface{} `json:"variables"`
}

// GraphQLResponse is used for responses produced before execution starts
// (parse and validation failures). The data key is deliberately absent in
// that case, so it must stay omitempty.
type GraphQLResponse struct {
	Data   interface{}   `json:"data,omitempty"`
	Errors gqlerror.List `json:"errors,omitempty"`
}
