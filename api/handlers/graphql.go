package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	gql "github.com/graphql-go/graphql"
	"github.com/opentracing/opentracing-go"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/gqlerror"
	"github.com/vektah/gqlparser/v2/parser"

	api_errors "github.com/creatorhub/socialgraph/api/errors"
	graphapi "github.com/creatorhub/socialgraph/api/graphql"
	"github.com/creatorhub/socialgraph/dto"
	"github.com/creatorhub/socialgraph/internal/logger"
	"github.com/creatorhub/socialgraph/internal/repository"
	"github.com/creatorhub/socialgraph/internal/tracing"
)

// GraphQLHandler runs the parse -> depth validation -> execute pipeline for
// every request. Parse and validation failures stop the request before any
// resolver is invoked; execution errors come back inside the result next to
// whatever data did resolve.
type GraphQLHandler struct {
	schema gql.Schema
	log    logger.Logger
}

func NewGraphQLHandler(repos *repository.Repositories, log logger.Logger) (*GraphQLHandler, error) {
	schema, err := graphapi.NewSchema(repos)
	if err != nil {
		return nil, err
	}
	return &GraphQLHandler{schema: schema, log: log}, nil
}

func (h *GraphQLHandler) Handle() gin.HandlerFunc {
	return func(c *gin.Context) {
		span, ctx := opentracing.StartSpanFromContext(c.Request.Context(), "GraphQLHandler.Handle")
		defer span.Finish()
		tracing.TagComponentGraphql(span)

		var request dto.GraphQLRequest
		if err := c.ShouldBindJSON(&request); err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusBadRequest, dto.GraphQLResponse{
				Errors: gqlerror.List{api_errors.NewError("invalid request body", api_errors.CodeBadInput, nil)},
			})
			return
		}

		// A document that does not parse is never executed.
		doc, err := parser.ParseQuery(&ast.Source{Input: request.Query})
		if err != nil {
			tracing.TraceErr(span, err)
			c.JSON(http.StatusOK, dto.GraphQLResponse{
				Errors: gqlerror.List{api_errors.NewParseError(err)},
			})
			return
		}

		// Depth gate. Rejected documents get an errors-only response, no data key.
		if errs := graphapi.ValidateDepth(doc, graphapi.MaxQueryDepth); len(errs) > 0 {
			tracing.TraceErr(span, errs)
			c.JSON(http.StatusOK, dto.GraphQLResponse{Errors: errs})
			return
		}

		result := gql.Do(gql.Params{
			Schema:         h.schema,
			RequestString:  request.Query,
			VariableValues: request.Variables,
			Context:        ctx,
		})
		if len(result.Errors) > 0 {
			h.log.Warnf("graphql request finished with %d error(s)", len(result.Errors))
			// A nil data alongside errors means the engine rejected the
			// document before executing it (unknown field, type mismatch,
			// bad variables). Those responses carry only the error list;
			// execution errors keep the data key with partial results.
			if result.Data == nil {
				c.JSON(http.StatusOK, gin.H{"errors": result.Errors})
				return
			}
		}

		c.JSON(http.StatusOK, result)
	}
}
