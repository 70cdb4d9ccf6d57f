package graphql

import (
	"github.com/graphql-go/graphql"

	"github.com/creatorhub/socialgraph/internal/repository"
)

// NewSchema composes the query and mutation roots into one executable
// schema. Built once at startup and shared across requests; the schema
// itself holds no per-request state.
func NewSchema(repos *repository.Repositories) (graphql.Schema, error) {
	b := newSchemaBuilder(repos)

	return graphql.NewSchema(graphql.SchemaConfig{
		Query:    b.buildQuery(),
		Mutation: b.buildMutation(),
	})
}
