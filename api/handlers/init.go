package handlers

import (
	"github.com/creatorhub/socialgraph/internal/logger"
	"github.com/creatorhub/socialgraph/internal/repository"
)

type Handlers struct {
	GraphQL *GraphQLHandler
}

func InitHandlers(repos *repository.Repositories, log logger.Logger) (*Handlers, error) {
	graphqlHandler, err := NewGraphQLHandler(repos, log)
	if err != nil {
		return nil, err
	}

	return &Handlers{
		GraphQL: graphqlHandler,
	}, nil
}
