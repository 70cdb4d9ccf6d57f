package api

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/opentracing/opentracing-go"

	"github.com/creatorhub/socialgraph/api/handlers"
	"github.com/creatorhub/socialgraph/api/middleware"
	"github.com/creatorhub/socialgraph/internal/logger"
	"github.com/creatorhub/socialgraph/internal/repository"
	"github.com/creatorhub/socialgraph/internal/tracing"
)

// RegisterRoutes sets up all API endpoints
func RegisterRoutes(ctx context.Context, r *gin.Engine, repos *repository.Repositories, log logger.Logger) error {
	if repos == nil {
		panic("Repositories cannot be nil")
	}

	// Add recovery middlewares
	r.Use(gin.Recovery())
	r.Use(tracing.RecoveryWithJaeger(opentracing.GlobalTracer()))
	r.Use(middleware.RequestIDMiddleware())

	// setup handlers
	apiHandlers, err := handlers.InitHandlers(repos, log)
	if err != nil {
		return err
	}

	// Health check endpoint (no custom context needed)
	r.GET("/health", handlers.HealthCheck)

	gql := r.Group("/graphql")
	gql.Use(tracing.GraphQlTracingEnhancer(ctx))
	{
		gql.POST("", apiHandlers.GraphQL.Handle())
	}

	return nil
}
