package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/creatorhub/socialgraph/dto"
	"github.com/creatorhub/socialgraph/internal/logger"
	"github.com/creatorhub/socialgraph/internal/models"
	"github.com/creatorhub/socialgraph/internal/repository"
)

type stubUserRepo struct {
	users map[string]*models.User
}

func (r *stubUserRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	clone := *user
	return &clone, nil
}

func (r *stubUserRepo) GetAll(ctx context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		clone := *user
		users = append(users, &clone)
	}
	return users, nil
}

func (r *stubUserRepo) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.users[user.ID] = user
	return user, nil
}

func (r *stubUserRepo) Update(ctx context.Context, id string, input *dto.ChangeUserInput) (*models.User, error) {
	return nil, repository.ErrUserNotFound
}

func (r *stubUserRepo) Delete(ctx context.Context, id string) error {
	return repository.ErrUserNotFound
}

func newTestRouter(t *testing.T) (*gin.Engine, *stubUserRepo) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := &stubUserRepo{users: map[string]*models.User{}}
	repos := &repository.Repositories{UserRepository: users}

	log := logger.NewAppLogger(&logger.Config{LogLevel: "error"})
	log.InitLogger()

	handler, err := NewGraphQLHandler(repos, log)
	require.NoError(t, err)

	r := gin.New()
	r.POST("/graphql", handler.Handle())
	return r, users
}

func postGraphQL(t *testing.T, r *gin.Engine, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	return w, response
}

func TestHandleRejectsMalformedBody(t *testing.T) {
	r, _ := newTestRouter(t)

	w, response := postGraphQL(t, r, `{"query": 42}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.NotContains(t, response, "data")
	assert.NotEmpty(t, response["errors"])
}

func TestHandleParseFailureIsErrorsOnly(t *testing.T) {
	r, _ := newTestRouter(t)

	w, response := postGraphQL(t, r, `{"query": "{ user("}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, response, "data", "unparseable documents never reach execution")

	errs := response["errors"].([]interface{})
	require.NotEmpty(t, errs)
	first := errs[0].(map[string]interface{})
	ext := first["extensions"].(map[string]interface{})
	assert.Equal(t, "GRAPHQL_PARSE_FAILED", ext["code"])
}

func TestHandleDepthViolationIsErrorsOnly(t *testing.T) {
	r, users := newTestRouter(t)
	users.users["seed"] = &models.User{ID: "seed", Name: "Nia"}

	query := `{ users { posts { author { profile { memberType { profiles { id } } } } } } }`
	body, err := json.Marshal(dto.GraphQLRequest{Query: query})
	require.NoError(t, err)

	w, response := postGraphQL(t, r, string(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, response, "data", "rejected documents must not carry a data key")

	errs := response["errors"].([]interface{})
	require.NotEmpty(t, errs)
	first := errs[0].(map[string]interface{})
	assert.Contains(t, first["message"], "exceeds maximum operation depth of 5")
}

func TestHandleUnknownFieldIsErrorsOnly(t *testing.T) {
	r, _ := newTestRouter(t)

	body, err := json.Marshal(dto.GraphQLRequest{Query: `{ nosuchfield }`})
	require.NoError(t, err)

	w, response := postGraphQL(t, r, string(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, response, "data", "documents rejected by the type system must not carry a data key")

	errs := response["errors"].([]interface{})
	require.NotEmpty(t, errs)
	first := errs[0].(map[string]interface{})
	assert.Contains(t, first["message"], "nosuchfield")
}

func TestHandleArgumentTypeMismatchIsErrorsOnly(t *testing.T) {
	r, _ := newTestRouter(t)

	body, err := json.Marshal(dto.GraphQLRequest{Query: `{ user(id: 42) { id } }`})
	require.NoError(t, err)

	w, response := postGraphQL(t, r, string(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, response, "data")
	assert.NotEmpty(t, response["errors"])
}

func TestHandleExecutesQuery(t *testing.T) {
	r, users := newTestRouter(t)
	id := "5c9f1b1e-92f3-4e46-8f0f-0d5a8f6f9a11"
	users.users[id] = &models.User{ID: id, Name: "Olga", Balance: 42}

	body, err := json.Marshal(dto.GraphQLRequest{
		Query:     `query($id: UUID!) { user(id: $id) { id name balance } }`,
		Variables: map[string]interface{}{"id": id},
	})
	require.NoError(t, err)

	w, response := postGraphQL(t, r, string(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, response, "errors")

	user := response["data"].(map[string]interface{})["user"].(map[string]interface{})
	assert.Equal(t, "Olga", user["name"])
	assert.Equal(t, float64(42), user["balance"])
}

func TestHandleExecutionErrorKeepsDataKey(t *testing.T) {
	r, _ := newTestRouter(t)

	body, err := json.Marshal(dto.GraphQLRequest{
		Query: `mutation { deleteUser(id: "5c9f1b1e-92f3-4e46-8f0f-0d5a8f6f9a11") }`,
	})
	require.NoError(t, err)

	w, response := postGraphQL(t, r, string(body))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, response, "data", "execution failures report partial results")
	assert.NotEmpty(t, response["errors"])
}
