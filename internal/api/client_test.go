package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/fittrack/internal/config"
	"github.com/spec-kit/fittrack/internal/domain"
)

func testClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(config.ClientConfig{
		BaseURL:        srv.URL + "/api",
		TimeoutSeconds: 5,
	}, zap.NewNop())
	require.NoError(t, err)
	return client
}

func TestClientDecodesResponse(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/meals/mine", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		_ = json.NewEncoder(w).Encode([]domain.MealLog{{ID: 7, TotalCalories: 512}})
	}))

	meals, err := client.MyMeals(context.Background())
	require.NoError(t, err)
	require.Len(t, meals, 1)
	assert.Equal(t, int64(7), meals[0].ID)
	assert.Equal(t, float64(512), meals[0].TotalCalories)
}

func TestClientSendsJSONBody(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req domain.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ada", req.Username)

		_ = json.NewEncoder(w).Encode(domain.LoginResponse{Token: "issued"})
	}))

	auth := NewAuthClient(client)
	token, err := auth.Login(context.Background(), "ada", "pw")
	require.NoError(t, err)
	assert.Equal(t, "issued", token)
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = w.Write([]byte(`{"error":{"code":"CONFLICT","message":"username already taken"}}`))
	}))

	auth := NewAuthClient(client)
	_, err := auth.Register(context.Background(), "ada", "pw")
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.StatusCode)
	assert.Equal(t, "CONFLICT", apiErr.Code)
	assert.Equal(t, "username already taken", apiErr.Message)
}

func TestClientToleratesNonJSONError(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>bad gateway</html>"))
	}))

	_, err := client.MyMeals(context.Background())
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
}

func TestLatestMeasurementNoContent(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/measurements/latest", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	m, err := client.LatestMeasurement(context.Background())
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestLatestMeasurementPresent(t *testing.T) {
	weight := 82.5
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(domain.Measurement{ID: 3, WeightKg: &weight})
	}))

	m, err := client.LatestMeasurement(context.Background())
	require.NoError(t, err)
	require.NotNil(t, m)
	assert.Equal(t, int64(3), m.ID)
	require.NotNil(t, m.WeightKg)
	assert.Equal(t, 82.5, *m.WeightKg)
}

func TestPredefinedExercisesCategoryQuery(t *testing.T) {
	client := testClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/exercises/predefined", r.URL.Path)
		assert.Equal(t, "CHEST", r.URL.Query().Get("category"))
		_ = json.NewEncoder(w).Encode([]domain.PredefinedExercise{})
	}))

	cat := domain.CategoryChest
	_, err := client.PredefinedExercises(context.Background(), &cat)
	require.NoError(t, err)
}
