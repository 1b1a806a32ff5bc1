package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"book_market/internal/domain"
	"book_market/internal/middleware"
	"book_market/internal/onboarding"
	"book_market/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// --- helpers ---

// brokenStore fails all writes
type brokenStore struct {
	onboarding.Store
}

func (b brokenStore) Set(context.Context, string, any) error {
	return errors.New("store unavailable")
}

func sellerRouter(kv onboarding.Store, secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	g := r.Group("/seller")
	g.Use(middleware.JWTAuthMiddleware(secret))
	g.GET("", SellerStateHandler(kv))
	g.POST("", SellerRegisterHandler(kv))
	return r
}

func bearerFor(t *testing.T, email, secret string) string {
	t.Helper()
	user := &domain.User{ID: 1, Name: "Jane", Email: email, UserType: domain.TypeUser}
	token, err := utils.GenerateJWT(user, secret)
	require.NoError(t, err)
	return "Bearer " + token
}

func doSeller(t *testing.T, r *gin.Engine, method, auth string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, "/seller", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, "/seller", nil)
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// --- tests ---

func TestSellerState_RequiresAuth(t *testing.T) {
	t.Parallel()

	r := sellerRouter(onboarding.NewMemoryStore(), "secret")
	w := doSeller(t, r, http.MethodGet, "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSellerState_AwaitingBeforeRegistration(t *testing.T) {
	t.Parallel()

	r := sellerRouter(onboarding.NewMemoryStore(), "secret")
	auth := bearerFor(t, "jane@x.com", "secret")

	w := doSeller(t, r, http.MethodGet, auth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "awaiting_registration")
}

func TestSellerRegister_FullFlow(t *testing.T) {
	t.Parallel()

	kv := onboarding.NewMemoryStore()
	r := sellerRouter(kv, "secret")
	auth := bearerFor(t, "jane@x.com", "secret")
	payload := []byte(`{"shopName":"Jane's Books"}`)

	// Submit the seller profile
	w := doSeller(t, r, http.MethodPost, auth, payload)
	require.Equal(t, http.StatusCreated, w.Code)
	require.Contains(t, w.Body.String(), "registered")

	// The profile is durable under seller_<email>
	var profile map[string]any
	found, err := kv.Get(context.Background(), onboarding.SellerKey("jane@x.com"), &profile)
	require.NoError(t, err)
	require.True(t, found)
	require.Equal(t, "Jane's Books", profile["shopName"])

	// A later load with the same session resolves to Registered: dashboard, not form
	w = doSeller(t, r, http.MethodGet, auth, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var state struct {
		State string `json:"state"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &state))
	require.Equal(t, "registered", state.State)

	// Registration is one-directional; a second submit conflicts
	w = doSeller(t, r, http.MethodPost, auth, payload)
	require.Equal(t, http.StatusConflict, w.Code)
}

func TestSellerRegister_StoreFailureStaysAwaiting(t *testing.T) {
	t.Parallel()

	kv := onboarding.NewMemoryStore()
	r := sellerRouter(brokenStore{Store: kv}, "secret")
	auth := bearerFor(t, "jane@x.com", "secret")

	w := doSeller(t, r, http.MethodPost, auth, []byte(`{"shopName":"Jane's Books"}`))
	require.Equal(t, http.StatusBadGateway, w.Code)
	require.Contains(t, w.Body.String(), "awaiting_registration")

	// Nothing was persisted
	has, err := kv.Has(context.Background(), onboarding.SellerKey("jane@x.com"))
	require.NoError(t, err)
	require.False(t, has)
}

func TestSellerRegister_RejectsEmptyProfile(t *testing.T) {
	t.Parallel()

	r := sellerRouter(onboarding.NewMemoryStore(), "secret")
	auth := bearerFor(t, "jane@x.com", "secret")

	w := doSeller(t, r, http.MethodPost, auth, []byte(`{}`))
	require.Equal(t, http.StatusBadRequest, w.Code)
}
