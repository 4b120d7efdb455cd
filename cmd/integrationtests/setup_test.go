package integrationtests

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	auction "auction-house/internal/auctionService"
	"auction-house/internal/config"
	"auction-house/internal/credentials"
	identity "auction-house/internal/identityService"
	model "auction-house/internal/models"
	"auction-house/internal/repository"
	"auction-house/internal/server"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "integration-test-secret"

// SetupTestRouter wires the full stack over an in-memory repository and seeds
// it with the given auction items. Password hashing runs at minimum cost to
// keep the suite fast.
func SetupTestRouter(cfg config.Config, items ...model.AuctionItem) *gin.Engine {
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepo()
	for _, item := range items {
		if err := repo.CreateAuction(item); err != nil {
			panic(err)
		}
	}

	hasher := credentials.NewPasswordHasherWithCost(bcrypt.MinCost)
	tokens := credentials.NewTokenIssuer(testSecret)
	identityService := identity.NewIdentityService(repo, hasher, tokens)
	auctionService := auction.NewAuctionService(repo)

	return server.SetupRouter(cfg, identityService, auctionService, tokens)
}

// ExecuteRequest executes an HTTP request and returns the response recorder.
func ExecuteRequest(t *testing.T, router *gin.Engine, method, url string, body []byte) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// ExecuteRequestAndParse executes an HTTP request on the given router and
// parses the JSON envelope. An optional bearer token is sent when non-empty.
func ExecuteRequestAndParse(t *testing.T, router *gin.Engine, method, url string, body any, token ...string) (map[string]any, *httptest.ResponseRecorder) {
	t.Helper()

	var reqBody []byte
	var err error

	switch v := body.(type) {
	case nil:
	case []byte:
		reqBody = v
	case string:
		reqBody = []byte(v)
	default:
		reqBody, err = json.Marshal(v)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, url, bytes.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	if len(token) > 0 && token[0] != "" {
		req.Header.Set("Authorization", "Bearer "+token[0])
	}
	router.ServeHTTP(w, req)

	var resp map[string]any
	if len(w.Body.Bytes()) > 0 {
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
	}

	return resp, w
}

// Data extracts the envelope's data object, failing the test if it is absent.
func Data(t *testing.T, resp map[string]any) map[string]any {
	t.Helper()

	data, ok := resp["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", resp)
	}
	return data
}
