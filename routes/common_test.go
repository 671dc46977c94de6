package routes

import (
	"io"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"scrawl-notes/scrawl/services"
)

var (
	testUserID  = uuid.Must(uuid.Parse("90a12345-f12a-98c4-a456-513432930000"))
	testAuth    = services.NewAuthService("test-secret", 1)
	knownFolder = "123e4567-e89b-12d3-a456-426614174000"
	knownNote   = "223e4567-e89b-12d3-a456-426614174000"
	knownTag    = "323e4567-e89b-12d3-a456-426614174000"
)

// authedRequest builds a request carrying a real signed token for the test
// user so it passes the auth middleware.
func authedRequest(t *testing.T, method, target string, body io.Reader) *http.Request {
	t.Helper()

	token, err := testAuth.CreateToken(testUserID, "exampleUser")
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	req, err := http.NewRequest(method, target, body)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}
