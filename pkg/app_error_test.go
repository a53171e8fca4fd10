package pkg

import (
	"errors"
	"net/http"
	"strings"
	"testing"
)

func TestAppError_ToHTTPErrorHidesCause(t *testing.T) {
	cause := errors.New("dial tcp 10.0.0.1:443: connection refused")
	appErr := NewDomainError("REMOTE_UNAVAILABLE", "Commerce platform unavailable", cause, http.StatusBadGateway)

	body := appErr.ToHTTPError()
	if body.Code != "REMOTE_UNAVAILABLE" || body.Message != "Commerce platform unavailable" {
		t.Fatalf("unexpected body: %+v", body)
	}
	if strings.Contains(body.Message, "10.0.0.1") {
		t.Fatalf("cause leaked into body: %+v", body)
	}
	if !errors.Is(appErr, cause) {
		t.Fatalf("expected AppError to unwrap to cause")
	}
	if !strings.Contains(appErr.Error(), "connection refused") {
		t.Fatalf("expected cause in Error(): %s", appErr.Error())
	}
}

func TestAppError_Simple(t *testing.T) {
	appErr := NewDomainErrorSimple("FORBIDDEN", "Forbidden", http.StatusForbidden)
	if appErr.HTTPStatus != http.StatusForbidden || appErr.Err != nil {
		t.Fatalf("unexpected app error: %+v", appErr)
	}
	if appErr.Error() != "FORBIDDEN: Forbidden" {
		t.Fatalf("unexpected Error(): %s", appErr.Error())
	}
}
