package exception

import (
	"net/http"
	"testing"
)

func TestCustomError_ParamSubstitution(t *testing.T) {
	err := &CustomError{
		Status:  http.StatusNotFound,
		Code:    EntityNotFound,
		Message: EntityNotFoundMsg,
		Params:  map[string]interface{}{"entity": "task", "id": "42"},
	}
	if got := err.Error(); got != "task with id 42 is not found" {
		t.Fatalf("unexpected message: %q", got)
	}
}

func TestCustomError_NoParams(t *testing.T) {
	err := CustomError{Message: InvalidCredentialsMsg}
	if got := err.Error(); got != InvalidCredentialsMsg {
		t.Fatalf("unexpected message: %q", got)
	}
}
