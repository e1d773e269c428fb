package errs

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, http.StatusOK},
		{"validation", Validation("bad"), http.StatusBadRequest},
		{"unauthenticated", Unauthenticated("who"), http.StatusUnauthorized},
		{"forbidden", PermissionDenied("no"), http.StatusForbidden},
		{"not found", NotFound("gone"), http.StatusNotFound},
		{"wrapped", fmt.Errorf("get article: %w", NotFound("gone")), http.StatusNotFound},
		{"bare kind", ErrPermissionDenied, http.StatusForbidden},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Status(tc.err))
		})
	}
}

func TestMessageHidesInternalDetail(t *testing.T) {
	assert.Equal(t, "Internal Server Error", Message(errors.New("pq: relation \"users\" does not exist")))
	assert.Equal(t, "username already exists", Message(fmt.Errorf("create user: %w", Validation("username already exists"))))
	assert.Equal(t, "Not Found", Message(ErrNotFound))
}
