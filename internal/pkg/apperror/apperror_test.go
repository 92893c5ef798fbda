package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/cmlabs-hris/timebank-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	errConflict := New(KindConflict, "already there")

	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"sentinel", errConflict, KindConflict},
		{"wrapped sentinel", fmt.Errorf("create: %w", errConflict), KindConflict},
		{"validation list", validator.ValidationErrors{{Field: "from", Message: "required"}}, KindValidation},
		{"wrapped validation list", fmt.Errorf("x: %w", validator.ValidationErrors{{Field: "a", Message: "b"}}), KindValidation},
		{"unknown", errors.New("connection reset"), KindInternal},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, KindOf(c.err))
		})
	}
}

func TestError_IsKeepsIdentity(t *testing.T) {
	errNotFound := New(KindNotFound, "missing")
	wrapped := fmt.Errorf("lookup: %w", errNotFound)

	assert.True(t, errors.Is(wrapped, errNotFound))
	assert.Equal(t, "missing", errNotFound.Error())
}
