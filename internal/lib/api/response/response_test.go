package response

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Name  string `validate:"required,max=3"`
	Count int    `validate:"gt=0"`
	From  int
	To    int      `validate:"gtefield=From"`
	Tags  []string `validate:"min=1"`
	Mail  string   `validate:"omitempty,email"`
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := validator.New().Struct(sample{From: 5, To: 1, Tags: []string{}, Mail: "nope"})

	var validateErr validator.ValidationErrors
	require.True(t, errors.As(err, &validateErr))

	resp := ValidationError(validateErr)

	assert.Equal(t, StatusError, resp.Status)
	assert.Equal(t,
		"field Name is a required field, "+
			"field Count must be greater than 0, "+
			"field To must not be before From, "+
			"field Tags must be at least 1, "+
			"field Mail is not valid",
		resp.Error,
	)
}

func TestConstructors(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Response{Status: StatusOK}, OK())
	assert.Equal(t, Response{Status: StatusOK, Message: "done"}, Message("done"))
	assert.Equal(t, Response{Status: StatusError, Error: "boom"}, Error("boom"))
}
