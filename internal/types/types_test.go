package types

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentValidate(t *testing.T) {
	t.Run("collected student passes", func(t *testing.T) {
		require.NoError(t, NewStudent("Ada", 270, 3).Validate())
		require.NoError(t, NewStudent("Bob", 0, 0).Validate())
	})

	t.Run("missing name fails", func(t *testing.T) {
		err := NewStudent("", 270, 3).Validate()
		require.Error(t, err)

		var verrs validator.ValidationErrors
		require.True(t, errors.As(err, &verrs))
		require.Len(t, verrs, 1)
		assert.Equal(t, "Name", verrs[0].Field())
		assert.Equal(t, "required", verrs[0].Tag())
	})

	t.Run("zero value fails", func(t *testing.T) {
		assert.Error(t, Student{}.Validate())
	})
}
