package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsValidStyle(t *testing.T) {
	t.Run("valid styles", func(t *testing.T) {
		valid := []string{
			StyleNeutral,
			StyleSuccess,
			StyleError,
			StyleInfo,
			StyleWarning,
		}
		for _, v := range valid {
			require.True(t, IsValidStyle(v), "expected valid style: %q", v)
		}
	})

	t.Run("invalid styles", func(t *testing.T) {
		invalid := []string{"ok", "Success", "errors", " "}
		for _, v := range invalid {
			require.False(t, IsValidStyle(v), "expected invalid style: %q", v)
		}
	})
}
