package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAtLine(t *testing.T) {
	require.Equal(t, "[line 12]", AtLine(12))
	require.Equal(t, "[line 1]", AtLine(1))
}
