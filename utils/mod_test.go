package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]string{"a", "b", "b"}, "b"))
	require.Equal(t, -1, FindIndex([]int{1, 2}, 3))
}

func TestCountDistinct(t *testing.T) {
	require.Equal(t, 3, CountDistinct([]int{1, 2}, []int{2, 3}, nil))
	require.Zero(t, CountDistinct[int]())
}
