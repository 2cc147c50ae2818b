package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAffinityMask(t *testing.T) {
	cases := []struct {
		name string
		cpus []int
		want uint64
	}{
		{"single cpu", []int{0}, 0x1},
		{"first three", []int{0, 1, 2}, 0x7},
		{"big cores only", []int{4, 5, 6, 7}, 0xf0},
		{"sparse", []int{1, 3}, 0xa},
		{"duplicates", []int{2, 2, 2}, 0x4},
		{"none", nil, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			mask, err := AffinityMask(tc.cpus)
			require.NoError(t, err)
			assert.Equal(t, tc.want, mask)
		})
	}
}

func TestAffinityMaskRejectsOutOfRange(t *testing.T) {
	_, err := AffinityMask([]int{-1})
	require.Error(t, err)

	_, err = AffinityMask([]int{64})
	require.Error(t, err)

	_, err = AffinityMask([]int{63})
	require.NoError(t, err)
}
