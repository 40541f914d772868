package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProviderFlags(t *testing.T) {
	flags := providerFlags()
	require.Len(t, flags, 4)

	names := make([]string, 0, len(flags))
	for _, f := range flags {
		names = append(names, f.Names()[0])
	}
	assert.Equal(t, []string{"project", "manifest", "python", "settings"}, names)
}

func TestProviderFlags_FreshSliceEachCall(t *testing.T) {
	// Each command appends its own flags to the shared set; the base slice
	// must not be aliased between commands.
	a := providerFlags()
	b := providerFlags()
	assert.NotSame(t, &a[0], &b[0])
}
