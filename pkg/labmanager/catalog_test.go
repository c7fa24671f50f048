package labmanager

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCatalogComplete(t *testing.T) {
	require.Equal(t, len(publicOps)+len(internalOps), len(catalog),
		"duplicate operation names collapse catalog entries")

	for _, op := range publicOps {
		require.Equal(t, endpointPublic, catalog[op.Name].Endpoint, op.Name)
	}
	for _, op := range internalOps {
		require.Equal(t, endpointInternal, catalog[op.Name].Endpoint, op.Name)
	}
}

func TestCatalogDeclarationsConsistent(t *testing.T) {
	for name, op := range catalog {
		require.Equal(t, name, op.Name)

		// Item names only make sense for list results.
		if op.Item != "" {
			require.Equal(t, shapeList, op.Shape, name)
		}

		// Optional parameters must trail required ones: arguments are
		// positional, so a gap could never be expressed by a caller.
		seenOptional := false
		for _, p := range op.Params {
			if seenOptional {
				require.True(t, p.Optional, "%s: required %q after optional", name, p.Name)
			}
			seenOptional = seenOptional || p.Optional
			require.NotEmpty(t, p.Name, name)
		}
	}
}

func TestEndpointString(t *testing.T) {
	require.Equal(t, "public", endpointPublic.String())
	require.Equal(t, "internal", endpointInternal.String())
}
