package resolver_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Goden-Gun/fault-lib/pkg/resolver"
)

func TestStatic_GetMessage(t *testing.T) {
	t.Parallel()

	catalog := map[string]map[string]string{
		"NOT_FOUND": {
			"title":  "Resource Not Found",
			"detail": "the requested resource does not exist",
		},
	}
	res := resolver.NewStatic(catalog)

	text, ok := res.GetMessage("NOT_FOUND", "title")
	require.True(t, ok)
	assert.Equal(t, "Resource Not Found", text)

	_, ok = res.GetMessage("NOT_FOUND", "hint")
	assert.False(t, ok)

	_, ok = res.GetMessage("UNKNOWN_KEY", "title")
	assert.False(t, ok)
}

func TestStatic_CopiesCatalog(t *testing.T) {
	t.Parallel()

	catalog := map[string]map[string]string{
		"BAD_REQUEST": {"title": "Bad Request"},
	}
	res := resolver.NewStatic(catalog)

	catalog["BAD_REQUEST"]["title"] = "mutated"
	text, ok := res.GetMessage("BAD_REQUEST", "title")
	require.True(t, ok)
	assert.Equal(t, "Bad Request", text)
}

func TestStatic_NilReceiverAndEmptyCatalog(t *testing.T) {
	t.Parallel()

	var nilRes *resolver.Static
	_, ok := nilRes.GetMessage("ANY", "title")
	assert.False(t, ok)

	empty := resolver.NewStatic(nil)
	_, ok = empty.GetMessage("ANY", "title")
	assert.False(t, ok)
}
