package docs_test

import (
	"encoding/json"
	"testing"

	"github.com/belvip/logistic-application/internal/adapters/in/http/docs"
	"github.com/belvip/logistic-application/internal/adapters/in/http/servers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegister_ServesDocumentWithBasePath(t *testing.T) {
	doc, err := servers.GetSwagger()
	require.NoError(t, err)

	require.NoError(t, docs.Register(doc, "/api/v1"))
	require.NoError(t, docs.Register(doc, "/api/v2"), "registering twice must not panic")

	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var served struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Servers []struct {
			URL string `json:"url"`
		} `json:"servers"`
		Paths map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &served))

	assert.Equal(t, "Package Management API", served.Info.Title)
	require.Len(t, served.Servers, 1)
	assert.Equal(t, "/api/v2", served.Servers[0].URL)
	assert.Contains(t, served.Paths, "/packages/{id}")
	assert.Empty(t, doc.Servers, "source document is left untouched")
}
