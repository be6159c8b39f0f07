// Package docs registers the OpenAPI document with swag so that
// echo-swagger can serve it at /swagger/doc.json.
package docs

import (
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "",
	Host:             "",
	BasePath:         "",
	Schemes:          []string{},
	Title:            "",
	Description:      "",
	InfoInstanceName: swag.Name,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

var registerOnce sync.Once

// Register publishes doc with basePath as its only server.
func Register(doc *openapi3.T, basePath string) error {
	served := *doc
	served.Servers = openapi3.Servers{{URL: basePath}}

	raw, err := served.MarshalJSON()
	if err != nil {
		return err
	}

	SwaggerInfo.BasePath = basePath
	SwaggerInfo.SwaggerTemplate = escapeDelims(string(raw))
	if doc.Info != nil {
		SwaggerInfo.Version = doc.Info.Version
		SwaggerInfo.Title = doc.Info.Title
		SwaggerInfo.Description = doc.Info.Description
	}

	registerOnce.Do(func() {
		swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
	})
	return nil
}

// escapeDelims keeps literal template delimiters in the document from being
// interpreted by swag's text/template rendering.
func escapeDelims(s string) string {
	return strings.NewReplacer(
		"{{", `{{"{{"}}`,
		"}}", `{{"}}"}}`,
	).Replace(s)
}
