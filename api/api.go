// Package api embeds the OpenAPI description of the package service.
package api

import (
	_ "embed"
)

// OpenAPISpec is the raw openapi.yml document.
//
//go:embed openapi.yml
var OpenAPISpec []byte
