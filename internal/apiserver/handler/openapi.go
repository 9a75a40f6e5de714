package handler

import (
	"context"
	_ "embed"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/gin-gonic/gin"
	"github.com/luhambo/maintenance/pkg/version"
)

//go:embed openapi.yaml
var openAPISpec []byte

// OpenAPI serves the API description, validated once at construction
type OpenAPI struct {
	doc *openapi3.T
}

func NewOpenAPI(basePath string) (*OpenAPI, error) {
	doc, err := LoadOpenAPI(context.Background())
	if err != nil {
		return nil, err
	}
	doc.Info.Version = version.Get()
	doc.Servers = openapi3.Servers{{URL: basePath}}
	return &OpenAPI{doc: doc}, nil
}

// LoadOpenAPI parses and validates the embedded document
func LoadOpenAPI(ctx context.Context) (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	loader.Context = ctx
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAPI document: %w", err)
	}
	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return doc, nil
}

func (h *OpenAPI) Document(c *gin.Context) {
	c.JSON(http.StatusOK, h.doc)
}
