package docs

import (
	_ "embed"
	"encoding/json"
	"sort"
	"strings"

	"github.com/swaggo/swag"
)

//go:embed swagger.json
var swaggerJSON []byte

// SwaggerSpec represents the structure of our swagger.json file
type SwaggerSpec struct {
	Paths map[string]map[string]PathInfo `json:"paths"`
}

// PathInfo contains information about an API endpoint
type PathInfo struct {
	Summary     string                 `json:"summary"`
	Description string                 `json:"description"`
	Tags        []string               `json:"tags"`
	Parameters  []interface{}          `json:"parameters"`
	Responses   map[string]interface{} `json:"responses"`
}

// Endpoint is one method on one path.
type Endpoint struct {
	Method  string
	Path    string
	Summary string
}

// GetSwaggerSpec returns the parsed swagger specification
func GetSwaggerSpec() (*SwaggerSpec, error) {
	var spec SwaggerSpec
	if err := json.Unmarshal(swaggerJSON, &spec); err != nil {
		return nil, err
	}
	return &spec, nil
}

// Endpoints lists every documented endpoint sorted by path then method.
func (s *SwaggerSpec) Endpoints() []Endpoint {
	var out []Endpoint
	for path, methods := range s.Paths {
		for method, info := range methods {
			out = append(out, Endpoint{
				Method:  strings.ToUpper(method),
				Path:    path,
				Summary: info.Summary,
			})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Path != out[j].Path {
			return out[i].Path < out[j].Path
		}
		return out[i].Method < out[j].Method
	})
	return out
}

type doc struct{}

func (doc) ReadDoc() string {
	return string(swaggerJSON)
}

func init() {
	swag.Register(swag.Name, doc{})
}
