package api

import (
	_ "embed"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	middleware "github.com/oapi-codegen/nethttp-middleware"
	"github.com/samber/lo"
)

//go:embed openapi.json
var openAPISpec []byte

var (
	spec = lo.Must(openapi3.NewLoader().LoadFromData(openAPISpec))
)

// requestValidator rejects requests that do not match the OpenAPI document. Authentication is
// left to authenticate, the validator only checks shapes.
func requestValidator() func(http.Handler) http.Handler {
	return middleware.OapiRequestValidatorWithOptions(spec, &middleware.Options{
		Options: openapi3filter.Options{
			AuthenticationFunc: openapi3filter.NoopAuthenticationFunc,
		},
		ErrorHandler: func(w http.ResponseWriter, message string, statusCode int) {
			writeJSON(w, statusCode, errorBody{Error: message})
		},
	})
}
