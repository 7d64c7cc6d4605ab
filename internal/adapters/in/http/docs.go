// Package http exposes the order tracking use cases over REST.
//
// Routes, payloads and security requirements are described by the OpenAPI
// document embedded in the servers package. Requests are validated against
// that document before reaching Server, and bearer tokens are checked by
// Authenticator as part of the same validation step.
//
// The document is registered with swag so that Swagger UI under /swagger/
// serves it as doc.json.
package http

import (
	"ordertrack/internal/generated/servers"

	"github.com/swaggo/swag"
)

type apiDoc struct{}

func (apiDoc) ReadDoc() string {
	return string(servers.Spec())
}

func init() {
	swag.Register(swag.Name, apiDoc{})
}
