// Package docs registers the OpenAPI document with swag so echo-swagger can
// serve it under /swagger/.
package docs

import (
	"github.com/KimJinHyeon0/vroom/internal/adapters/in/http/api"

	"github.com/swaggo/swag"
)

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Title:            "Job catalogue API",
	Description:      "Stores routing problems made of jobs and answers start-time feasibility questions.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  string(api.Document),
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
