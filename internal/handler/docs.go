package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// swaggerUIPage renders Swagger UI from the CDN against the served document.
const swaggerUIPage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1">
  <title>Pokedex API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.onload = () => {
      SwaggerUIBundle({
        url: "/api-docs/openapi.json",
        dom_id: "#swagger-ui",
      });
    };
  </script>
</body>
</html>`

// OpenAPISpec serves the OpenAPI document.
// GET /api-docs/openapi.json
func (s *Server) OpenAPISpec(c *gin.Context) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", s.openAPISpec)
}

// SwaggerUI serves the interactive API documentation page.
// GET /swagger-ui
func (s *Server) SwaggerUI(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerUIPage))
}
