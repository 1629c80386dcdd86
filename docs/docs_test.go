package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swaggo/swag"
)

// The swagger handler serves /swagger/doc.json from the registered spec;
// ReadDoc must render valid JSON covering the service routes.
func TestRegisteredSwaggerDoc(t *testing.T) {
	doc, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var spec map[string]any
	require.NoError(t, json.Unmarshal([]byte(doc), &spec))

	assert.Equal(t, "2.0", spec["swagger"])
	assert.Equal(t, "/api/v1/student-service", spec["basePath"])
	assert.Equal(t, "localhost:8080", spec["host"])

	info, ok := spec["info"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Student Service API", info["title"])

	paths, ok := spec["paths"].(map[string]any)
	require.True(t, ok)
	for _, route := range []string{
		"/createStudent",
		"/getStudentList",
		"/promote",
		"/promotionHistory/{id}",
		"/id-cards",
		"/marksheets",
		"/uploadDocuments",
		"/fee-structures",
		"/health",
	} {
		assert.Contains(t, paths, route)
	}
}
