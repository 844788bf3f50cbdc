package schemas_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/jobmatch/internal/schemas"
	schemafiles "github.com/jonathan/jobmatch/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var schemaFiles = []string{
	"job_requirement.schema.json",
}

func TestAllSchemaFiles_ValidJSON(t *testing.T) {
	for _, schemaFile := range schemaFiles {
		t.Run(schemaFile, func(t *testing.T) {
			data, err := os.ReadFile(filepath.Join(".", schemaFile))
			require.NoError(t, err, "should be able to read schema file")

			var schemaObj map[string]interface{}
			require.NoError(t, json.Unmarshal(data, &schemaObj), "schema file should be valid JSON: %s", schemaFile)

			_, hasSchema := schemaObj["$schema"]
			_, hasProps := schemaObj["properties"]
			assert.True(t, hasSchema && hasProps, "schema should declare $schema and properties")
		})
	}
}

func TestEmbeddedSchema_MatchesFile(t *testing.T) {
	data, err := os.ReadFile("job_requirement.schema.json")
	require.NoError(t, err)
	assert.Equal(t, string(data), schemafiles.JobRequirement)
}

func TestJobRequirementSchema_ValidatesFiles(t *testing.T) {
	schemaPath := "job_requirement.schema.json"

	assert.NoError(t, schemas.ValidateJSON(schemaPath, "../testdata/valid/job_requirement.json"))

	err := schemas.ValidateJSON(schemaPath, "../testdata/invalid/wrong_type.json")
	require.Error(t, err)
	_, ok := err.(*schemas.ValidationError)
	assert.True(t, ok, "should be a ValidationError, got %v", err)
}
