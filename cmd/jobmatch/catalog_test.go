package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogCommand(t *testing.T) {
	out, err := executeCommand(t, "catalog", "job-types")
	require.NoError(t, err)
	assert.Contains(t, out, "IT・エンジニア")
	assert.Contains(t, out, "法人営業、個人営業")

	out, err = executeCommand(t, "catalog", "locations")
	require.NoError(t, err)
	assert.Contains(t, out, "新宿区")

	out, err = executeCommand(t, "catalog", "skills")
	require.NoError(t, err)
	assert.Contains(t, out, "VBA\n")
}

func TestCatalogCommand_Unknown(t *testing.T) {
	_, err := executeCommand(t, "catalog", "salaries")
	assert.ErrorContains(t, err, "unknown catalog")
}
