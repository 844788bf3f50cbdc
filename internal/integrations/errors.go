// Package integrations implements the external passthrough calls: Azure AI Search, chat
// answers, embeddings and the Databricks SQL warehouse. Each call issues one outbound request
// and never retries.
package integrations

import "fmt"

// ErrNotConfigured indicates the integration has no credentials.
type ErrNotConfigured struct {
	Integration string
}

func (e *ErrNotConfigured) Error() string {
	return fmt.Sprintf("%s integration is not configured", e.Integration)
}

// Integration names, used in logs and errors.
const (
	NameSearch    = "azure-search"
	NameAnswer    = "generate-answer"
	NameEmbedding = "generate-embedding"
	NameWarehouse = "databricks-query"
)
