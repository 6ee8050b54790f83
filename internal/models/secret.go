package models

// SecretEntry is a single scalar value held by the secret store
type SecretEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}
