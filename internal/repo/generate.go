// Package repo contains the ent-generated database client.
//
// The generated code is not committed; run `go generate ./internal/repo`
// after changing anything under internal/schema.
package repo

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate --target . --feature sql/upsert,sql/lock ../schema
