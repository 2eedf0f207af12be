package db

import _ "embed"

// Schema holds the bootstrap SQL for local development and test databases.
//
//go:embed schema.sql
var Schema string
