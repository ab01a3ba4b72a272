// Package git wraps the git CLI with typed queries and mutations.
//
// Every call shells out through the cmd package; nothing is cached. Parsers
// accept exactly the shapes git documents for its machine-readable output
// (porcelain status, --no-color ref listings, field-delimited log formats)
// and fail loudly on anything else.
package git
