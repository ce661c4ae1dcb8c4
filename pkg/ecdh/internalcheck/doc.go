// Package internalcheck holds source-policy tests for the ECDH core.
// The tests load the module with golang.org/x/tools/go/packages and
// walk the AST to enforce secret-hygiene rules that ordinary unit tests
// cannot see, such as the ban on hex-formatting key material.
package internalcheck
