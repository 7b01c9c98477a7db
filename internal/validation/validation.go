// Package validation binds request payloads and enforces the rules
// declared in their validator struct tags, converting failures into
// field-level errors the client can render.
package validation
