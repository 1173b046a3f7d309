// Package validator checks request structs against their `validate` tags and
// reports failures as a field-to-message map keyed by JSON name.
package validator
