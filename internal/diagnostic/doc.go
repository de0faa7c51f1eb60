// Package diagnostic collects warnings and errors produced while resolving
// generation targets, keeping human-readable context (type name, code,
// suggestions) attached to each message.
package diagnostic
