// Package internal has shared collaborators for label preprocessing,
// value-to-color mapping and opening rendered artifacts.
package internal
