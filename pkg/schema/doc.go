// Package schema exports widget field schemas for hosts: as a descriptor
// document and as an OpenAPI object schema that can validate stored
// settings before they are rendered.
package schema
