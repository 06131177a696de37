// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// MetadataVersion is the current metadata format version.
const MetadataVersion = 1

// Metadata describes a completed conversion run. It is the contract with
// the slide viewer: a missing metadata file means no run completed, so the
// viewer never sees a slide directory and metadata that disagree.
type Metadata struct {
	// TotalPages is the number of slide images written.
	TotalPages int `json:"total_pages" yaml:"total_pages"`

	// Version is the metadata format version (MetadataVersion).
	Version int `json:"version" yaml:"version"`

	// GeneratedAt is the UTC completion time, RFC 3339 with a literal
	// Z suffix, second precision.
	GeneratedAt string `json:"generated_at" yaml:"generated_at"`

	// SourcePDF is the base name of the converted file.
	SourcePDF string `json:"source_pdf" yaml:"source_pdf"`
}
