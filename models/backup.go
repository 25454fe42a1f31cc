package models

// BackupVersion is the schema tag written into every exported backup
// document. Importers branch on it when the shape evolves.
const BackupVersion = "1.0.0"

// BackupDocument is the portable, self-describing backup of the full record
// set plus the single-value slots. Absent fields default on import rather
// than fail: a backup missing entries, people, profile or settings is still
// accepted.
type BackupDocument struct {
	Entries  []Entry   `json:"entries"`
	People   []Person  `json:"people"`
	Profile  *Profile  `json:"profile,omitempty"`
	Settings *Settings `json:"settings,omitempty"`

	// Version is the schema tag, see BackupVersion.
	Version string `json:"version"`

	// Timestamp is the export wall-clock time in RFC 3339 (sortable).
	Timestamp string `json:"timestamp"`
}
