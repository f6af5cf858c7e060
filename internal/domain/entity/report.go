package entity

// ReportRow is one flat row of the maintenance request export: a read-only
// projection of a request with its parties' identities expanded. Timestamps
// are pre-formatted as dates because the export is a human-facing spreadsheet.
type ReportRow struct {
	ID              string
	RequesterName   string
	RequesterEmail  string
	Description     string
	Category        string
	Status          string
	TechnicianName  string
	TechnicianEmail string
	CreatedAt       string
	ResolvedAt      string
	NoteCount       int
}
