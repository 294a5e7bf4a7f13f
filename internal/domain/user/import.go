package user

// Column headers of the bulk import spreadsheet, in template order.
const (
	ColumnFirstName   = "First Name"
	ColumnLastName    = "Last Name"
	ColumnEmail       = "Email"
	ColumnPhoneNumber = "Phone Number"
	ColumnPANNumber   = "PAN Number"
)

var ImportColumns = []string{
	ColumnFirstName,
	ColumnLastName,
	ColumnEmail,
	ColumnPhoneNumber,
	ColumnPANNumber,
}

var fieldColumns = map[string]string{
	FieldFirstName:   ColumnFirstName,
	FieldLastName:    ColumnLastName,
	FieldEmail:       ColumnEmail,
	FieldPhoneNumber: ColumnPhoneNumber,
	FieldPANNumber:   ColumnPANNumber,
}

// ColumnForField maps a logical field name to its spreadsheet header.
func ColumnForField(field string) string {
	return fieldColumns[field]
}

// ImportRow is one data line of an uploaded sheet. Number is the physical
// sheet row, so the first data row under the header is row 2.
type ImportRow struct {
	Number int
	Cells  map[string]string
}

func (r ImportRow) Cell(column string) string {
	return r.Cells[column]
}

type RowErrorKind string

const (
	RowErrorRequiredField    RowErrorKind = "required_field"
	RowErrorInvalidFormat    RowErrorKind = "invalid_format"
	RowErrorDuplicateInFile  RowErrorKind = "duplicate_in_file"
	RowErrorDuplicateInStore RowErrorKind = "duplicate_in_store"
)

type RowError struct {
	Row     int          `json:"row"`
	Field   string       `json:"field,omitempty"`
	Kind    RowErrorKind `json:"kind"`
	Message string       `json:"error"`
}

type ImportResult struct {
	Success       bool       `json:"success"`
	Message       string     `json:"message"`
	ImportedCount int        `json:"imported_count"`
	Errors        []RowError `json:"errors,omitempty"`
}

type ImportOutcome string

const (
	ImportOutcomeImported    ImportOutcome = "imported"
	ImportOutcomeInvalidFile ImportOutcome = "invalid_file"
	ImportOutcomeRejected    ImportOutcome = "rejected"
	ImportOutcomeConflicted  ImportOutcome = "conflicted"
	ImportOutcomeFailed      ImportOutcome = "failed"
)
