package models

// FacultyID identifies one of the fixed faculties
type FacultyID string

const (
	FacultyMedicina           FacultyID = "medicina"
	FacultyDerecho            FacultyID = "derecho"
	FacultyIngenieriaSistemas FacultyID = "ingenieria-sistemas"
	FacultyCiencias           FacultyID = "ciencias"
	FacultyAdministracion     FacultyID = "administracion"
	FacultyFIEE               FacultyID = "fiee"
)

// Faculty is immutable reference data loaded at startup
type Faculty struct {
	ID        FacultyID `json:"id"`
	Name      string    `json:"name"`
	ShortName string    `json:"short_name"`
	Students  int       `json:"students"`
	Schools   []string  `json:"schools"`
	Color     string    `json:"color"`
	Emoji     string    `json:"emoji"`
}

// Course is a subject offered by a faculty
type Course struct {
	ID        string    `json:"id"`
	Code      string    `json:"code"` // e.g. "SIS-101"
	Name      string    `json:"name"`
	FacultyID FacultyID `json:"faculty_id"`
}
