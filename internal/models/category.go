package models

// CategoryID identifies one of the fixed post categories
type CategoryID string

const (
	CategoryDiscusiones   CategoryID = "discusiones"
	CategoryTalleres      CategoryID = "talleres"
	CategoryApuntes       CategoryID = "apuntes"
	CategoryInvestigacion CategoryID = "investigacion"
	CategoryEventos       CategoryID = "eventos"
	CategoryRecursos      CategoryID = "recursos"
)

// Category is immutable reference data loaded at startup
type Category struct {
	ID          CategoryID `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Color       string     `json:"color"`     // tailwind gradient used by the cards
	IconName    string     `json:"icon_name"` // lucide icon name
}
