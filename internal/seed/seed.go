// Package seed holds the reference data and the initial collections every
// forum instance starts from.
package seed

import (
	"time"

	"github.com/sanmarcos/conecta/backend/internal/models"
)

// DefaultUserID is the roster user a session acts as before logging in
const DefaultUserID = "user-1"

// Categories returns the fixed post categories
func Categories() []models.Category {
	return []models.Category{
		{
			ID:          models.CategoryDiscusiones,
			Title:       "Discusiones",
			Description: "Participa en debates académicos y comparte tus opiniones con otros estudiantes.",
			Color:       "from-blue-500 to-blue-600",
			IconName:    "MessageSquare",
		},
		{
			ID:          models.CategoryTalleres,
			Title:       "Talleres",
			Description: "Descubre y comparte talleres y actividades prácticas.",
			Color:       "from-purple-500 to-purple-600",
			IconName:    "Lightbulb",
		},
		{
			ID:          models.CategoryApuntes,
			Title:       "Apuntes y Materiales",
			Description: "Comparte tus apuntes, resúmenes y material de estudio.",
			Color:       "from-emerald-500 to-emerald-600",
			IconName:    "BookOpen",
		},
		{
			ID:          models.CategoryInvestigacion,
			Title:       "Investigación",
			Description: "Conecta con grupos de investigación y comparte avances de tus proyectos.",
			Color:       "from-amber-500 to-amber-600",
			IconName:    "Users",
		},
		{
			ID:          models.CategoryEventos,
			Title:       "Eventos Académicos",
			Description: "Infórmate sobre conferencias, seminarios y actividades académicas.",
			Color:       "from-rose-500 to-rose-600",
			IconName:    "Calendar",
		},
		{
			ID:          models.CategoryRecursos,
			Title:       "Recursos Recomendados",
			Description: "Comparte libros, cursos, videos y herramientas útiles.",
			Color:       "from-indigo-500 to-indigo-600",
			IconName:    "FileText",
		},
	}
}

// Faculties returns the fixed faculties
func Faculties() []models.Faculty {
	return []models.Faculty{
		{
			ID:        models.FacultyMedicina,
			Name:      "Facultad de Medicina",
			ShortName: "Medicina",
			Students:  3200,
			Schools:   []string{"Medicina Humana", "Obstetricia", "Enfermería", "Tecnología Médica"},
			Color:     "from-red-500 to-red-600",
			Emoji:     "🏥",
		},
		{
			ID:        models.FacultyDerecho,
			Name:      "Facultad de Derecho y Ciencia Política",
			ShortName: "Derecho",
			Students:  2800,
			Schools:   []string{"Derecho", "Ciencia Política"},
			Color:     "from-blue-500 to-blue-600",
			Emoji:     "⚖️",
		},
		{
			ID:        models.FacultyIngenieriaSistemas,
			Name:      "Facultad de Ingeniería de Sistemas e Informática",
			ShortName: "FISI",
			Students:  2200,
			Schools:   []string{"Ingeniería de Sistemas", "Ingeniería de Software", "Ciencia de la Computación"},
			Color:     "from-sky-500 to-sky-600",
			Emoji:     "💻",
		},
		{
			ID:        models.FacultyCiencias,
			Name:      "Facultad de Ciencias",
			ShortName: "Ciencias",
			Students:  2500,
			Schools:   []string{"Matemáticas", "Física", "Química", "Estadística"},
			Color:     "from-green-500 to-green-600",
			Emoji:     "🔬",
		},
		{
			ID:        models.FacultyAdministracion,
			Name:      "Facultad de Ciencias Administrativas",
			ShortName: "Administración",
			Students:  2600,
			Schools:   []string{"Administración", "Turismo", "Marketing"},
			Color:     "from-purple-500 to-purple-600",
			Emoji:     "💼",
		},
		{
			ID:        models.FacultyFIEE,
			Name:      "Facultad de Ingeniería Electrónica y Eléctrica",
			ShortName: "FIEE",
			Students:  1700,
			Schools:   []string{"Ingeniería Electrónica", "Ingeniería Eléctrica", "Ingeniería de Telecomunicaciones"},
			Color:     "from-orange-500 to-orange-600",
			Emoji:     "⚡",
		},
	}
}

// Courses returns the subjects offered per faculty
func Courses() []models.Course {
	return []models.Course{
		{ID: "sis101", Code: "SIS-101", Name: "Introducción a la Programación", FacultyID: models.FacultyIngenieriaSistemas},
		{ID: "sis201", Code: "SIS-201", Name: "Estructuras de Datos", FacultyID: models.FacultyIngenieriaSistemas},
		{ID: "sis301", Code: "SIS-301", Name: "Bases de Datos", FacultyID: models.FacultyIngenieriaSistemas},
		{ID: "mat101", Code: "MAT-101", Name: "Cálculo I", FacultyID: models.FacultyCiencias},
		{ID: "mat201", Code: "MAT-201", Name: "Álgebra Lineal", FacultyID: models.FacultyCiencias},
		{ID: "med101", Code: "MED-101", Name: "Anatomía Humana I", FacultyID: models.FacultyMedicina},
		{ID: "der101", Code: "DER-101", Name: "Introducción al Derecho", FacultyID: models.FacultyDerecho},
	}
}

// Users returns a fresh copy of the roster. The last entry is the
// moderation account used by the admin tools.
func Users() []models.User {
	return []models.User{
		{
			ID:        "user-1",
			Name:      "Alonso Moreno",
			FacultyID: models.FacultyIngenieriaSistemas,
			Program:   "Ingeniería de Sistemas",
			Email:     "alonso.moreno@unmsm.edu.pe",
		},
		{
			ID:        "user-2",
			Name:      "María López",
			FacultyID: models.FacultyCiencias,
			Program:   "Matemáticas",
			Email:     "maria.lopez@unmsm.edu.pe",
		},
		{
			ID:        "user-3",
			Name:      "Carlos Pérez",
			FacultyID: models.FacultyIngenieriaSistemas,
			Program:   "Ingeniería de Software",
			Email:     "carlos.perez@unmsm.edu.pe",
		},
		{
			ID:        "user-4",
			Name:      "Ana Castillo",
			FacultyID: models.FacultyMedicina,
			Program:   "Medicina Humana",
			Email:     "ana.castillo@unmsm.edu.pe",
		},
		{
			ID:        "user-5",
			Name:      "Moderación Conecta",
			FacultyID: models.FacultyIngenieriaSistemas,
			Program:   "Equipo de moderación",
			Email:     "admin@unmsm.edu.pe",
		},
	}
}

// Posts returns the initial posts, newest first, stamped at now
func Posts(now time.Time) []models.Post {
	return []models.Post{
		{
			ID:         "p1",
			Title:      "Duda sobre integrales en Cálculo I",
			Content:    "Hola, ¿alguien podría explicar la diferencia entre integral definida e indefinida con un ejemplo relacionado a física?",
			CategoryID: models.CategoryDiscusiones,
			FacultyID:  models.FacultyCiencias,
			Author:     "María López",
			AuthorID:   "user-2",
			CreatedAt:  now,
			CourseID:   strPtr("mat101"),
		},
		{
			ID:         "p2",
			Title:      "Apuntes de Álgebra Lineal – FISI 2025-I",
			Content:    "Comparto mis apuntes de Álgebra Lineal (espacios vectoriales, transformaciones lineales y autovalores). Si alguien tiene ejercicios resueltos, sería genial que los comparta.",
			CategoryID: models.CategoryApuntes,
			FacultyID:  models.FacultyIngenieriaSistemas,
			Author:     "Alonso Moreno",
			AuthorID:   "user-1",
			CreatedAt:  now,
			CourseID:   strPtr("mat201"),
		},
		{
			ID:         "p3",
			Title:      "Taller de introducción a Git y GitHub",
			Content:    "Este sábado tendremos un taller introductorio a control de versiones con Git y GitHub para alumnos de primer ciclo.",
			CategoryID: models.CategoryTalleres,
			FacultyID:  models.FacultyIngenieriaSistemas,
			Author:     "Carlos Pérez",
			AuthorID:   "user-3",
			CreatedAt:  now,
			CourseID:   strPtr("sis101"),
		},
		{
			ID:         "p4",
			Title:      "Convocatoria a grupo de investigación en IA aplicada a salud",
			Content:    "Estamos formando un grupo de investigación para trabajar en proyectos de IA aplicada a imágenes médicas. Buscamos estudiantes de Ciencias y Medicina.",
			CategoryID: models.CategoryInvestigacion,
			FacultyID:  models.FacultyMedicina,
			Author:     "Ana Castillo",
			AuthorID:   "user-4",
			CreatedAt:  now,
			CourseID:   strPtr("med101"),
		},
	}
}

// Comments returns the initial comments. Their authors are guests outside
// the roster (no AuthorID), except where noted.
func Comments(now time.Time) []models.Comment {
	return []models.Comment{
		{
			ID:        "c1",
			PostID:    "p1",
			Author:    "Juan Pérez",
			Content:   "La integral definida se usa cuando tienes límites y quieres un valor numérico, por ejemplo el área bajo la curva entre a y b. La indefinida es más general, te da una familia de funciones.",
			CreatedAt: now,
		},
		{
			ID:              "c2",
			PostID:          "p1",
			Author:          "Lucía Fernández",
			Content:         "Piensa en la integral indefinida como la operación inversa de derivar. Cuando le pones límites, se convierte en definida y puedes interpretarla como área.",
			CreatedAt:       now,
			ParentCommentID: strPtr("c1"),
		},
		{
			ID:        "c3",
			PostID:    "p2",
			Author:    "Carlos Pérez",
			AuthorID:  "user-3",
			Content:   "Gracias por los apuntes, justo estaba buscando algo así para repasar antes del parcial 😅.",
			CreatedAt: now,
		},
		{
			ID:        "c4",
			PostID:    "p3",
			Author:    "María López",
			AuthorID:  "user-2",
			Content:   "¿El taller será grabado? Algunos no podremos asistir por choque de horario.",
			CreatedAt: now,
		},
		{
			ID:        "c5",
			PostID:    "p4",
			Author:    "Diego Ramos",
			Content:   "¿También aceptan estudiantes de Ingeniería de Sistemas interesados en IA médica?",
			CreatedAt: now,
		},
	}
}

func strPtr(s string) *string {
	return &s
}
