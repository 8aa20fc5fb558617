package entity

// Course categories shipped with the platform.
const (
	CategoryWebDev  = "web-dev"
	CategoryMath    = "math"
	CategoryEnglish = "english"
)

// Course is a catalog entry. Seeded courses are special: on every catalog
// read, price, phases and category of a persisted entry whose ID matches a
// seed course are replaced with the compiled-in seed values, so catalog
// definition fixes reach clients that cached older data.
type Course struct {
	ID             string        `json:"id"`
	Title          string        `json:"title"`
	Category       string        `json:"category"`
	Description    string        `json:"description"`
	Image          string        `json:"image"`
	InstructorName string        `json:"instructorName"`
	InstructorID   string        `json:"instructorId,omitempty"`
	Price          float64       `json:"price"` // ETB
	Rating         float64       `json:"rating"`
	Students       int           `json:"students"`
	Phases         []CoursePhase `json:"phases,omitempty"`
}

// CoursePhase groups lessons; PlaylistID optionally points at an external
// video catalog (a YouTube playlist).
type CoursePhase struct {
	ID         string   `json:"id"`
	Title      string   `json:"title"`
	PlaylistID string   `json:"playlistId,omitempty"`
	Lessons    []Lesson `json:"lessons"`
}

// Lesson is the unit the content resolver produces, whether it came from the
// external catalog or from the built-in substitute set.
type Lesson struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	VideoID   string `json:"videoId"`
}

// PrimaryPlaylist returns the playlist reference of the first phase, if any.
func (c Course) PrimaryPlaylist() string {
	if len(c.Phases) == 0 {
		return ""
	}
	return c.Phases[0].PlaylistID
}
