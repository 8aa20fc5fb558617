package application

import "github.com/kmulatu/ezana-academy/internal/domain/entity"

// SeedCourses is the compiled-in catalog. Persisted courses whose ID matches
// one of these have their price, phases and category re-asserted from here on
// every read, so stale cached copies cannot drift from the shipped definition.
func SeedCourses() []entity.Course {
	return []entity.Course{
		{
			ID:             "c1",
			Title:          "Full Stack Web Development",
			Category:       entity.CategoryWebDev,
			Description:    "Master HTML, CSS, JavaScript, React and Node.js in this comprehensive bootcamp.",
			Image:          "https://images.unsplash.com/photo-1498050108023-c5249f4df085?auto=format&fit=crop&q=80&w=600",
			InstructorName: "Kassahun Mulatu",
			InstructorID:   "instructor",
			Price:          2500,
			Rating:         4.9,
			Students:       1250,
			Phases: []entity.CoursePhase{
				{
					ID:         "p1",
					Title:      "Full Stack Foundation",
					PlaylistID: "PLu0W_9lII9agq5TrH9XLIKQvv0iaF2X3w",
				},
			},
		},
		{
			ID:             "c2",
			Title:          "Mathematics (Grades 7-12)",
			Category:       entity.CategoryMath,
			Description:    "Comprehensive mathematics curriculum covering algebra, geometry, calculus and more.",
			Image:          "https://images.unsplash.com/photo-1635070041078-e363dbe005cb?auto=format&fit=crop&q=80&w=600",
			InstructorName: "Ezana Team",
			InstructorID:   "admin",
			Price:          1500,
			Rating:         4.8,
			Students:       3400,
			Phases: []entity.CoursePhase{
				{
					ID:         "p2",
					Title:      "Algebra & Calculus Fundamentals",
					PlaylistID: "PL7AF1C14AF1B05894",
				},
			},
		},
		{
			ID:             "c3",
			Title:          "English Language Mastery",
			Category:       entity.CategoryEnglish,
			Description:    "Improve your grammar, vocabulary and spoken English with practical lessons.",
			Image:          "https://images.unsplash.com/photo-1543002588-bfa74002ed7e?auto=format&fit=crop&q=80&w=600",
			InstructorName: "Sarah James",
			InstructorID:   "instructor2",
			Price:          1000,
			Rating:         4.7,
			Students:       2100,
			Phases: []entity.CoursePhase{
				{
					ID:         "p3",
					Title:      "Grammar and Spoken English",
					PlaylistID: "PLcetZ6gSk96-5vD0x-d-YmO1_Nn-aO6l",
				},
			},
		},
	}
}

// DefaultCourseImage is assigned to newly created courses with no image.
const DefaultCourseImage = "https://images.unsplash.com/photo-1516321318423-f06f85e504b3?auto=format&fit=crop&q=80&w=600"

// SeedUsers is the initial user directory, one account per role.
func SeedUsers() []entity.User {
	return []entity.User{
		{
			ID:       "admin",
			Name:     "Admin User",
			Email:    "admin@ezana.com",
			Role:     entity.RoleAdmin,
			Avatar:   entity.DefaultAvatar,
			Title:    "System Administrator",
			JoinDate: "2023-01-01",
		},
		{
			ID:       "instructor",
			Name:     "Instructor Doe",
			Email:    "instructor@ezana.com",
			Role:     entity.RoleInstructor,
			Avatar:   entity.DefaultAvatar,
			Title:    "Senior Web Instructor",
			JoinDate: "2023-02-15",
		},
		{
			ID:       "student",
			Name:     "Student Smith",
			Email:    "student@ezana.com",
			Role:     entity.RoleStudent,
			Avatar:   entity.DefaultAvatar,
			Title:    "Aspiring Developer",
			JoinDate: "2023-03-10",
		},
	}
}

// fallbackVideo is a substitute lesson entry served when the external video
// catalog is unreachable or yields nothing usable.
type fallbackVideo struct {
	ID      string
	Title   string
	VideoID string
}

// Substitute lesson sets per category. The web-dev set doubles as the
// last-resort default for categories without a set of their own.
var fallbackLessons = map[string][]fallbackVideo{
	entity.CategoryWebDev: {
		{ID: "m1", Title: "Introduction to Web Development", VideoID: "zJSY8tbf_ys"},
		{ID: "m2", Title: "HTML5 & CSS3 Fundamentals", VideoID: "mU6anWqZJcc"},
		{ID: "m3", Title: "JavaScript Crash Course", VideoID: "hdI2bqOjy3c"},
		{ID: "m4", Title: "React JS Full Course", VideoID: "w7ejDZ8SWv8"},
		{ID: "m5", Title: "Node.js Backend Basics", VideoID: "Oe421EPjeBE"},
	},
	entity.CategoryMath: {
		{ID: "m1", Title: "Algebra Introduction", VideoID: "NybHckSEQBI"},
		{ID: "m2", Title: "Basic Calculus Explained", VideoID: "WuP4H2n2iN0"},
		{ID: "m3", Title: "Trigonometry Basics", VideoID: "Pub015_pyZY"},
		{ID: "m4", Title: "Geometry: Angles and Lines", VideoID: "k5IM7xQ1W38"},
	},
	entity.CategoryEnglish: {
		{ID: "m1", Title: "Learn English Conversation", VideoID: "NNamZGk7tn4"},
		{ID: "m2", Title: "Grammar: Tenses", VideoID: "0WqC31Hw-7A"},
		{ID: "m3", Title: "Speaking Fluently", VideoID: "JuKeQ3q45-E"},
		{ID: "m4", Title: "Vocabulary Building", VideoID: "3yq48n2gZyk"},
	},
}

// FallbackLessons materializes the substitute set for a course. Thumbnails
// reuse the course image so the player grid still looks populated.
func FallbackLessons(course entity.Course) []entity.Lesson {
	set, ok := fallbackLessons[course.Category]
	if !ok {
		set = fallbackLessons[entity.CategoryWebDev]
	}
	out := make([]entity.Lesson, 0, len(set))
	for _, v := range set {
		out = append(out, entity.Lesson{
			ID:        v.ID,
			Title:     v.Title,
			Thumbnail: course.Image,
			VideoID:   v.VideoID,
		})
	}
	return out
}
