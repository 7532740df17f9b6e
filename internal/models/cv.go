package models

// Experience is a single position on the CV.
type Experience struct {
	Role        string `json:"role"`
	Company     string `json:"company"`
	Period      string `json:"period"`
	Description string `json:"description,omitempty"`
}

// Education is a single school entry on the CV.
type Education struct {
	School string `json:"school"`
	Degree string `json:"degree"`
	Period string `json:"period"`
}

// CVContact is what the contact page of the CV app shows.
type CVContact struct {
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Location string      `json:"location"`
	Social   SocialLinks `json:"social"`
}

// CV is the content of the personal CV app.
type CV struct {
	Name       string       `json:"name"`
	Headline   string       `json:"headline"`
	Summary    string       `json:"summary"`
	Experience []Experience `json:"experience"`
	Education  []Education  `json:"education"`
	Skills     []string     `json:"skills"`
	Contact    CVContact    `json:"contact"`
}
