package handlers

// FormField describes one input of a static form page.
type FormField struct {
	Name     string `json:"name"`
	Label    string `json:"label"`
	Type     string `json:"type"`
	Required bool   `json:"required,omitempty"`
}

// FormPage is a form that the browser submits elsewhere.
type FormPage struct {
	Heading string      `json:"heading"`
	Fields  []FormField `json:"fields"`
	Submit  string      `json:"submit"`
}

// ContactPage is the office contact card of the catalog app.
type ContactPage struct {
	Office  string `json:"office"`
	Address string `json:"address"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Hours   string `json:"hours"`
}

// LoginPage returns the login form.
func LoginPage() FormPage {
	return FormPage{
		Heading: "Masuk",
		Fields: []FormField{
			{Name: "email", Label: "Email", Type: "email", Required: true},
			{Name: "password", Label: "Password", Type: "password", Required: true},
		},
		Submit: "Login",
	}
}

// RegisterPage returns the sign-up form.
func RegisterPage() FormPage {
	return FormPage{
		Heading: "Daftar Akun",
		Fields: []FormField{
			{Name: "name", Label: "Nama Lengkap", Type: "text", Required: true},
			{Name: "email", Label: "Email", Type: "email", Required: true},
			{Name: "phone", Label: "Nomor Telepon", Type: "tel"},
			{Name: "password", Label: "Password", Type: "password", Required: true},
		},
		Submit: "Register",
	}
}

// CatalogContactPage returns the office contact card.
func CatalogContactPage() ContactPage {
	return ContactPage{
		Office:  "Griya MDP",
		Address: "Jl. Rajawali No. 14, Palembang",
		Email:   "info@griya-mdp.id",
		Phone:   "+62 711-376400",
		Hours:   "Senin - Jumat, 08.00 - 17.00",
	}
}
