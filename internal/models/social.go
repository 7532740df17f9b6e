package models

// SocialLinks maps a platform to a profile URL. Every field is optional.
type SocialLinks struct {
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
}

// SocialLink is a single platform/URL pair.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Links returns the configured links in a fixed platform order,
// skipping platforms without a URL.
func (s SocialLinks) Links() []SocialLink {
	all := []SocialLink{
		{Platform: "facebook", URL: s.Facebook},
		{Platform: "twitter", URL: s.Twitter},
		{Platform: "instagram", URL: s.Instagram},
		{Platform: "linkedin", URL: s.LinkedIn},
	}
	links := make([]SocialLink, 0, len(all))
	for _, l := range all {
		if l.URL != "" {
			links = append(links, l)
		}
	}
	return links
}
