package models

// PortfolioMetadata holds the owner profile rendered in the hero section and footer
type PortfolioMetadata struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Location     string `json:"location"`
	Email        string `json:"email"`
	Github       string `json:"github"`
	Linkedin     string `json:"linkedin"`
	BaseBio      string `json:"baseBio"`
	HeroImageURL string `json:"heroImageUrl"`
}

func (m PortfolioMetadata) Validate() error {
	if m.Name == "" {
		return missingField("name")
	}
	return nil
}
