package checkout

// LeadForm is the pricing-page contact form. Everything except PriceID is
// optional free text forwarded to Stripe as opaque metadata.
type LeadForm struct {
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	CompanyName    string `json:"companyName"`
	CompanyWebsite string `json:"companyWebsite"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Description    string `json:"description"`
	PriceID        string `json:"priceId"`
}

// metadata holds only the fields the lead actually filled in; absent fields
// must not show up as empty-string entries on the Stripe session.
func (f *LeadForm) metadata() map[string]string {
	md := make(map[string]string)
	for key, value := range map[string]string{
		"firstName":      f.FirstName,
		"lastName":       f.LastName,
		"companyName":    f.CompanyName,
		"companyWebsite": f.CompanyWebsite,
		"email":          f.Email,
		"phone":          f.Phone,
		"description":    f.Description,
	} {
		if value != "" {
			md[key] = value
		}
	}
	return md
}
