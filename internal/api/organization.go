package api

// Organization is an institution selling courses through the platform.
type Organization struct {
	ID                 string      `json:"id"`
	Code               string      `json:"code"`
	Title              string      `json:"title"`
	RepresentativeName string      `json:"representative"`
	SignatoryName      string      `json:"signatory_representative"`
	CountryCode        string      `json:"country"`
	EnterpriseCode     string      `json:"enterprise_code"`
	ActivityCategory   string      `json:"activity_category_code"`
	ContactEmail       string      `json:"contact_email"`
	ContactPhone       string      `json:"contact_phone"`
	DPOEmail           string      `json:"dpo_email"`
	Logo               *Attachment `json:"logo,omitempty"`
	Signature          *Attachment `json:"signature,omitempty"`
}

func (o Organization) ResourceID() string { return o.ID }

// OrganizationAccess grants a user a role within an organization.
// Valid roles come from the OPTIONS metadata of the accesses endpoint.
type OrganizationAccess struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

func (a OrganizationAccess) ResourceID() string { return a.ID }
