package api

// ProductType discriminates what a buyer receives.
type ProductType string

const (
	ProductTypeCredential  ProductType = "credential"
	ProductTypeEnrollment  ProductType = "enrollment"
	ProductTypeCertificate ProductType = "certificate"
)

type Product struct {
	ID                    string      `json:"id"`
	Title                 string      `json:"title"`
	Type                  ProductType `json:"type"`
	Description           string      `json:"description"`
	CallToAction          string      `json:"call_to_action"`
	Price                 float64     `json:"price"`
	PriceCurrency         string      `json:"price_currency"`
	CertificateDefinition string      `json:"certificate_definition"`
	ContractDefinition    string      `json:"contract_definition"`
}

func (p Product) ResourceID() string { return p.ID }

// ContractDefinition is the template a signed contract is generated from.
type ContractDefinition struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Name        string `json:"name"`
	Language    string `json:"language"`
	Body        string `json:"body"`
	Appendix    string `json:"appendix"`
}

func (d ContractDefinition) ResourceID() string { return d.ID }

// CertificateDefinition is the template delivered certificates follow.
type CertificateDefinition struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Template    string `json:"template"`
}

func (d CertificateDefinition) ResourceID() string { return d.ID }
