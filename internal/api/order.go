package api

import "time"

// OrderState follows the server's order workflow.
type OrderState string

const (
	OrderStateDraft     OrderState = "draft"
	OrderStatePending   OrderState = "pending"
	OrderStateValidated OrderState = "validated"
	OrderStateCompleted OrderState = "completed"
	OrderStateCanceled  OrderState = "canceled"
	OrderStateRefunded  OrderState = "refunded"
)

type Order struct {
	ID                       string       `json:"id"`
	Reference                string       `json:"reference"`
	State                    OrderState   `json:"state"`
	OwnerName                string       `json:"owner_name"`
	ProductTitle             string       `json:"product_title"`
	CourseCode               string       `json:"course_code"`
	OrganizationID           string       `json:"organization_id"`
	Total                    float64      `json:"total"`
	TotalCurrency            string       `json:"total_currency"`
	CreatedOn                time.Time    `json:"created_on"`
	Certificate              *Certificate `json:"certificate,omitempty"`
	Contract                 *Contract    `json:"contract,omitempty"`
	HasWaivedWithdrawalRight bool         `json:"has_waived_withdrawal_right"`
}

func (o Order) ResourceID() string { return o.ID }

// BatchOrder purchases a number of seats in one transaction for a company.
type BatchOrder struct {
	ID                   string     `json:"id"`
	Owner                string     `json:"owner"`
	CompanyName          string     `json:"company_name"`
	IdentificationNumber string     `json:"identification_number"`
	NbSeats              int        `json:"nb_seats"`
	RelationID           string     `json:"relation_id"`
	State                OrderState `json:"state"`
	Total                float64    `json:"total"`
	Trainees             []Trainee  `json:"trainees"`
}

func (b BatchOrder) ResourceID() string { return b.ID }

type Trainee struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

type Contract struct {
	ID                      string     `json:"id"`
	DefinitionTitle         string     `json:"definition_title"`
	StudentSignedOn         *time.Time `json:"student_signed_on"`
	OrganizationSignedOn    *time.Time `json:"organization_signed_on"`
	SubmittedForSignatureOn *time.Time `json:"submitted_for_signature_on"`
}

func (c Contract) ResourceID() string { return c.ID }

type Certificate struct {
	ID         string    `json:"id"`
	IssuedOn   time.Time `json:"issued_on"`
	Definition string    `json:"definition"`
}

func (c Certificate) ResourceID() string { return c.ID }

// Voucher grants a discount code, optionally bound to one order group.
type Voucher struct {
	ID            string    `json:"id"`
	Code          string    `json:"code"`
	Discount      *Discount `json:"discount,omitempty"`
	MultipleUse   bool      `json:"multiple_use"`
	MultipleUsers bool      `json:"multiple_users"`
	CreatedOn     time.Time `json:"created_on"`
}

func (v Voucher) ResourceID() string { return v.ID }
