package rest

import (
	"backoffice/internal/api"
)

// Top-level repositories. Each is a value type over the shared client;
// construct them on demand, they hold no state of their own.

type Organizations struct{ resource[api.Organization] }

func (c *Client) Organizations() Organizations {
	return Organizations{resource[api.Organization]{c, []string{"organizations"}}}
}

// Accesses are nested under their organization.
func (c *Client) OrganizationAccesses(organizationID string) OrganizationAccesses {
	return OrganizationAccesses{resource[api.OrganizationAccess]{
		c, []string{"organizations", organizationID, "accesses"},
	}}
}

type OrganizationAccesses struct {
	resource[api.OrganizationAccess]
}

type Courses struct{ resource[api.Course] }

func (c *Client) Courses() Courses {
	return Courses{resource[api.Course]{c, []string{"courses"}}}
}

func (c *Client) CourseRuns() CourseRuns {
	return CourseRuns{resource[api.CourseRun]{c, []string{"course-runs"}}}
}

type CourseRuns struct{ resource[api.CourseRun] }

type Products struct{ resource[api.Product] }

func (c *Client) Products() Products {
	return Products{resource[api.Product]{c, []string{"products"}}}
}

func (c *Client) ContractDefinitions() ContractDefinitions {
	return ContractDefinitions{resource[api.ContractDefinition]{c, []string{"contract-definitions"}}}
}

type ContractDefinitions struct {
	resource[api.ContractDefinition]
}

func (c *Client) CertificateDefinitions() CertificateDefinitions {
	return CertificateDefinitions{resource[api.CertificateDefinition]{c, []string{"certificate-definitions"}}}
}

type CertificateDefinitions struct {
	resource[api.CertificateDefinition]
}

// Offers is the course-product-relation collection.
type Offers struct{ resource[api.Offer] }

func (c *Client) Offers() Offers {
	return Offers{resource[api.Offer]{c, []string{"course-product-relations"}}}
}

// OfferRules live under their parent relation:
// /course-product-relations/{id}/offer-rules/{ruleId}/.
// The repository satisfies optimistic.Repository for *Form payloads.
type OfferRules struct{ resource[api.OfferRule] }

func (c *Client) OfferRules(relationID string) OfferRules {
	return OfferRules{resource[api.OfferRule]{
		c, []string{"course-product-relations", relationID, "offer-rules"},
	}}
}

// OrderGroups is the legacy seat-allocation route family, same nesting.
type OrderGroups struct{ resource[api.OrderGroup] }

func (c *Client) OrderGroups(relationID string) OrderGroups {
	return OrderGroups{resource[api.OrderGroup]{
		c, []string{"course-product-relations", relationID, "order-groups"},
	}}
}

type Orders struct{ resource[api.Order] }

func (c *Client) Orders() Orders {
	return Orders{resource[api.Order]{c, []string{"orders"}}}
}

type BatchOrders struct{ resource[api.BatchOrder] }

func (c *Client) BatchOrders() BatchOrders {
	return BatchOrders{resource[api.BatchOrder]{c, []string{"batch-orders"}}}
}

type Vouchers struct{ resource[api.Voucher] }

func (c *Client) Vouchers() Vouchers {
	return Vouchers{resource[api.Voucher]{c, []string{"vouchers"}}}
}
