package api

import "time"

// Offer ties a product to a course for one or more organizations.
// The server names this resource "course-product-relation".
type Offer struct {
	ID            string         `json:"id"`
	CourseID      string         `json:"course_id"`
	ProductID     string         `json:"product_id"`
	Course        *Course        `json:"course,omitempty"`
	Product       *Product       `json:"product,omitempty"`
	Organizations []Organization `json:"organizations"`
	OfferRules    []OfferRule    `json:"offer_rules"`
	CanEdit       bool           `json:"can_edit"`
	URI           string         `json:"uri"`
}

func (o Offer) ResourceID() string { return o.ID }

// OfferRule restricts seats or grants a discount on its parent offer.
//
// NbAvailableSeats is derived on the server from NbSeats minus reserved
// seats. The client recomputes it optimistically when NbSeats changes so
// the row does not flash a stale number while the PATCH is in flight.
type OfferRule struct {
	ID               string     `json:"id"`
	Description      string     `json:"description"`
	NbSeats          int        `json:"nb_seats"`
	NbAvailableSeats int        `json:"nb_available_seats"`
	IsActive         bool       `json:"is_active"`
	CanEdit          bool       `json:"can_edit"`
	Discount         *Discount  `json:"discount,omitempty"`
	Start            *time.Time `json:"start"`
	End              *time.Time `json:"end"`
}

func (r OfferRule) ResourceID() string { return r.ID }

// WithSeats returns a copy with NbSeats set to n and NbAvailableSeats
// shifted by the seats delta, keeping the reserved count constant.
func (r OfferRule) WithSeats(n int) OfferRule {
	r.NbAvailableSeats += n - r.NbSeats
	r.NbSeats = n
	return r
}

// Discount is either a percentage rate or a fixed amount, never both.
type Discount struct {
	ID     string   `json:"id"`
	Rate   *float64 `json:"rate,omitempty"`
	Amount *float64 `json:"amount,omitempty"`
}

// OrderGroup is the legacy name for seat allocations on an offer.
// Same semantics as OfferRule; kept as its own resource because the
// server still serves both route families.
type OrderGroup struct {
	ID               string `json:"id"`
	NbSeats          int    `json:"nb_seats"`
	NbAvailableSeats int    `json:"nb_available_seats"`
	IsActive         bool   `json:"is_active"`
	CanEdit          bool   `json:"can_edit"`
}

func (g OrderGroup) ResourceID() string { return g.ID }

// WithSeats mirrors OfferRule.WithSeats for the legacy resource.
func (g OrderGroup) WithSeats(n int) OrderGroup {
	g.NbAvailableSeats += n - g.NbSeats
	g.NbSeats = n
	return g
}
