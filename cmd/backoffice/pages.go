package main

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"backoffice/internal/api"
	"backoffice/internal/rest"
)

// page enumerates the dashboard's entity listings.
type page int

const (
	pageOrganizations page = iota
	pageCourses
	pageCourseRuns
	pageProducts
	pageOffers
	pageOrders
	pageBatchOrders
	pageVouchers
)

var pageTitles = map[page]string{
	pageOrganizations: "Organizations",
	pageCourses:       "Courses",
	pageCourseRuns:    "Course runs",
	pageProducts:      "Products",
	pageOffers:        "Offers",
	pageOrders:        "Orders",
	pageBatchOrders:   "Batch orders",
	pageVouchers:      "Vouchers",
}

var pageOrder = []page{
	pageOrganizations, pageCourses, pageCourseRuns, pageProducts,
	pageOffers, pageOrders, pageBatchOrders, pageVouchers,
}

// listing is one fetched page of rows, already shaped for the table.
type listing struct {
	page    page
	count   int
	headers []string
	rows    [][]string
	// ids holds the entity id per row, same order.
	ids []string
}

func timeOrDash(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02")
}

// fetchListing loads one collection and flattens it into table rows.
// Every branch goes through the same repository surface, so a page is
// a header set plus a row projection.
func fetchListing(ctx context.Context, client *rest.Client, p page, query url.Values) (listing, error) {
	switch p {
	case pageOrganizations:
		res, err := client.Organizations().List(ctx, query)
		if err != nil {
			return listing{}, err
		}
		out := listing{page: p, count: res.Count, headers: []string{"CODE", "TITLE", "COUNTRY"}}
		for _, o := range res.Results {
			out.rows = append(out.rows, []string{o.Code, o.Title, o.CountryCode})
			out.ids = append(out.ids, o.ID)
		}
		return out, nil

	case pageCourses:
		res, err := client.Courses().List(ctx, query)
		if err != nil {
			return listing{}, err
		}
		out := listing{page: p, count: res.Count, headers: []string{"CODE", "TITLE", "STATE"}}
		for _, c := range res.Results {
			out.rows = append(out.rows, []string{c.Code, c.Title, string(c.State)})
			out.ids = append(out.ids, c.ID)
		}
		return out, nil

	case pageCourseRuns:
		res, err := client.CourseRuns().List(ctx, query)
		if err != nil {
			return listing{}, err
		}
		out := listing{page: p, count: res.Count, headers: []string{"TITLE", "COURSE", "START", "END"}}
		for _, r := range res.Results {
			out.rows = append(out.rows, []string{
				r.Title, r.CourseID, timeOrDash(r.Start), timeOrDash(r.End),
			})
			out.ids = append(out.ids, r.ID)
		}
		return out, nil

	case pageProducts:
		res, err := client.Products().List(ctx, query)
		if err != nil {
			return listing{}, err
		}
		out := listing{page: p, count: res.Count, headers: []string{"TITLE", "TYPE", "PRICE"}}
		for _, pr := range res.Results {
			out.rows = append(out.rows, []string{
				pr.Title, string(pr.Type),
				fmt.Sprintf("%.2f %s", pr.Price, pr.PriceCurrency),
			})
			out.ids = append(out.ids, pr.ID)
		}
		return out, nil

	case pageOffers:
		res, err := client.Offers().List(ctx, query)
		if err != nil {
			return listing{}, err
		}
		out := listing{page: p, count: res.Count, headers: []string{"COURSE", "PRODUCT", "RULES"}}
		for _, o := range res.Results {
			course, product := o.CourseID, o.ProductID
			if o.Course != nil {
				course = o.Course.Code
			}
			if o.Product != nil {
				product = o.Product.Title
			}
			out.rows = append(out.rows, []string{course, product, strconv.Itoa(len(o.OfferRules))})
			out.ids = append(out.ids, o.ID)
		}
		return out, nil

	case pageOrders:
		res, err := client.Orders().List(ctx, query)
		if err != nil {
			return listing{}, err
		}
		out := listing{page: p, count: res.Count, headers: []string{"REFERENCE", "OWNER", "STATE", "TOTAL"}}
		for _, o := range res.Results {
			out.rows = append(out.rows, []string{
				o.Reference, o.OwnerName, string(o.State),
				fmt.Sprintf("%.2f %s", o.Total, o.TotalCurrency),
			})
			out.ids = append(out.ids, o.ID)
		}
		return out, nil

	case pageBatchOrders:
		res, err := client.BatchOrders().List(ctx, query)
		if err != nil {
			return listing{}, err
		}
		out := listing{page: p, count: res.Count, headers: []string{"COMPANY", "SEATS", "STATE", "TOTAL"}}
		for _, b := range res.Results {
			out.rows = append(out.rows, []string{
				b.CompanyName, strconv.Itoa(b.NbSeats), string(b.State),
				fmt.Sprintf("%.2f", b.Total),
			})
			out.ids = append(out.ids, b.ID)
		}
		return out, nil

	case pageVouchers:
		res, err := client.Vouchers().List(ctx, query)
		if err != nil {
			return listing{}, err
		}
		out := listing{page: p, count: res.Count, headers: []string{"CODE", "MULTI-USE", "CREATED"}}
		for _, v := range res.Results {
			out.rows = append(out.rows, []string{
				v.Code, strconv.FormatBool(v.MultipleUse), v.CreatedOn.Format("2006-01-02"),
			})
			out.ids = append(out.ids, v.ID)
		}
		return out, nil
	}
	return listing{}, fmt.Errorf("unknown page %d", p)
}

// ruleRow projects an offer rule for the nested table.
func ruleRow(r api.OfferRule) []string {
	active := "inactive"
	if r.IsActive {
		active = "active"
	}
	return []string{
		r.Description,
		strconv.Itoa(r.NbSeats),
		strconv.Itoa(r.NbAvailableSeats),
		active,
		timeOrDash(r.Start),
		timeOrDash(r.End),
	}
}
