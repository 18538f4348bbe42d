package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"backoffice/internal/rest"
)

// Scripted one-shots: list/get/create/update/delete against any
// resource, JSON out. The dashboard is the primary surface; these exist
// for pipelines and quick checks.

var (
	flagQuery    string
	flagFilters  []string
	flagData     []string
	flagAttach   []string
	flagRelation string
)

var listCmd = &cobra.Command{
	Use:   "list [resource]",
	Short: "List a resource collection as JSON",
	Long: `Lists one page of a collection. Resources:
  organizations, courses, course-runs, products, offers, orders,
  batch-orders, vouchers, contract-definitions, certificate-definitions

Filters are passed as key=value pairs, repeated for multi-valued keys:
  backoffice list courses --query physics -f state=ongoing

offer-rules and order-groups live under a course-product relation and
need its id:
  backoffice list offer-rules --relation <relation-id>`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := buildClient(loadedConfig)
		if err != nil {
			return err
		}
		query, err := parseFilters(flagQuery, flagFilters)
		if err != nil {
			return err
		}
		out, err := listResource(cmd.Context(), client, args[0], flagRelation, query)
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var getCmd = &cobra.Command{
	Use:   "get [resource] [id]",
	Short: "Fetch one entity as JSON",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := buildClient(loadedConfig)
		if err != nil {
			return err
		}
		out, err := getResource(cmd.Context(), client, args[0], flagRelation, args[1])
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete [resource] [id]",
	Short: "Delete one entity",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := buildClient(loadedConfig)
		if err != nil {
			return err
		}
		if err := deleteResource(cmd.Context(), client, args[0], flagRelation, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "deleted %s %s\n", args[0], args[1])
		return nil
	},
}

var createCmd = &cobra.Command{
	Use:   "create [resource]",
	Short: "Create one entity from key=value fields",
	Long: `Creates an entity. Fields are passed as key=value pairs, repeated
for multi-valued fields; files are attached as field=path:
  backoffice create organizations -d code=ORG -d title="My org" -a logo=./logo.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := buildClient(loadedConfig)
		if err != nil {
			return err
		}
		form, closeFiles, err := buildForm(flagData, flagAttach)
		if err != nil {
			return err
		}
		defer closeFiles()
		out, err := createResource(cmd.Context(), client, args[0], flagRelation, form)
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var updateCmd = &cobra.Command{
	Use:   "update [resource] [id]",
	Short: "Patch one entity with key=value fields",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := buildClient(loadedConfig)
		if err != nil {
			return err
		}
		form, closeFiles, err := buildForm(flagData, flagAttach)
		if err != nil {
			return err
		}
		defer closeFiles()
		out, err := updateResource(cmd.Context(), client, args[0], flagRelation, args[1], form)
		if err != nil {
			return err
		}
		return printJSON(out)
	},
}

var choicesCmd = &cobra.Command{
	Use:   "choices [resource]",
	Short: "Show the enumerated choices a resource accepts",
	Long: `Introspects the collection endpoint with an OPTIONS request and
prints the enumerated values of each writable field (roles, states,
country codes).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := buildClient(loadedConfig)
		if err != nil {
			return err
		}
		meta, err := resourceOptions(cmd.Context(), client, args[0])
		if err != nil {
			return err
		}
		return printJSON(meta)
	},
}

func init() {
	listCmd.Flags().StringVarP(&flagQuery, "query", "q", "", "free-text search")
	listCmd.Flags().StringArrayVarP(&flagFilters, "filter", "f", nil, "key=value filter, repeatable")
	for _, cmd := range []*cobra.Command{createCmd, updateCmd} {
		cmd.Flags().StringArrayVarP(&flagData, "data", "d", nil, "key=value field, repeatable")
		cmd.Flags().StringArrayVarP(&flagAttach, "attach", "a", nil, "field=path file attachment, repeatable")
	}
	for _, cmd := range []*cobra.Command{listCmd, getCmd, createCmd, updateCmd, deleteCmd} {
		cmd.Flags().StringVar(&flagRelation, "relation", "", "course-product relation id for nested resources")
	}
}

// requireRelation rejects nested resources addressed without their
// parent relation id.
func requireRelation(name, relation string) error {
	if relation == "" {
		return fmt.Errorf("%s is nested under a course-product relation, pass --relation", name)
	}
	return nil
}

// buildForm turns -d and -a flags into a multipart payload. The
// returned closer releases the attached files once the request is sent.
func buildForm(data, attachments []string) (*rest.Form, func(), error) {
	form := rest.NewForm()
	for _, pair := range data {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, nil, fmt.Errorf("bad field %q, want key=value", pair)
		}
		form.Set(key, value)
	}
	var opened []*os.File
	closeFiles := func() {
		for _, f := range opened {
			_ = f.Close()
		}
	}
	for _, pair := range attachments {
		field, path, ok := strings.Cut(pair, "=")
		if !ok {
			closeFiles()
			return nil, nil, fmt.Errorf("bad attachment %q, want field=path", pair)
		}
		f, err := os.Open(path)
		if err != nil {
			closeFiles()
			return nil, nil, err
		}
		opened = append(opened, f)
		form.Attach(field, filepath.Base(path), f)
	}
	return form, closeFiles, nil
}

func parseFilters(query string, pairs []string) (url.Values, error) {
	values := url.Values{}
	if query != "" {
		values.Set("query", query)
	}
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf("bad filter %q, want key=value", pair)
		}
		values.Add(key, value)
	}
	return values, nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func listResource(ctx context.Context, client *rest.Client, name, relation string, query url.Values) (any, error) {
	switch name {
	case "offer-rules":
		if err := requireRelation(name, relation); err != nil {
			return nil, err
		}
		return client.OfferRules(relation).List(ctx, query)
	case "order-groups":
		if err := requireRelation(name, relation); err != nil {
			return nil, err
		}
		return client.OrderGroups(relation).List(ctx, query)
	case "organizations":
		return client.Organizations().List(ctx, query)
	case "courses":
		return client.Courses().List(ctx, query)
	case "course-runs":
		return client.CourseRuns().List(ctx, query)
	case "products":
		return client.Products().List(ctx, query)
	case "offers":
		return client.Offers().List(ctx, query)
	case "orders":
		return client.Orders().List(ctx, query)
	case "batch-orders":
		return client.BatchOrders().List(ctx, query)
	case "vouchers":
		return client.Vouchers().List(ctx, query)
	case "contract-definitions":
		return client.ContractDefinitions().List(ctx, query)
	case "certificate-definitions":
		return client.CertificateDefinitions().List(ctx, query)
	}
	return nil, fmt.Errorf("unknown resource %q", name)
}

func getResource(ctx context.Context, client *rest.Client, name, relation, id string) (any, error) {
	switch name {
	case "offer-rules":
		if err := requireRelation(name, relation); err != nil {
			return nil, err
		}
		return client.OfferRules(relation).Get(ctx, id, nil)
	case "order-groups":
		if err := requireRelation(name, relation); err != nil {
			return nil, err
		}
		return client.OrderGroups(relation).Get(ctx, id, nil)
	case "organizations":
		return client.Organizations().Get(ctx, id, nil)
	case "courses":
		return client.Courses().Get(ctx, id, nil)
	case "course-runs":
		return client.CourseRuns().Get(ctx, id, nil)
	case "products":
		return client.Products().Get(ctx, id, nil)
	case "offers":
		return client.Offers().Get(ctx, id, nil)
	case "orders":
		return client.Orders().Get(ctx, id, nil)
	case "batch-orders":
		return client.BatchOrders().Get(ctx, id, nil)
	case "vouchers":
		return client.Vouchers().Get(ctx, id, nil)
	case "contract-definitions":
		return client.ContractDefinitions().Get(ctx, id, nil)
	case "certificate-definitions":
		return client.CertificateDefinitions().Get(ctx, id, nil)
	}
	return nil, fmt.Errorf("unknown resource %q", name)
}

func createResource(ctx context.Context, client *rest.Client, name, relation string, form *rest.Form) (any, error) {
	switch name {
	case "offer-rules":
		if err := requireRelation(name, relation); err != nil {
			return nil, err
		}
		return client.OfferRules(relation).Create(ctx, form)
	case "order-groups":
		if err := requireRelation(name, relation); err != nil {
			return nil, err
		}
		return client.OrderGroups(relation).Create(ctx, form)
	case "organizations":
		return client.Organizations().Create(ctx, form)
	case "courses":
		return client.Courses().Create(ctx, form)
	case "course-runs":
		return client.CourseRuns().Create(ctx, form)
	case "products":
		return client.Products().Create(ctx, form)
	case "offers":
		return client.Offers().Create(ctx, form)
	case "batch-orders":
		return client.BatchOrders().Create(ctx, form)
	case "vouchers":
		return client.Vouchers().Create(ctx, form)
	case "contract-definitions":
		return client.ContractDefinitions().Create(ctx, form)
	case "certificate-definitions":
		return client.CertificateDefinitions().Create(ctx, form)
	}
	return nil, fmt.Errorf("resource %q cannot be created from the CLI", name)
}

func updateResource(ctx context.Context, client *rest.Client, name, relation, id string, form *rest.Form) (any, error) {
	switch name {
	case "offer-rules":
		if err := requireRelation(name, relation); err != nil {
			return nil, err
		}
		return client.OfferRules(relation).Update(ctx, id, form)
	case "order-groups":
		if err := requireRelation(name, relation); err != nil {
			return nil, err
		}
		return client.OrderGroups(relation).Update(ctx, id, form)
	case "organizations":
		return client.Organizations().Update(ctx, id, form)
	case "courses":
		return client.Courses().Update(ctx, id, form)
	case "course-runs":
		return client.CourseRuns().Update(ctx, id, form)
	case "products":
		return client.Products().Update(ctx, id, form)
	case "offers":
		return client.Offers().Update(ctx, id, form)
	case "vouchers":
		return client.Vouchers().Update(ctx, id, form)
	case "contract-definitions":
		return client.ContractDefinitions().Update(ctx, id, form)
	case "certificate-definitions":
		return client.CertificateDefinitions().Update(ctx, id, form)
	}
	return nil, fmt.Errorf("resource %q cannot be updated from the CLI", name)
}

func deleteResource(ctx context.Context, client *rest.Client, name, relation, id string) error {
	switch name {
	case "offer-rules":
		if err := requireRelation(name, relation); err != nil {
			return err
		}
		return client.OfferRules(relation).Delete(ctx, id)
	case "order-groups":
		if err := requireRelation(name, relation); err != nil {
			return err
		}
		return client.OrderGroups(relation).Delete(ctx, id)
	case "organizations":
		return client.Organizations().Delete(ctx, id)
	case "courses":
		return client.Courses().Delete(ctx, id)
	case "course-runs":
		return client.CourseRuns().Delete(ctx, id)
	case "products":
		return client.Products().Delete(ctx, id)
	case "offers":
		return client.Offers().Delete(ctx, id)
	case "vouchers":
		return client.Vouchers().Delete(ctx, id)
	case "contract-definitions":
		return client.ContractDefinitions().Delete(ctx, id)
	case "certificate-definitions":
		return client.CertificateDefinitions().Delete(ctx, id)
	}
	return fmt.Errorf("resource %q cannot be deleted from the CLI", name)
}

func resourceOptions(ctx context.Context, client *rest.Client, name string) (rest.Metadata, error) {
	switch name {
	case "organizations":
		return client.Organizations().Options(ctx)
	case "courses":
		return client.Courses().Options(ctx)
	case "products":
		return client.Products().Options(ctx)
	case "orders":
		return client.Orders().Options(ctx)
	case "vouchers":
		return client.Vouchers().Options(ctx)
	}
	return rest.Metadata{}, fmt.Errorf("unknown resource %q", name)
}
