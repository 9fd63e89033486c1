package cli

import (
	"os"
	"strings"

	"recs-admin/internal/form"

	"github.com/spf13/cobra"
)

// Options are the form fields and connection settings shared by every
// command.
type Options struct {
	ServiceURL string
	JSON       bool
	Form       form.State
}

// BindFlags registers the shared flags as persistent flags on root.
func (o *Options) BindFlags(root *cobra.Command) {
	defaultURL := os.Getenv("REST_SERVICE_URL")
	if defaultURL == "" {
		defaultURL = "http://localhost:8080"
	}

	flags := root.PersistentFlags()
	flags.StringVar(&o.ServiceURL, "url", defaultURL, "Base URL of the recommendation service")
	flags.BoolVarP(&o.JSON, "json", "j", false, "Output the resulting view as JSON")
	flags.StringVar(&o.Form.ID, "id", "", "Recommendation ID")
	flags.StringVar(&o.Form.Name, "name", "", "Recommendation name")
	flags.StringVar(&o.Form.ProductID, "product-id", "", "Product ID")
	flags.StringVar(&o.Form.RecommendedProductID, "recommended-product-id", "", "Recommended product ID")
	flags.StringVar(&o.Form.RecommendationType, "type", "", "Recommendation type (e.g. cross-sell, up-sell)")
}

func (o *Options) baseURL() string {
	return strings.TrimRight(o.ServiceURL, "/")
}
