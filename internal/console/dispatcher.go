package console

import (
	"net/url"
	"strings"

	"recs-admin/internal/form"
	"recs-admin/internal/transport"

	"github.com/gofiber/fiber/v2"
)

const collectionPath = "/recommendations"

// BuildRequest turns the current form into the request for cmd. The second
// result is false for commands that never reach the service.
func BuildRequest(cmd Command, state form.State) (transport.Request, bool) {
	switch cmd {
	case CommandCreate:
		return transport.Request{Method: fiber.MethodPost, Path: collectionPath, Body: state.Read()}, true
	case CommandUpdate:
		// an empty id is still sent; the service reports the failure
		return transport.Request{Method: fiber.MethodPut, Path: resourcePath(state.ID), Body: state.Read()}, true
	case CommandRetrieve:
		return transport.Request{Method: fiber.MethodGet, Path: resourcePath(state.ID)}, true
	case CommandDelete:
		return transport.Request{Method: fiber.MethodDelete, Path: resourcePath(state.ID)}, true
	case CommandSearch:
		path := collectionPath
		if q := SearchQuery(state); q != "" {
			path += "?" + q
		}
		return transport.Request{Method: fiber.MethodGet, Path: path}, true
	default:
		return transport.Request{}, false
	}
}

func resourcePath(id string) string {
	return collectionPath + "/" + url.PathEscape(id)
}

// SearchQuery builds the filter query from the non-empty search fields, in
// the order name, product_id, recommended_product_id, recommendation_type.
// url.Values is not used because it sorts keys.
func SearchQuery(state form.State) string {
	filters := []struct {
		key   string
		value string
	}{
		{"name", state.Name},
		{"product_id", state.ProductID},
		{"recommended_product_id", state.RecommendedProductID},
		{"recommendation_type", state.RecommendationType},
	}

	pairs := make([]string, 0, len(filters))
	for _, f := range filters {
		if f.value == "" {
			continue
		}
		pairs = append(pairs, f.key+"="+url.QueryEscape(f.value))
	}
	return strings.Join(pairs, "&")
}
