package utils

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"
)

// ExtractParam retrieves a path parameter and removes a trailing ".json". ServeMux wildcards
// are tried first, then httprouter params from the request context.
func ExtractParam(r *http.Request, paramName string) string {
	raw := r.PathValue(paramName)
	if raw == "" {
		raw = httprouter.ParamsFromContext(r.Context()).ByName(paramName)
	}
	return strings.TrimSuffix(raw, ".json")
}

// ParseBoolParam retrieves an optional boolean from the query. A missing key yields nil; an
// invalid value yields nil and a field error.
func ParseBoolParam(params url.Values, key string, fieldErrors map[string][]string) (*bool, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return nil, fieldErrors
	}

	b, err := strconv.ParseBool(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return nil, fieldErrors
	}
	return &b, fieldErrors
}

// ParseIntParam retrieves an optional non-negative integer from the query, returning def when
// the key is missing.
func ParseIntParam(params url.Values, key string, def int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return def, fieldErrors
	}

	n, err := strconv.Atoi(val)
	if err != nil || n < 0 {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return def, fieldErrors
	}
	return n, fieldErrors
}
