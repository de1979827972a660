// Package filter turns list query parameters into a Spec that repositories
// apply to their queries. Building a Spec never touches the database.
package filter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultPage  = 1
	DefaultLimit = 25
)

const (
	OpGTE = ">="
	OpLTE = "<="
)

// Error reports a query parameter that could not be turned into a constraint.
type Error struct {
	Param   string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func invalid(param, format string, args ...interface{}) *Error {
	return &Error{Param: param, Message: fmt.Sprintf(format, args...)}
}

// TextField is a column matched case-insensitively by substring. Every name
// in Params is accepted as the query parameter for it.
type TextField struct {
	Params []string
	Column string
}

// Schema lists what a resource may be filtered and sorted by.
type Schema struct {
	Text []TextField
	// Sort maps a sort field name, as clients send it, to a column.
	Sort map[string]string
}

type TextMatch struct {
	Column string
	Value  string
}

// Pattern returns the ILIKE pattern for a substring match on Value.
func (t TextMatch) Pattern() string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(t.Value) + "%"
}

type TimeBound struct {
	Column string
	Op     string
	Value  time.Time
}

type Order struct {
	Field     string
	Column    string
	Direction string
}

type Spec struct {
	Text   []TextMatch
	Bounds []TimeBound
	Order  []Order
	Page   int
	Limit  int
	Offset int
}

// OrderPairs returns the requested ordering as [field, direction] pairs.
func (s Spec) OrderPairs() [][2]string {
	pairs := make([][2]string, 0, len(s.Order))
	for _, o := range s.Order {
		pairs = append(pairs, [2]string{o.Field, o.Direction})
	}
	return pairs
}

var dateParams = []struct {
	param  string
	column string
	op     string
}{
	{"createdBefore", "created_at", OpLTE},
	{"createdAfter", "created_at", OpGTE},
	{"updatedBefore", "updated_at", OpLTE},
	{"updatedAfter", "updated_at", OpGTE},
}

// Build validates params against schema. Absent or empty parameters add no
// constraint; every present one is combined with AND.
func Build(params map[string]string, schema Schema) (Spec, error) {
	spec := Spec{Page: DefaultPage, Limit: DefaultLimit}

	for _, f := range schema.Text {
		for _, p := range f.Params {
			if v := params[p]; v != "" {
				spec.Text = append(spec.Text, TextMatch{Column: f.Column, Value: v})
				break
			}
		}
	}

	for _, d := range dateParams {
		v := params[d.param]
		if v == "" {
			continue
		}
		t, err := ParseDate(v)
		if err != nil {
			return Spec{}, invalid(d.param, "%s must be an ISO-8601 date", d.param)
		}
		spec.Bounds = append(spec.Bounds, TimeBound{Column: d.column, Op: d.op, Value: t})
	}

	if v := params["sort"]; v != "" {
		order, err := parseSort(v, schema.Sort)
		if err != nil {
			return Spec{}, err
		}
		spec.Order = order
	}

	var err error
	if spec.Page, err = positiveInt(params, "page", DefaultPage); err != nil {
		return Spec{}, err
	}
	if spec.Limit, err = positiveInt(params, "limit", DefaultLimit); err != nil {
		return Spec{}, err
	}
	if spec.Page-1 > math.MaxInt/spec.Limit {
		return Spec{}, invalid("page", "page is too large for limit %d", spec.Limit)
	}
	spec.Offset = spec.Limit * (spec.Page - 1)

	return spec, nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts the ISO-8601 forms clients send: a full RFC 3339
// timestamp, a local date-time without zone, or a bare date. Values without
// a zone are read as UTC.
func ParseDate(v string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, v)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseSort(v string, columns map[string]string) ([]Order, error) {
	entries := strings.Split(v, ",")
	order := make([]Order, 0, len(entries))

	for _, entry := range entries {
		parts := strings.Split(strings.TrimSpace(entry), ":")
		if len(parts) != 2 {
			return nil, invalid("sort", "sort entry %q must look like field:direction", entry)
		}

		field := strings.TrimSpace(parts[0])
		column, ok := columns[field]
		if !ok {
			return nil, invalid("sort", "cannot sort by %q", field)
		}

		dir := strings.ToLower(strings.TrimSpace(parts[1]))
		if dir != "asc" && dir != "desc" {
			return nil, invalid("sort", "sort direction for %q must be asc or desc", field)
		}

		order = append(order, Order{Field: field, Column: column, Direction: dir})
	}
	return order, nil
}

func positiveInt(params map[string]string, name string, fallback int) (int, error) {
	v := params[name]
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, invalid(name, "%s must be a positive integer", name)
	}
	return n, nil
}
