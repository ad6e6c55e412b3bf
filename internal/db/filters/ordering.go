package filters

import "strings"

// Ordering maps public ordering keys to columns.
type Ordering struct {
	allowed  map[string]string
	defaults []string
}

func NewOrdering(allowed map[string]string, defaults ...string) Ordering {
	return Ordering{allowed: allowed, defaults: defaults}
}

// Clauses turns "-rating,name" into ORDER BY clauses. Unknown keys are
// dropped; when nothing valid remains the defaults apply.
func (o Ordering) Clauses(raw string) []string {
	var clauses []string
	seen := map[string]bool{}
	for _, key := range strings.Split(raw, ",") {
		key = strings.TrimSpace(key)
		dir := "ASC"
		if strings.HasPrefix(key, "-") {
			dir = "DESC"
			key = key[1:]
		}
		col, ok := o.allowed[key]
		if !ok || seen[key] {
			continue
		}
		seen[key] = true
		clauses = append(clauses, col+" "+dir)
	}
	if len(clauses) == 0 {
		return append([]string(nil), o.defaults...)
	}
	return clauses
}

var RepresentativeOrdering = NewOrdering(
	map[string]string{
		"name":              "representatives.name",
		"rating":            "representatives.rating",
		"created_at":        "representatives.created_at",
		"solved_complaints": "representatives.solved_complaints",
		"is_distinguished":  "representatives.is_distinguished",
	},
	CanonicalRepresentativeOrder...,
)

// CanonicalRepresentativeOrder is distinguished first, then best rated, then by name.
var CanonicalRepresentativeOrder = []string{
	"representatives.is_distinguished DESC",
	"representatives.rating DESC",
	"representatives.name ASC",
}

var GovernorateOrdering = NewOrdering(
	map[string]string{
		"name":       "governorates.name",
		"population": "governorates.population",
		"area":       "governorates.area",
	},
	"governorates.name ASC",
)
