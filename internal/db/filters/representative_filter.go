package filters

import (
	"net/url"
	"strconv"
	"strings"

	"naebak/content-service/internal/constants"

	"gorm.io/gorm"
)

// RepresentativeFilter narrows the representatives table. Zero values
// impose no constraint and every set field is AND-ed.
type RepresentativeFilter struct {
	Name            string
	Governorate     string
	Gender          constants.Gender
	Party           string
	Status          constants.RepresentativeStatus
	IsDistinguished *bool
	MinRating       *float64
	MaxRating       *float64
	ElectionYear    *int
	District        string
	Profession      string
	Search          string
}

// ParseRepresentativeFilter reads query parameters. Malformed enum, bool and
// numeric values are reported per field.
func ParseRepresentativeFilter(q url.Values) (RepresentativeFilter, map[string]string) {
	f := RepresentativeFilter{
		Name:        strings.TrimSpace(q.Get("name")),
		Governorate: strings.TrimSpace(q.Get("governorate")),
		Party:       strings.TrimSpace(q.Get("party")),
		District:    strings.TrimSpace(q.Get("district")),
		Profession:  strings.TrimSpace(q.Get("profession")),
		Search:      strings.TrimSpace(q.Get("search")),
	}
	fields := map[string]string{}

	if v := q.Get("gender"); v != "" {
		if g := constants.Gender(v); g.Valid() {
			f.Gender = g
		} else {
			fields["gender"] = "Select a valid choice. " + v + " is not one of the available choices."
		}
	}
	if v := q.Get("status"); v != "" {
		if s := constants.RepresentativeStatus(v); s.Valid() {
			f.Status = s
		} else {
			fields["status"] = "Select a valid choice. " + v + " is not one of the available choices."
		}
	}
	if v := q.Get("is_distinguished"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			fields["is_distinguished"] = "Enter a valid boolean."
		} else {
			f.IsDistinguished = &b
		}
	}
	f.MinRating = parseFloatParam(q, "min_rating", fields)
	f.MaxRating = parseFloatParam(q, "max_rating", fields)
	if v := q.Get("election_year"); v != "" {
		year, err := strconv.Atoi(v)
		if err != nil {
			fields["election_year"] = "Enter a whole number."
		} else {
			f.ElectionYear = &year
		}
	}

	if len(fields) > 0 {
		return f, fields
	}
	return f, nil
}

func parseFloatParam(q url.Values, key string, fields map[string]string) *float64 {
	v := q.Get(key)
	if v == "" {
		return nil
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		fields[key] = "Enter a number."
		return nil
	}
	return &n
}

// Apply expects a query rooted at the representatives table. Relation
// predicates use subqueries so no join can duplicate rows.
func (f RepresentativeFilter) Apply(db *gorm.DB) *gorm.DB {
	if f.Name != "" {
		db = db.Where(icontains("representatives.name"), containsPattern(f.Name))
	}
	if f.Governorate != "" {
		db = db.Where(`representatives.district_id IN (
			SELECT d.id FROM districts d JOIN governorates g ON g.id = d.governorate_id
			WHERE `+iexact("g.name")+`)`, strings.ToLower(f.Governorate))
	}
	if f.Gender != "" {
		db = db.Where("representatives.gender = ?", f.Gender)
	}
	if f.Party != "" {
		db = db.Where(`representatives.party_id IN (
			SELECT p.id FROM political_parties p WHERE `+iexact("p.name")+`)`, strings.ToLower(f.Party))
	}
	if f.Status != "" {
		db = db.Where("representatives.status = ?", f.Status)
	}
	if f.IsDistinguished != nil {
		db = db.Where("representatives.is_distinguished = ?", *f.IsDistinguished)
	}
	if f.MinRating != nil {
		db = db.Where("representatives.rating >= ?", *f.MinRating)
	}
	if f.MaxRating != nil {
		db = db.Where("representatives.rating <= ?", *f.MaxRating)
	}
	if f.ElectionYear != nil {
		db = db.Where("representatives.election_year = ?", *f.ElectionYear)
	}
	if f.District != "" {
		db = db.Where(`representatives.district_id IN (
			SELECT d.id FROM districts d WHERE `+icontains("d.name")+`)`, containsPattern(f.District))
	}
	if f.Profession != "" {
		db = db.Where(icontains("representatives.profession"), containsPattern(f.Profession))
	}
	if f.Search != "" {
		db = db.Where(profileTextMatch(), repeatArg(containsPattern(f.Search), 4)...)
	}
	return db
}

// Visible limits to rows the public site may show.
func Visible(db *gorm.DB) *gorm.DB {
	return db.Where("representatives.is_active = ? AND representatives.admin_approved = ?", true, true)
}

// MatchAllTerms requires every whitespace-separated term to appear in one of
// the profile text fields.
func MatchAllTerms(db *gorm.DB, search string) *gorm.DB {
	for _, term := range strings.Fields(search) {
		db = db.Where(profileTextMatch(), repeatArg(containsPattern(term), 4)...)
	}
	return db
}

// MatchAnywhere ORs the term across profile text and the names of the
// district, governorate and party.
func MatchAnywhere(db *gorm.DB, term string) *gorm.DB {
	pattern := containsPattern(term)
	return db.Where(`(`+profileTextMatch()+`
		OR representatives.district_id IN (SELECT d.id FROM districts d WHERE `+icontains("d.name")+`)
		OR representatives.district_id IN (
			SELECT d.id FROM districts d JOIN governorates g ON g.id = d.governorate_id
			WHERE `+icontains("g.name")+`)
		OR representatives.party_id IN (SELECT p.id FROM political_parties p WHERE `+icontains("p.name")+`))`,
		repeatArg(pattern, 7)...)
}

func profileTextMatch() string {
	return "(" + strings.Join([]string{
		icontains("representatives.name"),
		icontains("representatives.profession"),
		icontains("representatives.bio"),
		icontains("representatives.electoral_program"),
	}, " OR ") + ")"
}

func repeatArg(v interface{}, n int) []interface{} {
	args := make([]interface{}, n)
	for i := range args {
		args[i] = v
	}
	return args
}
