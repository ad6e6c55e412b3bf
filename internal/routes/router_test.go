package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"naebak/content-service/internal/api"
	"naebak/content-service/internal/common"
	"naebak/content-service/internal/config"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db"
	"naebak/content-service/internal/logging"
	"naebak/content-service/internal/metrics"
	"naebak/content-service/internal/models/dtos"
	gormModels "naebak/content-service/internal/models/gorm"

	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"
)

type testServer struct {
	handler  http.Handler
	orm      *gorm.DB
	district gormModels.District
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	logging.UseNop()

	orm, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(orm); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	sqlDB, err := db.WrapORM(orm, "sqlite3")
	if err != nil {
		t.Fatalf("wrap orm: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	metricsReg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	deps, err := api.InitDependencies(orm, sqlDB, common.NewCacheService(60, 120), metricsReg)
	if err != nil {
		t.Fatalf("init dependencies: %v", err)
	}

	if cfg == nil {
		cfg = &config.Config{RateLimitRPS: 1000, RateLimitBurst: 1000, CORSOrigins: "*"}
	}

	s := &testServer{handler: RegisterRoutes(deps, cfg), orm: orm}

	gov := gormModels.Governorate{Name: "القاهرة", Code: "CAI"}
	gov.IsActive = true
	s.mustCreate(t, &gov)
	s.district = gormModels.District{Name: "مدينة نصر", GovernorateID: gov.ID, Number: 1}
	s.district.IsActive = true
	s.mustCreate(t, &s.district)
	return s
}

func (s *testServer) mustCreate(t *testing.T, row interface{}) {
	t.Helper()
	if err := s.orm.Create(row).Error; err != nil {
		t.Fatalf("create %T: %v", row, err)
	}
}

func (s *testServer) addRepresentative(t *testing.T, name, slug string, approved bool) {
	t.Helper()
	r := gormModels.Representative{
		Name:          name,
		Slug:          slug,
		Gender:        constants.GenderMale,
		DistrictID:    s.district.ID,
		Status:        constants.StatusCandidate,
		ElectionYear:  constants.DefaultElectionYear,
		AdminApproved: approved,
	}
	r.IsActive = true
	s.mustCreate(t, &r)
}

func (s *testServer) do(t *testing.T, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rr := httptest.NewRecorder()
	s.handler.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.NewDecoder(rr.Body).Decode(dst); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	s := newTestServer(t, nil)

	rr := s.do(t, http.MethodGet, "/health/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var body map[string]interface{}
	decode(t, rr, &body)
	if body["status"] != "healthy" || body["service"] != constants.ServiceName {
		t.Errorf("unexpected health body %v", body)
	}
}

func TestListRepresentatives_EnvelopeAndLinks(t *testing.T) {
	s := newTestServer(t, nil)
	s.addRepresentative(t, "أحمد علي", "ahmed-ali", true)
	s.addRepresentative(t, "محمود حسن", "mahmoud-hassan", true)
	s.addRepresentative(t, "مرشح مخفي", "hidden", false)

	for _, path := range []string{"/api/representatives/?page_size=1", "/api/representatives?page_size=1"} {
		rr := s.do(t, http.MethodGet, path, "")
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: Expected status 200, got %d", path, rr.Code)
		}

		var body struct {
			Count    int64             `json:"count"`
			Next     *string           `json:"next"`
			Previous *string           `json:"previous"`
			Results  []json.RawMessage `json:"results"`
			Stats    struct {
				TotalCount int64 `json:"total_count"`
			} `json:"stats"`
		}
		decode(t, rr, &body)

		if body.Count != 2 || body.Stats.TotalCount != 2 {
			t.Errorf("%s: expected 2 visible representatives, got count=%d stats=%d", path, body.Count, body.Stats.TotalCount)
		}
		if len(body.Results) != 1 {
			t.Errorf("%s: expected 1 result, got %d", path, len(body.Results))
		}
		if body.Next == nil || !strings.Contains(*body.Next, "page=2") || !strings.HasPrefix(*body.Next, "http://") {
			t.Errorf("%s: unexpected next link %v", path, body.Next)
		}
		if body.Previous != nil {
			t.Errorf("%s: expected no previous link, got %s", path, *body.Previous)
		}
	}
}

func TestListRepresentatives_FilterPredicatesAndOrdering(t *testing.T) {
	s := newTestServer(t, nil)

	party := gormModels.PoliticalParty{Name: "Wafd Party", Color: "#ff0000"}
	party.IsActive = true
	s.mustCreate(t, &party)
	dokki := gormModels.District{Name: "الدقي", GovernorateID: s.district.GovernorateID, Number: 2}
	dokki.IsActive = true
	s.mustCreate(t, &dokki)

	seed := []gormModels.Representative{
		{Name: "أحمد علي", Slug: "ahmed-ali", Rating: 4.5, IsDistinguished: true, PartyID: &party.ID,
			Profession: "Lawyer", Bio: "Works on infrastructure", DistrictID: s.district.ID},
		{Name: "منى حسن", Slug: "mona-hassan", Rating: 3.0, Profession: "Doctor", DistrictID: s.district.ID},
		{Name: "كريم سعيد", Slug: "karim-saeed", Rating: 1.5, Profession: "Engineer", DistrictID: dokki.ID},
	}
	for i := range seed {
		seed[i].Gender = constants.GenderMale
		seed[i].Status = constants.StatusCandidate
		seed[i].ElectionYear = constants.DefaultElectionYear
		seed[i].AdminApproved = true
		seed[i].IsActive = true
		s.mustCreate(t, &seed[i])
	}

	list := func(t *testing.T, params url.Values) []string {
		t.Helper()
		rr := s.do(t, http.MethodGet, "/api/representatives/?"+params.Encode(), "")
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: Expected status 200, got %d: %s", params.Encode(), rr.Code, rr.Body.String())
		}
		var body struct {
			Count   int64 `json:"count"`
			Results []struct {
				Slug string `json:"slug"`
			} `json:"results"`
		}
		decode(t, rr, &body)
		slugs := make([]string, 0, len(body.Results))
		for _, item := range body.Results {
			slugs = append(slugs, item.Slug)
		}
		if int64(len(slugs)) != body.Count {
			t.Fatalf("%s: count %d does not match %d results", params.Encode(), body.Count, len(slugs))
		}
		return slugs
	}

	cases := []struct {
		name   string
		params url.Values
		want   []string
	}{
		{"distinguished subset", url.Values{"is_distinguished": {"true"}}, []string{"ahmed-ali"}},
		{"not distinguished", url.Values{"is_distinguished": {"false"}}, []string{"mona-hassan", "karim-saeed"}},
		{"inclusive rating bounds", url.Values{"min_rating": {"3"}, "max_rating": {"4.5"}}, []string{"ahmed-ali", "mona-hassan"}},
		{"party name ignores case", url.Values{"party": {"wafd party"}}, []string{"ahmed-ali"}},
		{"party name is exact", url.Values{"party": {"wafd"}}, []string{}},
		{"district contains", url.Values{"district": {"الدقي"}}, []string{"karim-saeed"}},
		{"profession contains", url.Values{"profession": {"doc"}}, []string{"mona-hassan"}},
		{"search over bio", url.Values{"search": {"INFRA"}}, []string{"ahmed-ali"}},
		{"ascending rating", url.Values{"ordering": {"rating"}}, []string{"karim-saeed", "mona-hassan", "ahmed-ali"}},
		{"descending rating", url.Values{"ordering": {"-rating"}}, []string{"ahmed-ali", "mona-hassan", "karim-saeed"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := list(t, tc.params)
			if strings.Join(got, ",") != strings.Join(tc.want, ",") {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestListRepresentatives_Errors(t *testing.T) {
	s := newTestServer(t, nil)
	s.addRepresentative(t, "أحمد علي", "ahmed-ali", true)

	rr := s.do(t, http.MethodGet, "/api/representatives/?page=9", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rr.Code)
	}
	var errBody dtos.ErrorResponse
	decode(t, rr, &errBody)
	if errBody.Error != "Invalid page." {
		t.Errorf("unexpected error message %q", errBody.Error)
	}

	rr = s.do(t, http.MethodGet, "/api/representatives/?gender=unknown", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rr.Code)
	}
	errBody = dtos.ErrorResponse{}
	decode(t, rr, &errBody)
	if _, ok := errBody.Fields["gender"]; !ok {
		t.Errorf("expected gender field error, got %v", errBody.Fields)
	}
}

func TestRepresentativeDetail_BothPaths(t *testing.T) {
	s := newTestServer(t, nil)
	s.addRepresentative(t, "أحمد علي", "ahmed-ali", true)
	s.addRepresentative(t, "مرشح مخفي", "hidden", false)

	for _, path := range []string{"/api/representatives/ahmed-ali/", "/ahmed-ali/", "/ahmed-ali"} {
		rr := s.do(t, http.MethodGet, path, "")
		if rr.Code != http.StatusOK {
			t.Fatalf("%s: Expected status 200, got %d", path, rr.Code)
		}
		var body map[string]interface{}
		decode(t, rr, &body)
		if body["slug"] != "ahmed-ali" {
			t.Errorf("%s: unexpected slug %v", path, body["slug"])
		}
	}

	for _, path := range []string{"/api/representatives/hidden/", "/missing/"} {
		rr := s.do(t, http.MethodGet, path, "")
		if rr.Code != http.StatusNotFound {
			t.Errorf("%s: Expected status 404, got %d", path, rr.Code)
		}
	}
}

func TestRepresentativeLifecycle(t *testing.T) {
	s := newTestServer(t, nil)

	rr := s.do(t, http.MethodPost, "/api/representatives/create/",
		`{"name": "أحمد علي", "name_en": "Ahmed Ali", "gender": "male", "district": "`+s.district.ID+`", "admin_approved": true}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	var created map[string]interface{}
	decode(t, rr, &created)
	if created["slug"] != "ahmed-ali" {
		t.Fatalf("expected slug ahmed-ali, got %v", created["slug"])
	}
	if created["status"] != "candidate" {
		t.Errorf("expected default status candidate, got %v", created["status"])
	}

	rr = s.do(t, http.MethodPatch, "/api/representatives/ahmed-ali/", `{"profession": "محامي"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rr.Code, rr.Body.String())
	}
	var updated map[string]interface{}
	decode(t, rr, &updated)
	if updated["profession"] != "محامي" || updated["name"] != "أحمد علي" {
		t.Errorf("patch must merge into stored row, got %v", updated)
	}

	rr = s.do(t, http.MethodDelete, "/api/representatives/ahmed-ali/", "")
	if rr.Code != http.StatusNoContent {
		t.Fatalf("Expected status 204, got %d", rr.Code)
	}
	rr = s.do(t, http.MethodGet, "/api/representatives/ahmed-ali/", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 after delete, got %d", rr.Code)
	}
}

func TestCreateRepresentative_Validation(t *testing.T) {
	s := newTestServer(t, nil)

	rr := s.do(t, http.MethodPost, "/api/representatives/", `{"profession": "طبيب"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400, got %d", rr.Code)
	}
	var body dtos.ErrorResponse
	decode(t, rr, &body)
	for _, field := range []string{"name", "gender", "district"} {
		if _, ok := body.Fields[field]; !ok {
			t.Errorf("expected field error for %s, got %v", field, body.Fields)
		}
	}

	rr = s.do(t, http.MethodPost, "/api/representatives/", `{"name": `)
	if rr.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400 for malformed JSON, got %d", rr.Code)
	}
}

func TestCreateRepresentative_RejectsUnroutableSlug(t *testing.T) {
	s := newTestServer(t, nil)

	for _, slug := range []string{"bad slug/with?chars", "a/b", "percent%20"} {
		rr := s.do(t, http.MethodPost, "/api/representatives/",
			`{"name": "أحمد علي", "slug": "`+slug+`", "gender": "male", "district": "`+s.district.ID+`"}`)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%q: Expected status 400, got %d: %s", slug, rr.Code, rr.Body.String())
		}
		var body dtos.ErrorResponse
		decode(t, rr, &body)
		if _, ok := body.Fields["slug"]; !ok {
			t.Errorf("%q: expected slug field error, got %v", slug, body.Fields)
		}
	}

	var count int64
	s.orm.Model(&gormModels.Representative{}).Count(&count)
	if count != 0 {
		t.Errorf("expected nothing stored, found %d rows", count)
	}

	rr := s.do(t, http.MethodPost, "/api/representatives/",
		`{"name": "أحمد علي", "slug": "أحمد-علي_2", "gender": "male", "district": "`+s.district.ID+`", "admin_approved": true}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	rr = s.do(t, http.MethodGet, "/api/representatives/"+url.PathEscape("أحمد-علي_2")+"/", "")
	if rr.Code != http.StatusOK {
		t.Errorf("Expected status 200 for the stored slug, got %d", rr.Code)
	}
}

func TestSearch(t *testing.T) {
	s := newTestServer(t, nil)
	s.addRepresentative(t, "أحمد علي", "ahmed-ali", true)
	s.addRepresentative(t, "محمود حسن", "mahmoud-hassan", true)

	rr := s.do(t, http.MethodGet, "/api/search/", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400 without q, got %d", rr.Code)
	}

	rr = s.do(t, http.MethodGet, "/api/search/?q=page&page=x", "")
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400 for malformed page, got %d", rr.Code)
	}

	// Governorate name matches both.
	rr = s.do(t, http.MethodGet, "/api/search/?q="+url.QueryEscape("القاهرة"), "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var body struct {
		TotalCount int64 `json:"total_count"`
		PageCount  int   `json:"page_count"`
		HasNext    bool  `json:"has_next"`
	}
	decode(t, rr, &body)
	if body.TotalCount != 2 || body.PageCount != 1 || body.HasNext {
		t.Errorf("unexpected search page %+v", body)
	}
}

func TestStatisticsAndFilterOptions(t *testing.T) {
	s := newTestServer(t, nil)
	s.addRepresentative(t, "أحمد علي", "ahmed-ali", true)

	rr := s.do(t, http.MethodGet, "/api/statistics/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var stats struct {
		TotalRepresentatives int `json:"total_representatives"`
		TotalGovernorates    int `json:"total_governorates"`
	}
	decode(t, rr, &stats)
	if stats.TotalRepresentatives != 1 || stats.TotalGovernorates != 1 {
		t.Errorf("unexpected statistics %+v", stats)
	}

	rr = s.do(t, http.MethodGet, "/api/filter-options/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var opts struct {
		Genders  []json.RawMessage `json:"genders"`
		Statuses []json.RawMessage `json:"statuses"`
	}
	decode(t, rr, &opts)
	if len(opts.Genders) != 2 || len(opts.Statuses) != 3 {
		t.Errorf("unexpected choices genders=%d statuses=%d", len(opts.Genders), len(opts.Statuses))
	}
}

func TestGovernorates_PaginatedAndUnique(t *testing.T) {
	s := newTestServer(t, nil)

	rr := s.do(t, http.MethodPost, "/api/governorates/", `{"name": "الجيزة", "code": "GIZ"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	rr = s.do(t, http.MethodPost, "/api/governorates/", `{"name": "الجيزة", "code": "GZ2"}`)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("Expected status 400 for duplicate name, got %d", rr.Code)
	}

	rr = s.do(t, http.MethodGet, "/api/governorates/?page_size=1", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var page dtos.Page[map[string]interface{}]
	decode(t, rr, &page)
	if page.Count != 2 || len(page.Results) != 1 || page.Next == nil {
		t.Errorf("unexpected governorate page count=%d results=%d next=%v", page.Count, len(page.Results), page.Next)
	}
}

func TestSettingsSingleton(t *testing.T) {
	s := newTestServer(t, nil)

	rr := s.do(t, http.MethodPost, "/api/settings/", `{"site_name": "نائبك"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	rr = s.do(t, http.MethodPost, "/api/settings/", `{"site_name": "مرة أخرى"}`)
	if rr.Code != http.StatusConflict {
		t.Fatalf("Expected status 409, got %d", rr.Code)
	}

	rr = s.do(t, http.MethodGet, "/api/settings/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var body map[string]interface{}
	decode(t, rr, &body)
	if body["site_name"] != "نائبك" {
		t.Errorf("unexpected site name %v", body["site_name"])
	}
}

func TestDefaultBanner(t *testing.T) {
	s := newTestServer(t, nil)

	rr := s.do(t, http.MethodGet, "/api/banners/default/", "")
	if rr.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404 without a default, got %d", rr.Code)
	}

	rr = s.do(t, http.MethodPost, "/api/banners/create/", `{"name": "الرئيسي", "banner_type": "main", "is_default": true}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}

	rr = s.do(t, http.MethodGet, "/api/banners/default/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var body map[string]interface{}
	decode(t, rr, &body)
	if body["name"] != "الرئيسي" || body["is_default"] != true {
		t.Errorf("unexpected default banner %v", body)
	}
}

func TestAdminPageUpsert(t *testing.T) {
	s := newTestServer(t, nil)

	rr := s.do(t, http.MethodPut, "/api/admin/pages/about/", `{"title": "من نحن", "content": "نص"}`)
	if rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201 on first write, got %d: %s", rr.Code, rr.Body.String())
	}
	rr = s.do(t, http.MethodPatch, "/api/admin/pages/about/", `{"content": "نص جديد"}`)
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200 on update, got %d", rr.Code)
	}

	rr = s.do(t, http.MethodGet, "/api/pages/about/", "")
	if rr.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rr.Code)
	}
	var page map[string]interface{}
	decode(t, rr, &page)
	if page["title"] != "من نحن" || page["content"] != "نص جديد" {
		t.Errorf("unexpected page %v", page)
	}

	rr = s.do(t, http.MethodPut, "/api/admin/pages/blog/", `{"title": "x"}`)
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404 for unknown page type, got %d", rr.Code)
	}
}

func TestMethodNotAllowedAndNotFound(t *testing.T) {
	s := newTestServer(t, nil)

	rr := s.do(t, http.MethodDelete, "/api/statistics/", "")
	if rr.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected status 405, got %d", rr.Code)
	}
	rr = s.do(t, http.MethodGet, "/api/unknown/thing/", "")
	if rr.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("expected JSON error body, got %q", ct)
	}
}

func TestWriteRateLimit(t *testing.T) {
	s := newTestServer(t, &config.Config{RateLimitRPS: 0.001, RateLimitBurst: 1, CORSOrigins: "*"})

	body := `{"question": "ما هي المنصة؟", "answer": "منصة نائبك"}`
	if rr := s.do(t, http.MethodPost, "/api/faq/", body); rr.Code != http.StatusCreated {
		t.Fatalf("Expected status 201, got %d: %s", rr.Code, rr.Body.String())
	}
	if rr := s.do(t, http.MethodPost, "/api/faq/", body); rr.Code != http.StatusTooManyRequests {
		t.Fatalf("Expected status 429, got %d", rr.Code)
	}
	if rr := s.do(t, http.MethodGet, "/api/faq/", ""); rr.Code != http.StatusOK {
		t.Errorf("Expected reads to bypass the limiter, got %d", rr.Code)
	}
}
