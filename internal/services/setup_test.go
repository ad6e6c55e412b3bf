package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"naebak/content-service/internal/common"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db"
	"naebak/content-service/internal/db/repositories"
	"naebak/content-service/internal/logging"
	"naebak/content-service/internal/metrics"
	gormModels "naebak/content-service/internal/models/gorm"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus"
	gormlib "gorm.io/gorm"
)

type fixture struct {
	orm     *gormlib.DB
	sqlx    *sqlx.DB
	metrics *metrics.MetricsRegistry
	cache   *common.ReadThroughCache

	cairo      gormModels.Governorate
	giza       gormModels.Governorate
	cairoFirst gormModels.District
	gizaFirst  gormModels.District
	party      gormModels.PoliticalParty
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logging.UseNop()

	orm, err := db.OpenSQLite(":memory:")
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(orm); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	sx, err := db.WrapORM(orm, "sqlite3")
	if err != nil {
		t.Fatalf("wrap orm: %v", err)
	}
	t.Cleanup(func() { _ = sx.Close() })

	reg := metrics.NewMetricsRegistry(prometheus.NewRegistry())
	f := &fixture{
		orm:     orm,
		sqlx:    sx,
		metrics: reg,
		cache:   common.NewReadThroughCache(common.NewCacheService(60, 120), reg),
	}

	f.cairo = f.addGovernorate(t, "القاهرة", "CAI")
	f.giza = f.addGovernorate(t, "الجيزة", "GIZ")
	f.cairoFirst = f.addDistrict(t, f.cairo.ID, "مدينة نصر", 1)
	f.gizaFirst = f.addDistrict(t, f.giza.ID, "الدقي", 1)

	f.party = gormModels.PoliticalParty{Name: "حزب الوفد", Color: "#ff0000"}
	f.party.IsActive = true
	f.mustCreate(t, &f.party)
	return f
}

func (f *fixture) mustCreate(t *testing.T, row interface{}) {
	t.Helper()
	if err := f.orm.Create(row).Error; err != nil {
		t.Fatalf("create %T: %v", row, err)
	}
}

func (f *fixture) addGovernorate(t *testing.T, name, code string) gormModels.Governorate {
	t.Helper()
	g := gormModels.Governorate{Name: name, Code: code}
	g.IsActive = true
	f.mustCreate(t, &g)
	return g
}

func (f *fixture) addDistrict(t *testing.T, governorateID, name string, number int) gormModels.District {
	t.Helper()
	d := gormModels.District{Name: name, GovernorateID: governorateID, Number: number}
	d.IsActive = true
	f.mustCreate(t, &d)
	return d
}

// addRepresentative creates an active, approved male candidate in Cairo's
// first district, then applies mutate before insert.
func (f *fixture) addRepresentative(t *testing.T, name string, mutate func(r *gormModels.Representative)) gormModels.Representative {
	t.Helper()
	r := gormModels.Representative{
		Name:          name,
		Slug:          "rep-" + uuid.NewString()[:8],
		Gender:        constants.GenderMale,
		DistrictID:    f.cairoFirst.ID,
		Status:        constants.StatusCandidate,
		ElectionYear:  constants.DefaultElectionYear,
		AdminApproved: true,
	}
	r.IsActive = true
	if mutate != nil {
		mutate(&r)
	}
	f.mustCreate(t, &r)
	return r
}

func (f *fixture) representativeService() *RepresentativeService {
	return NewRepresentativeService(
		repositories.NewRepresentativeRepository(f.orm),
		repositories.NewDistrictRepository(f.orm),
		repositories.NewPartyRepository(f.orm),
		f.cache,
		f.metrics,
	)
}

func (f *fixture) referenceService() *ReferenceService {
	return NewReferenceService(
		repositories.NewGovernorateRepository(f.orm),
		repositories.NewDistrictRepository(f.orm),
		repositories.NewPartyRepository(f.orm),
		f.cache,
		f.metrics,
	)
}

// jsonDecoder mimics the handler decoder for update tests.
func jsonDecoder(body string) Decoder {
	return func(dst any) error {
		dec := json.NewDecoder(strings.NewReader(body))
		dec.DisallowUnknownFields()
		return dec.Decode(dst)
	}
}

func requireCode(t *testing.T, err error, code string) *ContentError {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error with code %s, got nil", code)
	}
	var ce *ContentError
	if !errors.As(err, &ce) || ce.Code != code {
		t.Fatalf("expected code %s, got %v", code, err)
	}
	return ce
}

func ptr[T any](v T) *T { return &v }

var bg = context.Background()
