package services

import (
	"testing"

	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db/filters"
	"naebak/content-service/internal/db/repositories"
	"naebak/content-service/internal/models/dtos/requests"
)

func TestGovernorate_UniqueNameAndCode(t *testing.T) {
	f := newFixture(t)
	svc := f.referenceService()

	_, err := svc.CreateGovernorate(bg, requests.GovernorateRequest{Name: "القاهرة", Code: "CAI"})
	ce := requireCode(t, err, constants.ErrCodeValidation)
	if _, ok := ce.Fields["name"]; !ok {
		t.Errorf("expected name error, got %v", ce.Fields)
	}
	if _, ok := ce.Fields["code"]; !ok {
		t.Errorf("expected code error, got %v", ce.Fields)
	}

	created, err := svc.CreateGovernorate(bg, requests.GovernorateRequest{Name: "الإسكندرية", NameEn: "Alexandria", Code: "ALX", Population: ptr(int64(5200000))})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	// Renaming to itself is not a conflict.
	if _, err := svc.UpdateGovernorate(bg, created.ID, jsonDecoder(`{"name": "الإسكندرية"}`)); err != nil {
		t.Errorf("self update should pass: %v", err)
	}
	_, err = svc.UpdateGovernorate(bg, created.ID, jsonDecoder(`{"code": "GIZ"}`))
	requireCode(t, err, constants.ErrCodeValidation)
}

func TestGovernorateList_CachedUntilWrite(t *testing.T) {
	f := newFixture(t)
	svc := f.referenceService()

	first, err := svc.ListGovernorates(bg, filters.GovernorateFilter{}, "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(first) != 2 {
		t.Fatalf("expected 2 governorates, got %d", len(first))
	}

	f.addGovernorate(t, "أسوان", "ASW")
	stale, _ := svc.ListGovernorates(bg, filters.GovernorateFilter{}, "")
	if len(stale) != 2 {
		t.Errorf("expected cached list, got %d rows", len(stale))
	}

	filtered, err := svc.ListGovernorates(bg, filters.GovernorateFilter{Code: "asw"}, "")
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(filtered) != 1 {
		t.Errorf("filtered lists bypass the cache, got %d rows", len(filtered))
	}

	if _, err := svc.CreateGovernorate(bg, requests.GovernorateRequest{Name: "قنا", Code: "KEN"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	fresh, _ := svc.ListGovernorates(bg, filters.GovernorateFilter{}, "")
	if len(fresh) != 4 {
		t.Errorf("expected invalidated list with 4 rows, got %d", len(fresh))
	}
}

func TestDistrict_NumberUniquePerGovernorate(t *testing.T) {
	f := newFixture(t)
	svc := f.referenceService()

	_, err := svc.CreateDistrict(bg, requests.DistrictRequest{Name: "شبرا", Governorate: f.cairo.ID, Number: 1})
	ce := requireCode(t, err, constants.ErrCodeValidation)
	if _, ok := ce.Fields["number"]; !ok {
		t.Errorf("expected number error, got %v", ce.Fields)
	}

	created, err := svc.CreateDistrict(bg, requests.DistrictRequest{Name: "شبرا", Governorate: f.cairo.ID, Number: 2})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.GovernorateName != "القاهرة" {
		t.Errorf("expected governorate name, got %q", created.GovernorateName)
	}

	_, err = svc.CreateDistrict(bg, requests.DistrictRequest{Name: "x", Governorate: "00000000-0000-0000-0000-000000000000", Number: 1})
	ce = requireCode(t, err, constants.ErrCodeValidation)
	if _, ok := ce.Fields["governorate"]; !ok {
		t.Errorf("expected governorate error, got %v", ce.Fields)
	}

	cairoOnly, err := svc.ListDistricts(bg, filters.DistrictFilter{Governorate: "القاهرة"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(cairoOnly) != 2 {
		t.Errorf("expected 2 Cairo districts, got %d", len(cairoOnly))
	}
}

func TestParty_CRUD(t *testing.T) {
	f := newFixture(t)
	svc := f.referenceService()

	p, err := svc.CreateParty(bg, requests.PartyRequest{Name: "حزب النور", FoundedDate: ptr("2011-06-12")})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if p.Color != constants.DefaultPartyColor {
		t.Errorf("expected default color, got %q", p.Color)
	}
	if p.FoundedDate == nil || *p.FoundedDate != "2011-06-12" {
		t.Errorf("unexpected founded date %v", p.FoundedDate)
	}

	_, err = svc.CreateParty(bg, requests.PartyRequest{Name: "حزب الوفد"})
	requireCode(t, err, constants.ErrCodeValidation)

	if err := svc.DeactivateParty(bg, p.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	_, err = svc.GetParty(bg, p.ID)
	requireCode(t, err, constants.ErrCodeNotFound)
	requireCode(t, svc.DeactivateParty(bg, p.ID), constants.ErrCodeNotFound)
}

func TestFilterOptions(t *testing.T) {
	f := newFixture(t)
	svc := NewFilterOptionsService(
		repositories.NewGovernorateRepository(f.orm),
		repositories.NewPartyRepository(f.orm),
		repositories.NewDistrictRepository(f.orm),
		f.cache,
	)

	out, err := svc.Get(bg)
	if err != nil {
		t.Fatalf("filter options failed: %v", err)
	}
	if len(out.Governorates) != 2 || len(out.Parties) != 1 || len(out.Districts) != 2 {
		t.Errorf("unexpected reference counts %d/%d/%d", len(out.Governorates), len(out.Parties), len(out.Districts))
	}
	if len(out.Genders) != 2 || len(out.Statuses) != 3 {
		t.Errorf("expected 2 genders and 3 statuses, got %d/%d", len(out.Genders), len(out.Statuses))
	}
	if out.Genders[1].Label != "أنثى" {
		t.Errorf("unexpected label %q", out.Genders[1].Label)
	}
}
