package services

import (
	"testing"
	"time"

	"naebak/content-service/internal/common"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db/repositories"
	"naebak/content-service/internal/models/dtos/requests"
	gormModels "naebak/content-service/internal/models/gorm"
)

func (f *fixture) siteContentService() *SiteContentService {
	return NewSiteContentService(
		repositories.NewStaticPageRepository(f.orm),
		repositories.NewColorRepository(f.orm),
		repositories.NewSiteSettingsRepository(f.orm),
		repositories.NewFAQRepository(f.orm),
		f.metrics,
	)
}

func (f *fixture) bannerService() *BannerService {
	return NewBannerService(repositories.NewBannerRepository(f.orm), repositories.NewRepresentativeRepository(f.orm), f.metrics)
}

func TestBanner_SingleDefaultMain(t *testing.T) {
	f := newFixture(t)
	svc := f.bannerService()

	_, err := svc.Default(bg)
	requireCode(t, err, constants.ErrCodeNoDefaultBanner)

	first, err := svc.Create(bg, requests.BannerRequest{Name: "الأول", BannerType: "main", IsDefault: ptr(true)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	second, err := svc.Create(bg, requests.BannerRequest{Name: "الثاني", BannerType: "main", IsDefault: ptr(true)})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if _, err := svc.Create(bg, requests.BannerRequest{Name: "نائب", BannerType: "representative", IsDefault: ptr(true)}); err != nil {
		t.Fatalf("create failed: %v", err)
	}

	def, err := svc.Default(bg)
	if err != nil {
		t.Fatalf("default failed: %v", err)
	}
	if def.ID != second.ID {
		t.Errorf("expected newest default %s, got %s", second.ID, def.ID)
	}

	old, err := svc.Get(bg, first.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if old.IsDefault {
		t.Errorf("previous main default should have been cleared")
	}

	repDefault := true
	repBanners, err := svc.List(bg, repositories.BannerFilter{BannerType: constants.BannerRepresentative, IsDefault: &repDefault})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(repBanners) != 1 {
		t.Errorf("representative banners keep their default flag, got %d", len(repBanners))
	}

	if _, err := svc.Update(bg, first.ID, jsonDecoder(`{"is_default": true}`)); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	def, _ = svc.Default(bg)
	if def.ID != first.ID {
		t.Errorf("update should move the default back, got %s", def.ID)
	}

	_, err = svc.Create(bg, requests.BannerRequest{Name: "x", BannerType: "side"})
	requireCode(t, err, constants.ErrCodeValidation)
}

func TestBanner_RepresentativeName(t *testing.T) {
	f := newFixture(t)
	svc := f.bannerService()
	rep := f.addRepresentative(t, "أحمد علي", nil)

	b, err := svc.Create(bg, requests.BannerRequest{Name: "بنر", BannerType: "representative", Representative: &rep.ID})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if b.RepresentativeName == nil || *b.RepresentativeName != "أحمد علي" {
		t.Errorf("expected representative name, got %v", b.RepresentativeName)
	}
}

func TestSiteSettings_Singleton(t *testing.T) {
	f := newFixture(t)
	svc := f.siteContentService()

	created, err := svc.CreateSettings(bg, jsonDecoder(`{"site_name": "نائبك"}`))
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.VisitorCounterMin != constants.DefaultVisitorCounterMin {
		t.Errorf("expected default counters, got %d", created.VisitorCounterMin)
	}

	_, err = svc.CreateSettings(bg, jsonDecoder(`{"site_name": "ثاني"}`))
	requireCode(t, err, constants.ErrCodeSingleton)

	got, err := svc.GetSettings(bg)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != created.ID || got.SiteName != "نائبك" {
		t.Errorf("expected the original row, got %+v", got)
	}

	updated, err := svc.UpdateSettings(bg, jsonDecoder(`{"contact_email": "info@naebak.com"}`))
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.ID != created.ID || updated.ContactEmail != "info@naebak.com" || updated.SiteName != "نائبك" {
		t.Errorf("unexpected update result %+v", updated)
	}

	_, err = svc.UpdateSettings(bg, jsonDecoder(`{"visitor_counter_min": 10, "visitor_counter_max": 5}`))
	requireCode(t, err, constants.ErrCodeValidation)
}

func TestSiteSettings_GetCreatesDefaults(t *testing.T) {
	f := newFixture(t)
	svc := f.siteContentService()

	first, err := svc.GetSettings(bg)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if first.SiteName != constants.DefaultSiteName {
		t.Errorf("expected default site name, got %q", first.SiteName)
	}
	second, _ := svc.GetSettings(bg)
	if second.ID != first.ID {
		t.Errorf("get-or-create must not insert twice")
	}
}

func TestStaticPages_Upsert(t *testing.T) {
	f := newFixture(t)
	svc := f.siteContentService()

	_, err := svc.GetPage(bg, "about")
	requireCode(t, err, constants.ErrCodeNotFound)

	page, created, err := svc.UpsertPage(bg, "about", jsonDecoder(`{"title": "من نحن", "content": "..."}`))
	if err != nil || !created {
		t.Fatalf("expected creation, got created=%v err=%v", created, err)
	}
	_, created, err = svc.UpsertPage(bg, "about", jsonDecoder(`{"order": 2}`))
	if err != nil || created {
		t.Fatalf("expected update, got created=%v err=%v", created, err)
	}

	got, err := svc.GetPage(bg, "about")
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if got.ID != page.ID || got.Order != 2 || got.Title != "من نحن" {
		t.Errorf("unexpected page %+v", got)
	}

	_, _, err = svc.UpsertPage(bg, "careers", jsonDecoder(`{"title": "x"}`))
	requireCode(t, err, constants.ErrCodeNotFound)
}

func TestColors_SchemeVariables(t *testing.T) {
	f := newFixture(t)
	svc := f.siteContentService()

	if _, _, err := svc.UpsertColor(bg, "primary", jsonDecoder(`{"color_value": "#004d40"}`)); err != nil {
		t.Fatalf("upsert failed: %v", err)
	}
	_, _, err := svc.UpsertColor(bg, "primary", jsonDecoder(`{"color_value": "green"}`))
	requireCode(t, err, constants.ErrCodeValidation)

	scheme, err := svc.ColorScheme(bg)
	if err != nil {
		t.Fatalf("scheme failed: %v", err)
	}
	if scheme.Colors["primary"] != "#004d40" || scheme.CSSVariables["--primary"] != "#004d40" {
		t.Errorf("unexpected scheme %+v", scheme)
	}
}

func TestFAQ_CategoryFilter(t *testing.T) {
	f := newFixture(t)
	svc := f.siteContentService()

	for _, req := range []requests.FAQRequest{
		{Question: "كيف أسجل؟", Answer: "من الصفحة الرئيسية", Category: "عام"},
		{Question: "كيف أشتكي؟", Answer: "من صفحة النائب", Category: "شكاوى"},
	} {
		if _, err := svc.CreateFAQ(bg, req); err != nil {
			t.Fatalf("create failed: %v", err)
		}
	}

	general, err := svc.ListFAQs(bg, "عام")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(general) != 1 {
		t.Errorf("expected one general faq, got %d", len(general))
	}
	all, _ := svc.ListFAQs(bg, "")
	if len(all) != 2 {
		t.Errorf("expected two faqs, got %d", len(all))
	}
}

func TestEvents_ApprovalAndProfileCache(t *testing.T) {
	f := newFixture(t)
	events := NewEventService(repositories.NewEventRepository(f.orm), repositories.NewRepresentativeRepository(f.orm), f.cache, f.metrics)
	reps := f.representativeService()
	rep := f.addRepresentative(t, "أحمد علي", func(r *gormModels.Representative) { r.Slug = "ahmed" })

	if _, err := reps.GetBySlug(bg, "ahmed"); err != nil {
		t.Fatalf("detail failed: %v", err)
	}

	pending, err := events.Create(bg, requests.EventRequest{
		Representative: rep.ID,
		Title:          "لقاء جماهيري",
		EventType:      "rally",
		EventDate:      time.Date(2024, 5, 1, 18, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if pending.AdminApproved || pending.RepresentativeName != "أحمد علي" {
		t.Errorf("unexpected event %+v", pending)
	}

	page := common.PageParams{Page: 1, PageSize: 20}
	list, err := events.List(bg, repositories.EventFilter{}, page)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if list.Total != 0 {
		t.Errorf("unapproved events must be hidden, got %d", list.Total)
	}
	_, err = events.Get(bg, pending.ID)
	requireCode(t, err, constants.ErrCodeNotFound)

	if _, err := events.Update(bg, pending.ID, jsonDecoder(`{"admin_approved": true}`)); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	list, _ = events.List(bg, repositories.EventFilter{RepresentativeID: rep.ID}, page)
	if list.Total != 1 {
		t.Errorf("expected approved event, got %d", list.Total)
	}

	detail, err := reps.GetBySlug(bg, "ahmed")
	if err != nil {
		t.Fatalf("detail failed: %v", err)
	}
	if len(detail.Events) != 1 {
		t.Errorf("profile cache should be dropped on event writes, got %d events", len(detail.Events))
	}
}
