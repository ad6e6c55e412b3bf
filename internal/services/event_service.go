package services

import (
	"context"
	"strings"

	"naebak/content-service/internal/common"
	"naebak/content-service/internal/constants"
	"naebak/content-service/internal/db/repositories"
	"naebak/content-service/internal/logging"
	"naebak/content-service/internal/metrics"
	"naebak/content-service/internal/models/dtos/requests"
	"naebak/content-service/internal/models/dtos/responses"
	gormModels "naebak/content-service/internal/models/gorm"
)

// EventPage is one page of public events plus the total across pages.
type EventPage struct {
	Results []responses.EventResponse
	Total   int64
}

// EventService publishes representative events. New events wait for approval
// unless the writer approves them explicitly.
type EventService struct {
	events  *repositories.EventRepository
	reps    *repositories.RepresentativeRepository
	cache   *common.ReadThroughCache
	metrics *metrics.MetricsRegistry
}

func NewEventService(events *repositories.EventRepository, reps *repositories.RepresentativeRepository, cache *common.ReadThroughCache, metricsReg *metrics.MetricsRegistry) *EventService {
	return &EventService{events: events, reps: reps, cache: cache, metrics: metricsReg}
}

func (s *EventService) List(ctx context.Context, f repositories.EventFilter, page common.PageParams) (*EventPage, error) {
	rows, total, err := s.events.ListVisible(ctx, f, page.Offset(), page.PageSize)
	if err != nil {
		return nil, storageError(err)
	}
	if err := common.CheckPageInRange(page, total); err != nil {
		return nil, NewContentError(constants.ErrCodeInvalidPage, err)
	}

	out := &EventPage{Results: make([]responses.EventResponse, 0, len(rows)), Total: total}
	for _, e := range rows {
		out.Results = append(out.Results, responses.NewEventResponse(e))
	}
	return out, nil
}

func (s *EventService) Get(ctx context.Context, id string) (*responses.EventResponse, error) {
	e, err := s.events.GetVisibleByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if e == nil {
		return nil, notFound("event")
	}
	return s.render(ctx, e), nil
}

func (s *EventService) Create(ctx context.Context, req requests.EventRequest) (*responses.EventResponse, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	e := gormModels.Event{}
	e.IsActive = true
	applyEventRequest(&e, req)

	if err := s.events.Create(ctx, &e); err != nil {
		return nil, storageError(err)
	}
	s.afterWrite(ctx, &e, "create")
	return s.render(ctx, &e), nil
}

func (s *EventService) Update(ctx context.Context, id string, decode Decoder) (*responses.EventResponse, error) {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return nil, storageError(err)
	}
	if e == nil {
		return nil, notFound("event")
	}
	previousRep := e.RepresentativeID

	req := requests.NewEventRequest(*e)
	if err := decode(&req); err != nil {
		return nil, invalidJSON(err)
	}
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}
	applyEventRequest(e, req)

	if err := s.events.Save(ctx, e); err != nil {
		return nil, storageError(err)
	}
	if previousRep != e.RepresentativeID {
		s.invalidateProfile(ctx, previousRep)
	}
	s.afterWrite(ctx, e, "update")
	return s.render(ctx, e), nil
}

func (s *EventService) Deactivate(ctx context.Context, id string) error {
	e, err := s.events.GetByID(ctx, id)
	if err != nil {
		return storageError(err)
	}
	if e == nil {
		return notFound("event")
	}
	changed, err := s.events.Deactivate(ctx, id)
	if err != nil {
		return storageError(err)
	}
	if !changed {
		return notFound("event")
	}
	s.afterWrite(ctx, e, "deactivate")
	return nil
}

func (s *EventService) validate(ctx context.Context, req requests.EventRequest) error {
	fields := common.ValidateStruct(req)
	if fields == nil {
		fields = map[string]string{}
	}
	if _, bad := fields["representative"]; !bad {
		rep, err := s.reps.GetByID(ctx, req.Representative)
		if err != nil {
			return storageError(err)
		}
		if rep == nil {
			fields["representative"] = doesNotExist(req.Representative)
		}
	}
	if len(fields) > 0 {
		return validationError(fields)
	}
	return nil
}

// afterWrite drops the owning profile from the cache since it embeds events.
func (s *EventService) afterWrite(ctx context.Context, e *gormModels.Event, operation string) {
	s.invalidateProfile(ctx, e.RepresentativeID)
	s.metrics.RecordWrite("event", operation)
	logging.Info("event saved", "id", e.ID, "operation", operation, "representative_id", e.RepresentativeID)
}

func (s *EventService) invalidateProfile(ctx context.Context, representativeID string) {
	rep, err := s.reps.GetByID(ctx, representativeID)
	if err != nil {
		logging.Warn("failed to resolve representative for cache invalidation", "representative_id", representativeID, "error", err)
		return
	}
	if rep != nil {
		s.cache.Invalidate(constants.RepresentativeDetailKey(rep.Slug))
	}
}

func (s *EventService) render(ctx context.Context, e *gormModels.Event) *responses.EventResponse {
	if e.Representative == nil {
		rep, err := s.reps.GetByID(ctx, e.RepresentativeID)
		if err != nil {
			logging.Warn("failed to load event representative", "event_id", e.ID, "error", err)
		}
		e.Representative = rep
	}
	out := responses.NewEventResponse(*e)
	return &out
}

func applyEventRequest(e *gormModels.Event, req requests.EventRequest) {
	e.RepresentativeID = req.Representative
	e.Title = strings.TrimSpace(req.Title)
	e.Description = req.Description
	e.EventType = constants.EventType(req.EventType)
	e.EventDate = req.EventDate
	e.Location = req.Location
	e.Image = req.Image
	e.AdminApproved = boolOr(req.AdminApproved, e.AdminApproved)
	e.IsActive = boolOr(req.IsActive, e.IsActive)
}
