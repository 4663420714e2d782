package service

import (
	"context"
	"fmt"
	"strings"

	"jumpy/config"
	"jumpy/infras/email"
	"jumpy/infras/kafka"
	"jumpy/infras/otel"
	"jumpy/internal/domains/inquiry/model"
	"jumpy/internal/domains/inquiry/model/dto"
	"jumpy/internal/domains/inquiry/repository"
	"jumpy/shared"
	"jumpy/shared/cache"
	"jumpy/shared/constant"
	gDto "jumpy/shared/dto"
	"jumpy/shared/failure"
	"jumpy/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetInquiry    = "inquiry:get"
	cacheGetAllInquiry = "inquiry:get_all"
	inquiryNotFound    = "inquiry not found"
	invalidStatusText  = "invalid inquiry status"

	eventInquiryCreated       = "inquiry.created"
	eventInquiryStatusChanged = "inquiry.status_changed"
)

var csvHeader = []string{"ID", "Name", "Email", "Phone", "Requested Date", "Requested Inflatable", "Event Details", "Status", "Created At"}

// inquiryEvent is the payload published to the back-office notification topic.
type inquiryEvent struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	RequestedJumpy string `json:"requested_jumpy"`
	Status         string `json:"status"`
	OccurredAt     string `json:"occurred_at"`
}

type Inquiry interface {
	Create(ctx context.Context, req dto.ContactRequest) (string, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInquiriesResponse, error)
	Get(ctx context.Context, id string) (dto.InquiryResponse, error)
	Update(ctx context.Context, req dto.UpdateInquiryRequest, id string) error
	Delete(ctx context.Context, id string) error
	ExportCSV(ctx context.Context) ([]byte, string, error)
}

type serviceImpl struct {
	repo   repository.Inquiry
	cfg    *config.Config
	cache  cache.RedisCache
	otel   otel.Otel
	mailer email.Mailer
	kafka  kafka.Client
}

func New(repo repository.Inquiry, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, mailer email.Mailer, kafkaClient kafka.Client) Inquiry {
	return &serviceImpl{
		repo:   repo,
		cfg:    cfg,
		cache:  cache,
		otel:   otel,
		mailer: mailer,
		kafka:  kafkaClient,
	}
}

// Create stores the quote request and kicks off the notification side effects.
// Email and Kafka failures are logged, they never fail the submission.
func (s *serviceImpl) Create(ctx context.Context, req dto.ContactRequest) (id string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	m := req.ToModel()

	if err = s.repo.Insert(ctx, m); err != nil {
		log.Error().Err(err).Msg("failed to insert inquiry")

		return constant.Empty, err
	}

	go func() {
		c := context.WithoutCancel(ctx)

		s.notifyAdmin(c, m)
		s.confirmToCustomer(c, m)
		s.publishEvent(c, eventInquiryCreated, m)

		shared.InvalidateCaches(c, s.cache, cacheGetAllInquiry)
	}()

	return m.ID, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInquiriesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	params.SortBy = model.DefaultSortBy
	params.SortDir = model.DefaultSortDir

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllInquiry, params, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inquiries")

		return res, nil
	}

	inquiries, total, err := s.repo.GetAllCounted(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiries")

		return res, err
	}

	counts, err := s.repo.CountByStatus(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inquiries by status")

		return res, err
	}

	res.TotalData = total
	res.TotalPage = shared.CalculateTotalPage(total, params.Limit)

	res.Inquiries = make([]dto.InquiryResponse, len(inquiries))
	for i, m := range inquiries {
		res.Inquiries[i].FromModel(m)
	}

	res.Stats = make(map[string]int, len(model.Statuses))
	for _, status := range model.Statuses {
		res.Stats[status] = 0
	}

	for _, count := range counts {
		res.Stats[count.Status] = count.Total
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inquiries to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InquiryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetInquiry, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inquiry")

		return res, nil
	}

	inquiry, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiry")

		return res, fmt.Errorf("failed to get inquiry: %w", err)
	}

	if inquiry.ID == constant.Empty {
		return res, failure.NotFound(inquiryNotFound)
	}

	res.FromModel(inquiry)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inquiry to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateInquiryRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req.Status != constant.Empty && !model.IsValidStatus(req.Status) {
		return failure.BadRequestFromString(invalidStatusText)
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	inquiry, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiry for update")

		return fmt.Errorf("failed to get inquiry: %w", err)
	}

	if inquiry.ID == constant.Empty {
		return failure.NotFound(inquiryNotFound)
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update inquiry")

		return fmt.Errorf("failed to update inquiry: %w", err)
	}

	statusChanged := req.Status != constant.Empty && req.Status != inquiry.Status

	go func() {
		c := context.WithoutCancel(ctx)

		if statusChanged {
			inquiry.Status = req.Status
			s.publishEvent(c, eventInquiryStatusChanged, inquiry)
		}

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetInquiry, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete inquiry cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllInquiry)
	}()

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete inquiry")

		return fmt.Errorf("failed to delete inquiry: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetInquiry, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete inquiry cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllInquiry)
	}()

	return nil
}

// ExportCSV renders every inquiry, newest first. Free-text fields are always
// quoted with internal quotes doubled so commas in names and event details
// survive; ids, dates and status carry no commas and stay bare.
func (s *serviceImpl) ExportCSV(ctx context.Context) (data []byte, filename string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inquiry.ExportCSV")
	defer scope.End()
	defer scope.TraceIfError(err)

	params := gDto.QueryParams{SortBy: model.DefaultSortBy, SortDir: model.DefaultSortDir}

	inquiries, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get inquiries for export")

		return nil, constant.Empty, err
	}

	lines := make([]string, 0, len(inquiries)+1)
	lines = append(lines, strings.Join(csvHeader, ","))

	for _, m := range inquiries {
		row := []string{
			m.ID,
			quoteCSVField(m.Name),
			quoteCSVField(m.Email),
			quoteCSVField(m.Phone),
			m.RequestedDate.Format(constant.DateOnlyFormat),
			quoteCSVField(m.RequestedJumpy),
			quoteCSVField(m.EventDetails),
			m.Status,
			m.CreatedAt.Format(constant.ExportTimeFormat),
		}

		lines = append(lines, strings.Join(row, ","))
	}

	filename = fmt.Sprintf("inquiries-%s.csv", timezone.Now().Format(constant.DateOnlyFormat))

	return []byte(strings.Join(lines, "\n")), filename, nil
}

func quoteCSVField(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

func (s *serviceImpl) notifyAdmin(ctx context.Context, m model.Inquiry) {
	if s.cfg.Contact.NotifyEmail == constant.Empty {
		return
	}

	msg := email.Message{
		To:      s.cfg.Contact.NotifyEmail,
		Subject: fmt.Sprintf("New rental inquiry from %s", m.Name),
		HTML:    adminNotificationHTML(m),
		ReplyTo: m.Email,
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Error().Err(err).Str("inquiryID", m.ID).Msg("failed to send admin notification email")
	}
}

func (s *serviceImpl) confirmToCustomer(ctx context.Context, m model.Inquiry) {
	msg := email.Message{
		To:      m.Email,
		Subject: "We received your rental inquiry",
		HTML:    customerConfirmationHTML(m, s.cfg.Contact.Phone),
	}

	if err := s.mailer.Send(ctx, msg); err != nil {
		log.Error().Err(err).Str("inquiryID", m.ID).Msg("failed to send customer confirmation email")
	}
}

func (s *serviceImpl) publishEvent(ctx context.Context, key string, m model.Inquiry) {
	if s.cfg.Kafka.InquiryTopic == constant.Empty {
		return
	}

	event := inquiryEvent{
		ID:             m.ID,
		Name:           m.Name,
		Email:          m.Email,
		RequestedJumpy: m.RequestedJumpy,
		Status:         m.Status,
		OccurredAt:     timezone.Now().Format(constant.DateFormat),
	}

	if err := s.kafka.SendMessages(ctx, s.cfg.Kafka.InquiryTopic, kafka.Message{Key: key, Value: event}); err != nil {
		log.Error().Err(err).Str("inquiryID", m.ID).Str("event", key).Msg("failed to publish inquiry event")
	}
}

func adminNotificationHTML(m model.Inquiry) string {
	return fmt.Sprintf(
		`<h2>New rental inquiry</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Phone:</strong> %s</p>
<p><strong>Email:</strong> %s</p>
<p><strong>Address:</strong> %s %s, %s, %s %s</p>
<p><strong>Requested date:</strong> %s %s</p>
<p><strong>Requested inflatable:</strong> %s</p>
<p><strong>Event details:</strong> %s</p>`,
		m.Name, m.Phone, m.Email,
		m.Address, m.Address2, m.City, m.State, m.Zip,
		m.RequestedDate.Format(constant.DateOnlyFormat), m.RequestedTime,
		m.RequestedJumpy, m.EventDetails,
	)
}

func customerConfirmationHTML(m model.Inquiry, phone string) string {
	return fmt.Sprintf(
		`<h2>Thanks for your inquiry, %s!</h2>
<p>We received your request for <strong>%s</strong> on %s and will get back to you shortly.</p>
<p>Need to reach us sooner? Call %s.</p>`,
		m.Name, m.RequestedJumpy, m.RequestedDate.Format(constant.DateOnlyFormat), phone,
	)
}
