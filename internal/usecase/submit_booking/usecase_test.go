package submit_booking

import (
	"context"
	"errors"
	"io"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonBooking/internal/catalog"
	"github.com/m04kA/SMC-SalonBooking/internal/domain"
	slotRepo "github.com/m04kA/SMC-SalonBooking/internal/infra/storage/availability"
	"github.com/m04kA/SMC-SalonBooking/pkg/logger"
	"github.com/m04kA/SMC-SalonBooking/pkg/types"
)

var visitDate = time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)

type fakeBookingRepo struct {
	mu       sync.Mutex
	bookings []*domain.Booking
	err      error
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}
	created := *b
	created.ID = int64(len(r.bookings) + 1)
	created.CreatedAt = time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)
	r.bookings = append(r.bookings, &created)
	return &created, nil
}

// fakeSlotRepo отдает снимок слотов, сделанный до бронирований,
// а Reserve работает с актуальным состоянием: так воспроизводится гонка двух клиентов
type fakeSlotRepo struct {
	mu         sync.Mutex
	snapshot   map[string]domain.AvailabilitySlot
	live       map[string]*domain.AvailabilitySlot
	reserveErr error
}

func newFakeSlotRepo(slots ...domain.AvailabilitySlot) *fakeSlotRepo {
	r := &fakeSlotRepo{
		snapshot: make(map[string]domain.AvailabilitySlot),
		live:     make(map[string]*domain.AvailabilitySlot),
	}
	for _, s := range slots {
		key := s.Date.Format(domain.DateFormat) + " " + s.Time.String()
		r.snapshot[key] = s
		copied := s
		r.live[key] = &copied
	}
	return r
}

func (r *fakeSlotRepo) GetByDateTime(_ context.Context, date time.Time, t types.TimeString) (*domain.AvailabilitySlot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.snapshot[date.Format(domain.DateFormat)+" "+t.String()]
	if !ok {
		return nil, slotRepo.ErrSlotNotFound
	}
	return &s, nil
}

func (r *fakeSlotRepo) Reserve(_ context.Context, date time.Time, t types.TimeString, bookingID int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.reserveErr != nil {
		return false, r.reserveErr
	}
	s, ok := r.live[date.Format(domain.DateFormat)+" "+t.String()]
	if !ok || !s.IsAvailable() {
		return false, nil
	}
	s.Status = domain.SlotReserved
	s.BookingID = &bookingID
	return true, nil
}

type fakePhotos struct {
	calls int
	keys  []string
	err   error
}

func (p *fakePhotos) Upload(_ context.Context, key string, body io.Reader, _ int64, _ string) (string, error) {
	p.calls++
	if p.err != nil {
		return "", p.err
	}
	_, _ = io.ReadAll(body)
	p.keys = append(p.keys, key)
	return "https://cdn.example.com/" + key, nil
}

type fakeNotifier struct {
	name     string
	err      error
	received []*domain.Booking
}

func (n *fakeNotifier) Name() string { return n.name }

func (n *fakeNotifier) NotifyNewBooking(_ context.Context, b *domain.Booking) error {
	n.received = append(n.received, b)
	return n.err
}

type recordingMetrics struct {
	submitted     []string
	slotReleases  []string
	uploads       []string
	notifications []string
}

func (m *recordingMetrics) IncBookingSubmitted(result string) { m.submitted = append(m.submitted, result) }
func (m *recordingMetrics) IncSlotRelease(result string)      { m.slotReleases = append(m.slotReleases, result) }
func (m *recordingMetrics) IncUpload(kind, result string)     { m.uploads = append(m.uploads, kind+":"+result) }
func (m *recordingMetrics) IncNotification(channel, result string) {
	m.notifications = append(m.notifications, channel+":"+result)
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type fixture struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	slots    *fakeSlotRepo
	photos   *fakePhotos
	webhook  *fakeNotifier
	metrics  *recordingMetrics
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &fakeBookingRepo{},
		slots:    newFakeSlotRepo(domain.AvailabilitySlot{
			ID: 1, Date: visitDate, Time: "09:00:00", Status: domain.SlotAvailable,
		}),
		photos:  &fakePhotos{},
		webhook: &fakeNotifier{name: "webhook"},
		metrics: &recordingMetrics{},
	}
	f.uc = NewUseCase(f.bookings, f.slots, catalog.Default(), f.photos, []Notifier{f.webhook}, f.metrics, time.UTC, logger.NewNop())
	f.uc.timeProvider = fixedTime{now: time.Date(2025, 1, 8, 12, 0, 0, 0, time.UTC)}
	return f
}

func validRequest() *Request {
	return &Request{
		ServiceID:     "manicure-classic",
		AddonIDs:      []string{"addon-french", "addon-massage"},
		Date:          visitDate,
		Time:          "09:00:00",
		CustomerName:  "  Jane Doe ",
		ContactMethod: domain.ContactPhone,
		ContactDetail: "(514)-123-1234",
	}
}

func TestExecute_WithoutPhoto(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), resp.ID)
	assert.Equal(t, "Jane Doe", resp.CustomerName)
	assert.Equal(t, "Classic Manicure", resp.ServiceName)
	assert.Equal(t, []string{"French Tips", "Hand/Foot Massage"}, resp.AddonNames)
	assert.Equal(t, 60.0, resp.EstimatedTotal)
	assert.Nil(t, resp.InspirationPhotoURL)
	assert.True(t, resp.SlotReleased)

	assert.Equal(t, 0, f.photos.calls)
	assert.Equal(t, domain.SlotReserved, f.slots.live["2025-01-10 09:00:00"].Status)
	require.Len(t, f.webhook.received, 1)
	assert.Equal(t, []string{"success"}, f.metrics.submitted)
	assert.Equal(t, []string{"reserved"}, f.metrics.slotReleases)
	assert.Equal(t, []string{"webhook:success"}, f.metrics.notifications)
}

func TestExecute_WithPhoto(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Photo = &Photo{Filename: "idea.jpg", ContentType: "image/jpeg", Size: 3, Body: strings.NewReader("img")}

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, 1, f.photos.calls)
	assert.True(t, strings.HasPrefix(f.photos.keys[0], "inspiration/"))
	assert.True(t, strings.HasSuffix(f.photos.keys[0], ".jpg"))
	require.NotNil(t, resp.InspirationPhotoURL)
	assert.Equal(t, "https://cdn.example.com/"+f.photos.keys[0], *resp.InspirationPhotoURL)
	assert.Equal(t, []string{"inspiration:success"}, f.metrics.uploads)
}

func TestExecute_UploadFailureIsSwallowed(t *testing.T) {
	f := newFixture()
	f.photos.err = errors.New("bucket unreachable")
	req := validRequest()
	req.Photo = &Photo{Filename: "idea.png", ContentType: "image/png", Body: strings.NewReader("img")}

	resp, err := f.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Nil(t, resp.InspirationPhotoURL)
	require.Len(t, f.bookings.bookings, 1)
	assert.False(t, f.bookings.bookings[0].HasPhoto())
	assert.Equal(t, []string{"inspiration:failure"}, f.metrics.uploads)
}

func TestExecute_NotificationFailureIgnored(t *testing.T) {
	f := newFixture()
	f.webhook.err = errors.New("503")
	queue := &fakeNotifier{name: "amqp"}
	f.uc.notifiers = append(f.uc.notifiers, queue)

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.True(t, resp.SlotReleased)
	assert.Len(t, queue.received, 1)
	assert.Equal(t, []string{"webhook:failure", "amqp:success"}, f.metrics.notifications)
}

func TestExecute_ConcurrentSubmissionsForSameSlot(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	first, err := f.uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	second, err := f.uc.Execute(ctx, validRequest())
	require.NoError(t, err)

	assert.True(t, first.SlotReleased)
	assert.False(t, second.SlotReleased)
	assert.Len(t, f.bookings.bookings, 2)
	assert.Equal(t, []string{"reserved", "missing"}, f.metrics.slotReleases)
	assert.Equal(t, first.ID, *f.slots.live["2025-01-10 09:00:00"].BookingID)
}

func TestExecute_SlotReleaseErrorNotSurfaced(t *testing.T) {
	f := newFixture()
	f.slots.reserveErr = errors.New("deadlock detected")

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, resp.SlotReleased)
	assert.Equal(t, []string{"failure"}, f.metrics.slotReleases)
}

func TestExecute_InsertFailureAborts(t *testing.T) {
	f := newFixture()
	f.bookings.err = errors.New("connection refused")

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Empty(t, f.webhook.received)
	assert.Equal(t, domain.SlotAvailable, f.slots.live["2025-01-10 09:00:00"].Status)
	assert.Equal(t, []string{"failure"}, f.metrics.submitted)
}

func TestExecute_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(r *Request)
		wantErr error
	}{
		{name: "empty name", modify: func(r *Request) { r.CustomerName = "   " }, wantErr: ErrInvalidInput},
		{name: "phone without parentheses", modify: func(r *Request) { r.ContactDetail = "514-123-1234" }, wantErr: ErrInvalidInput},
		{name: "email without tld", modify: func(r *Request) {
			r.ContactMethod = domain.ContactEmail
			r.ContactDetail = "a@b"
		}, wantErr: ErrInvalidInput},
		{name: "instagram without at", modify: func(r *Request) {
			r.ContactMethod = domain.ContactInstagram
			r.ContactDetail = "jane_doe"
		}, wantErr: ErrInvalidInput},
		{name: "unknown contact method", modify: func(r *Request) { r.ContactMethod = "fax" }, wantErr: ErrInvalidInput},
		{name: "non-image photo", modify: func(r *Request) {
			r.Photo = &Photo{Filename: "doc.pdf", ContentType: "application/pdf", Body: strings.NewReader("x")}
		}, wantErr: ErrInvalidInput},
		{name: "unknown service", modify: func(r *Request) { r.ServiceID = "haircut" }, wantErr: ErrServiceNotFound},
		{name: "unknown addon", modify: func(r *Request) { r.AddonIDs = []string{"addon-gold"} }, wantErr: ErrAddonNotFound},
		{name: "past date", modify: func(r *Request) { r.Date = time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC) }, wantErr: ErrInvalidDate},
		{name: "no slot", modify: func(r *Request) { r.Time = "10:00:00" }, wantErr: ErrSlotNotAvailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			req := validRequest()
			tt.modify(req)

			_, err := f.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, f.bookings.bookings)
			assert.Equal(t, 0, f.photos.calls)
		})
	}
}

func TestExecute_ReservedSlotRejected(t *testing.T) {
	f := newFixture()
	f.slots.snapshot["2025-01-10 09:00:00"] = domain.AvailabilitySlot{
		ID: 1, Date: visitDate, Time: "09:00:00", Status: domain.SlotReserved,
	}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}
