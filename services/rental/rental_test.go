package rental

import (
	"testing"
	"time"

	"trailhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// fakeRentalRepo keeps rentals in a map; GetOverlapping mirrors the Mongo
// query's inclusive lexicographic comparison.
type fakeRentalRepo struct {
	rentals map[string]*models.Rental
}

func newFakeRentalRepo() *fakeRentalRepo {
	return &fakeRentalRepo{rentals: make(map[string]*models.Rental)}
}

func (f *fakeRentalRepo) GetByID(id string) (*models.Rental, error) {
	rental, ok := f.rentals[id]
	if !ok {
		return nil, nil
	}
	clone := *rental
	return &clone, nil
}

func (f *fakeRentalRepo) GetByRenter(renterID string) ([]models.Rental, error) {
	var out []models.Rental
	for _, r := range f.rentals {
		if r.RenterID == renterID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRentalRepo) GetByOwner(ownerID string) ([]models.Rental, error) {
	var out []models.Rental
	for _, r := range f.rentals {
		if r.OwnerID == ownerID {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRentalRepo) GetOverlapping(trailerID, startDate, endDate string) ([]models.Rental, error) {
	var out []models.Rental
	for _, r := range f.rentals {
		if r.TrailerID != trailerID {
			continue
		}
		if r.Status != models.RentalStatusPending && r.Status != models.RentalStatusApproved {
			continue
		}
		if r.StartDate <= endDate && r.EndDate >= startDate {
			out = append(out, *r)
		}
	}
	return out, nil
}

func (f *fakeRentalRepo) Create(rental *models.Rental) error {
	clone := *rental
	f.rentals[rental.ID] = &clone
	return nil
}

func (f *fakeRentalRepo) UpdateStatus(id, status string) error {
	f.rentals[id].Status = status
	return nil
}

func (f *fakeRentalRepo) MarkReviewed(id string) error {
	f.rentals[id].Reviewed = true
	return nil
}

type fakeTrailerRepo struct {
	trailer *models.Trailer
}

func (f *fakeTrailerRepo) GetByID(id string) (*models.Trailer, error) { return f.trailer, nil }
func (f *fakeTrailerRepo) GetByOwner(ownerID string) ([]models.Trailer, error) {
	return nil, nil
}
func (f *fakeTrailerRepo) Create(trailer *models.Trailer) error           { return nil }
func (f *fakeTrailerRepo) Update(trailer *models.Trailer) error           { return nil }
func (f *fakeTrailerRepo) UpdateWithDocument(id string, doc bson.M) error { return nil }
func (f *fakeTrailerRepo) Delete(id string) error                         { return nil }
func (f *fakeTrailerRepo) Search(c models.TrailerSearchCriteria) ([]models.Trailer, error) {
	return nil, nil
}
func (f *fakeTrailerRepo) GetByIDWithProjection(id string, p bson.M) (*models.Trailer, error) {
	if f.trailer == nil || f.trailer.ID != id {
		return nil, nil
	}
	clone := *f.trailer
	return &clone, nil
}

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) GetByID(id string) (*models.User, error)       { return f.users[id], nil }
func (f *fakeUserRepo) GetByEmail(email string) (*models.User, error) { return nil, nil }
func (f *fakeUserRepo) Create(user *models.User) error                { return nil }
func (f *fakeUserRepo) Update(user *models.User) error                { return nil }
func (f *fakeUserRepo) UpdateWithDocument(id string, d bson.M) error  { return nil }
func (f *fakeUserRepo) Delete(id string) error                        { return nil }
func (f *fakeUserRepo) GetByIDWithProjection(id string, p bson.M) (*models.User, error) {
	return f.users[id], nil
}

type sentNotification struct {
	token string
	title string
}

type fakeNotifier struct {
	sent []sentNotification
}

func (f *fakeNotifier) SendToToken(token, title, body string, data map[string]string) {
	f.sent = append(f.sent, sentNotification{token: token, title: title})
}

func newTestRentalService() (*DefaultRentalService, *fakeRentalRepo, *fakeNotifier) {
	trailer := &models.Trailer{
		ID:                "trailer-1",
		OwnerID:           "owner-1",
		Title:             "Bagagewagen",
		PricePerDay:       25,
		MinRentalDuration: 1,
		Available:         true,
	}
	users := &fakeUserRepo{users: map[string]*models.User{
		"owner-1":  {ID: "owner-1", FCMToken: "owner-token"},
		"renter-1": {ID: "renter-1", FCMToken: "renter-token"},
	}}
	repo := newFakeRentalRepo()
	notifier := &fakeNotifier{}
	svc := &DefaultRentalService{
		Repo:     repo,
		Trailers: &fakeTrailerRepo{trailer: trailer},
		Users:    users,
		Notifier: notifier,
	}
	return svc, repo, notifier
}

func TestRequestRentalComputesInclusivePrice(t *testing.T) {
	svc, _, notifier := newTestRentalService()

	rental, err := svc.RequestRental("renter-1", models.RentalRequest{
		TrailerID: "trailer-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-03",
	})
	require.NoError(t, err)

	// Three inclusive days at 25 per day.
	assert.Equal(t, 75.0, rental.TotalPrice)
	assert.Equal(t, models.RentalStatusPending, rental.Status)
	assert.Equal(t, "owner-1", rental.OwnerID)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "owner-token", notifier.sent[0].token)
	assert.Equal(t, "Nieuwe huuraanvraag", notifier.sent[0].title)
}

func TestRequestRentalSingleDay(t *testing.T) {
	svc, _, _ := newTestRentalService()

	rental, err := svc.RequestRental("renter-1", models.RentalRequest{
		TrailerID: "trailer-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-01",
	})
	require.NoError(t, err)
	assert.Equal(t, 25.0, rental.TotalPrice, "same-day rentals count as one day")
}

func TestRequestRentalRejectsBadDates(t *testing.T) {
	svc, _, _ := newTestRentalService()

	_, err := svc.RequestRental("renter-1", models.RentalRequest{
		TrailerID: "trailer-1",
		StartDate: "2026-09-05",
		EndDate:   "2026-09-01",
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)

	_, err = svc.RequestRental("renter-1", models.RentalRequest{
		TrailerID: "trailer-1",
		StartDate: "01-09-2026",
		EndDate:   "2026-09-03",
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestRequestRentalRejectsOwnTrailer(t *testing.T) {
	svc, _, _ := newTestRentalService()

	_, err := svc.RequestRental("owner-1", models.RentalRequest{
		TrailerID: "trailer-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-02",
	})
	assert.ErrorIs(t, err, ErrOwnRental)
}

func TestRequestRentalBlocksOverlap(t *testing.T) {
	svc, _, _ := newTestRentalService()

	_, err := svc.RequestRental("renter-1", models.RentalRequest{
		TrailerID: "trailer-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-05",
	})
	require.NoError(t, err)

	// Touching the booked range at either edge is still an overlap.
	_, err = svc.RequestRental("renter-1", models.RentalRequest{
		TrailerID: "trailer-1",
		StartDate: "2026-09-05",
		EndDate:   "2026-09-08",
	})
	assert.ErrorIs(t, err, ErrTrailerUnavailable)

	// The day after the booked range is free.
	_, err = svc.RequestRental("renter-1", models.RentalRequest{
		TrailerID: "trailer-1",
		StartDate: "2026-09-06",
		EndDate:   "2026-09-08",
	})
	assert.NoError(t, err)
}

func TestRequestRentalAutoApprove(t *testing.T) {
	svc, _, notifier := newTestRentalService()
	users := svc.Users.(*fakeUserRepo)
	users.users["owner-1"].LessorSettings.AutoApprove = true

	rental, err := svc.RequestRental("renter-1", models.RentalRequest{
		TrailerID: "trailer-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-02",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RentalStatusApproved, rental.Status)
	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Nieuwe verhuur", notifier.sent[0].title)
}

func TestRequestRentalHonorsDurationBounds(t *testing.T) {
	svc, _, _ := newTestRentalService()
	trailers := svc.Trailers.(*fakeTrailerRepo)
	trailers.trailer.MinRentalDuration = 2
	maxDuration := 4
	trailers.trailer.MaxRentalDuration = &maxDuration

	_, err := svc.RequestRental("renter-1", models.RentalRequest{
		TrailerID: "trailer-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-01",
	})
	assert.Error(t, err, "a one-day rental undercuts the two-day minimum")

	_, err = svc.RequestRental("renter-1", models.RentalRequest{
		TrailerID: "trailer-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-05",
	})
	assert.Error(t, err, "five inclusive days exceed the four-day maximum")

	_, err = svc.RequestRental("renter-1", models.RentalRequest{
		TrailerID: "trailer-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-04",
	})
	assert.NoError(t, err)
}

func TestOwnerDecisionTransitions(t *testing.T) {
	svc, repo, notifier := newTestRentalService()

	rental, err := svc.RequestRental("renter-1", models.RentalRequest{
		TrailerID: "trailer-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-02",
	})
	require.NoError(t, err)

	// Only the owner may decide.
	_, err = svc.ApproveRental(rental.ID, "renter-1")
	assert.ErrorIs(t, err, ErrNotParticipant)

	approved, err := svc.ApproveRental(rental.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, models.RentalStatusApproved, approved.Status)

	// The renter hears about the decision.
	last := notifier.sent[len(notifier.sent)-1]
	assert.Equal(t, "renter-token", last.token)
	assert.Equal(t, "Aanvraag geaccepteerd", last.title)

	// A decided rental cannot be decided again.
	_, err = svc.RejectRental(rental.ID, "owner-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)

	stored, _ := repo.GetByID(rental.ID)
	assert.Equal(t, models.RentalStatusApproved, stored.Status)
}

func TestCancelRentalNotifiesCounterparty(t *testing.T) {
	svc, _, notifier := newTestRentalService()

	rental, err := svc.RequestRental("renter-1", models.RentalRequest{
		TrailerID: "trailer-1",
		StartDate: "2026-09-01",
		EndDate:   "2026-09-02",
	})
	require.NoError(t, err)

	_, err = svc.CancelRental(rental.ID, "someone-else")
	assert.ErrorIs(t, err, ErrNotParticipant)

	cancelled, err := svc.CancelRental(rental.ID, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, models.RentalStatusCancelled, cancelled.Status)

	last := notifier.sent[len(notifier.sent)-1]
	assert.Equal(t, "renter-token", last.token, "the owner's cancel goes to the renter")

	// Cancelling twice is an invalid transition.
	_, err = svc.CancelRental(rental.ID, "renter-1")
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestCompleteRentalRequiresPastEndDate(t *testing.T) {
	svc, repo, _ := newTestRentalService()

	future := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	past := time.Now().AddDate(0, 0, -2).Format("2006-01-02")

	rental := &models.Rental{
		ID:        "rental-1",
		TrailerID: "trailer-1",
		RenterID:  "renter-1",
		OwnerID:   "owner-1",
		StartDate: past,
		EndDate:   future,
		Status:    models.RentalStatusApproved,
	}
	require.NoError(t, repo.Create(rental))

	_, err := svc.CompleteRental("rental-1", "owner-1")
	assert.ErrorIs(t, err, ErrInvalidTransition, "a running rental cannot be completed")

	repo.rentals["rental-1"].EndDate = past
	completed, err := svc.CompleteRental("rental-1", "owner-1")
	require.NoError(t, err)
	assert.Equal(t, models.RentalStatusCompleted, completed.Status)
}

func TestRentalDays(t *testing.T) {
	days, err := rentalDays("2026-09-01", "2026-09-01")
	require.NoError(t, err)
	assert.Equal(t, 1, days)

	days, err = rentalDays("2026-09-01", "2026-09-14")
	require.NoError(t, err)
	assert.Equal(t, 14, days)
}
