//go:build e2e

package reservation_test

import (
	"net/http"
	"sync"
	"testing"

	"ticketboss/internal/handler/dto/response"
	"ticketboss/tests/common/dbtest"
	"ticketboss/tests/common/httptest"
	"ticketboss/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	bootstrapURL    = "/events/bootstrap"
	reservationsURL = "/reservations"

	// 小さいプールの方が枯渇と競合のケースを確認しやすい
	scenarioPoolSize = 10
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func (s *ReservationSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetEvent(s.DB, s.Config.Event.ID, scenarioPoolSize))
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) getSummary() response.EventSummaryResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, reservationsURL, nil)
	var summary response.EventSummaryResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &summary)
	return summary
}

func (s *ReservationSuite) createReservation(partnerID string, seats int32) (response.ReservationResponse, int) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, reservationsURL, map[string]any{
		"partnerId": partnerID,
		"seats":     seats,
	})
	var res response.ReservationResponse
	if w.Code == http.StatusCreated {
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &res)
	}
	return res, w.Code
}

// =============================================================================
// TestReservationFlow - 予約作成から取消までの一連のフロー
// =============================================================================

func (s *ReservationSuite) TestReservationFlow() {
	s.Run("Normal case: reserving seats decrements the pool and bumps version", func() {
		t := s.T()

		res, code := s.createReservation("partner-1", 3)
		require.Equal(t, http.StatusCreated, code)
		require.Equal(t, "confirmed", res.Status)
		require.Equal(t, int32(3), res.Seats)
		require.NotEqual(t, uuid.Nil, res.ReservationID)

		expected := response.EventSummaryResponse{
			EventID:          s.Config.Event.ID,
			Name:             s.Config.Event.Name,
			TotalSeats:       scenarioPoolSize,
			AvailableSeats:   7,
			ReservationCount: 1,
			Version:          1,
		}
		if diff := cmp.Diff(expected, s.getSummary()); diff != "" {
			t.Errorf("summary mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("Error case: oversubscription is rejected and nothing changes", func() {
		t := s.T()

		_, code := s.createReservation("partner-1", 3)
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, map[string]any{
			"partnerId": "partner-2",
			"seats":     8,
		})
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Not enough seats left")

		summary := s.getSummary()
		require.Equal(t, int32(7), summary.AvailableSeats)
		require.Equal(t, int64(1), summary.ReservationCount)
		require.Equal(t, int32(1), summary.Version)
	})

	s.Run("Normal case: cancelling returns seats exactly once", func() {
		t := s.T()

		res, code := s.createReservation("partner-1", 3)
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+res.ReservationID.String(), nil)
		require.Equal(t, http.StatusNoContent, w.Code)

		summary := s.getSummary()
		require.Equal(t, int32(10), summary.AvailableSeats)
		require.Equal(t, int64(0), summary.ReservationCount)
		require.Equal(t, int32(2), summary.Version)

		// 2回目の取消は座席を返さない
		w = httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+res.ReservationID.String(), nil)
		httptest.AssertErrorResponse(t, w, http.StatusConflict, "Reservation already cancelled")

		summary = s.getSummary()
		require.Equal(t, int32(10), summary.AvailableSeats)
		require.Equal(t, int32(2), summary.Version)
	})

	s.Run("Error case: cancelling an unknown reservation returns 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/"+uuid.NewString(), nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Reservation not found")
	})

	s.Run("Error case: malformed reservation id returns 400", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodDelete, reservationsURL+"/not-a-uuid", nil)
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Invalid reservation ID format")
	})
}

// =============================================================================
// TestReservationValidation - 入力検証
// =============================================================================

func (s *ReservationSuite) TestReservationValidation() {
	s.Run("Error case: seat count outside 1..10 is rejected", func() {
		t := s.T()

		for _, seats := range []int32{-1, 11} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, map[string]any{
				"partnerId": "partner-1",
				"seats":     seats,
			})
			httptest.AssertErrorResponse(t, w, http.StatusUnprocessableEntity, "Seats must be between 1 and 10")
		}

		summary := s.getSummary()
		require.Equal(t, int32(10), summary.AvailableSeats)
		require.Equal(t, int32(0), summary.Version)
	})

	s.Run("Error case: missing fields are rejected before validation", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, map[string]any{})
		httptest.AssertErrorResponse(t, w, http.StatusBadRequest, "Missing required fields: partnerId and seats")
	})
}

// =============================================================================
// TestBootstrap - イベント初期化
// =============================================================================

func (s *ReservationSuite) TestBootstrap() {
	s.Run("Normal case: bootstrap wipes the ledger and refills the pool", func() {
		t := s.T()

		_, code := s.createReservation("partner-1", 4)
		require.Equal(t, http.StatusCreated, code)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, bootstrapURL, nil)
		var body response.BootstrapResponse
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &body)
		require.Equal(t, "Event initialized successfully", body.Message)
		require.Equal(t, s.Config.Event.ID, body.Event.EventID)
		require.Equal(t, body.Event.TotalSeats, body.Event.AvailableSeats)

		confirmed, err := dbtest.CountReservations(s.DB, s.Config.Event.ID, "confirmed")
		require.NoError(t, err)
		require.Equal(t, int64(0), confirmed)
	})
}

// =============================================================================
// TestConcurrentReservations - 同時予約でも過剰販売しない
// =============================================================================

func (s *ReservationSuite) TestConcurrentReservations() {
	s.Run("Property: concurrent creates never oversell the pool", func() {
		t := s.T()

		const workers = 20
		seatsPerWorker := int32(2)

		var wg sync.WaitGroup
		codes := make([]int, workers)
		wg.Add(workers)
		for i := range workers {
			go func(i int) {
				defer wg.Done()
				w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, map[string]any{
					"partnerId": "partner-concurrent",
					"seats":     seatsPerWorker,
				})
				codes[i] = w.Code
			}(i)
		}
		wg.Wait()

		succeeded := 0
		for _, code := range codes {
			switch code {
			case http.StatusCreated:
				succeeded++
			case http.StatusConflict:
				// expected once the pool runs dry
			default:
				t.Fatalf("unexpected status code %d", code)
			}
		}

		// 10席を2席ずつなので成功はちょうど5回
		require.Equal(t, 5, succeeded)

		summary := s.getSummary()
		require.Equal(t, int32(0), summary.AvailableSeats)
		require.Equal(t, int64(5), summary.ReservationCount)
		require.Equal(t, int32(5), summary.Version)

		confirmed, err := dbtest.CountReservations(s.DB, s.Config.Event.ID, "confirmed")
		require.NoError(t, err)
		require.Equal(t, int64(5), confirmed)
	})
}

// =============================================================================
// TestHealthAndRouting
// =============================================================================

func (s *ReservationSuite) TestHealthAndRouting() {
	s.Run("Normal case: health reports a connected store", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/health", nil)
		var body response.HealthResponse
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &body)
		require.Equal(t, "healthy", body.Status)
		require.Equal(t, "connected", body.Database)
	})

	s.Run("Error case: unknown endpoints return a JSON 404", func() {
		t := s.T()

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, "/unknown", nil)
		httptest.AssertErrorResponse(t, w, http.StatusNotFound, "Endpoint not found")
	})
}
