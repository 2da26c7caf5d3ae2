package http

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsbank/payhold/internal/hold/service"
	"github.com/opsbank/payhold/internal/hold/store/drivers/sqlite"
	"github.com/opsbank/payhold/pkg/holdsdk"
	"github.com/opsbank/payhold/pkg/jwtx"
)

const (
	testSecret = "router-test-secret"
	testIssuer = "payhold-test"
)

type fixture struct {
	router   *Router
	clientID string // seeded client id
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := "file:" + filepath.Join(t.TempDir(), "holds.db") +
		"?_pragma=busy_timeout(5000)&_time_format=sqlite"
	st, err := sqlite.NewStore(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	verifier := jwtx.NewCommonHS256([]byte(testSecret), testIssuer)

	router := NewRouter(verifier, "test", st, logger)
	router.HoldService = &service.HoldService{Store: st}
	router.ClientService = &service.ClientService{Store: st}
	router.ApplyRoutes()

	client, err := router.ClientService.Create(t.Context(), "Acme Pty Ltd")
	require.NoError(t, err)

	return &fixture{router: router, clientID: client.ID}
}

func bearer(t *testing.T, subject string, roles ...string) string {
	t.Helper()

	signer, err := jwtx.NewSignerHS256([]byte(testSecret))
	require.NoError(t, err)

	claims := jwtx.NewAccessClaims(subject, roles, time.Hour, testIssuer, time.Now().UTC())
	token, err := signer.Sign(claims)
	require.NoError(t, err)
	return "Bearer " + token
}

// do runs one request through the full router, returning the recorder.
func (f *fixture) do(t *testing.T, method, target, auth string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func decodeAs[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func (f *fixture) placeHold(t *testing.T, idemKey string, req holdsdk.CreateHoldRequest) holdsdk.Hold {
	t.Helper()

	rec := f.do(t, http.MethodPost, "/v1/clients/"+f.clientID+"/payment-holds",
		bearer(t, "user:ops1", RoleHoldCreate), req,
		map[string]string{"Idempotency-Key": idemKey})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeAs[holdsdk.Hold](t, rec)
}

func TestCreateHold(t *testing.T) {
	t.Run("places a hold and returns 201", func(t *testing.T) {
		f := newFixture(t)

		comment := "card reported stolen"
		rec := f.do(t, http.MethodPost, "/v1/clients/"+f.clientID+"/payment-holds",
			bearer(t, "user:ops1", RoleHoldCreate),
			holdsdk.CreateHoldRequest{Type: "FRAUD_SUSPECT", Comment: &comment},
			map[string]string{"Idempotency-Key": "key-1"})

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		hold := decodeAs[holdsdk.Hold](t, rec)
		assert.NotEmpty(t, hold.HoldID)
		assert.Equal(t, f.clientID, hold.ClientID)
		assert.Equal(t, "FRAUD_SUSPECT", hold.Type)
		assert.Equal(t, "ACTIVE", hold.Status)
		assert.Equal(t, "user:ops1", hold.CreatedBy)
		require.NotNil(t, hold.Comment)
		assert.Equal(t, comment, *hold.Comment)
	})

	t.Run("replaying the idempotency key answers 200 with the stored hold", func(t *testing.T) {
		f := newFixture(t)
		first := f.placeHold(t, "key-replay", holdsdk.CreateHoldRequest{Type: "FRAUD_SUSPECT"})

		rec := f.do(t, http.MethodPost, "/v1/clients/"+f.clientID+"/payment-holds",
			bearer(t, "user:ops1", RoleHoldCreate),
			holdsdk.CreateHoldRequest{Type: "INCORRECT_BENEFICIARY_DETAILS"},
			map[string]string{"Idempotency-Key": "key-replay"})

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		replayed := decodeAs[holdsdk.Hold](t, rec)
		assert.Equal(t, first.HoldID, replayed.HoldID)
		assert.Equal(t, "FRAUD_SUSPECT", replayed.Type)
	})

	t.Run("missing idempotency key answers 400", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/v1/clients/"+f.clientID+"/payment-holds",
			bearer(t, "user:ops1", RoleHoldCreate),
			holdsdk.CreateHoldRequest{Type: "FRAUD_SUSPECT"}, nil)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, codeBadRequest, decodeAs[holdsdk.ErrorResponse](t, rec).Code)
	})

	t.Run("unknown hold type answers 422", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/v1/clients/"+f.clientID+"/payment-holds",
			bearer(t, "user:ops1", RoleHoldCreate),
			holdsdk.CreateHoldRequest{Type: "SANCTIONS"},
			map[string]string{"Idempotency-Key": "key-bad-type"})

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, codeValidation, decodeAs[holdsdk.ErrorResponse](t, rec).Code)
	})

	t.Run("past expiry answers 422", func(t *testing.T) {
		f := newFixture(t)

		past := time.Now().UTC().Add(-time.Hour)
		rec := f.do(t, http.MethodPost, "/v1/clients/"+f.clientID+"/payment-holds",
			bearer(t, "user:ops1", RoleHoldCreate),
			holdsdk.CreateHoldRequest{Type: "FRAUD_SUSPECT", ExpiresAt: &past},
			map[string]string{"Idempotency-Key": "key-past"})

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, codeValidation, decodeAs[holdsdk.ErrorResponse](t, rec).Code)
	})

	t.Run("unknown client answers 422", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/v1/clients/no-such-client/payment-holds",
			bearer(t, "user:ops1", RoleHoldCreate),
			holdsdk.CreateHoldRequest{Type: "FRAUD_SUSPECT"},
			map[string]string{"Idempotency-Key": "key-ghost"})

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, codeValidation, decodeAs[holdsdk.ErrorResponse](t, rec).Code)
	})

	t.Run("no token answers 401", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/v1/clients/"+f.clientID+"/payment-holds",
			"", holdsdk.CreateHoldRequest{Type: "FRAUD_SUSPECT"},
			map[string]string{"Idempotency-Key": "key-anon"})

		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token without the create role answers 403", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/v1/clients/"+f.clientID+"/payment-holds",
			bearer(t, "user:viewer", RoleHoldRead),
			holdsdk.CreateHoldRequest{Type: "FRAUD_SUSPECT"},
			map[string]string{"Idempotency-Key": "key-viewer"})

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "forbidden", decodeAs[holdsdk.ErrorResponse](t, rec).Code)
	})
}

func TestListHolds(t *testing.T) {
	t.Run("defaults to active and honours ALL", func(t *testing.T) {
		f := newFixture(t)
		first := f.placeHold(t, "key-l1", holdsdk.CreateHoldRequest{Type: "FRAUD_SUSPECT"})
		second := f.placeHold(t, "key-l2", holdsdk.CreateHoldRequest{Type: "INCORRECT_BENEFICIARY_DETAILS"})

		rec := f.do(t, http.MethodPost,
			"/v1/clients/"+f.clientID+"/payment-holds/"+first.HoldID+":release",
			bearer(t, "user:ops2", RoleHoldRelease),
			holdsdk.ReleaseHoldRequest{}, nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

		rec = f.do(t, http.MethodGet, "/v1/clients/"+f.clientID+"/payment-holds",
			bearer(t, "user:viewer", RoleHoldRead), nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		active := decodeAs[holdsdk.ListHoldsResponse](t, rec)
		require.Len(t, active.Items, 1)
		assert.Equal(t, second.HoldID, active.Items[0].HoldID)

		rec = f.do(t, http.MethodGet, "/v1/clients/"+f.clientID+"/payment-holds?status=ALL",
			bearer(t, "user:viewer", RoleHoldRead), nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		all := decodeAs[holdsdk.ListHoldsResponse](t, rec)
		assert.Len(t, all.Items, 2)
	})

	t.Run("invalid status filter answers 422", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodGet, "/v1/clients/"+f.clientID+"/payment-holds?status=LAPSED",
			bearer(t, "user:viewer", RoleHoldRead), nil, nil)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Equal(t, codeValidation, decodeAs[holdsdk.ErrorResponse](t, rec).Code)
	})

	t.Run("empty list serialises as an empty array", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodGet, "/v1/clients/"+f.clientID+"/payment-holds",
			bearer(t, "user:viewer", RoleHoldRead), nil, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"items":[]}`, rec.Body.String())
	})
}

func TestCheckHolds(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/v1/clients/"+f.clientID+"/payment-holds:check",
		bearer(t, "user:viewer", RoleHoldRead), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	check := decodeAs[holdsdk.CheckHoldsResponse](t, rec)
	assert.False(t, check.Blocked)
	assert.Equal(t, "NONE", check.Kind)

	f.placeHold(t, "key-c1", holdsdk.CreateHoldRequest{Type: "FRAUD_SUSPECT"})

	rec = f.do(t, http.MethodGet, "/v1/clients/"+f.clientID+"/payment-holds:check",
		bearer(t, "user:viewer", RoleHoldRead), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	check = decodeAs[holdsdk.CheckHoldsResponse](t, rec)
	assert.True(t, check.Blocked)
	assert.Equal(t, "FRAUD", check.Kind)
	assert.Len(t, check.ActiveHolds, 1)
}

func TestGetHold(t *testing.T) {
	t.Run("returns the hold for a matching pair", func(t *testing.T) {
		f := newFixture(t)
		placed := f.placeHold(t, "key-g1", holdsdk.CreateHoldRequest{Type: "FRAUD_SUSPECT"})

		rec := f.do(t, http.MethodGet,
			"/v1/clients/"+f.clientID+"/payment-holds/"+placed.HoldID,
			bearer(t, "user:viewer", RoleHoldRead), nil, nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, placed.HoldID, decodeAs[holdsdk.Hold](t, rec).HoldID)
	})

	t.Run("mismatched client answers 404", func(t *testing.T) {
		f := newFixture(t)
		placed := f.placeHold(t, "key-g2", holdsdk.CreateHoldRequest{Type: "FRAUD_SUSPECT"})

		other, err := f.router.ClientService.Create(t.Context(), "Other Pty Ltd")
		require.NoError(t, err)

		rec := f.do(t, http.MethodGet,
			"/v1/clients/"+other.ID+"/payment-holds/"+placed.HoldID,
			bearer(t, "user:viewer", RoleHoldRead), nil, nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, codeNotFound, decodeAs[holdsdk.ErrorResponse](t, rec).Code)
	})
}

func TestReleaseHold(t *testing.T) {
	t.Run("releases an active hold", func(t *testing.T) {
		f := newFixture(t)
		placed := f.placeHold(t, "key-r1", holdsdk.CreateHoldRequest{Type: "FRAUD_SUSPECT"})

		reason := "cleared by investigations"
		rec := f.do(t, http.MethodPost,
			"/v1/clients/"+f.clientID+"/payment-holds/"+placed.HoldID+":release",
			bearer(t, "user:ops2", RoleHoldRelease),
			holdsdk.ReleaseHoldRequest{Reason: &reason}, nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		released := decodeAs[holdsdk.Hold](t, rec)
		assert.Equal(t, "RELEASED", released.Status)
		require.NotNil(t, released.ReleasedBy)
		assert.Equal(t, "user:ops2", *released.ReleasedBy)
		require.NotNil(t, released.ReleaseReason)
		assert.Equal(t, reason, *released.ReleaseReason)
		assert.NotNil(t, released.ReleasedAt)
	})

	t.Run("empty body is accepted", func(t *testing.T) {
		f := newFixture(t)
		placed := f.placeHold(t, "key-r2", holdsdk.CreateHoldRequest{Type: "FRAUD_SUSPECT"})

		rec := f.do(t, http.MethodPost,
			"/v1/clients/"+f.clientID+"/payment-holds/"+placed.HoldID+":release",
			bearer(t, "user:ops2", RoleHoldRelease), nil, nil)

		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("second release answers 409", func(t *testing.T) {
		f := newFixture(t)
		placed := f.placeHold(t, "key-r3", holdsdk.CreateHoldRequest{Type: "FRAUD_SUSPECT"})
		target := "/v1/clients/" + f.clientID + "/payment-holds/" + placed.HoldID + ":release"

		rec := f.do(t, http.MethodPost, target,
			bearer(t, "user:ops2", RoleHoldRelease), nil, nil)
		require.Equal(t, http.StatusOK, rec.Code)

		rec = f.do(t, http.MethodPost, target,
			bearer(t, "user:ops2", RoleHoldRelease), nil, nil)
		require.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, codeConflict, decodeAs[holdsdk.ErrorResponse](t, rec).Code)
	})

	t.Run("unknown hold answers 404", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost,
			"/v1/clients/"+f.clientID+"/payment-holds/no-such-hold:release",
			bearer(t, "user:ops2", RoleHoldRelease), nil, nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("unknown action verb answers 404", func(t *testing.T) {
		f := newFixture(t)
		placed := f.placeHold(t, "key-r4", holdsdk.CreateHoldRequest{Type: "FRAUD_SUSPECT"})

		rec := f.do(t, http.MethodPost,
			"/v1/clients/"+f.clientID+"/payment-holds/"+placed.HoldID+":freeze",
			bearer(t, "user:ops2", RoleHoldRelease), nil, nil)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("release role is enforced", func(t *testing.T) {
		f := newFixture(t)
		placed := f.placeHold(t, "key-r5", holdsdk.CreateHoldRequest{Type: "FRAUD_SUSPECT"})

		rec := f.do(t, http.MethodPost,
			"/v1/clients/"+f.clientID+"/payment-holds/"+placed.HoldID+":release",
			bearer(t, "user:ops1", RoleHoldCreate), nil, nil)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestCreateClient(t *testing.T) {
	t.Run("creates a client", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/v1/clients",
			bearer(t, "user:admin", RoleAdminWrite),
			holdsdk.CreateClientRequest{Name: "Bunbury Traders"}, nil)

		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		info := decodeAs[holdsdk.ClientInfo](t, rec)
		assert.NotEmpty(t, info.ClientID)
		assert.Equal(t, "Bunbury Traders", info.Name)
	})

	t.Run("blank name answers 422", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/v1/clients",
			bearer(t, "user:admin", RoleAdminWrite),
			holdsdk.CreateClientRequest{Name: "   "}, nil)

		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	})

	t.Run("hold roles do not grant client creation", func(t *testing.T) {
		f := newFixture(t)

		rec := f.do(t, http.MethodPost, "/v1/clients",
			bearer(t, "user:ops1", RoleHoldCreate, RoleHoldRead, RoleHoldRelease),
			holdsdk.CreateClientRequest{Name: "Acme"}, nil)

		require.Equal(t, http.StatusForbidden, rec.Code)
	})
}

func TestHealthEndpoints(t *testing.T) {
	f := newFixture(t)

	rec := f.do(t, http.MethodGet, "/livez", "", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decodeAs[holdsdk.HealthResponse](t, rec).Status)

	rec = f.do(t, http.MethodGet, "/readyz", "", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	health := decodeAs[holdsdk.HealthResponse](t, rec)
	assert.Equal(t, "ok", health.Status)
	require.NotNil(t, health.Checks)
	assert.Equal(t, "ok", health.Checks.Database)
}
