package api_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/limbo/habitgrid/internal/activity"
	"github.com/limbo/habitgrid/internal/api"
	errorvalues "github.com/limbo/habitgrid/internal/error_values"
	"github.com/limbo/habitgrid/internal/service"
	"github.com/limbo/habitgrid/internal/service/mocks"
	"github.com/limbo/habitgrid/pkg/entity"
	jwtservice "github.com/limbo/habitgrid/pkg/jwt_service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	username = "test_name"
	password = "test_password"
	userID   = uuid.New()
	habitID  = uuid.New()
)

type testServer struct {
	*api.Server
	users    *mocks.MockUserServiceI
	habits   *mocks.MockHabitsServiceI
	checks   *mocks.MockHabitChecksServiceI
	sources  *mocks.MockSourcesServiceI
	activity *mocks.MockActivityServiceI
	jwt      *jwtservice.JWTService
}

func newTestServer(t *testing.T) *testServer {
	ctrl := gomock.NewController(t)
	ts := &testServer{
		users:    mocks.NewMockUserServiceI(ctrl),
		habits:   mocks.NewMockHabitsServiceI(ctrl),
		checks:   mocks.NewMockHabitChecksServiceI(ctrl),
		sources:  mocks.NewMockSourcesServiceI(ctrl),
		activity: mocks.NewMockActivityServiceI(ctrl),
		jwt:      jwtservice.New("test_secret"),
	}
	ts.Server = api.New(&api.ServicesList{
		UserService:     ts.users,
		HabitsService:   ts.habits,
		ChecksService:   ts.checks,
		SourcesService:  ts.sources,
		ActivityService: ts.activity,
		JWTService:      ts.jwt,
	})
	return ts
}

// authorizedRequest builds a request as AuthMiddleware would pass it on.
func authorizedRequest(method, target string, body io.Reader) *http.Request {
	r := httptest.NewRequest(method, target, body)
	return r.WithContext(api.ContextWithUID(r.Context(), userID))
}

func mustJSON(t *testing.T, v any) []byte {
	body, err := sonic.ConfigDefault.Marshal(v)
	require.NoError(t, err)
	return body
}

func TestRegister(t *testing.T) {
	ts := newTestServer(t)
	body := mustJSON(t, api.RegisterRequest{Name: username, Password: password})

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			Desc:         "registered",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				ts.users.EXPECT().Register(gomock.Any(), &service.RegisterRequest{Name: username, Password: password}).
					Return(&entity.User{ID: userID, Name: username}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "name taken",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				ts.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errorvalues.ErrUserExists)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "invalid name",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				ts.users.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(nil, errors.Join(errorvalues.ErrValidation, errors.New("Name: min")))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				ts.users.EXPECT().Register(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "corrupted body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         strings.NewReader("corrupted"),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			ts.Register(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", tc.Body))
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)
	body := mustJSON(t, api.LoginRequest{Name: username, Password: password})

	t.Run("token issued", func(t *testing.T) {
		ts.users.EXPECT().Login(gomock.Any(), username, password).Return(&entity.User{ID: userID, Name: username}, nil)
		rr := httptest.NewRecorder()
		ts.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		require.Equal(t, http.StatusOK, rr.Code)

		var resp struct {
			UID   string `json:"uid"`
			Token string `json:"token"`
		}
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, userID.String(), resp.UID)
		claims, err := ts.jwt.ParseToken(resp.Token)
		require.NoError(t, err)
		assert.Equal(t, userID.String(), claims.UserID)
	})
	t.Run("wrong password", func(t *testing.T) {
		ts.users.EXPECT().Login(gomock.Any(), username, password).Return(nil, errorvalues.ErrWrongCredentials)
		rr := httptest.NewRecorder()
		ts.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
	t.Run("unknown user", func(t *testing.T) {
		ts.users.EXPECT().Login(gomock.Any(), username, password).Return(nil, errorvalues.ErrUserNotFound)
		rr := httptest.NewRecorder()
		ts.Login(rr, httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewReader(body)))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestCreateHabit(t *testing.T) {
	ts := newTestServer(t)
	habit := api.CreateHabitRequest{
		Title:       "test_habit",
		Description: "test_habit_description",
		Color:       "#22c55e",
	}
	body := mustJSON(t, habit)
	expectedReq := service.CreateHabitRequest{
		Title:       habit.Title,
		Description: habit.Description,
		Color:       habit.Color,
	}

	testCases := []struct {
		Desc         string
		ExpectedCode int
		MockPrepFunc func()
		Body         io.Reader
	}{
		{
			Desc:         "created",
			ExpectedCode: http.StatusCreated,
			MockPrepFunc: func() {
				ts.habits.EXPECT().CreateHabit(gomock.Any(), userID, expectedReq).Return(&entity.Habit{
					ID:          habitID,
					UserID:      userID,
					Title:       habit.Title,
					Description: habit.Description,
					CreatedAt:   time.Now(),
					UpdatedAt:   time.Now(),
				}, nil)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "duplicate title",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				ts.habits.EXPECT().CreateHabit(gomock.Any(), userID, expectedReq).Return(nil, errorvalues.ErrUserHasHabit)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "owner gone",
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				ts.habits.EXPECT().CreateHabit(gomock.Any(), userID, expectedReq).Return(nil, errorvalues.ErrUserNotFound)
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "service error",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				ts.habits.EXPECT().CreateHabit(gomock.Any(), userID, expectedReq).Return(nil, errors.New("service error"))
			},
			Body: bytes.NewReader(body),
		},
		{
			Desc:         "corrupted body",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
			Body:         bytes.NewReader([]byte("corrupted")),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			ts.CreateHabit(rr, authorizedRequest(http.MethodPost, "/api/v1/habits", tc.Body))
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}

	t.Run("unauthorized", func(t *testing.T) {
		rr := httptest.NewRecorder()
		ts.CreateHabit(rr, httptest.NewRequest(http.MethodPost, "/api/v1/habits", bytes.NewReader(body)))
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestGetHabits(t *testing.T) {
	ts := newTestServer(t)
	habits := []*entity.Habit{{ID: habitID, UserID: userID, Title: "run"}}

	testCases := []struct {
		Desc          string
		Query         string
		ExpectedLimit int
		ExpectedPage  int
	}{
		{Desc: "defaults", Query: "", ExpectedLimit: 10, ExpectedPage: 1},
		{Desc: "second page", Query: "?limit=20&page=2", ExpectedLimit: 20, ExpectedPage: 2},
		{Desc: "limit too big", Query: "?limit=500&page=0", ExpectedLimit: 10, ExpectedPage: 1},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			ts.habits.EXPECT().GetUserHabits(gomock.Any(), userID, service.PaginationOpts{
				Limit:  tc.ExpectedLimit,
				Offset: (tc.ExpectedPage - 1) * tc.ExpectedLimit,
			}).Return(habits, nil)
			rr := httptest.NewRecorder()
			ts.GetHabits(rr, authorizedRequest(http.MethodGet, "/api/v1/habits"+tc.Query, nil))
			require.Equal(t, http.StatusOK, rr.Code)

			var resp api.GetHabitsResponse
			require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
			assert.Equal(t, tc.ExpectedPage, resp.Page)
			assert.Equal(t, tc.ExpectedLimit, resp.Limit)
			assert.Len(t, resp.Habits, 1)
		})
	}
}

func TestDeleteHabit(t *testing.T) {
	ts := newTestServer(t)

	testCases := []struct {
		Desc         string
		ID           string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "deleted",
			ID:           habitID.String(),
			ExpectedCode: http.StatusNoContent,
			MockPrepFunc: func() {
				ts.habits.EXPECT().DeleteHabit(gomock.Any(), habitID, userID).Return(nil)
			},
		},
		{
			Desc:         "foreign habit looks missing",
			ID:           habitID.String(),
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				ts.habits.EXPECT().DeleteHabit(gomock.Any(), habitID, userID).Return(errorvalues.ErrWrongOwner)
			},
		},
		{
			Desc:         "invalid id",
			ID:           "not-uuid",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := authorizedRequest(http.MethodDelete, "/api/v1/habits/"+tc.ID, nil)
			r.SetPathValue("id", tc.ID)
			ts.DeleteHabit(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestCheckHabit(t *testing.T) {
	ts := newTestServer(t)

	testCases := []struct {
		Desc         string
		Date         string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "checked",
			Date:         "2024-06-15",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ts.checks.EXPECT().CheckHabit(gomock.Any(), habitID, userID, "2024-06-15").
					Return(&service.CheckResult{Date: "2024-06-15", Checked: true, CurrentStreak: 3, LongestStreak: 5}, nil)
			},
		},
		{
			Desc:         "malformed date",
			Date:         "15-06-2024",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {
				ts.checks.EXPECT().CheckHabit(gomock.Any(), habitID, userID, "15-06-2024").Return(nil, errorvalues.ErrInvalidDate)
			},
		},
		{
			Desc:         "future date",
			Date:         "2999-01-01",
			ExpectedCode: http.StatusUnprocessableEntity,
			MockPrepFunc: func() {
				ts.checks.EXPECT().CheckHabit(gomock.Any(), habitID, userID, "2999-01-01").Return(nil, errorvalues.ErrCheckDateNotAllowed)
			},
		},
		{
			Desc:         "already checked",
			Date:         "2024-06-15",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				ts.checks.EXPECT().CheckHabit(gomock.Any(), habitID, userID, "2024-06-15").Return(nil, errorvalues.ErrCheckExist)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := authorizedRequest(http.MethodPut, "/api/v1/habits/"+habitID.String()+"/checks/"+tc.Date, nil)
			r.SetPathValue("id", habitID.String())
			r.SetPathValue("date", tc.Date)
			ts.CheckHabit(rr, r)
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestUncheckMissingCheck(t *testing.T) {
	ts := newTestServer(t)
	ts.checks.EXPECT().UncheckHabit(gomock.Any(), habitID, userID, "2024-06-10").Return(nil, errorvalues.ErrCheckNotFound)
	rr := httptest.NewRecorder()
	r := authorizedRequest(http.MethodDelete, "/", nil)
	r.SetPathValue("id", habitID.String())
	r.SetPathValue("date", "2024-06-10")
	ts.UncheckHabit(rr, r)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestGetHabitGrid(t *testing.T) {
	ts := newTestServer(t)

	t.Run("default days", func(t *testing.T) {
		ts.checks.EXPECT().GetHabitGrid(gomock.Any(), habitID, userID, 0).
			Return([]entity.GridDay{{Date: "2024-06-15", Completed: true, Intensity: 0.1}}, nil)
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodGet, "/api/v1/habits/"+habitID.String()+"/grid", nil)
		r.SetPathValue("id", habitID.String())
		ts.GetHabitGrid(rr, r)
		require.Equal(t, http.StatusOK, rr.Code)
		var resp api.GridResponse
		require.NoError(t, sonic.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, habitID, resp.HabitID)
		assert.Len(t, resp.Days, 1)
	})
	t.Run("days not a number", func(t *testing.T) {
		rr := httptest.NewRecorder()
		r := authorizedRequest(http.MethodGet, "/api/v1/habits/"+habitID.String()+"/grid?days=week", nil)
		r.SetPathValue("id", habitID.String())
		ts.GetHabitGrid(rr, r)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestAddSource(t *testing.T) {
	ts := newTestServer(t)
	body := mustJSON(t, api.AddSourceRequest{Provider: "github", Username: "octocat", Token: "ghp_secret"})

	t.Run("token not echoed", func(t *testing.T) {
		ts.sources.EXPECT().AddSource(gomock.Any(), userID, service.AddSourceRequest{
			Provider: entity.ProviderGitHub,
			Username: "octocat",
			Token:    "ghp_secret",
		}).Return(&entity.ActivitySource{
			ID:             uuid.New(),
			UserID:         userID,
			Provider:       entity.ProviderGitHub,
			Username:       "octocat",
			EncryptedToken: "sealed",
		}, nil)
		rr := httptest.NewRecorder()
		ts.AddSource(rr, authorizedRequest(http.MethodPost, "/api/v1/sources", bytes.NewReader(body)))
		require.Equal(t, http.StatusCreated, rr.Code)
		assert.NotContains(t, rr.Body.String(), "sealed")
		assert.NotContains(t, rr.Body.String(), "ghp_secret")
	})
	t.Run("unsupported provider", func(t *testing.T) {
		ts.sources.EXPECT().AddSource(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrUnsupportedProvider)
		rr := httptest.NewRecorder()
		ts.AddSource(rr, authorizedRequest(http.MethodPost, "/api/v1/sources", bytes.NewReader(body)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestRefreshActivity(t *testing.T) {
	ts := newTestServer(t)
	synced := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)
	cache := &entity.ActivityCache{LastSync: &synced, DailyCounts: entity.DailyCounts{"2024-06-15": 4}}

	testCases := []struct {
		Desc         string
		Query        string
		ExpectedCode int
		MockPrepFunc func()
	}{
		{
			Desc:         "plain",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ts.activity.EXPECT().RefreshActivity(gomock.Any(), userID, activity.RefreshOptions{}).Return(cache, nil)
			},
		},
		{
			Desc:         "forced window",
			Query:        "?force=true&days=30",
			ExpectedCode: http.StatusOK,
			MockPrepFunc: func() {
				ts.activity.EXPECT().RefreshActivity(gomock.Any(), userID, activity.RefreshOptions{Force: true, Days: 30}).Return(cache, nil)
			},
		},
		{
			Desc:         "bad force",
			Query:        "?force=maybe",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "days out of range",
			Query:        "?days=1000",
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "switched off",
			ExpectedCode: http.StatusConflict,
			MockPrepFunc: func() {
				ts.activity.EXPECT().RefreshActivity(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrActivityDisabled)
			},
		},
		{
			Desc:         "cache store down",
			ExpectedCode: http.StatusInternalServerError,
			MockPrepFunc: func() {
				ts.activity.EXPECT().RefreshActivity(gomock.Any(), userID, gomock.Any()).Return(nil, errors.New("saving activity cache: conn closed"))
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			ts.RefreshActivity(rr, authorizedRequest(http.MethodPost, "/api/v1/activity/refresh"+tc.Query, nil))
			assert.Equal(t, tc.ExpectedCode, rr.Code)
		})
	}
}

func TestActivitySettings(t *testing.T) {
	ts := newTestServer(t)
	testCases := []struct {
		Desc         string
		Method       string
		Body         []byte
		ExpectedCode int
		ExpectedBody string
		MockPrepFunc func()
	}{
		{
			Desc:         "read",
			Method:       http.MethodGet,
			ExpectedCode: http.StatusOK,
			ExpectedBody: `{"enabled":true}`,
			MockPrepFunc: func() {
				ts.activity.EXPECT().ActivityEnabled(gomock.Any(), userID).Return(true, nil)
			},
		},
		{
			Desc:         "switch off",
			Method:       http.MethodPut,
			Body:         []byte(`{"enabled":false}`),
			ExpectedCode: http.StatusOK,
			ExpectedBody: `{"enabled":false}`,
			MockPrepFunc: func() {
				ts.activity.EXPECT().SetActivityEnabled(gomock.Any(), userID, false).Return(nil)
			},
		},
		{
			Desc:         "missing flag",
			Method:       http.MethodPut,
			Body:         []byte(`{}`),
			ExpectedCode: http.StatusBadRequest,
			MockPrepFunc: func() {},
		},
		{
			Desc:         "unknown user",
			Method:       http.MethodPut,
			Body:         []byte(`{"enabled":true}`),
			ExpectedCode: http.StatusNotFound,
			MockPrepFunc: func() {
				ts.activity.EXPECT().SetActivityEnabled(gomock.Any(), userID, true).Return(errorvalues.ErrUserNotFound)
			},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			rr := httptest.NewRecorder()
			r := authorizedRequest(tc.Method, "/api/v1/activity/settings", bytes.NewReader(tc.Body))
			if tc.Method == http.MethodGet {
				ts.GetActivitySettings(rr, r)
			} else {
				ts.UpdateActivitySettings(rr, r)
			}
			assert.Equal(t, tc.ExpectedCode, rr.Code)
			if tc.ExpectedBody != "" {
				assert.JSONEq(t, tc.ExpectedBody, rr.Body.String())
			}
		})
	}
}

func TestRouting(t *testing.T) {
	ts := newTestServer(t)
	user := &entity.User{ID: userID, Name: username}
	token, err := ts.jwt.GenerateToken(user)
	require.NoError(t, err)
	srv := httptest.NewServer(ts.Handler())
	defer srv.Close()

	do := func(method, path, token string) *http.Response {
		req, err := http.NewRequestWithContext(context.Background(), method, srv.URL+path, nil)
		require.NoError(t, err)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		resp, err := srv.Client().Do(req)
		require.NoError(t, err)
		resp.Body.Close()
		return resp
	}

	t.Run("no token", func(t *testing.T) {
		resp := do(http.MethodGet, "/api/v1/habits", "")
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
	t.Run("forged token", func(t *testing.T) {
		forged, err := jwtservice.New("another").GenerateToken(user)
		require.NoError(t, err)
		resp := do(http.MethodGet, "/api/v1/habits", forged)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
	t.Run("toggle reaches handler with path values", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		ts.checks.EXPECT().ToggleCheck(gomock.Any(), habitID, userID, "2024-06-15").
			Return(&service.CheckResult{Date: "2024-06-15", Checked: true, CurrentStreak: 1, LongestStreak: 1}, nil)
		resp := do(http.MethodPost, "/api/v1/habits/"+habitID.String()+"/checks/2024-06-15/toggle", token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	})
	t.Run("export is not a habit id", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		ts.habits.EXPECT().ExportHabits(gomock.Any(), userID).Return([]entity.HabitExport{}, nil)
		resp := do(http.MethodGet, "/api/v1/habits/export", token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
	t.Run("deleted user", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errorvalues.ErrUserNotFound)
		resp := do(http.MethodGet, "/api/v1/activity", token)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
	t.Run("activity settings route", func(t *testing.T) {
		ts.users.EXPECT().GetByID(gomock.Any(), userID).Return(user, nil)
		ts.activity.EXPECT().ActivityEnabled(gomock.Any(), userID).Return(false, nil)
		resp := do(http.MethodGet, "/api/v1/activity/settings", token)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})
	t.Run("health and metrics", func(t *testing.T) {
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/healthz", "").StatusCode)
		assert.Equal(t, http.StatusOK, do(http.MethodGet, "/metrics", "").StatusCode)
	})
}
