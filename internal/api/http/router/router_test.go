package router_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpctx "github.com/dtroode/noticeboard-server/internal/api/http/context"
	"github.com/dtroode/noticeboard-server/internal/api/http/router"
	"github.com/dtroode/noticeboard-server/internal/hasher"
	"github.com/dtroode/noticeboard-server/internal/model"
	"github.com/dtroode/noticeboard-server/internal/service"
	"github.com/dtroode/noticeboard-server/internal/testutil"
	"github.com/dtroode/noticeboard-server/internal/token"
)

type memUserStore struct {
	mu    sync.Mutex
	users map[uuid.UUID]model.User
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]model.User)}
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return model.User{}, model.ErrNotFound
}

func (s *memUserStore) GetByID(_ context.Context, id uuid.UUID) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return model.User{}, model.ErrNotFound
	}
	return u, nil
}

func (s *memUserStore) Create(_ context.Context, user model.User) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return user, nil
}

type memNoticeStore struct {
	mu      sync.Mutex
	notices map[uuid.UUID]model.Notice
	users   *memUserStore
}

func newMemNoticeStore(users *memUserStore) *memNoticeStore {
	return &memNoticeStore{notices: make(map[uuid.UUID]model.Notice), users: users}
}

func (s *memNoticeStore) Create(_ context.Context, notice model.Notice) (model.Notice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notices[notice.ID] = notice
	return notice, nil
}

func (s *memNoticeStore) List(ctx context.Context, category string) ([]model.NoticeWithOwner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []model.NoticeWithOwner{}
	for _, n := range s.notices {
		if category != "" && n.Category != category {
			continue
		}
		owner, _ := s.users.GetByID(ctx, n.OwnerID)
		out = append(out, model.NoticeWithOwner{Notice: n, OwnerName: owner.Name, OwnerEmail: owner.Email})
	}
	return out, nil
}

func (s *memNoticeStore) UpdateOwned(_ context.Context, id, ownerID uuid.UUID, params model.UpdateNoticeParams) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notices[id]
	if !ok || n.OwnerID != ownerID {
		return model.ErrNotFound
	}
	n.Title = params.Title
	n.Body = params.Body
	n.Category = params.Category
	s.notices[id] = n
	return nil
}

func (s *memNoticeStore) DeleteOwned(_ context.Context, id, ownerID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notices[id]
	if !ok || n.OwnerID != ownerID {
		return model.ErrNotFound
	}
	delete(s.notices, id)
	return nil
}

func newTestHandler(t *testing.T) http.Handler {
	t.Helper()

	users := newMemUserStore()
	notices := newMemNoticeStore(users)
	lg := testutil.MakeNoopLogger()

	authService := service.NewAuth(users, hasher.NewBcrypt(), token.NewJWT("test-secret", 0), lg)
	noticeService := service.NewNotice(notices, lg)

	return router.New(authService, noticeService, httpctx.NewManager(), lg).Register()
}

func do(t *testing.T, h http.Handler, method, target, body, authToken string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	if authToken != "" {
		req.Header.Set("Authorization", authToken)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

type listedNotice struct {
	ID       uuid.UUID `json:"id"`
	Title    string    `json:"title"`
	Category string    `json:"category"`
	User     struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"user"`
}

func listNotices(t *testing.T, h http.Handler, target, token string) []listedNotice {
	t.Helper()

	rec := do(t, h, http.MethodGet, target, "", token)
	require.Equal(t, http.StatusOK, rec.Code)

	var notices []listedNotice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &notices))
	return notices
}

func register(t *testing.T, h http.Handler, name, email string) {
	t.Helper()

	body := `{"name":"` + name + `","email":"` + email + `","password":"pw-` + email + `","phone_number":"555-0100","department":"QA"}`
	rec := do(t, h, http.MethodPost, "/register", body, "")
	require.Equal(t, http.StatusCreated, rec.Code)
}

func login(t *testing.T, h http.Handler, email string) string {
	t.Helper()

	rec := do(t, h, http.MethodPost, "/login", `{"email":"`+email+`","password":"pw-`+email+`"}`, "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["token"])
	require.Equal(t, resp["token"], rec.Header().Get("Authorization"))
	return resp["token"]
}

func TestRouter_EndToEnd(t *testing.T) {
	h := newTestHandler(t)

	register(t, h, "Alice", "alice@example.com")
	tokenA := login(t, h, "alice@example.com")

	rec := do(t, h, http.MethodPost, "/notices", `{"title":"T","body":"B","category":"C"}`, tokenA)
	require.Equal(t, http.StatusCreated, rec.Code)

	notices := listNotices(t, h, "/notices", tokenA)
	require.Len(t, notices, 1)
	assert.Equal(t, "T", notices[0].Title)
	assert.Equal(t, "Alice", notices[0].User.Name)
	assert.Equal(t, "alice@example.com", notices[0].User.Email)
	noticeID := notices[0].ID

	rec = do(t, h, http.MethodPut, "/notices/"+noticeID.String(), `{"title":"T2","body":"B","category":"C"}`, tokenA)
	require.Equal(t, http.StatusOK, rec.Code)

	notices = listNotices(t, h, "/notices", tokenA)
	require.Len(t, notices, 1)
	assert.Equal(t, "T2", notices[0].Title)

	// a different authenticated user can see the notice but not touch it
	register(t, h, "Bob", "bob@example.com")
	tokenB := login(t, h, "bob@example.com")

	rec = do(t, h, http.MethodPut, "/notices/"+noticeID.String(), `{"title":"X","body":"X","category":"X"}`, tokenB)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, h, http.MethodDelete, "/notices/"+noticeID.String(), "", tokenB)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	notices = listNotices(t, h, "/notices", tokenB)
	require.Len(t, notices, 1)
	assert.Equal(t, "T2", notices[0].Title)

	rec = do(t, h, http.MethodDelete, "/notices/"+noticeID.String(), "", tokenA)
	require.Equal(t, http.StatusOK, rec.Code)

	notices = listNotices(t, h, "/notices", tokenA)
	assert.Empty(t, notices)
}

func TestRouter_CategoryFilter(t *testing.T) {
	h := newTestHandler(t)

	register(t, h, "Alice", "alice@example.com")
	tok := login(t, h, "alice@example.com")

	for _, c := range []string{"C", "C", "other"} {
		rec := do(t, h, http.MethodPost, "/notices", `{"title":"T","body":"B","category":"`+c+`"}`, tok)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	notices := listNotices(t, h, "/notices?category=C", tok)
	require.Len(t, notices, 2)
	for _, n := range notices {
		assert.Equal(t, "C", n.Category)
	}

	notices = listNotices(t, h, "/notices", tok)
	assert.Len(t, notices, 3)
}

func TestRouter_LoginFailures(t *testing.T) {
	h := newTestHandler(t)

	register(t, h, "Alice", "alice@example.com")

	rec := do(t, h, http.MethodPost, "/login", `{"email":"ghost@example.com","password":"x"}`, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// wrong password must not leak a usable token anywhere in the response
	rec = do(t, h, http.MethodPost, "/login", `{"email":"alice@example.com","password":"wrong"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("Authorization"))
	assert.NotContains(t, rec.Body.String(), "token")
}

func TestRouter_AuthGate(t *testing.T) {
	h := newTestHandler(t)

	rec := do(t, h, http.MethodGet, "/notices", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodPost, "/notices", `{"title":"T"}`, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, h, http.MethodGet, "/notices", "", "not-a-valid-token")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
