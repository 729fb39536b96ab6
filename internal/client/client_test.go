package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/gratitude-grove/core/internal/pkg/datefilter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(srv.URL, NewSessionAt(filepath.Join(t.TempDir(), SessionFileName)))
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func availability(available bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"available": available})
	}
}

func TestSignUpShortCircuitsOnTakenEmail(t *testing.T) {
	var signupCalled atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/check-email", availability(false))
	mux.HandleFunc("POST /auth/signup", func(w http.ResponseWriter, r *http.Request) {
		signupCalled.Store(true)
		writeJSON(w, http.StatusCreated, map[string]interface{}{})
	})

	c := newTestClient(t, mux)
	_, err := c.SignUp(context.Background(), "dup@example.com", "password1", "감사")

	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.False(t, signupCalled.Load(), "signup must not run after a failed pre-check")
	assert.False(t, c.Session().Active())
}

func TestSignUpShortCircuitsOnTakenNickname(t *testing.T) {
	var signupCalled atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/check-email", availability(true))
	mux.HandleFunc("GET /auth/check-nickname", availability(false))
	mux.HandleFunc("POST /auth/signup", func(w http.ResponseWriter, r *http.Request) {
		signupCalled.Store(true)
	})

	c := newTestClient(t, mux)
	_, err := c.SignUp(context.Background(), "new@example.com", "password1", "중복")

	assert.ErrorIs(t, err, ErrNicknameTaken)
	assert.False(t, signupCalled.Load())
}

func TestSignUpSurfacesRaceConflict(t *testing.T) {
	// Pre-checks pass but another signup wins the unique index in between.
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/check-email", availability(true))
	mux.HandleFunc("GET /auth/check-nickname", availability(true))
	mux.HandleFunc("POST /auth/signup", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusConflict, map[string]interface{}{
			"ok": 0, "code": 409, "message": "이미 사용 중인 이메일입니다.",
		})
	})

	c := newTestClient(t, mux)
	_, err := c.SignUp(context.Background(), "race@example.com", "password1", "감사")

	require.Error(t, err)
	assert.Equal(t, "이미 사용 중인 이메일입니다.", err.Error())
	assert.False(t, c.Session().Active())
}

func TestSignUpPersistsSession(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/check-email", availability(true))
	mux.HandleFunc("GET /auth/check-nickname", availability(true))
	mux.HandleFunc("POST /auth/signup", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		writeJSON(w, http.StatusCreated, map[string]interface{}{
			"profile": Profile{ID: "u1", Email: body["email"], Nickname: body["nickname"]},
			"token":   "tok-signup",
		})
	})

	c := newTestClient(t, mux)
	profile, err := c.SignUp(context.Background(), "new@example.com", "password1", "감사")

	require.NoError(t, err)
	assert.Equal(t, "감사", profile.Nickname)
	assert.True(t, c.Session().Active())
	assert.Equal(t, "tok-signup", c.Session().Token())
}

func TestSignInInvalidCredentials(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/signin", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]interface{}{
			"ok": 0, "code": 401, "message": "이메일 또는 비밀번호가 올바르지 않습니다.",
		})
	})

	c := newTestClient(t, mux)
	_, err := c.SignIn(context.Background(), "who@example.com", "wrong-pass")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, c.Session().Active())
}

func TestAvailabilityChecksFailClosed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	c := newTestClient(t, mux)
	assert.False(t, c.EmailAvailable(context.Background(), "a@example.com"))
	assert.False(t, c.NicknameAvailable(context.Background(), "감사"))
}

func TestSignOutClearsSnapshotDespiteServerError(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/signout", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	c := newTestClient(t, mux)
	require.NoError(t, c.session.SetActive(Profile{ID: "u1"}, "tok"))

	err := c.SignOut(context.Background())
	assert.Error(t, err, "remote failure is still reported")
	assert.False(t, c.Session().Active(), "local snapshot is gone regardless")
}

func TestSignOutRequiresSession(t *testing.T) {
	c := newTestClient(t, http.NewServeMux())
	assert.ErrorIs(t, c.SignOut(context.Background()), ErrSignInRequired)
}

func TestUpdateNicknameRefreshesSnapshot(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/check-nickname", availability(true))
	mux.HandleFunc("PATCH /auth/nickname", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, Profile{ID: "u1", Email: "me@example.com", Nickname: "새별명"})
	})

	c := newTestClient(t, mux)
	require.NoError(t, c.session.SetActive(Profile{ID: "u1", Nickname: "옛별명"}, "tok"))

	profile, err := c.UpdateNickname(context.Background(), "새별명")
	require.NoError(t, err)
	assert.Equal(t, "새별명", profile.Nickname)
	assert.Equal(t, "새별명", c.Session().Profile().Nickname)
	assert.Equal(t, "tok", c.Session().Token(), "token survives the profile refresh")
}

func TestUpdateNicknameKeepingCurrentSkipsPrecheck(t *testing.T) {
	var checkCalled atomic.Bool

	mux := http.NewServeMux()
	mux.HandleFunc("GET /auth/check-nickname", func(w http.ResponseWriter, r *http.Request) {
		checkCalled.Store(true)
		availability(false)(w, r)
	})
	mux.HandleFunc("PATCH /auth/nickname", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, Profile{ID: "u1", Nickname: "같음"})
	})

	c := newTestClient(t, mux)
	require.NoError(t, c.session.SetActive(Profile{ID: "u1", Nickname: "같음"}, "tok"))

	_, err := c.UpdateNickname(context.Background(), "같음")
	require.NoError(t, err)
	assert.False(t, checkCalled.Load(), "own nickname never conflicts with itself")
}

func TestCreateDiarySkipsRemoteWhenBlank(t *testing.T) {
	var called atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /diaries", func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
	})

	c := newTestClient(t, mux)
	require.NoError(t, c.session.SetActive(Profile{ID: "u1"}, "tok"))

	entry, err := c.CreateDiary(context.Background(), []string{"", "   ", "\t"})
	require.NoError(t, err)
	assert.Nil(t, entry)
	assert.False(t, called.Load(), "blank content never reaches the server")
}

func TestCreateDiaryRequiresSession(t *testing.T) {
	c := newTestClient(t, http.NewServeMux())
	_, err := c.CreateDiary(context.Background(), []string{"고마운 일"})
	assert.ErrorIs(t, err, ErrSignInRequired)
}

func TestTodayDiaryNilWhenUnwritten(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /diaries/today", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{"diary": nil})
	})

	c := newTestClient(t, mux)
	require.NoError(t, c.session.SetActive(Profile{ID: "u1"}, "tok"))

	entry, err := c.TodayDiary(context.Background())
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestListDiariesSendsFilterParams(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /diaries", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		assert.Equal(t, "2025", q.Get("year"))
		assert.Equal(t, "3", q.Get("month"))
		assert.Empty(t, q.Get("day"))
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"data":       []Diary{{ID: "d1", Content: []string{"감사한 하루"}}},
			"pagination": Pagination{Total: 1, CurrentPage: 1, TotalPage: 1, Size: 9},
		})
	})

	c := newTestClient(t, mux)
	require.NoError(t, c.session.SetActive(Profile{ID: "u1"}, "tok"))

	var filter datefilter.Filter
	filter.SetYear(2025)
	filter.SetMonth(3)

	entries, pag, err := c.ListDiaries(context.Background(), filter, 1, 9)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, int64(1), pag.Total)
}

func TestToggleLikePatchesCachedFeedAndRefetchOverwrites(t *testing.T) {
	likeCount := 5
	liked := false

	mux := http.NewServeMux()
	mux.HandleFunc("GET /feed", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"data": []FeedItem{
				{ID: "d1", Content: []string{"좋은 날"}, LikeCount: likeCount, Liked: liked, Nickname: "이웃"},
			},
			"pagination": Pagination{Total: 1, CurrentPage: 1, TotalPage: 1, Size: 9},
		})
	})
	mux.HandleFunc("POST /diaries/{id}/like", func(w http.ResponseWriter, r *http.Request) {
		require.NotEmpty(t, r.Header.Get("Authorization"))
		if liked {
			liked, likeCount = false, likeCount-1
		} else {
			liked, likeCount = true, likeCount+1
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"liked": liked, "like_count": likeCount})
	})

	c := newTestClient(t, mux)
	require.NoError(t, c.session.SetActive(Profile{ID: "u1"}, "tok"))

	_, _, err := c.Feed(context.Background(), 1, 9)
	require.NoError(t, err)

	gotLiked, gotCount, err := c.ToggleLike(context.Background(), "d1")
	require.NoError(t, err)
	assert.True(t, gotLiked)
	assert.Equal(t, 6, gotCount)

	cached := c.CachedFeed()
	require.Len(t, cached, 1)
	assert.True(t, cached[0].Liked, "toggle patches the cache in place")
	assert.Equal(t, 6, cached[0].LikeCount)

	// A second toggle restores the original state.
	gotLiked, gotCount, err = c.ToggleLike(context.Background(), "d1")
	require.NoError(t, err)
	assert.False(t, gotLiked)
	assert.Equal(t, 5, gotCount)

	// Refetch replaces the cache wholesale with the server's view.
	items, _, err := c.Feed(context.Background(), 1, 9)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.False(t, items[0].Liked)
	assert.Equal(t, 5, items[0].LikeCount)
	assert.Equal(t, items, c.CachedFeed())
}

func TestToggleLikeRequiresSession(t *testing.T) {
	c := newTestClient(t, http.NewServeMux())
	_, _, err := c.ToggleLike(context.Background(), "d1")
	assert.ErrorIs(t, err, ErrSignInRequired)
}

func TestSessionSnapshotWrittenToDisk(t *testing.T) {
	path := filepath.Join(t.TempDir(), SessionFileName)
	s := NewSessionAt(path)
	require.NoError(t, s.SetActive(Profile{ID: "u1"}, "tok"))

	_, err := os.Stat(path)
	require.NoError(t, err)
	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must not linger after rename")
}
