package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewHTTPClient(srv.URL, 5*time.Second)
}

func TestMe_AttachesBearerAndInstallationHeaders(t *testing.T) {
	var gotAuth, gotInstall string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/auth/me", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		gotInstall = r.Header.Get("X-Installation-ID")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"user_id":    "u1",
			"email":      "a@b.com",
			"name":       "A",
			"created_at": "2024-01-01",
		})
	}))
	c.SetToken("tok_abc")
	c.SetInstallationID("inst-1")

	id, err := c.Me(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer tok_abc", gotAuth)
	assert.Equal(t, "inst-1", gotInstall)
	assert.Equal(t, "u1", id.UserID)
	assert.Equal(t, "a@b.com", id.Email)
}

func TestMe_NoTokenSendsNoAuthorizationHeader(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Header["Authorization"]; ok {
			t.Error("Authorization header must be absent when no token is set")
		}
		w.WriteHeader(http.StatusUnauthorized)
	}))

	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestMe_401MapsToUnauthorized(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid session"})
	}))
	c.SetToken("tok_expired")

	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestMe_ConnectionRefusedMapsToUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close() // port is now dead
	c := NewHTTPClient(srv.URL, time.Second)

	_, err := c.Me(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestClearToken_RemovesCredential(t *testing.T) {
	var gotAuth []string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = append(gotAuth, r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{})
	}))

	c.SetToken("tok_abc")
	require.NoError(t, c.Health(context.Background()))

	c.ClearToken()
	require.NoError(t, c.Health(context.Background()))

	require.Equal(t, []string{"Bearer tok_abc", ""}, gotAuth)
}

func TestExchangeSession_Success(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/auth/session", r.URL.Path)

		var req map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "sess_123", req["session_id"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"user": map[string]string{
				"user_id": "u1", "email": "a@b.com", "name": "A", "created_at": "2024-01-01",
			},
			"session_token": "tok_new",
		})
	}))

	res, err := c.ExchangeSession(context.Background(), "sess_123")
	require.NoError(t, err)
	assert.Equal(t, "tok_new", res.Token)
	assert.Equal(t, "u1", res.Identity.UserID)
}

func TestExchangeSession_SuccessFalseFails(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": false})
	}))

	_, err := c.ExchangeSession(context.Background(), "sess_bad")
	require.ErrorIs(t, err, ErrExchangeFailed)
}

func TestExchangeSession_Non2xxFails(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Invalid session_id"})
	}))

	_, err := c.ExchangeSession(context.Background(), "sess_spent")
	require.ErrorIs(t, err, ErrExchangeFailed)
}

func TestExchangeSession_TransportFailureIsUnavailableNotExchangeFailed(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewHTTPClient(srv.URL, time.Second)

	_, err := c.ExchangeSession(context.Background(), "sess_123")
	require.ErrorIs(t, err, ErrUnavailable)
	require.NotErrorIs(t, err, ErrExchangeFailed)
}

func TestWithdraw_SendsReferenceIDAndDecodesWallet(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/wallet/withdraw", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, 50.0, req["amount"])
		require.Equal(t, "ref-1", req["reference_id"])

		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":        true,
			"wallet":         map[string]any{"user_id": "u1", "withdrawable_balance": 10.0},
			"transaction_id": "txn_1",
		})
	}))
	c.SetToken("tok_abc")

	w, txnID, err := c.Withdraw(context.Background(), 50, "ref-1")
	require.NoError(t, err)
	assert.Equal(t, "txn_1", txnID)
	assert.Equal(t, 10.0, w.WithdrawableBalance)
}

func TestTransactions_BuildsQueryString(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(map[string]any{
			"transactions": []any{}, "total": 0, "limit": 5, "offset": 10,
		})
	}))

	_, err := c.Transactions(context.Background(), TransactionQuery{Limit: 5, Offset: 10, Type: "withdrawal"})
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "limit=5")
	assert.Contains(t, gotQuery, "offset=10")
	assert.Contains(t, gotQuery, "transaction_type=withdrawal")
}

func TestNotifications_UnreadOnly(t *testing.T) {
	var gotQuery string
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		_ = json.NewEncoder(w).Encode(map[string]any{
			"notifications": []map[string]any{{"notification_id": "n1", "title": "Hi"}},
			"unread_count":  1,
		})
	}))

	page, err := c.Notifications(context.Background(), 20, true)
	require.NoError(t, err)
	assert.Contains(t, gotQuery, "unread_only=true")
	require.Len(t, page.Notifications, 1)
	assert.Equal(t, 1, page.UnreadCount)
}

func TestLogout_IgnoresBody(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/auth/logout", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "message": "Logged out successfully"}`))
	}))
	c.SetToken("tok_abc")

	require.NoError(t, c.Logout(context.Background()))
}

func TestDeposit_MissingWalletInBodyIsError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success":        true,
			"transaction_id": "t1",
		})
	}))

	wallet, _, err := c.Deposit(context.Background(), 10)
	require.Error(t, err)
	require.Nil(t, wallet)
}

func TestWithdraw_SuccessFalseWith2xxIsError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": false,
		})
	}))

	wallet, _, err := c.Withdraw(context.Background(), 10, "ref-1")
	require.Error(t, err)
	require.Nil(t, wallet)
}

func TestTransfer_MissingWalletInBodyIsError(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))

	wallet, err := c.Transfer(context.Background(), 10, "bonus", "coins")
	require.Error(t, err)
	require.Nil(t, wallet)
}
