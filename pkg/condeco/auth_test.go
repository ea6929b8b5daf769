package condeco

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMagicLink(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/MobileAPI/MobileService.svc/User/SendMagicLink", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "user@example.com", body["email"])

		w.Write([]byte(`{"CallResponse":{"ResponseCode":100,"ResponseMessage":"Success"}}`))
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, RequestsPerSecond: 1000})
	require.NoError(t, err)

	resp, err := client.SendMagicLink(context.Background(), "user@example.com")
	require.NoError(t, err)
	assert.Equal(t, ResponseCodeSuccess, resp.CallResponse.ResponseCode)
}

func TestLoginWithMagicLink(t *testing.T) {
	t.Run("installs the returned token on the client", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/MobileAPI/MobileService.svc/User/LoginWithMagicLink", r.URL.Path)
			// The handshake starts unauthenticated.
			assert.Empty(t, r.Header.Get("Authorization"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "123456", body["validationKey"])

			w.Write([]byte(`{"CallResponse":{"ResponseCode":100,"ResponseMessage":"Success"},"token":"new-jwt"}`))
		}))
		defer server.Close()

		client, err := New(Config{BaseURL: server.URL, RequestsPerSecond: 1000})
		require.NoError(t, err)

		resp, err := client.LoginWithMagicLink(context.Background(), "123456")
		require.NoError(t, err)
		assert.Equal(t, "new-jwt", resp.Token)
		assert.Equal(t, "new-jwt", client.accessToken)
	})

	t.Run("surfaces a rejected validation key", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"CallResponse":{"ResponseCode":102,"ResponseMessage":"Invalid validation key"}}`))
		}))
		defer server.Close()

		client, err := New(Config{BaseURL: server.URL, RequestsPerSecond: 1000})
		require.NoError(t, err)

		_, err = client.LoginWithMagicLink(context.Background(), "stale")
		var callErr *CallError
		require.ErrorAs(t, err, &callErr)
		assert.Equal(t, 102, callErr.Code)
		assert.Empty(t, client.accessToken)
	})
}

func TestGetSessionToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mobileapi/MobileService.svc/User/GetSessionToken", r.URL.Path)
		assert.Equal(t, "Bearer jwt", r.Header.Get("Authorization"))
		w.Write([]byte(`{"CallResponse":{"ResponseCode":100,"ResponseMessage":"Success"},"sessionToken":"aaaabbbb-cccc-dddd-eeee-ffff00001111"}`))
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, AccessToken: "jwt", RequestsPerSecond: 1000})
	require.NoError(t, err)

	resp, err := client.GetSessionToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "aaaabbbb-cccc-dddd-eeee-ffff00001111", resp.SessionToken)
	assert.Equal(t, "aaaabbbb-cccc-dddd-eeee-ffff00001111", client.sessionToken)
}

func TestGetSessionTokenV2(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/mobileapi/MobileService.svc/User/GetSessionTokenV2", r.URL.Path)
		assert.Equal(t, "en-GB", r.URL.Query().Get("currentCulture"))
		w.Write([]byte(`{"CallResponse":{"ResponseCode":100,"ResponseMessage":"Success"},"sessionToken":"aaaabbbb-cccc-dddd-eeee-ffff00001111"}`))
	}))
	defer server.Close()

	client, err := New(Config{BaseURL: server.URL, AccessToken: "jwt", RequestsPerSecond: 1000})
	require.NoError(t, err)

	resp, err := client.GetSessionTokenV2(context.Background(), "en-GB")
	require.NoError(t, err)
	assert.Equal(t, "aaaabbbb-cccc-dddd-eeee-ffff00001111", resp.SessionToken)
}

func TestLoginInformation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/MobileAPI/MobileService.svc/User/LoginInformationsV2", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "session-guid", q.Get("token"))
		assert.Equal(t, "1", q.Get("languageId"))
		assert.Equal(t, "en-GB", q.Get("currentCulture"))
		w.Write([]byte(`{"CallResponse":{"ResponseCode":100,"ResponseMessage":"Success"}}`))
	}))
	defer server.Close()

	client, err := New(Config{
		BaseURL: server.URL, AccessToken: "jwt",
		SessionToken: "session-guid", RequestsPerSecond: 1000,
	})
	require.NoError(t, err)

	_, err = client.LoginInformation(context.Background(), LoginInformationRequest{
		LanguageID:      1,
		CurrentDateTime: "14/09/2026 09:00",
		CurrentCulture:  "en-GB",
	})
	require.NoError(t, err)
}
