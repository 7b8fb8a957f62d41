package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// HTTPTestSuite contains common utilities for HTTP testing
type HTTPTestSuite struct {
	Router *gin.Engine
}

// SetupHTTPTest initializes Gin for testing
func SetupHTTPTest() *HTTPTestSuite {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	return &HTTPTestSuite{
		Router: router,
	}
}

// MakeRequest creates and executes an HTTP request for testing
func (suite *HTTPTestSuite) MakeRequest(method, url string, body interface{}) *httptest.ResponseRecorder {
	return suite.MakeRequestWithCookies(method, url, body, nil)
}

// MakeRequestWithHeaders creates and executes an HTTP request with custom headers
func (suite *HTTPTestSuite) MakeRequestWithHeaders(method, url string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeadersAndCookies(method, url, body, headers, nil)
}

// MakeRequestWithCookies creates and executes an HTTP request carrying cookies
func (suite *HTTPTestSuite) MakeRequestWithCookies(method, url string, body interface{}, cookies []*http.Cookie) *httptest.ResponseRecorder {
	return suite.MakeRequestWithHeadersAndCookies(method, url, body, nil, cookies)
}

// MakeRequestWithHeadersAndCookies creates and executes an HTTP request with both
func (suite *HTTPTestSuite) MakeRequestWithHeadersAndCookies(method, url string, body interface{}, headers map[string]string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req := newJSONRequest(method, url, body)
	for key, value := range headers {
		req.Header.Set(key, value)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	recorder := httptest.NewRecorder()
	suite.Router.ServeHTTP(recorder, req)

	return recorder
}

func newJSONRequest(method, url string, body interface{}) *http.Request {
	var reqBody io.Reader

	if body != nil {
		jsonBytes, _ := json.Marshal(body)
		reqBody = bytes.NewBuffer(jsonBytes)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// JSONCookie builds a request cookie holding value as JSON, escaped the way gin writes it
func JSONCookie(t *testing.T, name string, value interface{}) *http.Cookie {
	data, err := json.Marshal(value)
	require.NoError(t, err)
	return &http.Cookie{Name: name, Value: url.QueryEscape(string(data))}
}

// ResponseCookie returns the named cookie set on the response, or nil
func ResponseCookie(recorder *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range recorder.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// DecodeCookie unescapes a response cookie and unmarshals its JSON value into target
func DecodeCookie(t *testing.T, c *http.Cookie, target interface{}) {
	require.NotNil(t, c)
	raw, err := url.QueryUnescape(c.Value)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal([]byte(raw), target))
}

// AssertJSONResponse asserts the response status and unmarshals JSON response
func AssertJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, target interface{}) {
	assert.Equal(t, expectedStatus, recorder.Code)
	assert.Equal(t, "application/json; charset=utf-8", recorder.Header().Get("Content-Type"))

	if target != nil {
		err := json.Unmarshal(recorder.Body.Bytes(), target)
		require.NoError(t, err)
	}
}

// AssertErrorResponse asserts an error response with specific message
func AssertErrorResponse(t *testing.T, recorder *httptest.ResponseRecorder, expectedStatus int, expectedMessage string) {
	assert.Equal(t, expectedStatus, recorder.Code)

	var errorResponse map[string]interface{}
	err := json.Unmarshal(recorder.Body.Bytes(), &errorResponse)
	require.NoError(t, err)

	if expectedMessage != "" {
		assert.Contains(t, errorResponse["error"], expectedMessage)
	}
}

// ParseJSONResponse parses JSON response into target struct
func ParseJSONResponse(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	err := json.Unmarshal(recorder.Body.Bytes(), target)
	require.NoError(t, err)
}
