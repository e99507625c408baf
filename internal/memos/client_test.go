package memos

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type mockHTTPClient struct {
	doFunc func(req *http.Request) (*http.Response, error)
}

func (m *mockHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return m.doFunc(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
		Header:     http.Header{"Content-Type": []string{"application/json"}},
	}
}

type ClientSuite struct {
	suite.Suite
	httpClient *mockHTTPClient
	client     *Client
	ctx        context.Context
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.httpClient = &mockHTTPClient{}
	s.client = NewClient("http://memos.local/", "secret", s.httpClient, nil)
	s.ctx = context.Background()
}

func (s *ClientSuite) TestNewClientTrimsTrailingSlash() {
	require.Equal(s.T(), "http://memos.local", s.client.BaseURL())
}

func (s *ClientSuite) TestHasAPIKey() {
	require.True(s.T(), s.client.HasAPIKey())
	anon := NewClient("http://memos.local", "", s.httpClient, nil)
	require.False(s.T(), anon.HasAPIKey())
}

func (s *ClientSuite) TestRequestHeaders() {
	var gotAuth, gotContentType string
	s.httpClient.doFunc = func(req *http.Request) (*http.Response, error) {
		gotAuth = req.Header.Get("Authorization")
		gotContentType = req.Header.Get("Content-Type")
		return jsonResponse(http.StatusOK, `{}`), nil
	}

	_, err := s.client.GetMemo(s.ctx, "1")
	require.NoError(s.T(), err)
	require.Equal(s.T(), "Bearer secret", gotAuth)
	require.Equal(s.T(), "application/json", gotContentType)
}

func (s *ClientSuite) TestNoAuthHeaderWithoutKey() {
	anon := NewClient("http://memos.local", "", s.httpClient, nil)
	s.httpClient.doFunc = func(req *http.Request) (*http.Response, error) {
		require.Empty(s.T(), req.Header.Get("Authorization"))
		return jsonResponse(http.StatusOK, `{}`), nil
	}

	_, err := anon.GetMemo(s.ctx, "1")
	require.NoError(s.T(), err)
}

func (s *ClientSuite) TestAPIError() {
	s.httpClient.doFunc = func(*http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusNotFound, `memo not found`), nil
	}

	_, err := s.client.GetMemo(s.ctx, "999")
	require.Error(s.T(), err)
	var apiErr *APIError
	require.ErrorAs(s.T(), err, &apiErr)
	require.Equal(s.T(), http.StatusNotFound, apiErr.Status)
	require.Equal(s.T(), "HTTP Error 404: memo not found", err.Error())
}

func (s *ClientSuite) TestTransportError() {
	s.httpClient.doFunc = func(*http.Request) (*http.Response, error) {
		return nil, fmt.Errorf("connection refused")
	}

	_, err := s.client.GetMemo(s.ctx, "1")
	require.Error(s.T(), err)
	require.Contains(s.T(), err.Error(), "calling memos API")
}

func (s *ClientSuite) TestCreateMemoDefaults() {
	var gotBody string
	s.httpClient.doFunc = func(req *http.Request) (*http.Response, error) {
		data, _ := io.ReadAll(req.Body)
		gotBody = string(data)
		return jsonResponse(http.StatusOK, `{}`), nil
	}

	_, err := s.client.CreateMemo(s.ctx, CreateMemoParams{Content: "hello"})
	require.NoError(s.T(), err)
	require.Contains(s.T(), gotBody, `"visibility":"VISIBILITY_PRIVATE"`)
	require.Contains(s.T(), gotBody, `"state":"STATE_NORMAL"`)
	require.NotContains(s.T(), gotBody, `"pinned"`)
	require.NotContains(s.T(), gotBody, `"attachments"`)
}

func (s *ClientSuite) TestListMemosQuery() {
	var gotURL string
	s.httpClient.doFunc = func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.String()
		return jsonResponse(http.StatusOK, `{}`), nil
	}

	show := true
	_, err := s.client.ListMemos(s.ctx, ListMemosParams{
		PageSize:    50,
		PageToken:   "tok",
		State:       "NORMAL",
		OrderBy:     "pinned desc, display_time desc",
		Filter:      `creator == 'users/1'`,
		ShowDeleted: &show,
	})
	require.NoError(s.T(), err)
	require.Contains(s.T(), gotURL, "pageSize=50")
	require.Contains(s.T(), gotURL, "pageToken=tok")
	require.Contains(s.T(), gotURL, "state=STATE_NORMAL")
	require.Contains(s.T(), gotURL, "showDeleted=true")
	require.Contains(s.T(), gotURL, "filter=creator")
}

func (s *ClientSuite) TestUpdateMemoOmitsUnsetFields() {
	var gotBody string
	s.httpClient.doFunc = func(req *http.Request) (*http.Response, error) {
		data, _ := io.ReadAll(req.Body)
		gotBody = string(data)
		return jsonResponse(http.StatusOK, `{}`), nil
	}

	content := "new"
	_, err := s.client.UpdateMemo(s.ctx, "3", UpdateMemoParams{Content: &content})
	require.NoError(s.T(), err)
	require.Equal(s.T(), `{"content":"new"}`, gotBody)
}

func (s *ClientSuite) TestSetMemoAttachmentsPayload() {
	var gotURL, gotBody string
	s.httpClient.doFunc = func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.String()
		data, _ := io.ReadAll(req.Body)
		gotBody = string(data)
		return jsonResponse(http.StatusOK, `{}`), nil
	}

	err := s.client.SetMemoAttachments(s.ctx, "4", []Attachment{
		{Filename: "a.png", Type: "image/png", Content: "aGk="},
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), "http://memos.local/api/v1/memos/4/attachments", gotURL)
	require.Contains(s.T(), gotBody, `"name":"memos/4"`)
	require.Contains(s.T(), gotBody, `"filename":"a.png"`)
}

func (s *ClientSuite) TestCreateAttachmentQueryParam() {
	var gotURL string
	s.httpClient.doFunc = func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.String()
		return jsonResponse(http.StatusOK, `{}`), nil
	}

	_, err := s.client.CreateAttachment(s.ctx, CreateAttachmentParams{
		Filename:     "a.png",
		Type:         "image/png",
		AttachmentID: "my-id",
	})
	require.NoError(s.T(), err)
	require.Equal(s.T(), "http://memos.local/api/v1/attachments?attachmentId=my-id", gotURL)
}

func (s *ClientSuite) TestUpdateAttachmentMask() {
	var gotURL, gotBody string
	s.httpClient.doFunc = func(req *http.Request) (*http.Response, error) {
		gotURL = req.URL.String()
		data, _ := io.ReadAll(req.Body)
		gotBody = string(data)
		return jsonResponse(http.StatusOK, `{}`), nil
	}

	filename := "b.png"
	_, err := s.client.UpdateAttachment(s.ctx, "2", "filename", UpdateAttachmentParams{Filename: &filename})
	require.NoError(s.T(), err)
	require.Contains(s.T(), gotURL, "updateMask=filename")
	require.Equal(s.T(), `{"filename":"b.png"}`, gotBody)
}

func (s *ClientSuite) TestDeleteOps() {
	var gotMethod, gotURL string
	s.httpClient.doFunc = func(req *http.Request) (*http.Response, error) {
		gotMethod = req.Method
		gotURL = req.URL.String()
		return jsonResponse(http.StatusOK, `{}`), nil
	}

	require.NoError(s.T(), s.client.DeleteMemo(s.ctx, "5"))
	require.Equal(s.T(), "DELETE", gotMethod)
	require.Equal(s.T(), "http://memos.local/api/v1/memos/5", gotURL)

	require.NoError(s.T(), s.client.DeleteAttachment(s.ctx, "6"))
	require.Equal(s.T(), "http://memos.local/api/v1/attachments/6", gotURL)
}
