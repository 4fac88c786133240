package wechatwork

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"ProteomicsReport/pkg/proteomics"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationSenderDisabled(t *testing.T) {
	var ns = NewNotificationSender("")
	assert.False(t, ns.Enabled)
	assert.NoError(t, ns.SendText("x", nil, nil))
	assert.NoError(t, ns.NotifyExport("a.xlsx", nil))
}

func TestNotifyExport(t *testing.T) {
	var (
		got Message
		key string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	var ns = NewNotificationSender("secret")
	ns.WebhookURL = srv.URL + "/send?key="
	ns.Client = srv.Client()

	var summaries = []proteomics.SheetSummary{
		{Sheet: "All", Rows: 3, Columns: 5, MeanFill: 0.5},
		{Sheet: "G1", Rows: 2, Columns: 4, MeanFill: 0.75},
	}
	require.NoError(t, ns.NotifyExport("Acme_Report_030524.xlsx", summaries))
	assert.Equal(t, "secret", key)
	assert.Equal(t, "markdown", got.MsgType)
	require.NotNil(t, got.Markdown)
	assert.Equal(t,
		"**Excel file generated**: Acme_Report_030524.xlsx\n"+
			"> All: 3 rows, 5 columns, fill 50.0%\n"+
			"> G1: 2 rows, 4 columns, fill 75.0%\n",
		got.Markdown.Content,
	)
	assert.Nil(t, got.Text)
}

func TestSendStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	var ns = NewNotificationSender("k")
	ns.WebhookURL = srv.URL + "/?key="
	assert.ErrorContains(t, ns.SendText("hi", []string{"@all"}, nil), "502")
}
