// Package wechatwork posts export notifications to a WeChat Work group robot.
package wechatwork

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"ProteomicsReport/pkg/proteomics"
)

// DefaultWebhookURL is the group robot endpoint; the key is appended.
const DefaultWebhookURL = "https://qyapi.weixin.qq.com/cgi-bin/webhook/send?key="

// Message is the webhook request body.
type Message struct {
	MsgType  string           `json:"msgtype"`
	Text     *TextContent     `json:"text,omitempty"`
	Markdown *MarkdownContent `json:"markdown,omitempty"`
}

type TextContent struct {
	Content             string   `json:"content"`
	MentionedList       []string `json:"mentioned_list,omitempty"`
	MentionedMobileList []string `json:"mentioned_mobile_list,omitempty"`
}

type MarkdownContent struct {
	Content string `json:"content"`
}

// NotificationSender sends messages to one robot. It is disabled, and every
// send is a no-op, when created with an empty key.
type NotificationSender struct {
	WebhookKey string
	WebhookURL string
	Enabled    bool
	Client     *http.Client
}

func NewNotificationSender(webhookKey string) *NotificationSender {
	return &NotificationSender{
		WebhookKey: webhookKey,
		WebhookURL: DefaultWebhookURL,
		Enabled:    webhookKey != "",
		Client:     http.DefaultClient,
	}
}

func (ns *NotificationSender) SendText(content string, mentionedList, mentionedMobileList []string) error {
	if !ns.Enabled {
		return nil
	}
	return ns.send(Message{
		MsgType: "text",
		Text: &TextContent{
			Content:             content,
			MentionedList:       mentionedList,
			MentionedMobileList: mentionedMobileList,
		},
	})
}

func (ns *NotificationSender) SendMarkdown(content string) error {
	if !ns.Enabled {
		return nil
	}
	return ns.send(Message{
		MsgType:  "markdown",
		Markdown: &MarkdownContent{Content: content},
	})
}

// NotifyExport sends the markdown summary of an exported workbook.
func (ns *NotificationSender) NotifyExport(filename string, summaries []proteomics.SheetSummary) error {
	return ns.SendMarkdown(ExportMessage(filename, summaries))
}

// ExportMessage renders the markdown body announcing filename.
func ExportMessage(filename string, summaries []proteomics.SheetSummary) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Excel file generated**: %s\n", filename)
	for _, s := range summaries {
		fmt.Fprintf(&sb, "> %s: %d rows, %d columns, fill %.1f%%\n", s.Sheet, s.Rows, s.Columns, s.MeanFill*100)
	}
	return sb.String()
}

func (ns *NotificationSender) send(message Message) error {
	jsonData, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("marshal notification: %w", err)
	}

	resp, err := ns.Client.Post(ns.WebhookURL+ns.WebhookKey, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("send notification: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("notification status: %d", resp.StatusCode)
	}

	slog.Info("notification sent", "msgtype", message.MsgType)
	return nil
}
