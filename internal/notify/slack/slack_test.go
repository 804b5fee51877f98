package slack

import (
	"context"
	"fmt"
	"strings"
	"testing"

	slackapi "github.com/slack-go/slack"
)

// mockSlackClient records posted messages.
type mockSlackClient struct {
	posted  []postedMessage
	postErr error
}

type postedMessage struct {
	channelID string
	options   []slackapi.MsgOption
}

func (m *mockSlackClient) PostMessageContext(ctx context.Context, channelID string, options ...slackapi.MsgOption) (string, string, error) {
	if m.postErr != nil {
		return "", "", m.postErr
	}
	m.posted = append(m.posted, postedMessage{channelID: channelID, options: options})
	return channelID, "1234567890.123456", nil
}

func TestNew_RequiresToken(t *testing.T) {
	_, err := New(Opts{ChannelID: "C123"})
	if err == nil {
		t.Fatal("expected error for missing token")
	}
	if !strings.Contains(err.Error(), "token is required") {
		t.Errorf("error = %q, want token is required", err.Error())
	}
}

func TestNew_RequiresChannel(t *testing.T) {
	_, err := New(Opts{Token: "xoxb-test"})
	if err == nil {
		t.Fatal("expected error for missing channel")
	}
	if !strings.Contains(err.Error(), "channel is required") {
		t.Errorf("error = %q, want channel is required", err.Error())
	}
}

func TestPost(t *testing.T) {
	mock := &mockSlackClient{}
	n, err := New(Opts{ChannelID: "C123", Client: mock})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if err := n.Post(context.Background(), "assignment #7 created"); err != nil {
		t.Fatalf("Post: %v", err)
	}
	if len(mock.posted) != 1 {
		t.Fatalf("posted = %d messages, want 1", len(mock.posted))
	}
	if mock.posted[0].channelID != "C123" {
		t.Errorf("channel = %q, want C123", mock.posted[0].channelID)
	}
}

func TestPost_Error(t *testing.T) {
	mock := &mockSlackClient{postErr: fmt.Errorf("rate limited")}
	n, err := New(Opts{ChannelID: "C123", Client: mock})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	err = n.Post(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "slack: post message") {
		t.Errorf("error = %q, want slack: post message prefix", err.Error())
	}
}
