package agent_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/FenadoAI/fv2-ai-vibe-07ek7a/internal/adapters/agent"
)

func TestNewChatAgent(t *testing.T) {
	Convey("Given chat agent construction", t, func() {
		Convey("When the API key is empty", func() {
			_, err := agent.NewChatAgent(agent.Config{})

			Convey("Then construction fails", func() {
				So(err, ShouldEqual, agent.ErrEmptyAPIKey)
			})
		})

		Convey("When the config is valid", func() {
			a, err := agent.NewChatAgent(agent.Config{APIKey: "test-key"})

			Convey("Then the agent identifies as chat", func() {
				So(err, ShouldBeNil)
				So(a.Type(), ShouldEqual, "chat")
				So(a.Capabilities(), ShouldContain, "conversation")
			})
		})
	})
}

func TestNewSearchAgent(t *testing.T) {
	Convey("Given search agent construction", t, func() {
		Convey("When the API key is empty", func() {
			_, err := agent.NewSearchAgent(agent.Config{})

			Convey("Then construction fails", func() {
				So(err, ShouldEqual, agent.ErrEmptyAPIKey)
			})
		})

		Convey("When the config is valid", func() {
			a, err := agent.NewSearchAgent(agent.Config{APIKey: "test-key"})

			Convey("Then the agent identifies as search", func() {
				So(err, ShouldBeNil)
				So(a.Type(), ShouldEqual, "search")
				So(a.Capabilities(), ShouldContain, "web_research")
			})
		})
	})
}

func TestChatAgent_Execute(t *testing.T) {
	Convey("Given a chat agent pointed at a stub provider", t, func() {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "msg_test",
				"type": "message",
				"role": "assistant",
				"model": "claude-3-5-sonnet-20241022",
				"content": [{"type": "text", "text": "stubbed reply"}],
				"stop_reason": "end_turn",
				"usage": {"input_tokens": 4, "output_tokens": 2}
			}`))
		}))
		defer server.Close()

		a, err := agent.NewChatAgent(agent.Config{APIKey: "test-key", BaseURL: server.URL})
		So(err, ShouldBeNil)

		Convey("When executing a prompt", func() {
			res, err := a.Execute(context.Background(), "say hi", false)

			Convey("Then the provider text comes back in the result", func() {
				So(err, ShouldBeNil)
				So(res.Success, ShouldBeTrue)
				So(res.Content, ShouldEqual, "stubbed reply")
				So(res.Metadata["model"], ShouldEqual, "claude-3-5-sonnet-20241022")
			})
		})
	})

	Convey("Given a chat agent whose provider is unreachable", t, func() {
		a, err := agent.NewChatAgent(agent.Config{APIKey: "test-key", BaseURL: "http://127.0.0.1:1"})
		So(err, ShouldBeNil)

		Convey("When executing a prompt", func() {
			res, err := a.Execute(context.Background(), "say hi", false)

			Convey("Then the failure is reported in-band", func() {
				So(err, ShouldBeNil)
				So(res.Success, ShouldBeFalse)
				So(res.Error, ShouldContainSubstring, "anthropic request failed")
			})
		})
	})
}

func TestSearchAgent_Execute(t *testing.T) {
	Convey("Given a search agent pointed at a stub provider", t, func() {
		var sawSystemPrompt bool
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			body, _ := io.ReadAll(r.Body)
			if strings.Contains(string(body), `"system"`) {
				sawSystemPrompt = true
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{
				"id": "chatcmpl-test",
				"object": "chat.completion",
				"choices": [{"index": 0, "message": {"role": "assistant", "content": "summary text"}, "finish_reason": "stop"}],
				"usage": {"prompt_tokens": 9, "completion_tokens": 3, "total_tokens": 12}
			}`))
		}))
		defer server.Close()

		a, err := agent.NewSearchAgent(agent.Config{APIKey: "test-key", BaseURL: server.URL + "/v1"})
		So(err, ShouldBeNil)

		Convey("When executing with tools enabled", func() {
			res, err := a.Execute(context.Background(), "research this", true)

			Convey("Then the summary comes back and the system prompt was applied", func() {
				So(err, ShouldBeNil)
				So(res.Success, ShouldBeTrue)
				So(res.Content, ShouldEqual, "summary text")
				So(sawSystemPrompt, ShouldBeTrue)
			})
		})
	})
}
