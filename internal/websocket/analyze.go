package wizardws

import (
	"encoding/json"
	"log"
	"strings"

	websocket "github.com/gofiber/contrib/websocket"
	"github.com/philippoppel/TheraMatchBack/internal/models"
)

const maxTextLength = 10000

type analyzer interface {
	Analyze(text string) models.SituationAnalysis
}

// Client wraps one wizard connection. The frontend streams situation text
// while the user types and receives an updated analysis per snapshot.
type Client struct {
	conn *websocket.Conn
	send chan []byte
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		conn: conn,
		send: make(chan []byte, 8),
	}
}

type inbound struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type outbound struct {
	Type     string                    `json:"type"`
	Analysis *models.SituationAnalysis `json:"analysis,omitempty"`
	Error    string                    `json:"error,omitempty"`
}

func (c *Client) ReadPump(service analyzer) {
	defer func() {
		close(c.send)
		_ = c.conn.Close()
	}()

	for {
		_, payload, err := c.conn.ReadMessage()
		if err != nil {
			return
		}

		var incoming inbound
		if err := json.Unmarshal(payload, &incoming); err != nil {
			c.writeError("invalid message payload")
			continue
		}
		if incoming.Type != "analyze" {
			c.writeError("unsupported message type")
			continue
		}

		text := strings.TrimSpace(incoming.Text)
		if text == "" {
			c.writeError("text is required")
			continue
		}
		if len(text) > maxTextLength {
			c.writeError("text exceeds the maximum length")
			continue
		}

		analysis := service.Analyze(text)
		encoded, err := json.Marshal(outbound{Type: "analysis", Analysis: &analysis})
		if err != nil {
			log.Printf("wizard ws encode analysis: %v", err)
			continue
		}
		c.enqueue(encoded)
	}
}

func (c *Client) WritePump() {
	defer func() {
		_ = c.conn.Close()
	}()

	for payload := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			return
		}
	}
}

func (c *Client) writeError(message string) {
	payload, err := json.Marshal(outbound{Type: "error", Error: message})
	if err != nil {
		return
	}
	c.enqueue(payload)
}

// enqueue drops the frame when the writer is backed up. The client sends
// another snapshot shortly anyway, so a stale analysis is not worth
// blocking the read loop for.
func (c *Client) enqueue(payload []byte) {
	select {
	case c.send <- payload:
	default:
	}
}
