package room

import (
	"testing"
	"time"
)

// nextMessage returns the next message with the key, skipping all others
func nextMessage(t *testing.T, c *Client, key string) *Response {
	t.Helper()

	timeout := time.After(time.Second * 2)
	for {
		select {
		case msg := <-c.SendChan():
			if res, ok := msg.(*Response); ok && res.Key == key {
				return res
			}
		case <-timeout:
			t.Fatalf("did not receive %s", key)
			return nil
		}
	}
}

func closeReason(t *testing.T, c *Client) string {
	t.Helper()

	select {
	case reason := <-c.Close:
		return reason
	case <-time.After(time.Second * 2):
		t.Fatal("client was not closed")
		return ""
	}
}
