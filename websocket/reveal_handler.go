package websocket

import (
	"errors"

	"salon-site-server/logx"
	"salon-site-server/reveal"
)

var (
	errMissingElement = errors.New("element is required")
	errMissingRoot    = errors.New("root is required")
)

// Observe implements reveal.Source: entries arrive with viewport messages
func (c *Client) Observe(id string, notify func(reveal.Entry)) error {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	c.observers[id] = notify
	return nil
}

// Unobserve implements reveal.Source
func (c *Client) Unobserve(id string) {
	c.obsMu.Lock()
	defer c.obsMu.Unlock()
	delete(c.observers, id)
}

// elementTarget forwards class changes for one element to the browser
type elementTarget struct {
	client *Client
	id     string
}

func (t *elementTarget) ID() string {
	return t.id
}

func (t *elementTarget) Apply(state reveal.State, add, remove []string) {
	err := t.client.SendMessage(&Message{
		Type:    MessageTypeClasses,
		Element: t.id,
		State:   state.String(),
		Add:     add,
		Remove:  remove,
	})
	if err != nil && !errors.Is(err, ErrClientClosed) {
		logx.Warn().Err(err).Str("element", t.id).Msg("⚠️ Dropped class update")
	}
}

func handleAttach(c *Client, m *Message) error {
	if m.Element == "" {
		return errMissingElement
	}
	opts := m.Options.merge(c.hub.defaults)
	c.controller.Attach(&elementTarget{client: c, id: m.Element}, opts)
	return nil
}

func handleViewport(c *Client, m *Message) error {
	if m.Root == nil {
		return errMissingRoot
	}

	c.obsMu.Lock()
	pending := make(map[string]func(reveal.Entry), len(m.Elements))
	for id := range m.Elements {
		if notify, ok := c.observers[id]; ok {
			pending[id] = notify
		}
	}
	c.obsMu.Unlock()

	for id, notify := range pending {
		notify(reveal.Entry{Bounds: m.Elements[id], Root: *m.Root})
	}
	return nil
}

func handleDetach(c *Client, m *Message) error {
	if m.Element == "" {
		return errMissingElement
	}
	if sub, ok := c.controller.Lookup(m.Element); ok {
		sub.Detach()
	}
	return nil
}

func handlePing(c *Client, _ *Message) error {
	return c.SendMessage(&Message{Type: MessageTypePong})
}
