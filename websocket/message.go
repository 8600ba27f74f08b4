package websocket

import (
	"time"

	"salon-site-server/reveal"
)

const (
	MessageTypeAttach   = "attach"
	MessageTypeViewport = "viewport"
	MessageTypeDetach   = "detach"
	MessageTypePing     = "ping"
	MessageTypePong     = "pong"
	MessageTypeClasses  = "classes"
	MessageTypeError    = "error"
)

// Message is the envelope for every frame in both directions
type Message struct {
	Type    string `json:"type"`
	Element string `json:"element,omitempty"`

	// attach
	Options *RevealOptions `json:"options,omitempty"`

	// viewport
	Root     *reveal.Rect           `json:"root,omitempty"`
	Elements map[string]reveal.Rect `json:"elements,omitempty"`

	// classes
	State  string   `json:"state,omitempty"`
	Add    []string `json:"add,omitempty"`
	Remove []string `json:"remove,omitempty"`

	// error
	ErrorType string `json:"error_type,omitempty"`
	Content   string `json:"content,omitempty"`

	Timestamp time.Time `json:"timestamp"`
}

// RevealOptions overrides the hub defaults for one element
type RevealOptions struct {
	Threshold    *float64 `json:"threshold,omitempty"`
	RootMarginPx *float64 `json:"root_margin_px,omitempty"`
	DelayMs      *int     `json:"delay_ms,omitempty"`
}

func (o *RevealOptions) merge(defaults reveal.Options) reveal.Options {
	opts := defaults
	if o == nil {
		return opts
	}
	if o.Threshold != nil {
		opts.ThresholdFraction = *o.Threshold
	}
	if o.RootMarginPx != nil {
		opts.RootMarginPx = *o.RootMarginPx
	}
	if o.DelayMs != nil {
		opts.Delay = time.Duration(*o.DelayMs) * time.Millisecond
	}
	return opts
}
