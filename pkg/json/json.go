//go:build !jsoniter
// +build !jsoniter

package json

import (
	"github.com/goccy/go-json"
)

type RawMessage = json.RawMessage

var (
	Marshal       = json.Marshal
	Unmarshal     = json.Unmarshal
	MarshalIndent = json.MarshalIndent
	NewDecoder    = json.NewDecoder
	NewEncoder    = json.NewEncoder
	Valid         = json.Valid
)
