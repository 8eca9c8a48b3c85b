// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package sanitize cleans editor-supplied markup before it is stored.

Two policies exist:

  - Rich: bluemonday's UGC policy for body fields (summary, text, footer).
  - Plain: the strict policy for single-line fields (title, subtitle),
    which strips every tag and keeps the text.
*/
package sanitize

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	richPolicy  = bluemonday.UGCPolicy()
	plainPolicy = bluemonday.StrictPolicy()
)

// Rich removes scripts, event handlers and other unsafe markup from value.
func Rich(value string) string {
	return richPolicy.Sanitize(value)
}

// maxPlainPasses bounds the decode and strip cycles of [Plain].
const maxPlainPasses = 8

// Plain strips all markup from value and trims surrounding whitespace.
// Entities are decoded before the strict policy runs, so encoded markup is
// stripped like literal markup, and decoded again afterwards so titles store
// as typed ("Tom & Jerry", not "Tom &amp; Jerry"). Passes repeat until the
// result is stable; Plain(Plain(x)) == Plain(x).
func Plain(value string) string {
	cleaned := value
	for range maxPlainPasses {
		next := plainPass(cleaned)
		if next == cleaned {
			return cleaned
		}
		cleaned = next
	}

	// Still changing: keep the escaped form, which can hold no markup.
	return strings.TrimSpace(plainPolicy.Sanitize(html.UnescapeString(cleaned)))
}

func plainPass(value string) string {
	return strings.TrimSpace(html.UnescapeString(plainPolicy.Sanitize(html.UnescapeString(value))))
}

// RichPtr applies [Rich] to an optional field.
func RichPtr(value *string) *string {
	if value == nil {
		return nil
	}
	cleaned := Rich(*value)
	return &cleaned
}

// PlainPtr applies [Plain] to an optional field.
func PlainPtr(value *string) *string {
	if value == nil {
		return nil
	}
	cleaned := Plain(*value)
	return &cleaned
}
