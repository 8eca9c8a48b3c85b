// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package news

import (
	"slices"

	"github.com/taibuivan/newsdesk/pkg/slice"
)

// # News Types

// DefaultType is assigned to news created without an explicit type.
const DefaultType = "default"

// TypeChoice is one entry of the type select offered to editors.
type TypeChoice struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

var typeChoices = []TypeChoice{
	{Value: "default", Label: "Default"},
	{Value: "article", Label: "Article"},
	{Value: "blog", Label: "Blog"},
	{Value: "faq", Label: "FAQ"},
	{Value: "notice", Label: "Notice"},
	{Value: "announcement", Label: "Announcement"},
	{Value: "rating", Label: "Rating"},
}

// Types returns the selectable news types.
func Types() []TypeChoice {
	return slices.Clone(typeChoices)
}

// TypeValues returns the values of [Types].
func TypeValues() []string {
	return slice.Map(typeChoices, func(choice TypeChoice) string { return choice.Value })
}
