package layout

import (
	"context"

	"github.com/a-h/templ"

	"github.com/mcoot/wordtiles/internal/model"
	"github.com/mcoot/wordtiles/internal/web/templates/markup"
)

// FlashMessage is a one-shot status message carried between requests
type FlashMessage struct {
	Type    string
	Message string
}

// PageData holds data common to every page
type PageData struct {
	Title string
	Flash *FlashMessage
}

// Base renders the page shell around body
func Base(data PageData, body templ.Component) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		w.Raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		w.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		w.Rawf(`<title>%s | Word Tiles</title>`, markup.Esc(data.Title))
		w.Raw(`<link rel="stylesheet" href="/static/style.css">`)
		w.Raw(`<script src="https://unpkg.com/htmx.org@2.0.4" defer></script>`)
		w.Raw(`</head><body hx-boost="true">`)
		w.Raw(`<header><h1><a href="/">Word Tiles</a></h1><p>Form words, score points, have fun!</p>`)
		w.Raw(`<nav><a href="/">Games</a> <a href="/rules">Rules</a></nav></header>`)
		w.Component(ctx, Flash(data.Flash))
		w.Raw(`<main>`)
		w.Component(ctx, body)
		w.Raw(`</main></body></html>`)
	})
}

// Flash renders the status message, if any. The element removes itself
// after the display duration via its data attribute.
func Flash(flash *FlashMessage) templ.Component {
	return markup.Func(func(ctx context.Context, w *markup.Writer) {
		if flash == nil || flash.Message == "" {
			return
		}
		w.Rawf(`<div id="flash" class="flash flash-%s" role="status" data-expires-ms="%d">`,
			markup.Esc(flash.Type), model.MessageDisplayDuration.Milliseconds())
		w.Text(flash.Message)
		w.Raw(`</div>`)
	})
}
