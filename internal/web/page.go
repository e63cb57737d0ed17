// Package web serves the page shell, the static assets and the WASM binary.
package web

import (
	"bytes"
	"log"
	"net/http"

	"github.com/vcrobe/activities/vdom"
)

const bootScript = `const go = new Go();
WebAssembly.instantiateStreaming(fetch("/app.wasm"), go.importObject).then((result) => go.run(result.instance));`

// Page builds the document the WASM app mounts into. The activity list
// region starts with the loading notice so the first paint is not empty.
func Page() *vdom.VNode {
	head := vdom.NewVNode("head", nil, []*vdom.VNode{
		vdom.NewVNode("meta", map[string]any{"charset": "UTF-8"}, nil, ""),
		vdom.NewVNode("meta", map[string]any{"name": "viewport", "content": "width=device-width, initial-scale=1.0"}, nil, ""),
		vdom.NewVNode("title", nil, nil, "Mergington High School Activities"),
		vdom.NewVNode("link", map[string]any{"rel": "stylesheet", "href": "/static/styles.css"}, nil, ""),
		vdom.NewVNode("script", map[string]any{"src": "/static/wasm_exec.js"}, nil, ""),
		vdom.NewVNode("script", nil, nil, bootScript),
	}, "")

	header := vdom.NewVNode("header", nil, []*vdom.VNode{
		vdom.Heading(1, "Mergington High School", nil),
		vdom.Heading(2, "Extracurricular Activities", nil),
	}, "")

	content := vdom.NewVNode("main", nil, []*vdom.VNode{
		vdom.Section(map[string]any{"id": "activities-container"},
			vdom.Heading(3, "Available Activities", nil),
			vdom.Div(map[string]any{"id": "activities-list"},
				vdom.Paragraph("Loading activities...", nil),
			),
		),
		vdom.Section(map[string]any{"id": "signup-container"},
			vdom.Heading(3, "Sign Up for an Activity", nil),
			vdom.Div(map[string]any{"id": "signup-region"}),
		),
	}, "")

	footer := vdom.NewVNode("footer", nil, []*vdom.VNode{
		vdom.Paragraph("© 2023 Mergington High School", nil),
	}, "")

	body := vdom.NewVNode("body", nil, []*vdom.VNode{header, content, footer}, "")

	return vdom.NewVNode("html", map[string]any{"lang": "en"}, []*vdom.VNode{head, body}, "")
}

// RegisterRoutes wires the page, /static/ and /app.wasm to the mux.
func RegisterRoutes(mux *http.ServeMux, staticDir, wasmPath string) {
	mux.HandleFunc("/{$}", servePage)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir))))
	mux.HandleFunc("/app.wasm", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/wasm")
		http.ServeFile(w, r, wasmPath)
	})
}

func servePage(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := vdom.RenderDocument(&buf, Page()); err != nil {
		log.Printf("render page: %v", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
