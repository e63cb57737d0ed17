package web

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func newMux(t *testing.T) *http.ServeMux {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "styles.css"), []byte("body{}"), 0o644))
	wasm := filepath.Join(dir, "app.wasm")
	require.NoError(t, os.WriteFile(wasm, []byte("\x00asm"), 0o644))

	mux := http.NewServeMux()
	RegisterRoutes(mux, dir, wasm)
	return mux
}

func get(mux *http.ServeMux, target string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
	return rr
}

func TestPageShell(t *testing.T) {
	rr := get(newMux(t), "/")

	require.Equal(t, http.StatusOK, rr.Code)
	require.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))

	body := rr.Body.String()
	require.True(t, strings.HasPrefix(body, "<!DOCTYPE html>"), body)
	require.Contains(t, body, `<div id="activities-list"><p>Loading activities...</p></div>`)
	require.Contains(t, body, `<div id="signup-region"></div>`)
	require.Contains(t, body, `<script src="/static/wasm_exec.js"></script>`)
	require.Contains(t, body, `fetch("/app.wasm")`, "script text must not be escaped")
}

func TestPageOnlyAtRoot(t *testing.T) {
	require.Equal(t, http.StatusNotFound, get(newMux(t), "/missing").Code)
}

func TestStaticAndWASM(t *testing.T) {
	mux := newMux(t)

	css := get(mux, "/static/styles.css")
	require.Equal(t, http.StatusOK, css.Code)
	require.Equal(t, "body{}", css.Body.String())

	wasm := get(mux, "/app.wasm")
	require.Equal(t, http.StatusOK, wasm.Code)
	require.Equal(t, "application/wasm", wasm.Header().Get("Content-Type"))
}

func TestGenerateProducesPageAssets(t *testing.T) {
	src, err := os.ReadFile("generate.go")
	require.NoError(t, err)

	var directives []string
	for _, line := range strings.Split(string(src), "\n") {
		if strings.HasPrefix(line, "//go:generate ") {
			directives = append(directives, strings.TrimPrefix(line, "//go:generate "))
		}
	}
	require.Len(t, directives, 2)
	require.True(t, strings.HasSuffix(directives[0], "lib/wasm/wasm_exec.js ../../web/static/wasm_exec.js"), directives[0])
	require.Contains(t, directives[1], "GOOS=js GOARCH=wasm go build -o ../../web/app.wasm ../../cmd/web")

	page := get(newMux(t), "/").Body.String()
	require.Contains(t, page, `src="/static/wasm_exec.js"`)
	require.Contains(t, page, `fetch("/app.wasm")`)
}
