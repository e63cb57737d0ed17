package web

// Assets the page shell loads, produced from the repository root with `go generate ./internal/web`.

//go:generate cp $GOROOT/lib/wasm/wasm_exec.js ../../web/static/wasm_exec.js
//go:generate env GOOS=js GOARCH=wasm go build -o ../../web/app.wasm ../../cmd/web
