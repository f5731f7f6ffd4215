package controller

import (
	"net/http"
	"net/http/pprof"
	"strings"
)

var profiles = []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} //nolint: gochecknoglobals

// PprofMux returns an http.ServeMux serving net/http/pprof under prefix,
// for example "/debug/pprof/".
func PprofMux(prefix string) *http.ServeMux {
	prefix = "/" + strings.Trim(prefix, "/") + "/"
	mux := http.NewServeMux()

	mux.HandleFunc(prefix, pprof.Index)
	mux.HandleFunc(prefix+"cmdline", pprof.Cmdline)
	mux.HandleFunc(prefix+"profile", pprof.Profile)
	mux.HandleFunc(prefix+"symbol", pprof.Symbol)
	mux.HandleFunc(prefix+"trace", pprof.Trace)
	for _, name := range profiles {
		mux.Handle(prefix+name, pprof.Handler(name))
	}

	return mux
}
