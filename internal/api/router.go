package api

import (
	"fmt"
	"net/http"

	"webkv/internal/kv"

	"github.com/gorilla/mux"
)

// NewRouter wires every HTTP surface to the given store. The form page
// matches any path no REST route claims, so dispatch for it is entirely
// driven by the "action" body field.
func NewRouter(store *kv.Store) *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/kv/{key}", HandlePut(store)).Methods("PUT")
	r.HandleFunc("/kv/{key}", HandleGet(store)).Methods("GET")
	r.HandleFunc("/kv/{key}", HandleDelete(store)).Methods("DELETE")
	r.HandleFunc("/kv", HandleList(store)).Methods("GET")

	r.HandleFunc("/debug/keys", HandleDebugKeys(store)).Methods("GET")

	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, "OK")
	})

	r.PathPrefix("/").HandlerFunc(HandleForm(store))

	return r
}
