package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"webkv/internal/kv"

	"github.com/gorilla/mux"
)

// REST access to the same store the form page mutates. The value is the
// raw request/response body; no envelope.

func HandlePut(store *kv.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := mux.Vars(r)["key"]
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		log.Printf("[API] PUT key=%s", key)

		store.Put(key, string(body))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

func HandleGet(store *kv.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := mux.Vars(r)["key"]

		log.Printf("[API] GET key=%s", key)

		value, ok := store.Get(key)
		if !ok {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(value))
	}
}

func HandleDelete(store *kv.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		key := mux.Vars(r)["key"]

		log.Printf("[API] DELETE key=%s", key)

		store.Delete(key)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	}
}

// HandleList returns every entry as one JSON object.
func HandleList(store *kv.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries := store.Entries()
		out := make(map[string]string, len(entries))
		for _, e := range entries {
			out[e.Key] = e.Value
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(out)
	}
}

func HandleDebugKeys(store *kv.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		keys := store.Keys()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(keys)
	}
}
